// Package snowdocs provides a command-line client for searching the
// Snowflake documentation site. It queries the site's search endpoint,
// extracts result links from the returned HTML, and lets the user page
// through the results and open one in a browser.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, browser/).
package snowdocs
