package snowdocs

import (
	"strconv"
	"strings"
)

// CommandKind enumerates the inputs understood at the selection prompt.
type CommandKind int

const (
	CommandUnknown CommandKind = iota
	CommandCancel
	CommandAdvance
	CommandRetreat
	CommandSelect
)

// Command is one parsed line of prompt input.
// N is set for CommandSelect, Text for CommandUnknown.
type Command struct {
	Kind CommandKind
	N    int
	Text string
}

// ParseCommand interprets a line typed at the prompt. Keywords are matched
// case-insensitively; anything else must be an integer to be a selection.
func ParseCommand(line string) Command {
	text := strings.ToLower(strings.TrimSpace(line))
	switch text {
	case "cancel":
		return Command{Kind: CommandCancel}
	case "more":
		return Command{Kind: CommandAdvance}
	case "back":
		return Command{Kind: CommandRetreat}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return Command{Kind: CommandUnknown, Text: text}
	}
	return Command{Kind: CommandSelect, N: n}
}
