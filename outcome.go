package snowdocs

// OutcomeKind describes what happened after applying one command.
type OutcomeKind int

const (
	// OutcomeContinue moves to a new window.
	OutcomeContinue OutcomeKind = iota
	// OutcomeMessage keeps the window and shows Message.
	OutcomeMessage
	// OutcomeSelected ends the interaction with Index chosen.
	OutcomeSelected
	// OutcomeCancelled ends the interaction without a choice.
	OutcomeCancelled
)

// Outcome is the result of Step.
type Outcome struct {
	Kind    OutcomeKind
	Window  Window
	Index   int
	Message string
}

// Done reports whether the interaction has ended.
func (o Outcome) Done() bool {
	return o.Kind == OutcomeSelected || o.Kind == OutcomeCancelled
}

// Step applies cmd to window w. Pager errors become messages with the
// window left as it was.
func Step(p *Pager, w Window, cmd Command) Outcome {
	switch cmd.Kind {
	case CommandCancel:
		return Outcome{Kind: OutcomeCancelled, Window: w}
	case CommandAdvance:
		next, err := p.Advance(w)
		if err != nil {
			return message(w, err)
		}
		return Outcome{Kind: OutcomeContinue, Window: next}
	case CommandRetreat:
		prev, err := p.Retreat(w)
		if err != nil {
			return message(w, err)
		}
		return Outcome{Kind: OutcomeContinue, Window: prev}
	case CommandSelect:
		idx, err := p.Select(w, cmd.N)
		if err != nil {
			return message(w, err)
		}
		return Outcome{Kind: OutcomeSelected, Window: w, Index: idx}
	}
	// Misspelling kept: scripts match on this text.
	return Outcome{Kind: OutcomeMessage, Window: w, Message: "unkown command " + cmd.Text}
}

func message(w Window, err error) Outcome {
	return Outcome{Kind: OutcomeMessage, Window: w, Message: ErrorMessage(err)}
}
