package session

// OutcomeKind says what the loop should do after one dispatch.
type OutcomeKind int

const (
	Continue OutcomeKind = iota
	Quit
	DispatchFailed
)

func (k OutcomeKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case DispatchFailed:
		return "dispatch failed"
	default:
		return "continue"
	}
}

// LoopOutcome is returned from every dispatch and from Run. Err is set only
// for DispatchFailed.
type LoopOutcome struct {
	Kind OutcomeKind
	Err  error
}

func continued() LoopOutcome { return LoopOutcome{Kind: Continue} }

func quit() LoopOutcome { return LoopOutcome{Kind: Quit} }

func failed(err error) LoopOutcome { return LoopOutcome{Kind: DispatchFailed, Err: err} }
