package helpbindings

// Close signals the help popup should close.
type Close struct{}

// ActionType implements action.Action.
func (Close) ActionType() string { return "helpbindings.close" }
