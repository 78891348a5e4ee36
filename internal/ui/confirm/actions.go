package confirm

// Result is raised when the user answers. Context is passed through from Show.
type Result struct {
	Confirmed bool
	Context   any
}

// ActionType implements action.Action.
func (Result) ActionType() string { return "confirm.result" }
