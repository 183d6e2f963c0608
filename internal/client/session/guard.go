package session

import "github.com/dmitrijs2005/rentpred/internal/common"

// Action is what the router should do with a protected navigation.
type Action int

const (
	ActionRender Action = iota
	ActionRedirect
	ActionLoading
)

func (a Action) String() string {
	switch a {
	case ActionRender:
		return "render"
	case ActionRedirect:
		return "redirect"
	case ActionLoading:
		return "loading"
	default:
		return "unknown"
	}
}

// Decision is the guard's verdict. Target is set for ActionRedirect.
type Decision struct {
	Action Action
	Target string
}

// Evaluate decides a navigation to a protected view. While the session is
// still loading the placeholder wins, so a restore in progress never causes
// a redirect. It must be called again on every navigation.
func Evaluate(s State) Decision {
	if s.Loading {
		return Decision{Action: ActionLoading}
	}
	if !s.IsAuthenticated() {
		return Decision{Action: ActionRedirect, Target: common.LoginPath}
	}
	return Decision{Action: ActionRender}
}
