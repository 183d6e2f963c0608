package session

import "github.com/dmitrijs2005/rentpred/internal/client/models"

// Phase is the state-machine position of a Manager.
type Phase int

const (
	PhaseRestoring Phase = iota
	PhaseAnonymous
	PhaseAuthenticated
)

func (p Phase) String() string {
	switch p {
	case PhaseRestoring:
		return "restoring"
	case PhaseAnonymous:
		return "anonymous"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "unknown"
	}
}

// State is a snapshot of the session. The user pointer is a private copy.
type State struct {
	User    *models.User
	Loading bool
}

// IsAuthenticated is derived from User; it cannot be set independently.
func (s State) IsAuthenticated() bool {
	return s.User != nil
}

// Phase reports the state-machine phase the snapshot corresponds to.
func (s State) Phase() Phase {
	switch {
	case s.Loading:
		return PhaseRestoring
	case s.User != nil:
		return PhaseAuthenticated
	default:
		return PhaseAnonymous
	}
}

// EventKind tells subscribers which transition happened.
type EventKind int

const (
	EventRestored EventKind = iota
	EventLoggedIn
	EventLoggedOut
	EventForcedLogout
	EventExternalChange
	EventProfileUpdated
)

func (k EventKind) String() string {
	switch k {
	case EventRestored:
		return "restored"
	case EventLoggedIn:
		return "logged-in"
	case EventLoggedOut:
		return "logged-out"
	case EventForcedLogout:
		return "forced-logout"
	case EventExternalChange:
		return "external-change"
	case EventProfileUpdated:
		return "profile-updated"
	default:
		return "unknown"
	}
}

// Event is delivered to subscribers after every transition.
type Event struct {
	Kind       EventKind
	State      State
	Generation uint64
}
