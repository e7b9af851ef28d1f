package tui

import "shopterm/internal/models"

// State is the shared application state: who is logged in and, for
// customers, the active browsing session.
type State struct {
	UID       int
	Role      string
	SessionNo int
}

func (s *State) LoggedIn() bool {
	return s.UID != 0
}

func (s *State) IsCustomer() bool {
	return s.Role == models.RoleCustomer
}

func (s *State) Reset() {
	s.UID = 0
	s.Role = ""
	s.SessionNo = 0
}
