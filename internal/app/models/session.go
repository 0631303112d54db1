package models

type Session struct {
	Credential      string    `json:"access_token,omitempty"`
	Identity        *Identity `json:"user,omitempty"`
	IsAuthenticated bool      `json:"is_authenticated"`
}

// Recompute derives IsAuthenticated from the presence of both the
// credential and the identity. Partial state is never authenticated.
func (s *Session) Recompute() {
	s.IsAuthenticated = s.Credential != "" && s.Identity != nil
}

func (s *Session) Clone() Session {
	clone := *s
	if s.Identity != nil {
		identity := *s.Identity
		clone.Identity = &identity
	}
	return clone
}
