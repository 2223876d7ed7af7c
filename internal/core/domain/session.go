package domain

// Session pairs the remote API token with the authenticated subject's profile.
// Invariant: Token and Subject are set and cleared together — there is no
// partial session.
type Session struct {
	Token   string
	Subject *Employee
}

// Authenticated reports whether the session holds both a token and a subject.
func (s Session) Authenticated() bool {
	return s.Token != "" && s.Subject != nil
}
