package domain

// SessionState is the session lifecycle state machine:
//
//	Hydrating → {Anonymous, Authenticated}
//	Anonymous → Authenticating → {Authenticated, Anonymous}
//	Authenticated → Anonymous (logout)
type SessionState string

const (
	SessionHydrating      SessionState = "hydrating"
	SessionAnonymous      SessionState = "anonymous"
	SessionAuthenticating SessionState = "authenticating"
	SessionAuthenticated  SessionState = "authenticated"
)

// SessionSnapshot is a point-in-time, read-only view of the session. Consumers
// (guard middleware, handlers) take a fresh snapshot per request and never
// mutate it.
type SessionSnapshot struct {
	State SessionState
	User  *User
	Token string
}

// IsAuthenticated is derived, never stored: true iff both halves of the
// credential pair are present.
func (s SessionSnapshot) IsAuthenticated() bool {
	return s.Token != "" && s.User.Valid()
}

// IsLoading reports whether the session has not settled on an
// authenticated/anonymous decision: startup hydration or an in-flight
// login/register.
func (s SessionSnapshot) IsLoading() bool {
	return s.State == SessionHydrating || s.State == SessionAuthenticating
}
