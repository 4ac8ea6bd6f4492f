package domain

// Principal is the authenticated identity derived from a request credential.
// It lives for a single request and is never persisted.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

// IsZero reports whether no principal was resolved for the request.
func (p Principal) IsZero() bool {
	return p.UserID == ""
}
