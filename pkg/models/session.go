package models

// Session is the auth status reported by GET /api/0/auth/.
// User is nil for anonymous visitors.
type Session struct {
	User          *User `json:"user"`
	Authenticated bool  `json:"authenticated"`
}
