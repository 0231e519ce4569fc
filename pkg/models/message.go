package models

// MessageAuthor is the operator who posted an admin message
type MessageAuthor struct {
	Email string `json:"email"`
}

// AdminMessage is the operator broadcast served by GET /api/0/messages/.
// The endpoint returns null when no message is set.
type AdminMessage struct {
	Message     string         `json:"message"`
	User        *MessageAuthor `json:"user,omitempty"`
	DateCreated *Timestamp     `json:"dateCreated,omitempty"`
}

// HasText reports whether there is anything to show
func (m *AdminMessage) HasText() bool {
	return m != nil && m.Message != ""
}

// PosterEmail returns the author's email, or "" when unknown
func (m *AdminMessage) PosterEmail() string {
	if m == nil || m.User == nil {
		return ""
	}
	return m.User.Email
}
