package layout

import "sync"

// Level is the severity of a flash notification
type Level string

const (
	LevelSuccess Level = "success"
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notice is one flash notification
type Notice struct {
	Level       Level
	Text        string
	AutoDismiss bool
}

// Notifier is the flash notification channel
type Notifier interface {
	Flash(level Level, text string, autoDismiss bool)
}

var _ Notifier = &Queue{}

// Queue collects the notices emitted while handling one page request
type Queue struct {
	mu      sync.Mutex
	notices []Notice
}

func NewQueue() *Queue {
	return &Queue{}
}

func (q *Queue) Flash(level Level, text string, autoDismiss bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.notices = append(q.notices, Notice{Level: level, Text: text, AutoDismiss: autoDismiss})
}

// Notices returns a copy of the collected notices in emission order
func (q *Queue) Notices() []Notice {
	if q == nil {
		return nil
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]Notice, len(q.notices))
	copy(out, q.notices)
	return out
}
