package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/changesci/changes-web/pkg/models"
)

func TestFormatAdminMessage(t *testing.T) {
	now := time.Date(2014, 6, 26, 12, 0, 0, 0, time.UTC)
	created := now.Add(-3 * time.Hour)

	testCases := []struct {
		name     string
		msg      *models.AdminMessage
		expected string
	}{
		{
			name: "message with poster and date",
			msg: &models.AdminMessage{
				Message:     "Down for maintenance",
				User:        &models.MessageAuthor{Email: "a@b.com"},
				DateCreated: models.NewTimestamp(created),
			},
			expected: "Down for maintenance - Posted by a@b.com (3 hours ago)",
		},
		{
			name:     "message only",
			msg:      &models.AdminMessage{Message: "Down for maintenance"},
			expected: "Down for maintenance",
		},
		{
			name: "poster without email",
			msg: &models.AdminMessage{
				Message:     "Down for maintenance",
				User:        &models.MessageAuthor{},
				DateCreated: models.NewTimestamp(created),
			},
			expected: "Down for maintenance (3 hours ago)",
		},
		{
			name:     "empty message",
			msg:      &models.AdminMessage{Message: "", User: &models.MessageAuthor{Email: "a@b.com"}},
			expected: "",
		},
		{
			name:     "nil message",
			msg:      nil,
			expected: "",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, FormatAdminMessage(tc.msg, now))
		})
	}
}

func TestTimeSince(t *testing.T) {
	now := time.Date(2014, 6, 26, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "3 hours ago", TimeSince(now.Add(-3*time.Hour), now))
	assert.Equal(t, "2 days ago", TimeSince(now.Add(-50*time.Hour), now))
}
