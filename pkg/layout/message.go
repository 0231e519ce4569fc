package layout

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/changesci/changes-web/pkg/models"
)

// TimeSince renders t relative to now, e.g. "3 hours ago"
func TimeSince(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}

// FormatAdminMessage composes the banner text for an admin message:
// the message, " - Posted by <email>" when the poster is known and
// " (<relative time>)" when the creation time is known.
// Returns "" when there is nothing to show.
func FormatAdminMessage(msg *models.AdminMessage, now time.Time) string {
	if !msg.HasText() {
		return ""
	}

	var b strings.Builder
	b.WriteString(msg.Message)
	if email := msg.PosterEmail(); email != "" {
		b.WriteString(" - Posted by ")
		b.WriteString(email)
	}
	if msg.DateCreated != nil && !msg.DateCreated.IsZero() {
		b.WriteString(" (")
		b.WriteString(TimeSince(msg.DateCreated.Time, now))
		b.WriteString(")")
	}
	return b.String()
}
