package formatting

import (
	"fmt"
	"html"
	"strings"

	"github.com/Freeeeeet/mentor_scheduler/internal/controller/state"
	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/Freeeeeet/mentor_scheduler/internal/submission"
)

// DraftSummary итог черновика для экрана подтверждения (HTML)
func DraftSummary(d *state.Draft) string {
	var sb strings.Builder

	if d.IsOffer() {
		sb.WriteString("📝 <b>Session offer</b>\n\n")
		fmt.Fprintf(&sb, "🎓 Learner: %s\n", html.EscapeString(d.CounterpartTag))
	} else {
		sb.WriteString("📝 <b>Session request</b>\n\n")
		fmt.Fprintf(&sb, "🎓 Mentor: %s\n", html.EscapeString(d.CounterpartTag))
	}

	if date := d.Date(); !date.IsZero() {
		fmt.Fprintf(&sb, "📅 Date: %s\n", FormatDateLong(date))
	}
	if d.TimeLabel != "" {
		fmt.Fprintf(&sb, "🕐 Time: %s\n", html.EscapeString(d.TimeLabel))
	}
	if d.Subject != "" {
		fmt.Fprintf(&sb, "📚 Subject: %s\n", html.EscapeString(d.Subject))
	}
	if d.Delivery != "" {
		fmt.Fprintf(&sb, "%s\n", GetDeliveryDisplay(d.Delivery))
	}
	if d.Delivery == model.DeliveryInPerson && d.Location != "" {
		fmt.Fprintf(&sb, "📍 Location: %s\n", html.EscapeString(d.Location))
	}
	if d.SessionKind != "" {
		fmt.Fprintf(&sb, "%s\n", GetSessionKindDisplay(d.SessionKind))
	}
	if d.SessionKind == model.SessionGroup {
		if d.GroupName != "" {
			fmt.Fprintf(&sb, "🏷 Group: %s\n", html.EscapeString(d.GroupName))
		}
		if d.MaxParticipants != nil {
			fmt.Fprintf(&sb, "🔢 Up to %s\n", Pluralize(*d.MaxParticipants, "participant"))
		}
	}
	if d.Note != "" {
		fmt.Fprintf(&sb, "💬 Note: %s\n", html.EscapeString(d.Note))
	}

	return sb.String()
}

// ProfileSummary профиль ментора (HTML)
func ProfileSummary(profile *model.MentorProfile) string {
	days := "not set"
	if names := profile.WeekdaySet().Names(); len(names) > 0 {
		days = strings.Join(names, ", ")
	}
	subjects := "not set"
	if len(profile.Subjects) > 0 {
		subjects = html.EscapeString(strings.Join(profile.Subjects, ", "))
	}
	duration := profile.SessionDurationLabel
	if duration == "" {
		duration = "not set"
	}

	return fmt.Sprintf(
		"🎓 <b>Mentor profile</b>\n\n"+
			"📅 Available days: %s\n"+
			"%s\n"+
			"📚 Subjects: %s\n"+
			"⏱ Session length: %s",
		days,
		GetModalityDisplay(profile.Modality),
		subjects,
		html.EscapeString(duration),
	)
}

// ReceiptSummary сообщение об успешной отправке (HTML)
func ReceiptSummary(d *state.Draft, receipt *submission.Receipt) string {
	title := "✅ <b>Request sent!</b>"
	if d.IsOffer() {
		title = "✅ <b>Offer sent!</b>"
	}

	text := title + "\n\n" + DraftSummary(d)
	if receipt != nil && receipt.ID != "" {
		text += fmt.Sprintf("\n🧾 Reference: <code>%s</code>", html.EscapeString(receipt.ID))
		if receipt.Status != "" {
			text += fmt.Sprintf(" (%s)", html.EscapeString(receipt.Status))
		}
	}
	return text
}
