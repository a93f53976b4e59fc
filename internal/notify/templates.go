package notify

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode"

	"review-scheduler/internal/models"
	"review-scheduler/internal/schedule"
)

// DefaultRejectReason is used when a reviewer rejects without a reason.
const DefaultRejectReason = "no reason provided"

type Message struct {
	Subject string
	Body    string
}

type templateData struct {
	ObjectName string
	Date       string
	Window     string
	Reason     string
}

var templates = map[models.NotificationType]struct {
	subject string
	body    *template.Template
}{
	models.NotificationNewAppointment: {
		subject: "New appointment request - %s",
		body: template.Must(template.New("new").Parse(`You have a new contract review request.

Object:  {{.ObjectName}}
Date:    {{.Date}}
Time:    {{.Window}}

Please accept or reject it in the scheduler.
`)),
	},
	models.NotificationAppointmentConfirmed: {
		subject: "Appointment accepted - %s",
		body: template.Must(template.New("accepted").Parse(`Your contract review appointment was accepted.

Object:  {{.ObjectName}}
Date:    {{.Date}}
Time:    {{.Window}}
`)),
	},
	models.NotificationAppointmentRejected: {
		subject: "Appointment rejected - %s",
		body: template.Must(template.New("rejected").Parse(`Your contract review appointment was rejected.

Object:  {{.ObjectName}}
Date:    {{.Date}}
Time:    {{.Window}}
Reason:  {{.Reason}}

You can book another slot in the scheduler.
`)),
	},
}

// SingleLine replaces control characters, line breaks included, with spaces
// so s can be placed in a header.
func SingleLine(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
}

// Compose renders the subject and body of a notification about a.
func Compose(typ models.NotificationType, a *models.Appointment, reason string) (Message, error) {
	tpl, ok := templates[typ]
	if !ok {
		return Message{}, fmt.Errorf("unknown notification type %q", typ)
	}

	if reason == "" {
		reason = DefaultRejectReason
	}

	var body bytes.Buffer
	if err := tpl.body.Execute(&body, templateData{
		ObjectName: a.ObjectName,
		Date:       a.Date.Format(schedule.DateLayout),
		Window:     a.Interval.String(),
		Reason:     reason,
	}); err != nil {
		return Message{}, err
	}

	return Message{
		Subject: fmt.Sprintf(tpl.subject, SingleLine(a.ObjectName)),
		Body:    body.String(),
	}, nil
}
