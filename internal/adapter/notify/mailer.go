package notify

import (
	"fmt"
	"html"
	"net/mail"
	"strings"

	domain "github.com/iWEX-Infomatics/iWebsite/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/mailer"
)

// MailNotifier sends the admin notification for a new lead through the
// app's configured SMTP client.
type MailNotifier struct {
	app pbCore.App
}

func NewMailNotifier(app pbCore.App) domain.ContactNotifier {
	return &MailNotifier{app: app}
}

func (n *MailNotifier) NotifyNewLead(recipient string, req *domain.ContactRequest, leadID string) error {
	meta := n.app.Settings().Meta

	subject := req.Subject
	if subject == "" {
		subject = "Website Inquiry"
	}

	leadURL := fmt.Sprintf(
		"%s/_/#/collections?collection=leads&recordId=%s",
		strings.TrimRight(meta.AppURL, "/"),
		leadID,
	)

	message := &mailer.Message{
		From: mail.Address{
			Name:    meta.SenderName,
			Address: meta.SenderAddress,
		},
		To:      []mail.Address{{Address: recipient}},
		Subject: "New Contact Form Submission: " + subject,
		HTML: fmt.Sprintf(`
			<h3>New Contact Form Submission</h3>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Email:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Subject:</strong> %s</p>
			<p><strong>Message:</strong></p>
			<p>%s</p>
			<p><a href="%s">View Lead</a></p>`,
			html.EscapeString(req.FullName),
			html.EscapeString(req.Email),
			html.EscapeString(orNotProvided(req.Phone)),
			html.EscapeString(orNotProvided(req.Subject)),
			html.EscapeString(orNotProvided(req.Message)),
			leadURL,
		),
	}

	return n.app.NewMailClient().Send(message)
}

func orNotProvided(value string) string {
	if value == "" {
		return "Not provided"
	}
	return value
}
