package mail

import (
	"fmt"
	"html"
	"strings"

	"github.com/Jeffstark223/vvu-src-senate/internal/model"
)

const contactSubjectPrefix = "New Senate Inquiry: "

type ContactOptions struct {
	From          Address
	Recipient     Address
	StudentDomain string
	// EscapeHTML escapes submitted values in the HTML body. Off by default,
	// which embeds them verbatim.
	EscapeHTML bool
}

// ComposeContact builds the outgoing email for a contact form submission.
func ComposeContact(s model.ContactSubmission, opts ContactOptions) Message {
	text := fmt.Sprintf(`
Name: %s %s
Student ID: %s
Subject: %s

Message:
%s
`, s.FirstName, s.LastName, s.StudentID, s.Subject, s.Message)

	field := func(v string) string {
		if opts.EscapeHTML {
			return html.EscapeString(v)
		}
		return v
	}

	body := strings.ReplaceAll(field(s.Message), "\n", "<br>")
	htmlBody := fmt.Sprintf(`
<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> %s %s</p>
<p><strong>Student ID:</strong> %s</p>
<p><strong>Subject:</strong> %s</p>
<hr>
<p><strong>Message:</strong><br>%s</p>
`, field(s.FirstName), field(s.LastName), field(s.StudentID), field(s.Subject), body)

	return Message{
		From: opts.From,
		To:   []Address{opts.Recipient},
		ReplyTo: &Address{
			Name:  s.FullName(),
			Email: s.StudentID + "@" + opts.StudentDomain,
		},
		Subject:  contactSubjectPrefix + s.Subject,
		TextBody: text,
		HTMLBody: htmlBody,
	}
}
