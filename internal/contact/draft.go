// Package contact builds the pre-filled email draft behind the contact form.
// Nothing here sends mail; drafts are handed to the visitor's mail client.
package contact

import (
	"net/url"
	"strings"
)

// Form is what the visitor typed.
type Form struct {
	Name    string
	Email   string
	Message string
}

// Draft is a composed email.
type Draft struct {
	To      string
	Subject string
	Body    string
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// Compose fills the subject and body from the form. Empty fields get
// placeholders; fields holding only spaces are kept as typed.
func Compose(to string, f Form) Draft {
	body := strings.Join([]string{
		"Name: " + orDefault(f.Name, "(not provided)"),
		"Email: " + orDefault(f.Email, "(not provided)"),
		"",
		"Message:",
		orDefault(f.Message, "(empty)"),
	}, "\n")

	return Draft{
		To:      to,
		Subject: "Portfolio Contact — " + orDefault(f.Name, "Someone"),
		Body:    body,
	}
}

// MailtoURL encodes the draft as a mailto: link. Subject and body are
// escaped like encodeURIComponent, so spaces become %20 rather than +.
func (d Draft) MailtoURL() string {
	return "mailto:" + d.To + "?subject=" + escape(d.Subject) + "&body=" + escape(d.Body)
}

func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
