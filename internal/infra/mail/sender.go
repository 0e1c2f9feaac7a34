package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"

	"gopkg.in/gomail.v2"
)

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:        host,
		Port:        port,
		User:        user,
		Password:    password,
		From:        from,
		TemplateDir: "templates",
	}
}

// SendDownloadLink renders the fixed download template with the link and
// delivers it over SMTP. Callers treat failures as best-effort.
func (s *EmailSender) SendDownloadLink(to, downloadLink string) error {
	body, err := s.renderBody(downloadLink)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.From, "StorySell"))
	m.SetHeader("To", to)
	m.SetHeader("Subject", "📖 Your Free Ebook: The Story That Sells")
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *EmailSender) renderBody(downloadLink string) (string, error) {
	tmplPath := filepath.Join(s.TemplateDir, "download.html")
	t, err := template.ParseFiles(tmplPath)
	if err != nil {
		return "", fmt.Errorf("parse email template: %w", err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, DownloadEmailData{DownloadLink: downloadLink}); err != nil {
		return "", fmt.Errorf("render email template: %w", err)
	}

	return body.String(), nil
}
