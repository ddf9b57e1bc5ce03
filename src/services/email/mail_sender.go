package email

import (
	"crypto/tls"
	"fmt"
	"io"
	"strings"

	gomail "gopkg.in/gomail.v2"
)

// Attachment ไฟล์แนบในอีเมล
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

type MailSender interface {
	Send(to, subject, html string, attachments ...Attachment) error
}

// Settings ค่าการเชื่อมต่อ SMTP (มาจาก SMTP_* ใน env)
type Settings struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

// Missing รายชื่อ env ที่ยังไม่ได้ตั้ง
func (s Settings) Missing() []string {
	missing := []string{}
	if s.Host == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if s.Port == 0 {
		missing = append(missing, "SMTP_PORT")
	}
	if s.User == "" {
		missing = append(missing, "SMTP_USER")
	}
	if s.Pass == "" {
		missing = append(missing, "SMTP_PASS")
	}
	if s.From == "" {
		missing = append(missing, "SMTP_FROM")
	}
	return missing
}

type SMTPSender struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

func NewSMTPSender(s Settings) (*SMTPSender, error) {
	if missing := s.Missing(); len(missing) > 0 {
		return nil, fmt.Errorf("missing SMTP env: %v", strings.Join(missing, ", "))
	}
	return &SMTPSender{Host: s.Host, Port: s.Port, User: s.User, Pass: s.Pass, From: s.From}, nil
}

// NewMessage ประกอบอีเมลพร้อมไฟล์แนบ แยกออกมาเพื่อให้ทดสอบได้โดยไม่ต้องส่งจริง
func (s *SMTPSender) NewMessage(to, subject, html string, attachments ...Attachment) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	for _, a := range attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		m.Attach(a.Name, settings...)
	}
	return m
}

func (s *SMTPSender) Send(to, subject, html string, attachments ...Attachment) error {
	m := s.NewMessage(to, subject, html, attachments...)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	d.TLSConfig = &tls.Config{
		ServerName: s.Host,
		MinVersion: tls.VersionTLS12,
	}

	return d.DialAndSend(m)
}
