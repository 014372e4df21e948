package smtp

import (
	"context"
	"fmt"
	"strings"

	"github.com/JMURv/attendance-guard/internal/config"
	md "github.com/JMURv/attendance-guard/internal/models"
	"github.com/opentracing/opentracing-go"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

const alertSubject = "New device needs review"

type EmailServer struct {
	server string
	port   int
	user   string
	pass   string
	admin  string
}

func New(conf config.Config) *EmailServer {
	return &EmailServer{
		server: conf.Email.Server,
		port:   conf.Email.Port,
		user:   conf.Email.User,
		pass:   conf.Email.Pass,
		admin:  conf.Email.Admin,
	}
}

func (s *EmailServer) GetMessageBase(subject, toEmail string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.user)
	m.SetHeader("To", toEmail)
	if s.admin != "" && s.admin != toEmail {
		m.SetHeader("Bcc", s.admin)
	}
	m.SetHeader("Subject", subject)
	return m
}

func (s *EmailServer) Send(m *gomail.Message) error {
	d := gomail.NewDialer(s.server, s.port, s.user, s.pass)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("Failed to send an email", zap.Error(err))
		return err
	}
	return nil
}

// SendManagerAlert mails the manager about a temporarily approved device.
func (s *EmailServer) SendManagerAlert(
	ctx context.Context,
	contact *md.ManagerContact,
	alert md.ManagerAlert,
) error {
	const op = "smtp.SendManagerAlert"
	span, ctx := opentracing.StartSpanFromContext(ctx, op)
	defer span.Finish()

	m := s.GetMessageBase(alertSubject, contact.ManagerEmail)
	m.SetBody("text/plain", AlertBody(contact, alert))

	done := make(chan error, 1)
	go func() {
		done <- s.Send(m)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		return err
	}
}

func AlertBody(contact *md.ManagerContact, alert md.ManagerAlert) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", contact.ManagerName)
	fmt.Fprintf(&b, "%s registered a new device: %s.\n", contact.EmployeeName, alert.DeviceName)
	fmt.Fprintf(&b, "Risk score: %d (%s).\n", alert.Score, alert.Level)
	if len(alert.Flags) > 0 {
		fmt.Fprintf(&b, "Flags: %s.\n", strings.Join(alert.Flags, ", "))
	}
	fmt.Fprintf(&b, "The device was approved temporarily at %s and requires your review.\n",
		alert.CreatedAt.Format("2006-01-02 15:04 MST"))
	return b.String()
}
