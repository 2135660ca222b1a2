package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"sync"

	"github.com/rs/zerolog/log"
)

// Sender sends a single email
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Service handles email sending with templates
type Service struct {
	client       Sender
	templates    map[string]*template.Template
	baseTemplate *template.Template
	queue        chan *queuedEmail
	wg           sync.WaitGroup
}

type queuedEmail struct {
	To           string
	ToName       string
	Subject      string
	TemplateName string
	Data         interface{}
}

// NewService creates the email service and starts its async worker
func NewService(client Sender) *Service {
	s := &Service{
		client:    client,
		templates: make(map[string]*template.Template),
		queue:     make(chan *queuedEmail, 100),
	}

	s.baseTemplate, _ = template.New("base").Parse(BaseTemplate)
	s.loadTemplates()

	s.wg.Add(1)
	go s.worker()

	return s
}

func (s *Service) loadTemplates() {
	templates := map[string]string{
		"welcome":              WelcomeTemplate,
		"contact_notification": ContactNotificationTemplate,
		"booking_confirmed":    BookingConfirmedTemplate,
		"booking_cancelled":    BookingCancelledTemplate,
	}

	for name, content := range templates {
		tmpl, err := template.New(name).Parse(content)
		if err != nil {
			log.Error().Err(err).Str("template", name).Msg("Failed to parse email template")
			continue
		}
		s.templates[name] = tmpl
	}
}

// worker processes queued emails asynchronously
func (s *Service) worker() {
	defer s.wg.Done()

	for email := range s.queue {
		ctx := context.Background()
		if err := s.send(ctx, email); err != nil {
			log.Error().Err(err).
				Str("to", email.To).
				Str("template", email.TemplateName).
				Msg("Failed to send email")
		}
	}
}

func (s *Service) send(ctx context.Context, email *queuedEmail) error {
	tmpl, ok := s.templates[email.TemplateName]
	if !ok {
		return fmt.Errorf("template %s not found", email.TemplateName)
	}

	var contentBuf bytes.Buffer
	if err := tmpl.Execute(&contentBuf, email.Data); err != nil {
		return err
	}

	// Wrap in base layout
	var htmlBuf bytes.Buffer
	if err := s.baseTemplate.Execute(&htmlBuf, map[string]interface{}{
		"Content": template.HTML(contentBuf.String()),
	}); err != nil {
		return err
	}

	return s.client.Send(ctx, &Message{
		To:          email.To,
		ToName:      email.ToName,
		Subject:     email.Subject,
		HTMLContent: htmlBuf.String(),
	})
}

// Queue adds an email to the async send queue
func (s *Service) Queue(to, toName, templateName, subject string, data interface{}) {
	select {
	case s.queue <- &queuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	}:
	default:
		log.Warn().Str("to", to).Msg("Email queue full, dropping email")
	}
}

// SendSync sends an email synchronously, blocking until SendGrid responds
func (s *Service) SendSync(ctx context.Context, to, toName, templateName, subject string, data interface{}) error {
	return s.send(ctx, &queuedEmail{
		To:           to,
		ToName:       toName,
		Subject:      subject,
		TemplateName: templateName,
		Data:         data,
	})
}

// Close stops the email worker after draining the queue
func (s *Service) Close() {
	close(s.queue)
	s.wg.Wait()
}

// --- Convenience methods for specific emails ---

// SendWelcome sends a welcome email to a new user
func (s *Service) SendWelcome(to, toName, userName string) {
	s.Queue(to, toName, "welcome", "Welcome to OWM Studio!", map[string]string{
		"UserName": userName,
	})
}

// SendContactNotification notifies the studio inbox about a new contact
// submission. Synchronous so the caller can report delivery status.
func (s *Service) SendContactNotification(ctx context.Context, studioEmail, name, fromEmail, phone, message string) error {
	return s.SendSync(ctx, studioEmail, "OWM Studio", "contact_notification",
		"New contact form submission from "+name, map[string]string{
			"Name":    name,
			"Email":   fromEmail,
			"Phone":   phone,
			"Message": message,
		})
}

// SendBookingConfirmed notifies a customer that their booking was created
func (s *Service) SendBookingConfirmed(to, toName, serviceName, eventDate, eventTime string) {
	s.Queue(to, toName, "booking_confirmed", "Your booking is confirmed", map[string]string{
		"UserName":    toName,
		"ServiceName": serviceName,
		"EventDate":   eventDate,
		"EventTime":   eventTime,
	})
}

// SendBookingCancelled notifies a customer that their booking was cancelled
func (s *Service) SendBookingCancelled(to, toName, serviceName, eventDate string) {
	s.Queue(to, toName, "booking_cancelled", "Your booking was cancelled", map[string]string{
		"UserName":    toName,
		"ServiceName": serviceName,
		"EventDate":   eventDate,
	})
}
