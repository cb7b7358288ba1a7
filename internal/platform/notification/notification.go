// Package notification provides SMS dispatch for triage results and
// medication reminders. The transport itself is an external collaborator
// behind the SMSSender interface; when no sender is configured the service
// runs in demo mode and only records what would have been sent.
package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SMSSender delivers a single SMS message. Implementations wrap a real
// gateway (Twilio and the like); the core never depends on one directly.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

var (
	ErrMissingRecipient = errors.New("recipient phone number is required")
	ErrMissingBody      = errors.New("message body is required")
)

// Receipt records the outcome of one send attempt.
type Receipt struct {
	MessageID string    `json:"message_id"`
	To        string    `json:"to"`
	Success   bool      `json:"success"`
	DemoMode  bool      `json:"demo_mode,omitempty"`
	Error     string    `json:"error,omitempty"`
	SentAt    time.Time `json:"sent_at"`
}

// Service sends SMS messages through the configured sender, or in demo mode
// when none is configured.
type Service struct {
	sender SMSSender
	logger zerolog.Logger
}

func NewService(sender SMSSender, logger zerolog.Logger) *Service {
	return &Service{sender: sender, logger: logger}
}

// Send dispatches one message. Gateway failures are reported in the receipt,
// not returned as errors; only invalid input errors.
func (s *Service) Send(ctx context.Context, to, body string) (Receipt, error) {
	if to == "" {
		return Receipt{}, ErrMissingRecipient
	}
	if body == "" {
		return Receipt{}, ErrMissingBody
	}

	r := Receipt{
		MessageID: uuid.NewString(),
		To:        to,
		SentAt:    time.Now().UTC(),
	}

	if s.sender == nil {
		s.logger.Info().Str("to", to).Msg("sms demo mode, message not dispatched")
		r.Success = true
		r.DemoMode = true
		return r, nil
	}

	if err := s.sender.SendSMS(ctx, to, body); err != nil {
		s.logger.Error().Err(err).Str("to", to).Msg("sms send failed")
		r.Error = err.Error()
		return r, nil
	}
	s.logger.Info().Str("to", to).Str("message_id", r.MessageID).Msg("sms sent")
	r.Success = true
	return r, nil
}

// SendBulk dispatches the same message to multiple recipients, collecting a
// per-recipient receipt. A failed recipient never aborts the rest.
func (s *Service) SendBulk(ctx context.Context, recipients []string, body string) ([]Receipt, int, error) {
	if len(recipients) == 0 {
		return nil, 0, ErrMissingRecipient
	}
	if body == "" {
		return nil, 0, ErrMissingBody
	}

	receipts := make([]Receipt, 0, len(recipients))
	sent := 0
	for _, to := range recipients {
		r, err := s.Send(ctx, to, body)
		if err != nil {
			r = Receipt{To: to, Error: err.Error(), SentAt: time.Now().UTC()}
		}
		if r.Success {
			sent++
		}
		receipts = append(receipts, r)
	}
	return receipts, sent, nil
}

// LogSender is an SMSSender that only logs, for development environments.
type LogSender struct {
	Logger zerolog.Logger
}

func (l LogSender) SendSMS(_ context.Context, to, body string) error {
	l.Logger.Info().Str("to", to).Int("body_len", len(body)).Msg("log sender: sms")
	return nil
}

// TriageSummary renders the SMS body for a completed triage session.
func TriageSummary(severity, advice, nearestHospital string) string {
	msg := fmt.Sprintf("Swasthya Saathi triage result: %s. %s", severity, advice)
	if nearestHospital != "" {
		msg += " Nearest hospital: " + nearestHospital
	}
	return msg
}
