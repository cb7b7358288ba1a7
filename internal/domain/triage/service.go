package triage

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swasthya/triage/internal/domain/hospital"
	"github.com/swasthya/triage/internal/platform/geo"
	"github.com/swasthya/triage/internal/platform/notification"
)

// ErrEmptySymptoms is a caller-input validation error, distinct from any
// classifier failure. It is the only error Triage surfaces.
var ErrEmptySymptoms = errors.New("symptoms are required")

// hospitalResponseLimit caps the hospital list on the triage response. The
// ranker itself caps at 10; the response surface is tighter.
const hospitalResponseLimit = 5

// Outcome is the combined result of one triage request.
type Outcome struct {
	SessionID string
	Result    Result
	Hospitals []hospital.RankedHospital
}

// Service orchestrates classification, hospital ranking, and session
// persistence. Classifier failures are absorbed into the fallback Result and
// never surface as errors.
type Service struct {
	classifier    *Classifier
	ranker        *hospital.Ranker
	sessions      SessionRepository
	notifier      *notification.Service
	defaultOrigin geo.Coordinate
	logger        zerolog.Logger
}

// NewService wires the triage flow. notifier may be nil when SMS summaries
// are not wanted.
func NewService(classifier *Classifier, ranker *hospital.Ranker, sessions SessionRepository, notifier *notification.Service, defaultOrigin geo.Coordinate, logger zerolog.Logger) *Service {
	return &Service{
		classifier:    classifier,
		ranker:        ranker,
		sessions:      sessions,
		notifier:      notifier,
		defaultOrigin: defaultOrigin,
		logger:        logger,
	}
}

// Triage classifies the symptoms, attaches nearby hospitals for Emergency and
// OPD Visit severities, and records the session. Empty symptom text is
// rejected before any classifier call.
func (s *Service) Triage(ctx context.Context, symptoms, language string, user UserData) (out *Outcome, err error) {
	if strings.TrimSpace(symptoms) == "" {
		return nil, ErrEmptySymptoms
	}

	// A malformed catalog record or similar internal fault must degrade to
	// the safe analysis-failed response, never reach the caller as a crash.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error().Interface("panic", r).Msg("triage failed unexpectedly")
			out = &Outcome{Result: Result{
				Severity:  SeverityUnknown,
				Advice:    "Please consult a doctor directly",
				Reasoning: "Analysis failed",
			}}
			err = nil
		}
	}()

	result := s.classifier.Classify(ctx, symptoms, language)

	var hospitals []hospital.RankedHospital
	if result.Severity == SeverityEmergency || result.Severity == SeverityOPDVisit {
		origin := s.defaultOrigin
		if user.Location != nil && user.Location.Valid() {
			origin = *user.Location
		}
		hospitals = s.ranker.Rank(origin, user.AyushmanCard, hospital.DefaultMaxDistanceKm, hospital.DefaultLimit)
		if len(hospitals) > hospitalResponseLimit {
			hospitals = hospitals[:hospitalResponseLimit]
		}
	}

	session := &Session{
		UserData: user,
		Symptoms: symptoms,
		Result:   result,
	}
	sessionID, err := s.sessions.Save(ctx, session)
	if err != nil {
		// History is best effort; the triage result still goes back to the
		// caller.
		s.logger.Error().Err(err).Msg("failed to save triage session")
	}

	// SMS summary is best effort too.
	if s.notifier != nil && user.Phone != "" {
		nearest := ""
		if len(hospitals) > 0 {
			nearest = hospitals[0].Name
		}
		body := notification.TriageSummary(string(result.Severity), result.Advice, nearest)
		if _, err := s.notifier.Send(ctx, user.Phone, body); err != nil {
			s.logger.Warn().Err(err).Msg("failed to send triage summary sms")
		}
	}

	return &Outcome{
		SessionID: sessionID,
		Result:    result,
		Hospitals: hospitals,
	}, nil
}

// History lists recorded sessions, optionally filtered by phone number.
func (s *Service) History(ctx context.Context, phone string, limit, offset int) ([]*Session, int, error) {
	if phone != "" {
		return s.sessions.ListByPhone(ctx, phone, limit, offset)
	}
	return s.sessions.List(ctx, limit, offset)
}
