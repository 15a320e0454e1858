package inbox

import (
	"context"

	"github.com/charmbracelet/log"

	"smsledger/internal/logger"
	"smsledger/internal/models"
	"smsledger/internal/parser"
)

// Service requests SMS access and turns inbox messages into transaction
// candidates. It never returns errors: every failure degrades to fewer (or
// no) candidates and a log line.
type Service struct {
	source MessageSource
	gate   *Gate
}

// NewService creates a Service reading from source once gate allows it.
func NewService(source MessageSource, gate *Gate) *Service {
	if source == nil {
		source = NullSource{}
	}
	return &Service{source: source, gate: gate}
}

// RequestAccess shows the permission prompt and reports whether access was
// granted. Unsupported platforms get false without a prompt.
func (s *Service) RequestAccess(ctx context.Context) bool {
	log := logger.FromContext(ctx)

	if !s.source.Supported() || s.gate == nil {
		log.Debug("sms access not supported on this platform")
		return false
	}

	granted, err := s.gate.Request(ctx)
	if err != nil {
		log.Error("sms permission prompt failed", "err", err)
		return false
	}
	if !granted {
		log.Warn("sms permission denied")
	}
	return granted
}

// FetchCandidates reads messages dated at or after sinceMillis and returns
// those that parse as transactions, in inbox order.
func (s *Service) FetchCandidates(ctx context.Context, sinceMillis int64) []models.ParsedCandidate {
	log := logger.FromContext(ctx)

	if !s.source.Supported() || s.gate == nil {
		return []models.ParsedCandidate{}
	}
	if s.gate.State() != Authorized && !s.RequestAccess(ctx) {
		return []models.ParsedCandidate{}
	}

	records, err := s.source.Messages(ctx, sinceMillis)
	if err != nil {
		log.Error("failed to read sms inbox", "err", err)
		return []models.ParsedCandidate{}
	}

	candidates := make([]models.ParsedCandidate, 0, len(records))
	skipped := 0
	for i, rec := range records {
		msg, ok := normalize(log, i, rec, sinceMillis)
		if !ok {
			skipped++
			continue
		}
		if c, ok := parser.ParseMessage(msg); ok {
			candidates = append(candidates, *c)
		}
	}

	log.Info("sms inbox scanned", "messages", len(records), "candidates", len(candidates), "skipped", skipped)
	return candidates
}

// normalize turns a store record into a RawMessage, logging and dropping
// records that failed to decode, have no usable date, or are too old.
func normalize(l *log.Logger, index int, rec Record, sinceMillis int64) (models.RawMessage, bool) {
	if rec.Err != nil {
		l.Warn("skipping malformed sms", "index", index, "err", rec.Err)
		return models.RawMessage{}, false
	}

	ms, err := parseMillis(rec.Date)
	if err != nil {
		l.Warn("skipping sms with bad date", "index", index, "err", err)
		return models.RawMessage{}, false
	}
	if ms < sinceMillis {
		return models.RawMessage{}, false
	}

	return models.RawMessage{Body: rec.Body, TimestampMillis: ms}, true
}
