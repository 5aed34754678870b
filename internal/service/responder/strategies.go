package responder

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/analysis/risk"
	"github.com/soulconnect/backend/internal/storage"
)

// crisisStrategy answers high-tier messages with the fixed crisis script and
// mirrors a crisis-log row. The write is best-effort; the reply goes out
// regardless.
type crisisStrategy struct {
	sink storage.Sink
}

func (s *crisisStrategy) respond(ctx context.Context, in Input) (Result, bool) {
	if in.RiskLevel != risk.High {
		return Result{}, false
	}

	s.sink.SaveCrisisLog(ctx, storage.CrisisRow{
		ID:             uuid.NewString(),
		UserID:         in.SessionID,
		TriggerMessage: in.Text,
		SeverityLevel:  3,
		ActionTaken:    "Crisis alert shown with helplines",
		Timestamp:      time.Now().UTC(),
	})
	return Result{Text: crisisMessage}, true
}

// concernStrategy answers moderate-tier messages with the helpline script.
type concernStrategy struct{}

func (s *concernStrategy) respond(_ context.Context, in Input) (Result, bool) {
	if in.RiskLevel != risk.Moderate {
		return Result{}, false
	}
	return Result{Text: concernMessage}, true
}

// cbtStrategy offers the scripted technique for the detected emotion unless
// the same technique already appeared in the last three turns.
type cbtStrategy struct{}

func (s *cbtStrategy) respond(_ context.Context, in Input) (Result, bool) {
	technique, ok := cbtTechniques[in.Emotion]
	if !ok {
		return Result{}, false
	}

	window := in.History
	if len(window) > 3 {
		window = window[len(window)-3:]
	}
	for _, turn := range window {
		if turn.Technique == technique.name {
			// Repeating the same exercise back-to-back reads robotic.
			return Result{}, false
		}
	}

	text := fmt.Sprintf("**CBT Technique: %s**\n\n%s\n\n*Exercise:* %s",
		technique.name, technique.response, technique.exercise)
	return Result{Text: text, Technique: technique.name}, true
}

// oracleStrategy consults the generative model with the recent conversation.
// Errors, empty output, and the oracle's own canned fallback all defer.
type oracleStrategy struct {
	oracle Oracle
	logger *zap.Logger
}

func (s *oracleStrategy) respond(ctx context.Context, in Input) (Result, bool) {
	if s.oracle == nil {
		return Result{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, oracleTimeout)
	defer cancel()

	text, err := s.oracle.Reply(ctx, in.History, in.Text)
	if err != nil {
		s.logger.Warn("generative reply unavailable", zap.Error(err))
		return Result{}, false
	}
	if text == "" || strings.Contains(text, oracleFallbackMarker) {
		return Result{}, false
	}
	return Result{Text: text}, true
}

// templateStrategy picks a canned reply for the first detected intent that
// has a template bank.
type templateStrategy struct{}

func (s *templateStrategy) respond(_ context.Context, in Input) (Result, bool) {
	for _, intent := range in.Intents {
		bank, ok := responseTemplates[intent]
		if !ok {
			continue
		}
		return Result{Text: bank[rand.IntN(len(bank))]}, true
	}
	return Result{}, false
}

// fallbackStrategy terminates the chain with a fixed supportive sentence.
type fallbackStrategy struct{}

func (s *fallbackStrategy) respond(context.Context, Input) (Result, bool) {
	return Result{Text: fallbackMessage}, true
}
