// Package responder selects the bot reply for a chat turn. Strategies are
// evaluated in a fixed priority order; each either produces a reply or
// defers to the next one, so the whole chain always yields something.
package responder

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/soulconnect/backend/internal/model/chat"
	"github.com/soulconnect/backend/internal/storage"
)

// oracleTimeout bounds the generative-text call; on expiry the chain simply
// moves to the template stage.
const oracleTimeout = 10 * time.Second

// Input carries everything the pipeline derived from the current message.
type Input struct {
	SessionID  string
	Text       string // corrected text
	RawText    string
	Intents    []string
	Emotion    string
	Confidence float64
	RiskLevel  string
	History    []chat.Turn // recent turns, current message not yet appended
}

// Result is the chosen reply plus the CBT technique name when that stage won.
type Result struct {
	Text      string
	Technique string
}

// Oracle is the best-effort generative-text dependency.
type Oracle interface {
	Reply(ctx context.Context, history []chat.Turn, userMessage string) (string, error)
}

type strategy interface {
	respond(ctx context.Context, in Input) (Result, bool)
}

// Responder walks the strategy chain in priority order.
type Responder struct {
	strategies []strategy
}

// New assembles the chain: crisis script, concern script, CBT technique,
// generative oracle, intent templates, fixed fallback. oracle may be nil.
func New(oracle Oracle, sink storage.Sink, logger *zap.Logger) *Responder {
	return &Responder{strategies: []strategy{
		&crisisStrategy{sink: sink},
		&concernStrategy{},
		&cbtStrategy{},
		&oracleStrategy{oracle: oracle, logger: logger},
		&templateStrategy{},
		&fallbackStrategy{},
	}}
}

// Respond returns the first strategy's reply. The final fallback never
// defers, so a reply is always produced.
func (r *Responder) Respond(ctx context.Context, in Input) Result {
	for _, s := range r.strategies {
		if result, ok := s.respond(ctx, in); ok {
			return result
		}
	}
	return Result{Text: fallbackMessage}
}
