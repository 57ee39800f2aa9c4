package executor

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/logging"
)

// Evaluator is the seam to the embedded document's script environment.
// Implementations include the in-process goja document and the remote
// websocket client.
type Evaluator interface {
	// Evaluate runs script in the document and returns its raw result.
	// A nil result means the script produced no value.
	Evaluate(ctx context.Context, script string) (interface{}, error)
}

// Executor submits scripts for evaluation and resolves each result
// exactly once through a Pending continuation.
type Executor struct {
	eval Evaluator
	log  *logging.Logger
}

// New creates an executor around eval. A nil logger falls back to no-op.
func New(eval Evaluator, log *logging.Logger) *Executor {
	if log == nil {
		log = logging.Nop()
	}
	return &Executor{eval: eval, log: log.Named("executor")}
}

// Execute evaluates script and resolves onResult with the translated
// value. On evaluation failure the handler still fires, with the empty
// string. onResult may be nil for fire-and-forget commands.
func (e *Executor) Execute(ctx context.Context, script string, onResult ResultFunc) {
	pending := NewPending(onResult)

	raw, err := e.eval.Evaluate(ctx, script)
	if err != nil {
		e.log.Debug("evaluation failed",
			zap.String("id", pending.ID()),
			zap.Error(err))
		pending.Resolve("")
		return
	}

	pending.Resolve(e.translate(raw))
}

// translate applies the result translation policy: absent values become
// the empty string, JSON-shaped strings are decoded, everything else
// passes through unchanged.
func (e *Executor) translate(raw interface{}) interface{} {
	if raw == nil {
		return ""
	}

	s, ok := raw.(string)
	if !ok {
		return raw
	}

	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return s
	}

	var decoded interface{}
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		e.log.Debug("json-shaped result did not decode, keeping raw string",
			zap.Error(err))
		return s
	}
	return decoded
}
