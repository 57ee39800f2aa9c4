package bridge

import (
	"context"

	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/executor"
	"github.com/inkforge/richbridge/internal/logging"
	"github.com/inkforge/richbridge/internal/notify"
)

// DispatchFunc consumes one decoded notification.
type DispatchFunc func(ctx context.Context, n notify.Notification)

// Drainer fetches the document's pending notification backlog and
// dispatches it in order.
type Drainer struct {
	exec     *executor.Executor
	dispatch DispatchFunc
	log      *logging.Logger

	// Re-entrancy guard: a dispatch handler may trigger another
	// bridge-callback signal. The nested drain is deferred until the
	// current batch finishes so batches never interleave.
	draining bool
	redrain  bool
}

// NewDrainer creates a drainer that fetches via exec and hands each
// notification to dispatch.
func NewDrainer(exec *executor.Executor, dispatch DispatchFunc, log *logging.Logger) *Drainer {
	if log == nil {
		log = logging.Nop()
	}
	return &Drainer{exec: exec, dispatch: dispatch, log: log.Named("drain")}
}

// Drain fetches the entire pending queue and dispatches it sequentially.
// A malformed payload abandons the batch with a diagnostic; no partial
// processing occurs.
func (d *Drainer) Drain(ctx context.Context) {
	if d.draining {
		d.redrain = true
		return
	}
	d.draining = true
	defer func() {
		d.draining = false
		if d.redrain {
			d.redrain = false
			d.Drain(ctx)
		}
	}()

	d.exec.Execute(ctx, "getCommandQueue();", func(v interface{}) {
		batch, ok := decodeBatch(v)
		if !ok {
			d.log.Warn("malformed command queue payload",
				zap.Any("payload", v))
			return
		}
		for _, raw := range batch {
			d.dispatch(ctx, notify.Parse(raw))
		}
	})
}

// decodeBatch validates that the fetched value is an ordered sequence of
// strings. An empty string means the fetch failed or the queue was empty.
func decodeBatch(v interface{}) ([]string, bool) {
	if s, ok := v.(string); ok && s == "" {
		return nil, true
	}

	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}

	batch := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		batch[i] = s
	}
	return batch, true
}
