package executor

import (
	"sync"

	"github.com/google/uuid"
)

// ResultFunc receives the translated result of one evaluation.
type ResultFunc func(value interface{})

// Pending is a single-shot continuation for one in-flight evaluation.
// Resolve delivers the result at most once; later calls are dropped. A
// Pending that is never resolved simply never invokes its handler.
type Pending struct {
	id   string
	fn   ResultFunc
	once sync.Once
}

// NewPending creates a continuation around fn. A nil fn yields a
// continuation that resolves silently.
func NewPending(fn ResultFunc) *Pending {
	return &Pending{id: uuid.NewString(), fn: fn}
}

// ID returns the evaluation tag used in diagnostics.
func (p *Pending) ID() string {
	return p.id
}

// Resolve invokes the handler with value. Only the first call has any
// effect.
func (p *Pending) Resolve(value interface{}) {
	p.once.Do(func() {
		if p.fn != nil {
			p.fn(value)
		}
	})
}
