package bridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkforge/richbridge/internal/executor"
	"github.com/inkforge/richbridge/internal/notify"
)

func TestDrainDispatchOrder(t *testing.T) {
	eval := &scriptedEvaluator{results: []interface{}{
		`["ready","input","focus","blur","selection","action/insertTable","mystery"]`,
	}}
	exec := executor.New(eval, nil)

	var got []notify.Notification
	d := NewDrainer(exec, func(_ context.Context, n notify.Notification) {
		got = append(got, n)
	}, nil)

	d.Drain(context.Background())

	require.Len(t, got, 7)
	wantKinds := []notify.Kind{
		notify.KindReady, notify.KindInput, notify.KindFocus,
		notify.KindBlur, notify.KindSelection, notify.KindAction,
		notify.KindUnknown,
	}
	for i, k := range wantKinds {
		assert.Equal(t, k, got[i].Kind, "position %d", i)
	}
	assert.Equal(t, "insertTable", got[5].Action)
}

func TestDrainBatchesNeverInterleave(t *testing.T) {
	eval := &scriptedEvaluator{results: []interface{}{
		`["input","focus"]`,
		`["blur","selection"]`,
	}}
	exec := executor.New(eval, nil)

	var order []string
	var d *Drainer
	d = NewDrainer(exec, func(ctx context.Context, n notify.Notification) {
		order = append(order, n.Raw)
		// Simulate the document signalling again mid-batch: the
		// nested drain must run only after this batch completes.
		if n.Raw == "input" {
			d.Drain(ctx)
		}
	}, nil)

	d.Drain(context.Background())

	assert.Equal(t, []string{"input", "focus", "blur", "selection"}, order)
}

func TestDrainMalformedPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload interface{}
	}{
		{"plain string", "not an array"},
		{"object", `{"a":1}`},
		{"mixed element types", `["ok", 42]`},
		{"number", int64(7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			eval := &scriptedEvaluator{results: []interface{}{tt.payload}}
			exec := executor.New(eval, nil)

			dispatched := 0
			d := NewDrainer(exec, func(_ context.Context, _ notify.Notification) {
				dispatched++
			}, nil)
			d.Drain(context.Background())

			assert.Zero(t, dispatched, "malformed payload must dispatch nothing")
		})
	}
}

func TestDrainFailedFetchDispatchesNothing(t *testing.T) {
	// Evaluation failure surfaces as "" from the executor; the drain
	// treats it as an empty queue, not a protocol violation.
	eval := &scriptedEvaluator{results: []interface{}{nil}}
	exec := executor.New(eval, nil)

	dispatched := 0
	d := NewDrainer(exec, func(_ context.Context, _ notify.Notification) {
		dispatched++
	}, nil)
	d.Drain(context.Background())

	assert.Zero(t, dispatched)
}

func TestInterceptorDecisionTable(t *testing.T) {
	newInterceptor := func(onLink LinkFunc) *Interceptor {
		exec := executor.New(&scriptedEvaluator{}, nil)
		drainer := NewDrainer(exec, func(_ context.Context, _ notify.Notification) {}, nil)
		return NewInterceptor(drainer, onLink)
	}

	t.Run("callback scheme cancels and drains", func(t *testing.T) {
		eval := &scriptedEvaluator{results: []interface{}{`["focus"]`}}
		exec := executor.New(eval, nil)
		dispatched := 0
		drainer := NewDrainer(exec, func(_ context.Context, _ notify.Notification) {
			dispatched++
		}, nil)
		i := NewInterceptor(drainer, nil)

		got := i.Decide(context.Background(), CallbackURL, NavigationOther)
		assert.Equal(t, Cancel, got)
		assert.Equal(t, 1, dispatched, "drain must run on callback navigation")
	})

	t.Run("link activation defaults to cancel", func(t *testing.T) {
		i := newInterceptor(nil)
		got := i.Decide(context.Background(), "https://example.test", NavigationLinkActivated)
		assert.Equal(t, Cancel, got)
	})

	t.Run("link activation host declines", func(t *testing.T) {
		i := newInterceptor(func(string) bool { return false })
		got := i.Decide(context.Background(), "https://example.test", NavigationLinkActivated)
		assert.Equal(t, Cancel, got)
	})

	t.Run("link activation host accepts", func(t *testing.T) {
		var asked string
		i := newInterceptor(func(u string) bool {
			asked = u
			return true
		})
		got := i.Decide(context.Background(), "https://example.test/page", NavigationLinkActivated)
		assert.Equal(t, Allow, got)
		assert.Equal(t, "https://example.test/page", asked)
	})

	t.Run("other navigations allowed", func(t *testing.T) {
		i := newInterceptor(nil)
		got := i.Decide(context.Background(), "about:blank", NavigationOther)
		assert.Equal(t, Allow, got)
	})
}

func TestIsCallback(t *testing.T) {
	assert.True(t, IsCallback("bridge-callback://queue"))
	assert.True(t, IsCallback("bridge-callback://anything/else"))
	assert.False(t, IsCallback("https://example.test"))
	assert.False(t, IsCallback("bridge-callback:queue"))
}

// scriptedEvaluator returns canned results in sequence.
type scriptedEvaluator struct {
	results []interface{}
	calls   int
}

func (s *scriptedEvaluator) Evaluate(_ context.Context, _ string) (interface{}, error) {
	if s.calls >= len(s.results) {
		return nil, nil
	}
	r := s.results[s.calls]
	s.calls++
	return r, nil
}
