package executor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEvaluator returns a canned result or error for every script.
type fakeEvaluator struct {
	result  interface{}
	err     error
	scripts []string
}

func (f *fakeEvaluator) Evaluate(_ context.Context, script string) (interface{}, error) {
	f.scripts = append(f.scripts, script)
	return f.result, f.err
}

func TestExecuteTranslation(t *testing.T) {
	tests := []struct {
		name string
		raw  interface{}
		want interface{}
	}{
		{"absent result", nil, ""},
		{"plain string", "hello", "hello"},
		{"number passes through", int64(42), int64(42)},
		{"bool passes through", true, true},
		{"json array decodes", `["a","b"]`, []interface{}{"a", "b"}},
		{"json object decodes", `{"start":1,"end":3}`, map[string]interface{}{"start": float64(1), "end": float64(3)}},
		{"json with whitespace", `  [1, 2]  `, []interface{}{float64(1), float64(2)}},
		{"malformed json falls back", `[not json`, `[not json`},
		{"brace-like prose falls back", `{oops`, `{oops`},
		{"true string stays string", "true", "true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := New(&fakeEvaluator{result: tt.raw}, nil)

			var got interface{}
			called := 0
			exec.Execute(context.Background(), "getSomething();", func(v interface{}) {
				got = v
				called++
			})

			require.Equal(t, 1, called, "handler must fire exactly once")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExecuteFailureYieldsEmptyString(t *testing.T) {
	exec := New(&fakeEvaluator{err: errors.New("document not loaded")}, nil)

	var got interface{} = "sentinel"
	called := 0
	exec.Execute(context.Background(), "getHtml();", func(v interface{}) {
		got = v
		called++
	})

	require.Equal(t, 1, called, "handler must fire even on failure")
	assert.Equal(t, "", got)
}

func TestExecuteNilHandler(t *testing.T) {
	fake := &fakeEvaluator{result: "ignored"}
	exec := New(fake, nil)

	// Must not panic with no handler.
	exec.Execute(context.Background(), "setBold();", nil)
	assert.Equal(t, []string{"setBold();"}, fake.scripts)
}

func TestPendingResolvesAtMostOnce(t *testing.T) {
	calls := 0
	p := NewPending(func(v interface{}) {
		calls++
	})

	p.Resolve("first")
	p.Resolve("second")
	p.Resolve("third")

	assert.Equal(t, 1, calls)
	assert.NotEmpty(t, p.ID())
}

func TestPendingNeverResolvedNeverFires(t *testing.T) {
	called := false
	_ = NewPending(func(v interface{}) { called = true })
	assert.False(t, called)
}
