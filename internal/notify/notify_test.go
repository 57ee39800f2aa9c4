package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		raw        string
		wantKind   Kind
		wantAction string
	}{
		{"ready", KindReady, ""},
		{"input", KindInput, ""},
		{"focus", KindFocus, ""},
		{"blur", KindBlur, ""},
		{"selection", KindSelection, ""},
		{"action/insertTable", KindAction, "insertTable"},
		{"action/", KindAction, ""},
		{"action/a/b", KindAction, "a/b"},
		{"readyish", KindUnknown, ""},
		{"READY", KindUnknown, ""},
		{"", KindUnknown, ""},
		{"height/123", KindUnknown, ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n := Parse(tt.raw)
			assert.Equal(t, tt.wantKind, n.Kind)
			assert.Equal(t, tt.wantAction, n.Action)
			assert.Equal(t, tt.raw, n.Raw)
		})
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "ready", KindReady.String())
	assert.Equal(t, "action", KindAction.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
