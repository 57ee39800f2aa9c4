// Package notify decodes the opaque notification strings drained from the
// embedded document's command queue into a closed set of typed variants.
package notify

import "strings"

// Kind identifies a notification variant.
type Kind int

const (
	KindUnknown Kind = iota
	KindReady
	KindInput
	KindFocus
	KindBlur
	KindAction
	KindSelection
)

const actionPrefix = "action/"

// Notification is one decoded queue entry. Action carries the custom
// action name for KindAction; Raw preserves the original string for
// diagnostics.
type Notification struct {
	Kind   Kind
	Action string
	Raw    string
}

// Parse decodes a raw queue entry by its leading token. Unrecognized
// tokens map to KindUnknown, which dispatchers ignore.
func Parse(raw string) Notification {
	n := Notification{Raw: raw}
	switch {
	case raw == "ready":
		n.Kind = KindReady
	case raw == "input":
		n.Kind = KindInput
	case raw == "focus":
		n.Kind = KindFocus
	case raw == "blur":
		n.Kind = KindBlur
	case raw == "selection":
		n.Kind = KindSelection
	case strings.HasPrefix(raw, actionPrefix):
		n.Kind = KindAction
		n.Action = raw[len(actionPrefix):]
	}
	return n
}

// String names the variant for logging.
func (k Kind) String() string {
	switch k {
	case KindReady:
		return "ready"
	case KindInput:
		return "input"
	case KindFocus:
		return "focus"
	case KindBlur:
		return "blur"
	case KindAction:
		return "action"
	case KindSelection:
		return "selection"
	default:
		return "unknown"
	}
}
