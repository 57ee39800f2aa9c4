package editor

import (
	"context"

	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/script"
)

// Queries fetch state from the document and resolve a handler exactly
// once. While the document is not loaded the handler fires with the zero
// value instead of erroring.

// HTML fetches the current document body.
func (e *Editor) HTML(ctx context.Context, fn func(html string)) {
	e.query(ctx, script.Call("getHtml"), func(v interface{}) {
		s, _ := v.(string)
		e.state.contentHTML = s
		fn(s)
	})
}

// Text fetches the document's plain-text content.
func (e *Editor) Text(ctx context.Context, fn func(text string)) {
	e.query(ctx, script.Call("getText"), func(v interface{}) {
		s, _ := v.(string)
		fn(s)
	})
}

// HasRangeSelection reports whether a non-collapsed selection exists.
func (e *Editor) HasRangeSelection(ctx context.Context, fn func(bool)) {
	e.query(ctx, script.Call("rangeSelectionExists"), func(v interface{}) {
		switch r := v.(type) {
		case bool:
			fn(r)
		case string:
			fn(r == "true")
		default:
			fn(false)
		}
	})
}

// SelectedHref fetches the hyperlink target under the caret, or the empty
// string when the caret is not inside a link.
func (e *Editor) SelectedHref(ctx context.Context, fn func(href string)) {
	e.query(ctx, script.Call("getSelectedHref"), func(v interface{}) {
		s, _ := v.(string)
		fn(s)
	})
}

// Selection fetches the selection range and the active format identifiers
// in two sequential round-trips, range first. A malformed payload aborts
// with a diagnostic and the handler is not invoked.
func (e *Editor) Selection(ctx context.Context, fn func(r Range, attributes []string)) {
	if !e.state.loaded() {
		fn(Range{}, nil)
		return
	}
	e.exec.Execute(ctx, script.Call("getSelectedRange"), func(v interface{}) {
		r, ok := decodeRange(v)
		if !ok {
			e.log.Warn("malformed selection range payload", zap.Any("payload", v))
			return
		}
		e.exec.Execute(ctx, script.Call("getActiveAttributes"), func(v2 interface{}) {
			attrs, ok := decodeAttributes(v2)
			if !ok {
				e.log.Warn("malformed attributes payload", zap.Any("payload", v2))
				return
			}
			fn(r, attrs)
		})
	})
}
