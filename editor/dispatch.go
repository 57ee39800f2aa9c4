package editor

import (
	"context"

	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/notify"
	"github.com/inkforge/richbridge/internal/script"
)

// dispatch interprets one drained notification. Called by the queue drain
// strictly in batch order.
func (e *Editor) dispatch(ctx context.Context, n notify.Notification) {
	switch n.Kind {
	case notify.KindReady:
		e.handleReady(ctx)
	case notify.KindInput:
		e.handleInput(ctx)
	case notify.KindFocus:
		if e.delegate.OnFocusGained != nil {
			e.delegate.OnFocusGained()
		}
	case notify.KindBlur:
		if e.delegate.OnFocusLost != nil {
			e.delegate.OnFocusLost()
		}
	case notify.KindAction:
		e.handleAction(ctx, n.Action)
	case notify.KindSelection:
		e.handleSelection(ctx)
	default:
		// Forward compatibility: unknown tokens are not an error.
		e.log.Debug("ignoring unknown notification", zap.String("raw", n.Raw))
	}
}

// handleReady performs the one-time ready transition: apply buffered
// state, mark ready, notify the host. Repeats are a no-op.
func (e *Editor) handleReady(ctx context.Context) {
	if e.state.ready() {
		e.log.Debug("duplicate ready notification ignored")
		return
	}
	if e.state.phase < PhaseLoaded {
		e.state.phase = PhaseLoaded
	}

	if e.state.pendingHTML != nil {
		e.run(ctx, script.Call("setHtml", *e.state.pendingHTML))
		e.state.contentHTML = *e.state.pendingHTML
		e.state.pendingHTML = nil
	}
	if e.state.pendingEditable != nil {
		e.state.editingEnabled = *e.state.pendingEditable
		e.run(ctx, script.Call("setEditable", e.state.editingEnabled))
		e.state.pendingEditable = nil
	}
	if e.state.pendingPlaceholder != nil {
		e.state.placeholderText = *e.state.pendingPlaceholder
		e.run(ctx, script.Call("setPlaceholderText", e.state.placeholderText))
		e.state.pendingPlaceholder = nil
	}

	e.state.phase = PhaseReady
	if e.delegate.OnLoad != nil {
		e.delegate.OnLoad()
	}
}

// handleInput re-fetches content and height after the user edited the
// document. Suppressed entirely before ready so initial load churn never
// reaches the host.
func (e *Editor) handleInput(ctx context.Context) {
	if !e.state.ready() {
		return
	}
	e.refreshContent(ctx, true)
	e.refreshHeight(ctx)
}

// handleAction re-fetches content so the host sees the post-action state,
// then reports the custom action by name.
func (e *Editor) handleAction(ctx context.Context, name string) {
	e.refreshContent(ctx, false)
	if e.delegate.OnCustomAction != nil {
		e.delegate.OnCustomAction(name)
	}
}

// handleSelection performs the two sequential sub-fetches (range, then
// active attributes) and reports both together. A malformed payload
// aborts with a diagnostic and no delegate call.
func (e *Editor) handleSelection(ctx context.Context) {
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
			if e.delegate.OnSelectionChange != nil {
				e.delegate.OnSelectionChange(r, attrs)
			}
		})
	})
}

// refreshContent fetches the document body and updates the cache. When
// notifyChange is set and the content actually changed, the host is told.
func (e *Editor) refreshContent(ctx context.Context, notifyChange bool) {
	e.exec.Execute(ctx, script.Call("getHtml"), func(v interface{}) {
		html, ok := v.(string)
		if !ok {
			return
		}
		changed := html != e.state.contentHTML
		e.state.contentHTML = html
		if changed && notifyChange && e.state.ready() && e.delegate.OnContentChange != nil {
			e.delegate.OnContentChange(html)
		}
	})
}

// refreshHeight fetches the rendered editor height.
func (e *Editor) refreshHeight(ctx context.Context) {
	e.exec.Execute(ctx, script.Call("getEditorHeight"), func(v interface{}) {
		h, ok := toInt(v)
		if !ok {
			return
		}
		if h == e.state.editorHeight {
			return
		}
		e.state.editorHeight = h
		if e.state.ready() && e.delegate.OnHeightChange != nil {
			e.delegate.OnHeightChange(h)
		}
	})
}

func decodeRange(v interface{}) (Range, bool) {
	items, ok := v.([]interface{})
	if !ok || len(items) != 2 {
		return Range{}, false
	}
	start, ok := toInt(items[0])
	if !ok {
		return Range{}, false
	}
	end, ok := toInt(items[1])
	if !ok {
		return Range{}, false
	}
	return Range{Start: start, End: end}, true
}

func decodeAttributes(v interface{}) ([]string, bool) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, false
	}
	attrs := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		attrs[i] = s
	}
	return attrs, true
}

func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int64:
		return int(n), true
	case int:
		return n, true
	default:
		return 0, false
	}
}
