package editor

import (
	"context"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/bridge"
	"github.com/inkforge/richbridge/internal/executor"
	"github.com/inkforge/richbridge/internal/logging"
	"github.com/inkforge/richbridge/internal/script"
)

// Evaluator is the seam to the embedded document's script environment.
// Hosts back it with their renderer; the in-process goja document and the
// remote websocket client both satisfy it.
type Evaluator interface {
	Evaluate(ctx context.Context, script string) (interface{}, error)
}

// NavigationType classifies what caused a navigation request.
type NavigationType int

const (
	// NavigationOther covers initial loads, redirects, and everything
	// that is not a direct user link activation.
	NavigationOther NavigationType = iota
	// NavigationLinkActivated is a direct user activation of a
	// hyperlink inside the document.
	NavigationLinkActivated
)

// Policy is the verdict on one navigation request.
type Policy int

const (
	// Allow lets the navigation proceed.
	Allow Policy = iota
	// Cancel suppresses the navigation.
	Cancel
)

// DocumentLoader is implemented by document backends that can load the
// substituted editor template themselves (the in-process runtime).
// Backends without it (a remote renderer) are loaded by the host, which
// then calls DidFinishLoad.
type DocumentLoader interface {
	Load(ctx context.Context, header, footer string) error
}

// Config configures an Editor.
type Config struct {
	// Header and Footer substitute the template placeholders on load.
	Header string
	Footer string

	// Delegate receives editor events.
	Delegate Delegate

	// Sanitizer, when set, is applied to HTML handed to SetHTML and
	// InsertHTML. Use bluemonday.UGCPolicy() for untrusted content.
	Sanitizer *bluemonday.Policy

	Logger *zap.Logger
}

// Editor is the public facade over the native/web bridge. One Editor maps
// to one embedded document instance. Not safe for concurrent use: all
// methods and callbacks must run on one goroutine.
type Editor struct {
	eval        Evaluator
	exec        *executor.Executor
	interceptor *bridge.Interceptor
	delegate    Delegate
	sanitizer   *bluemonday.Policy
	log         *logging.Logger

	header string
	footer string

	state state
}

// New creates an editor over the given document backend.
func New(eval Evaluator, cfg Config) *Editor {
	log := logging.Wrap(cfg.Logger).Named("editor")

	e := &Editor{
		eval:      eval,
		exec:      executor.New(eval, log),
		delegate:  cfg.Delegate,
		sanitizer: cfg.Sanitizer,
		log:       log,
		header:    cfg.Header,
		footer:    cfg.Footer,
		state:     newState(),
	}

	drainer := bridge.NewDrainer(e.exec, e.dispatch, log)
	e.interceptor = bridge.NewInterceptor(drainer, cfg.Delegate.OnLinkActivated)
	return e
}

// Load loads the editor template into the document backend, substituting
// the configured header and footer. It resets the lifecycle and re-arms
// the ready transition.
func (e *Editor) Load(ctx context.Context) error {
	e.state.resetForLoad()

	loader, ok := e.eval.(DocumentLoader)
	if !ok {
		// Host-driven load; the host reports completion through
		// DidFinishLoad and the document signals ready itself.
		return nil
	}
	return loader.Load(ctx, e.header, e.footer)
}

// Reload replaces the template header and footer and loads the document
// again. Current content carries over as pending HTML and is re-applied
// on the new ready transition.
func (e *Editor) Reload(ctx context.Context, header, footer string) error {
	e.header = header
	e.footer = footer
	if e.state.pendingHTML == nil && e.state.contentHTML != "" {
		html := e.state.contentHTML
		e.state.pendingHTML = &html
	}
	return e.Load(ctx)
}

// DidFinishLoad marks the document as accepting script execution. Hosts
// integrating an external renderer call this from their load-finished
// hook; the in-process backend needs no explicit call because the ready
// notification implies it.
func (e *Editor) DidFinishLoad() {
	if e.state.phase < PhaseLoaded {
		e.state.phase = PhaseLoaded
	}
}

// HandleNavigation is the host integration point for the document's
// navigation requests. It must be called for every navigation attempt
// before it takes effect; the returned policy says whether to let it
// proceed.
func (e *Editor) HandleNavigation(ctx context.Context, url string, nav NavigationType) Policy {
	kind := bridge.NavigationOther
	if nav == NavigationLinkActivated {
		kind = bridge.NavigationLinkActivated
	}
	if e.interceptor.Decide(ctx, url, kind) == bridge.Cancel {
		return Cancel
	}
	return Allow
}

// SetHTML replaces the document content. Before the document has loaded
// the value is buffered and applied on the ready transition; afterwards
// it is submitted immediately.
func (e *Editor) SetHTML(ctx context.Context, html string) {
	if e.sanitizer != nil {
		html = e.sanitizer.Sanitize(html)
	}
	if !e.state.ready() {
		e.state.pendingHTML = &html
		return
	}
	e.run(ctx, script.Call("setHtml", html))
}

// InsertHTML inserts a fragment at the caret.
func (e *Editor) InsertHTML(ctx context.Context, html string) {
	if e.sanitizer != nil {
		html = e.sanitizer.Sanitize(html)
	}
	e.run(ctx, script.Call("insertHtml", html))
}

// SetEditable toggles content editability. Buffered until ready.
func (e *Editor) SetEditable(ctx context.Context, editable bool) {
	if !e.state.ready() {
		e.state.pendingEditable = &editable
		return
	}
	e.state.editingEnabled = editable
	e.run(ctx, script.Call("setEditable", editable))
}

// SetPlaceholder sets the placeholder text shown while the document is
// empty. Buffered until ready.
func (e *Editor) SetPlaceholder(ctx context.Context, text string) {
	if !e.state.ready() {
		e.state.pendingPlaceholder = &text
		return
	}
	e.state.placeholderText = text
	e.run(ctx, script.Call("setPlaceholderText", text))
}

// ContentHTML returns the last fetched document content. Authoritative
// only after a fetch triggered by an input or action notification.
func (e *Editor) ContentHTML() string {
	return e.state.contentHTML
}

// Height returns the last known rendered editor height.
func (e *Editor) Height() int {
	return e.state.editorHeight
}

// IsEditingEnabled reports the current editability flag.
func (e *Editor) IsEditingEnabled() bool {
	return e.state.editingEnabled
}

// Phase returns the current lifecycle phase.
func (e *Editor) Phase() Phase {
	return e.state.phase
}

// Ready reports whether the ready transition has been processed for the
// current load.
func (e *Editor) Ready() bool {
	return e.state.ready()
}

// run submits a fire-and-forget command. Degrades to a no-op while the
// document is not loaded.
func (e *Editor) run(ctx context.Context, cmd string) {
	if !e.state.loaded() {
		e.log.Debug("dropping command, document not loaded",
			zap.String("command", cmd))
		return
	}
	e.exec.Execute(ctx, cmd, nil)
}

// query submits a command with a result handler. While the document is
// not loaded the handler still fires, with the empty string.
func (e *Editor) query(ctx context.Context, cmd string, fn executor.ResultFunc) {
	if !e.state.loaded() {
		fn("")
		return
	}
	e.exec.Execute(ctx, cmd, fn)
}
