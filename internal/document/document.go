package document

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/dop251/goja"
	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/bridge"
	"github.com/inkforge/richbridge/internal/logging"
)

// ErrNotLoaded is returned by Evaluate before a successful Load.
var ErrNotLoaded = errors.New("document not loaded")

// Config defines document runtime configuration.
type Config struct {
	EnableConsole bool // route console.log/warn/error into the logger
	Logger        *logging.Logger
}

// Document is an in-process embedded document: a goja VM running the
// editor shim. It implements the bridge's Evaluator and the editor's
// DocumentLoader.
type Document struct {
	mu sync.Mutex
	vm *goja.Runtime

	loaded        bool
	signalPending bool
	onNavigate    func(url string)

	cfg Config
	log *logging.Logger
}

// New creates an unloaded document. Call Load before evaluating.
func New(cfg Config) *Document {
	log := cfg.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Document{cfg: cfg, log: log.Named("document")}
}

// OnNavigate registers the handler for the document's navigation
// attempts. The bridge's interceptor entry point goes here.
func (d *Document) OnNavigate(fn func(url string)) {
	d.mu.Lock()
	d.onNavigate = fn
	d.mu.Unlock()
}

// Load renders the template with the given header and footer, builds a
// fresh VM around the editor shim, and marks the document loaded. The
// shim queues its ready notification during load, so the callback
// navigation fires before Load returns.
func (d *Document) Load(ctx context.Context, header, footer string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	rendered := Template{Header: header, Footer: footer}.Render()

	d.mu.Lock()
	vm := goja.New()
	d.setupGlobals(vm)

	if _, err := vm.RunString(editorShim); err != nil {
		d.mu.Unlock()
		return fmt.Errorf("load editor shim: %w", err)
	}
	vm.Set("__template", rendered)

	d.vm = vm
	d.loaded = true

	if _, err := vm.RunString("__init();"); err != nil {
		d.loaded = false
		d.vm = nil
		d.mu.Unlock()
		return fmt.Errorf("init editor shim: %w", err)
	}
	d.mu.Unlock()

	d.flushSignal()
	return nil
}

// Evaluate runs script in the document and returns its exported result.
// Queue signals raised by the script are delivered after the evaluation
// completes, outside the VM lock.
func (d *Document) Evaluate(ctx context.Context, script string) (interface{}, error) {
	d.mu.Lock()
	if !d.loaded || d.vm == nil {
		d.mu.Unlock()
		return nil, ErrNotLoaded
	}
	if err := ctx.Err(); err != nil {
		d.mu.Unlock()
		return nil, err
	}

	val, err := d.vm.RunString(script)
	var out interface{}
	if err == nil {
		out = export(val)
	}
	d.mu.Unlock()

	d.flushSignal()

	if err != nil {
		return nil, fmt.Errorf("script evaluation: %w", err)
	}
	return out, nil
}

// Template returns the rendered template of the current load, or the
// empty string before the first load.
func (d *Document) Template() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.vm == nil {
		return ""
	}
	v := d.vm.Get("__template")
	if v == nil {
		return ""
	}
	s, _ := v.Export().(string)
	return s
}

// Close releases the VM. A closed document reports ErrNotLoaded until
// loaded again.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.vm = nil
	d.loaded = false
	return nil
}

// setupGlobals strips Node-style globals, disables timers, and injects
// the host hooks the shim depends on. Must run with the lock held.
func (d *Document) setupGlobals(vm *goja.Runtime) {
	vm.Set("require", goja.Undefined())
	vm.Set("process", goja.Undefined())
	vm.Set("module", goja.Undefined())
	vm.Set("exports", goja.Undefined())

	noop := func(call goja.FunctionCall) goja.Value { return goja.Undefined() }
	vm.Set("setTimeout", noop)
	vm.Set("setInterval", noop)

	// Signal hook: runs inside RunString, so the lock is already held.
	vm.Set("__signalNative", func(call goja.FunctionCall) goja.Value {
		d.signalPending = true
		return goja.Undefined()
	})

	vm.Set("__extractText", func(html string) string {
		return ExtractText(html)
	})

	if d.cfg.EnableConsole {
		console := vm.NewObject()
		console.Set("log", d.makeConsoleFunc("log"))
		console.Set("warn", d.makeConsoleFunc("warn"))
		console.Set("error", d.makeConsoleFunc("error"))
		vm.Set("console", console)
	}
}

func (d *Document) makeConsoleFunc(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		msg := strings.Join(parts, " ")
		switch level {
		case "error":
			d.log.Error("console", zap.String("message", msg))
		case "warn":
			d.log.Warn("console", zap.String("message", msg))
		default:
			d.log.Debug("console", zap.String("message", msg))
		}
		return goja.Undefined()
	}
}

// flushSignal delivers any pending queue signal to the navigation
// handler. Runs without the lock because the handler re-enters Evaluate
// through the queue drain.
func (d *Document) flushSignal() {
	for {
		d.mu.Lock()
		pending := d.signalPending
		nav := d.onNavigate
		if nav != nil {
			d.signalPending = false
		}
		d.mu.Unlock()

		if !pending || nav == nil {
			return
		}
		nav(bridge.CallbackURL)
	}
}

// export converts a goja value to its Go representation. Undefined and
// null become nil, which the executor reports as the empty string.
func export(val goja.Value) interface{} {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil
	}
	return val.Export()
}

// ExtractText derives the plain-text content of an HTML fragment.
func ExtractText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(doc.Text())
}
