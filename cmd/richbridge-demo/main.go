// Command richbridge-demo drives one scripted editing session over the
// bridge, using either the in-process document or a remote renderer.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/inkforge/richbridge/editor"
	"github.com/inkforge/richbridge/internal/config"
	"github.com/inkforge/richbridge/internal/document"
	"github.com/inkforge/richbridge/internal/document/remote"
	"github.com/inkforge/richbridge/internal/logging"
)

func main() {
	rendererURL := flag.String("renderer", "", "websocket URL of a remote renderer (default: in-process document)")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *rendererURL != "" {
		cfg.Remote.URL = *rendererURL
	}

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		OutputPaths: []string{"stderr"},
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("session failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	ctx := context.Background()

	delegate := editor.Delegate{
		OnLoad: func() {
			log.Info("editor ready")
		},
		OnContentChange: func(html string) {
			log.Info("content changed", zap.String("html", html))
		},
		OnHeightChange: func(h int) {
			log.Info("height changed", zap.Int("height", h))
		},
		OnSelectionChange: func(r editor.Range, attrs []string) {
			log.Info("selection changed",
				zap.Int("start", r.Start),
				zap.Int("end", r.End),
				zap.Strings("attributes", attrs))
		},
		OnLinkActivated: func(url string) bool {
			log.Info("link activation declined", zap.String("url", url))
			return false
		},
		OnCustomAction: func(name string) {
			log.Info("custom action", zap.String("name", name))
		},
	}

	var ed *editor.Editor
	var eval editor.Evaluator

	if cfg.Remote.URL != "" {
		client, err := remote.Dial(ctx, cfg.Remote.URL, remote.Options{
			OnNavigate: func(url string) {
				ed.HandleNavigation(ctx, url, editor.NavigationOther)
			},
			Logger: log,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		eval = client
	} else {
		doc := document.New(document.Config{EnableConsole: true, Logger: log})
		doc.OnNavigate(func(url string) {
			ed.HandleNavigation(ctx, url, editor.NavigationOther)
		})
		defer doc.Close()
		eval = doc
	}

	ed = editor.New(eval, editor.Config{
		Header:   cfg.Template.Header,
		Footer:   cfg.Template.Footer,
		Delegate: delegate,
		Logger:   log.Logger,
	})

	// Content set before load is buffered and applied on ready.
	ed.SetHTML(ctx, "<p>Hello, bridge!</p>")
	ed.SetPlaceholder(ctx, "Start typing…")

	if err := ed.Load(ctx); err != nil {
		return err
	}
	if cfg.Remote.URL != "" {
		// The remote renderer loads the template itself; mark script
		// execution safe once the dial succeeded.
		ed.DidFinishLoad()
	}

	ed.Focus(ctx)
	ed.Bold(ctx)
	ed.InsertLink(ctx, "https://example.test", "an example")
	ed.AlignCenter(ctx)

	ed.HTML(ctx, func(html string) {
		log.Info("final html", zap.String("html", html))
	})
	ed.Text(ctx, func(text string) {
		log.Info("final text", zap.String("text", text))
	})
	ed.HasRangeSelection(ctx, func(exists bool) {
		log.Info("range selection", zap.Bool("exists", exists))
	})

	return nil
}
