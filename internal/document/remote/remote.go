// Package remote connects the bridge to an out-of-process renderer over a
// websocket. Evaluations travel as id-correlated JSON frames; the
// renderer's navigation attempts arrive as unsolicited event frames and
// feed the same interceptor path as the in-process document.
package remote

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/inkforge/richbridge/internal/logging"
)

// ErrClosed is returned by Evaluate after the connection is gone.
var ErrClosed = errors.New("renderer connection closed")

// frame is the wire format in both directions. Outgoing frames carry an
// id and a script; incoming frames either answer an id with a result or
// carry an unsolicited event.
type frame struct {
	ID     string      `json:"id,omitempty"`
	Script string      `json:"script,omitempty"`
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
	Event  string      `json:"event,omitempty"`
	URL    string      `json:"url,omitempty"`
}

const eventNavigation = "navigation"

// Client is a document backend speaking to a remote renderer. It
// implements the bridge's Evaluator.
type Client struct {
	conn *websocket.Conn
	log  *logging.Logger

	writeMu sync.Mutex

	mu      sync.Mutex
	pending map[string]chan frame
	closed  bool
	done    chan struct{}

	onNavigate func(url string)
}

// Options configures a remote connection.
type Options struct {
	// OnNavigate receives the renderer's navigation attempts. The
	// bridge's interceptor entry point goes here.
	OnNavigate func(url string)
	Logger     *logging.Logger
}

// Dial connects to the renderer's bridge endpoint.
func Dial(ctx context.Context, url string, opts Options) (*Client, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial renderer: %w", err)
	}

	c := &Client{
		conn:       conn,
		log:        log.Named("remote"),
		pending:    make(map[string]chan frame),
		done:       make(chan struct{}),
		onNavigate: opts.OnNavigate,
	}
	go c.readLoop()
	return c, nil
}

// Evaluate submits script to the renderer and blocks until its result
// frame arrives. Connection loss resolves with ErrClosed, which the
// executor reports to callers as the empty result.
func (c *Client) Evaluate(ctx context.Context, script string) (interface{}, error) {
	id := uuid.NewString()
	ch := make(chan frame, 1)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.pending[id] = ch
	c.mu.Unlock()

	c.writeMu.Lock()
	err := c.conn.WriteJSON(frame{ID: id, Script: script})
	c.writeMu.Unlock()
	if err != nil {
		c.forget(id)
		return nil, fmt.Errorf("submit script: %w", err)
	}

	select {
	case f := <-ch:
		if f.Error != "" {
			return nil, fmt.Errorf("renderer evaluation: %s", f.Error)
		}
		return f.Result, nil
	case <-c.done:
		return nil, ErrClosed
	case <-ctx.Done():
		c.forget(id)
		return nil, ctx.Err()
	}
}

// Close tears down the connection. In-flight evaluations resolve with
// ErrClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.done)
	c.mu.Unlock()
	return c.conn.Close()
}

// readLoop receives frames and routes them: id-carrying frames resolve
// their pending evaluation, event frames report navigations.
func (c *Client) readLoop() {
	defer c.Close()
	for {
		var f frame
		if err := c.conn.ReadJSON(&f); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				c.log.Debug("read loop ended", zap.Error(err))
			}
			return
		}

		if f.ID != "" {
			c.mu.Lock()
			ch, ok := c.pending[f.ID]
			delete(c.pending, f.ID)
			c.mu.Unlock()
			if ok {
				ch <- f
			}
			continue
		}

		if f.Event == eventNavigation {
			if c.onNavigate != nil {
				c.onNavigate(f.URL)
			}
			continue
		}

		c.log.Debug("unrecognized frame", zap.String("event", f.Event))
	}
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}
