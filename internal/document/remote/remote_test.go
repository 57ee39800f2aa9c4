package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var upgrader = websocket.Upgrader{}

// newRenderer starts a fake renderer that answers every script with
// handle(script) and can push navigation events.
func newRenderer(t *testing.T, handle func(script string) frame) (*httptest.Server, string) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var f frame
			if err := conn.ReadJSON(&f); err != nil {
				return
			}
			resp := handle(f.Script)
			resp.ID = f.ID
			if err := conn.WriteJSON(resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestEvaluateRoundTrip(t *testing.T) {
	_, url := newRenderer(t, func(script string) frame {
		return frame{Result: "echo:" + script}
	})

	c, err := Dial(context.Background(), url, Options{})
	require.NoError(t, err)
	defer c.Close()

	v, err := c.Evaluate(context.Background(), "getHtml();")
	require.NoError(t, err)
	assert.Equal(t, "echo:getHtml();", v)
}

func TestEvaluateRendererError(t *testing.T) {
	_, url := newRenderer(t, func(string) frame {
		return frame{Error: "script threw"}
	})

	c, err := Dial(context.Background(), url, Options{})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.Evaluate(context.Background(), "explode();")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "script threw")
}

func TestNavigationEvent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteJSON(frame{Event: eventNavigation, URL: "bridge-callback://queue"})
		// Keep the connection open until the client leaves.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	urls := make(chan string, 1)
	c, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), Options{
		OnNavigate: func(u string) { urls <- u },
	})
	require.NoError(t, err)
	defer c.Close()

	select {
	case u := <-urls:
		assert.Equal(t, "bridge-callback://queue", u)
	case <-time.After(2 * time.Second):
		t.Fatal("navigation event never arrived")
	}
}

func TestEvaluateAfterClose(t *testing.T) {
	_, url := newRenderer(t, func(string) frame {
		return frame{Result: "ok"}
	})

	c, err := Dial(context.Background(), url, Options{})
	require.NoError(t, err)
	require.NoError(t, c.Close())

	_, err = c.Evaluate(context.Background(), "getHtml();")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestEvaluateContextCancelled(t *testing.T) {
	// A renderer that never answers.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	c, err := Dial(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), Options{})
	require.NoError(t, err)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = c.Evaluate(ctx, "sleepForever();")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
