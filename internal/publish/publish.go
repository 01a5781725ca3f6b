// Package publish ships a computed layout to a rendering collaborator over
// socket.io. The renderer listens for the "layout" event and owns everything
// visual; this package only delivers records.
package publish

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/vk/daylayout/internal/ctxlog"
	"github.com/vk/daylayout/internal/encode"
	"github.com/vk/daylayout/internal/model"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// EventName is the socket.io event carrying a layout.
const EventName = "layout"

// DefaultTimeout bounds how long Connect waits for the handshake.
const DefaultTimeout = 15 * time.Second

// ErrNotConnected is returned by Publish after Close.
var ErrNotConnected = errors.New("publisher is not connected")

// Emitter is the subset of a socket.io socket the publisher needs.
type Emitter interface {
	Emit(ev string, args ...any) error
}

// Payload is the body of one "layout" event.
type Payload struct {
	Events []encode.Record `json:"events"`
}

// Options configures Connect.
type Options struct {
	URL                string
	Namespace          string
	InsecureSkipVerify bool
	Timeout            time.Duration
}

// Publisher emits layouts to a connected renderer.
type Publisher struct {
	emitter Emitter
	closeFn func()
}

// New wraps an existing emitter.
func New(e Emitter) *Publisher {
	return &Publisher{emitter: e}
}

// Connect dials a socket.io server over websocket and waits until the
// connection is established, fails, times out or ctx is cancelled.
func Connect(ctx context.Context, opts Options) (*Publisher, error) {
	logger := ctxlog.FromContext(ctx).With("component", "publish", "url", opts.URL)

	parsedURL, err := url.Parse(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse URL: %w", err)
	}
	switch parsedURL.Scheme {
	case "http", "https", "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported URL scheme %q: must be http, https, ws or wss", parsedURL.Scheme)
	}

	namespace := opts.Namespace
	if namespace == "" {
		namespace = "/"
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	sopts := socket.DefaultOptions()
	sopts.SetPath(parsedURL.Path)
	if opts.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		sopts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	sopts.SetTransports(types.NewSet(transports.WebSocket))

	connectChan := make(chan error, 1)

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, sopts)
	io := manager.Socket(namespace, sopts)

	io.Once(types.EventName("connect"), func(...any) {
		logger.Info("Connected to renderer", "sid", io.Id())
		connectChan <- nil
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		var err error = errors.New("connect_error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		logger.Debug("Connection attempt failed", "error", err)
		connectChan <- err
	})

	logger.Debug("Initiating connection...")
	io.Connect()

	select {
	case err := <-connectChan:
		if err != nil {
			io.Disconnect()
			return nil, fmt.Errorf("socket.io connection failed: %w", err)
		}
		return &Publisher{emitter: io, closeFn: func() { io.Disconnect() }}, nil
	case <-ctx.Done():
		io.Disconnect()
		return nil, fmt.Errorf("context cancelled while waiting for socket.io connection: %w", ctx.Err())
	case <-time.After(timeout):
		io.Disconnect()
		return nil, fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}
}

// Publish emits one "layout" event carrying events.
func (p *Publisher) Publish(ctx context.Context, events []model.LaidOutEvent) error {
	if p.emitter == nil {
		return ErrNotConnected
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	payload := Payload{Events: encode.Records(events)}
	if err := p.emitter.Emit(EventName, payload); err != nil {
		return fmt.Errorf("failed to emit %q: %w", EventName, err)
	}
	ctxlog.FromContext(ctx).Debug("Layout published.", "events", len(events))
	return nil
}

// Close disconnects the underlying socket, if any. It is safe to call more
// than once.
func (p *Publisher) Close() error {
	if p.closeFn != nil {
		p.closeFn()
		p.closeFn = nil
	}
	p.emitter = nil
	return nil
}
