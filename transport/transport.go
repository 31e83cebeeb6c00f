// Package transport owns the single reconnecting duplex socket the CSE
// multiplexes every command and event over (§4.1). It knows nothing about
// the wire vocabulary or the store — it moves framed bytes and leaves
// decoding to the protocol package and dispatch to the engine.
package transport

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ngutten/concord/internal/concurrency"
	"github.com/ngutten/concord/internal/logging"
	"github.com/ngutten/concord/protocol"
	"golang.org/x/time/rate"
)

// maxQueuedCommands bounds the outbound FIFO used while disconnected
// (§4.1 "buffering is recommended for reconnection robustness"). Oldest
// queued command is dropped on overflow rather than blocking the caller.
const maxQueuedCommands = 256

// Transport maintains one logical connection to the server, reconnecting
// with backoff on unexpected close (§4.1, §5).
type Transport struct {
	host   string
	secure bool

	dialer websocket.Dialer

	// OnOpen is invoked after every successful (re)connect, before any
	// buffered commands are flushed - the Session Controller uses this to
	// re-send list_servers (§4.1's on-connect hook).
	OnOpen func()
	// OnClose is invoked whenever the socket drops, before a reconnect is
	// attempted.
	OnClose func()

	limiter *rate.Limiter

	backoffInitial time.Duration
	backoffMax     time.Duration

	mu        sync.Mutex
	conn      *websocket.Conn
	connected bool
	nickname  string
	queue     [][]byte
	stop      chan struct{}
	running   bool

	events chan []byte
}

// New builds a Transport for the given origin. outboundPerSecond bounds
// how fast Send may put frames on the wire once connected (client-side
// pacing against typing/reaction spam, mirroring the teacher's per-IP
// rate limiter). backoffInitial/backoffMax configure the reconnect delay
// (§4.1, §5); both fall back to 1s/30s when zero.
func New(host string, secure bool, outboundPerSecond int, backoffInitial, backoffMax time.Duration) *Transport {
	if outboundPerSecond <= 0 {
		outboundPerSecond = 20
	}
	if backoffInitial <= 0 {
		backoffInitial = time.Second
	}
	if backoffMax <= 0 {
		backoffMax = 30 * time.Second
	}
	return &Transport{
		host:           host,
		secure:         secure,
		limiter:        rate.NewLimiter(rate.Limit(outboundPerSecond), outboundPerSecond),
		events:         make(chan []byte, 256),
		backoffInitial: backoffInitial,
		backoffMax:     backoffMax,
	}
}

// Events returns the channel of raw inbound frames for the Event
// Dispatcher to decode and apply.
func (t *Transport) Events() <-chan []byte {
	return t.events
}

// Connected reports whether the socket is currently open.
func (t *Transport) Connected() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.connected
}

// Nickname returns the nickname passed to the most recent Connect call.
func (t *Transport) Nickname() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.nickname
}

// Connect is idempotent: calling it while already running has no effect
// beyond updating the nickname used on the next (re)dial.
func (t *Transport) Connect(nickname string) {
	t.mu.Lock()
	t.nickname = nickname
	if t.running {
		t.mu.Unlock()
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	stop := t.stop
	t.mu.Unlock()

	concurrency.GoSafeLoop(func() { t.runLoop(stop) })
}

// Disconnect closes the socket, suppresses further reconnect attempts,
// and resets transport-local state (§4.1).
func (t *Transport) Disconnect() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stop)
	conn := t.conn
	t.conn = nil
	t.connected = false
	t.queue = nil
	t.mu.Unlock()

	if conn != nil {
		_ = conn.Close()
	}
}

// Send serializes cmd and transmits it. While disconnected it is appended
// to a bounded FIFO instead of being dropped, so commands issued between
// Connect and the first successful open are not lost (§4.1).
func (t *Transport) Send(cmd protocol.Command) {
	raw, err := protocol.EncodeCommand(cmd)
	if err != nil {
		logging.Log.WithError(err).Warn("transport: failed to encode outbound command")
		return
	}

	t.mu.Lock()
	conn := t.conn
	if conn == nil {
		t.enqueueLocked(raw)
		t.mu.Unlock()
		return
	}
	t.mu.Unlock()

	t.writeFrame(conn, raw)
}

// enqueueLocked must be called with mu held.
func (t *Transport) enqueueLocked(raw []byte) {
	t.queue = append(t.queue, raw)
	if len(t.queue) > maxQueuedCommands {
		t.queue = t.queue[len(t.queue)-maxQueuedCommands:]
	}
}

func (t *Transport) writeFrame(conn *websocket.Conn, raw []byte) {
	if err := t.limiter.Wait(context.Background()); err != nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.conn != conn {
		// Reconnected or disconnected while waiting on the limiter; drop
		// rather than write to a stale socket.
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, raw); err != nil {
		logging.Log.WithError(err).Warn("transport: write failed")
	}
}

func (t *Transport) url() string {
	scheme := "ws"
	if t.secure {
		scheme = "wss"
	}
	t.mu.Lock()
	nickname := t.nickname
	t.mu.Unlock()

	u := url.URL{Scheme: scheme, Host: t.host, Path: "/ws"}
	q := u.Query()
	q.Set("nickname", nickname)
	u.RawQuery = q.Encode()
	return u.String()
}

func (t *Transport) runLoop(stop chan struct{}) {
	b := newBackoff(t.backoffInitial, t.backoffMax)

	for {
		select {
		case <-stop:
			return
		default:
		}

		conn, _, err := t.dialer.Dial(t.url(), nil)
		if err != nil {
			logging.Log.WithError(err).Warn("transport: dial failed, backing off")
			delay := b.next()
			select {
			case <-time.After(delay):
			case <-stop:
				return
			}
			continue
		}

		b.reset()
		t.onOpen(conn)
		t.readLoop(conn, stop)

		t.mu.Lock()
		if t.conn == conn {
			t.conn = nil
			t.connected = false
		}
		t.mu.Unlock()

		if t.OnClose != nil {
			t.OnClose()
		}

		select {
		case <-stop:
			return
		default:
		}
	}
}

func (t *Transport) onOpen(conn *websocket.Conn) {
	t.mu.Lock()
	t.conn = conn
	t.connected = true
	queued := t.queue
	t.queue = nil
	t.mu.Unlock()

	if t.OnOpen != nil {
		t.OnOpen()
	}
	for _, raw := range queued {
		t.writeFrame(conn, raw)
	}
}

func (t *Transport) readLoop(conn *websocket.Conn, stop chan struct{}) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			_ = conn.Close()
			return
		}
		select {
		case t.events <- raw:
		case <-stop:
			return
		}
	}
}
