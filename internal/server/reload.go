package server

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/srikarvechalapu/folio/internal/logging"
)

const (
	// ReloadPath is where preview pages open their live-reload socket.
	ReloadPath = "/livereload"
	// ReloadMessage is sent to every open page after a rebuild.
	ReloadMessage = "reload"

	reloadWriteWait = 5 * time.Second
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Reloader keeps the live-reload sockets of open preview pages and tells
// them to reload after a rebuild.
type Reloader struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	log     zerolog.Logger
}

// NewReloader creates a Reloader with no connected pages.
func NewReloader() *Reloader {
	return &Reloader{
		clients: make(map[*websocket.Conn]struct{}),
		log:     logging.WithComponent("livereload"),
	}
}

// ServeHTTP upgrades the request and holds the socket until the page goes
// away. Pages never send anything; reading only detects the close.
func (rl *Reloader) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		rl.log.Warn().Err(err).Msg("websocket upgrade")
		return
	}

	rl.mu.Lock()
	rl.clients[conn] = struct{}{}
	rl.mu.Unlock()
	defer rl.drop(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				rl.log.Debug().Err(err).Msg("websocket read")
			}
			return
		}
	}
}

// Reload sends ReloadMessage to every connected page and returns how many
// received it. Pages that cannot be written to are dropped.
func (rl *Reloader) Reload() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	sent := 0
	for conn := range rl.clients {
		conn.SetWriteDeadline(time.Now().Add(reloadWriteWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(ReloadMessage)); err != nil {
			rl.log.Debug().Err(err).Msg("websocket write")
			delete(rl.clients, conn)
			conn.Close()
			continue
		}
		sent++
	}
	return sent
}

// Clients returns the number of connected pages.
func (rl *Reloader) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Close disconnects every page.
func (rl *Reloader) Close() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	for conn := range rl.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, ""),
			time.Now().Add(time.Second))
		conn.Close()
		delete(rl.clients, conn)
	}
}

func (rl *Reloader) drop(conn *websocket.Conn) {
	rl.mu.Lock()
	delete(rl.clients, conn)
	rl.mu.Unlock()
	conn.Close()
}
