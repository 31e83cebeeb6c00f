// Package debugserver exposes a read-only HTTP introspection surface over
// the client state engine's store, for local development tooling (a
// browser devtools panel, a CLI dashboard) to poll without reimplementing
// selector logic. It never accepts mutating requests - all state changes
// still flow through the Command Router and the Event Dispatcher.
package debugserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/ngutten/concord/internal/logging"
	"github.com/ngutten/concord/store"
)

// Server wraps a chi.Mux reading from a *store.Store.
type Server struct {
	store  *store.Store
	router *chi.Mux
}

// New builds the introspection server. requestsPerSecond bounds the
// per-IP rate the same way the teacher's API gateway does for its public
// endpoints; debugListenAddr is expected to be a loopback-only address in
// production deployments since nothing here requires authentication.
func New(s *store.Store, requestsPerSecond int) *Server {
	if requestsPerSecond <= 0 {
		requestsPerSecond = 20
	}

	r := chi.NewRouter()
	r.Use(corsMiddleware)
	r.Use(chimw.Recoverer)
	r.Use(latencyMiddleware)
	r.Use(rateLimitMiddleware(requestsPerSecond))

	srv := &Server{store: s, router: r}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	s.router.Get("/debug/healthz", s.handleHealthz)
	s.router.Get("/debug/metrics", s.handleMetrics)
	s.router.Get("/debug/connection", s.handleConnection)
	s.router.Get("/debug/servers", s.handleServers)
	s.router.Get("/debug/channels", s.handleChannels)
	s.router.Get("/debug/categories", s.handleCategories)
	s.router.Get("/debug/roles", s.handleRoles)
	s.router.Get("/debug/members", s.handleMembers)
	s.router.Get("/debug/messages", s.handleMessages)
	s.router.Get("/debug/presences", s.handlePresences)
	s.router.Get("/debug/unread", s.handleUnread)
	s.router.Get("/debug/typing", s.handleTyping)
}

// ListenAndServe starts the HTTP server on addr and blocks until it
// returns an error. The http.Server it builds is not exposed, so callers
// have no way to shut it down; it serves until the process exits.
func (s *Server) ListenAndServe(addr string) error {
	logging.Log.WithField("addr", addr).Info("debugserver: listening")
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return httpServer.ListenAndServe()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"request_latency_p99": apiLatency.String(),
	})
}

func (s *Server) handleConnection(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"connected": s.store.Connected(),
		"nickname":  s.store.Nickname(),
	})
}

func (s *Server) handleServers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Servers())
}

func (s *Server) handleChannels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Channels(r.URL.Query().Get("server_id")))
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Categories(r.URL.Query().Get("server_id")))
}

func (s *Server) handleRoles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Roles(r.URL.Query().Get("server_id")))
}

func (s *Server) handleMembers(w http.ResponseWriter, r *http.Request) {
	key := store.ChannelKey(r.URL.Query().Get("server_id"), r.URL.Query().Get("channel"))
	writeJSON(w, http.StatusOK, s.store.Members(key))
}

func (s *Server) handleMessages(w http.ResponseWriter, r *http.Request) {
	key := store.ChannelKey(r.URL.Query().Get("server_id"), r.URL.Query().Get("channel"))
	writeJSON(w, http.StatusOK, map[string]any{
		"messages":  s.store.Messages(key),
		"has_more":  s.store.HasMore(key),
		"unread":    s.store.UnreadCount(key),
		"typing":    s.store.TypingUsers(key),
	})
}

func (s *Server) handlePresences(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Presences(r.URL.Query().Get("server_id")))
}

func (s *Server) handleUnread(w http.ResponseWriter, r *http.Request) {
	key := store.ChannelKey(r.URL.Query().Get("server_id"), r.URL.Query().Get("channel"))
	writeJSON(w, http.StatusOK, map[string]int{"unread": s.store.UnreadCount(key)})
}

func (s *Server) handleTyping(w http.ResponseWriter, r *http.Request) {
	key := store.ChannelKey(r.URL.Query().Get("server_id"), r.URL.Query().Get("channel"))
	writeJSON(w, http.StatusOK, s.store.TypingUsers(key))
}
