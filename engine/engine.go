package engine

import (
	"github.com/ngutten/concord/internal/config"
	"github.com/ngutten/concord/store"
	"github.com/ngutten/concord/transport"
)

// Engine is the Session Controller (§4, §4.1): it owns the Transport, the
// Store, the Command Router, and the UI Intent Store, and wires the
// reconnect hooks that keep them consistent with each other.
type Engine struct {
	transport *transport.Transport
	store     *store.Store

	Commands *Router
	UI       *UIIntent

	folderStorePath string
}

// New builds an Engine from a loaded configuration. It does not connect;
// call Connect once the caller is ready to start the session.
func New(cfg config.Config) *Engine {
	t := transport.New(cfg.Host, cfg.Secure, cfg.OutboundCommandsPerSecond, cfg.ReconnectInitialBackoff, cfg.ReconnectMaxBackoff)
	s := store.NewStore()

	e := &Engine{
		transport:       t,
		store:           s,
		folderStorePath: cfg.FolderStorePath,
	}
	e.Commands = newRouter(t)
	e.UI = NewUIIntent(func(folders []Folder) {
		SaveFolders(e.folderStorePath, folders)
	})
	e.UI.SetServerFolders(LoadFolders(cfg.FolderStorePath))

	t.OnOpen = func() {
		s.SetConnected(true, t.Nickname())
		e.Commands.ListServers()
	}
	t.OnClose = func() {
		s.SetConnected(false, "")
	}

	e.runDispatchLoop()
	return e
}

// Store exposes the read-only selector surface to the view layer.
func (e *Engine) Store() *store.Store { return e.store }
