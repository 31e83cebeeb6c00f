package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ngutten/concord/debugserver"
	"github.com/ngutten/concord/engine"
	"github.com/ngutten/concord/internal/config"
	"github.com/ngutten/concord/internal/logging"
)

func main() {
	cfg := config.Load()
	logging.Configure()

	e := engine.New(cfg)

	var debugSrv *debugserver.Server
	if cfg.DebugListenAddr != "" {
		debugSrv = debugserver.New(e.Store(), cfg.OutboundCommandsPerSecond)
		go func() {
			if err := debugSrv.ListenAndServe(cfg.DebugListenAddr); err != nil && err != http.ErrServerClosed {
				logging.Log.WithError(err).Error("debugserver: listener stopped")
			}
		}()
	}

	nickname := cfg.Nickname
	if nickname == "" {
		logging.Log.Fatal("CONCORD_NICKNAME is required")
	}
	e.Connect(nickname)

	logging.Log.WithFields(map[string]any{
		"host":   cfg.Host,
		"secure": cfg.Secure,
	}).Info("concord-client: session starting")

	waitForShutdown(e)
}

func waitForShutdown(e *engine.Engine) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logging.Log.Info("concord-client: shutting down")
	e.Disconnect()
}
