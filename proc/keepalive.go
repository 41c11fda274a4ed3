package proc

import (
	"context"
	"net/http"
	"time"

	"github.com/disgoorg/disgo/bot"
	"github.com/tryhardbot/tryhard/sys"
)

// Liveness endpoint for hosting platforms that ping the service to keep it
// awake. Plain net/http; the single route needs no router.

func init() {
	sys.OnClientReady(func(ctx context.Context, client *bot.Client) {
		sys.RegisterDaemon(sys.LogKeepAlive, startKeepAlive)
	})
}

func startKeepAlive(ctx context.Context) (bool, func(), func()) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(sys.MsgKeepAliveBody))
	})

	server := &http.Server{
		Addr:              ":" + sys.GlobalConfig.Port,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	run := func() {
		sys.LogKeepAlive(sys.MsgKeepAliveListening, sys.GlobalConfig.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			sys.LogKeepAlive(sys.MsgKeepAliveStopped, err)
		}
	}

	shutdown := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}

	return true, run, shutdown
}
