package node

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/SystemBuilders/noticeboard/internal/boardservice"
	"github.com/SystemBuilders/noticeboard/internal/config"
	"github.com/SystemBuilders/noticeboard/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"
)

const shutdownTimeout = 10 * time.Second

// Node is a notice board served over HTTP.
type Node struct {
	log    zerolog.Logger
	server *http.Server
}

// New builds the HTTP server for b on the configured address.
func New(cfg config.Listen, b boardservice.Board, log zerolog.Logger) *Node {
	router := routing.SetupRouting(b, mux.NewRouter())
	return &Node{
		log: log,
		server: &http.Server{
			Handler: router,
			Addr:    cfg.Addr(),
		},
	}
}

// Start begins the node's operation as a http server and blocks until ctx
// is done, at which point the server is shut down gracefully.
func (n *Node) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", n.server.Addr)
	if err != nil {
		return xerrors.Errorf("listen on %s: %w", n.server.Addr, err)
	}
	return n.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (n *Node) Serve(ctx context.Context, ln net.Listener) error {
	errc := make(chan error, 1)
	go func() {
		errc <- n.server.Serve(ln)
	}()

	n.log.Info().Str("addr", ln.Addr().String()).Msg("starting server")

	select {
	case err := <-errc:
		return xerrors.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	// Create a deadline to wait for currently serving requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	n.log.Info().Msg("shutting down")
	if err := n.server.Shutdown(shutdownCtx); err != nil {
		return xerrors.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return xerrors.Errorf("serve: %w", err)
	}
	return nil
}
