package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/folio/web"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

type serveCmd struct {
	addr string
	load bool
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the interactive dashboard" }
func (*serveCmd) Usage() string {
	return `folio serve [-addr <address>] [-load]

  Serves the dashboard web page until interrupted.
  The portfolio starts empty unless -load is set, the saved portfolio can also
  be loaded from the page.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", ":8080", "address to listen on")
	f.BoolVar(&c.load, "load", false, "load the saved portfolio at start")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	logger := NewLogger(zap.InfoLevel)
	defer logger.Sync()

	session, err := OpenSession(logger, c.load)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening portfolio: %v\n", err)
		return subcommands.ExitFailure
	}

	srv := &http.Server{
		Addr:              c.addr,
		Handler:           web.New(session, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		logger.Info("serving dashboard", zap.String("addr", c.addr), zap.Int("symbols", session.Prices().Len()))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		fmt.Fprintf(os.Stderr, "Error serving dashboard: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Fprintf(os.Stderr, "Error shutting down: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Info("dashboard stopped")
	return subcommands.ExitSuccess
}
