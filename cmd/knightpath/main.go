// Command knightpath prints a shortest knight path between two squares,
// or serves the same lookup over HTTP.
//
//	knightpath a1 h8
//	knightpath serve
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/internal/config"
	"github.com/katalvlaran/knightpath/internal/delivery"
	"github.com/katalvlaran/knightpath/internal/logger"
	"github.com/katalvlaran/knightpath/knight"
)

const usage = "usage: knightpath [--config FILE] FROM TO | serve"

func main() {
	flags := pflag.NewFlagSet("knightpath", pflag.ExitOnError)
	cfgPath := flags.String("config", os.Getenv(config.EnvPrefix+"_CONFIG"), "optional config file")
	_ = flags.Parse(os.Args[1:])

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = log.Sync() }()

	args := flags.Args()
	switch {
	case len(args) == 1 && args[0] == "serve":
		if err := serve(log, cfg); err != nil {
			log.Fatalw("server stopped", zap.Error(err))
		}
	case len(args) == 2:
		if err := printPath(os.Stdout, args[0], args[1], cfg.MaxDepth); err != nil {
			log.Errorw("path lookup failed", "from", args[0], "to", args[1], zap.Error(err))
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
}

// printPath writes "a1 b3 … h8 (N moves)" for the given squares.
func printPath(w io.Writer, fromStr, toStr string, maxDepth int) error {
	from, err := board.ParseSquare(fromStr)
	if err != nil {
		return err
	}
	to, err := board.ParseSquare(toStr)
	if err != nil {
		return err
	}

	var opts []bfs.Option
	if maxDepth > 0 {
		opts = append(opts, bfs.WithMaxDepth(maxDepth))
	}
	path, err := knight.FindPath(from, to, opts...)
	if err != nil {
		return err
	}

	names := make([]string, len(path))
	for i, sq := range path {
		names[i] = sq.String()
	}
	_, err = fmt.Fprintf(w, "%s (%d moves)\n", strings.Join(names, " "), len(path)-1)
	return err
}

// serve runs the HTTP server until SIGINT/SIGTERM.
func serve(log *zap.SugaredLogger, cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              cfg.ServerPort,
		Handler:           delivery.NewPathHandler(log, cfg.MaxDepth).Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Server is running on %s", cfg.ServerPort)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
