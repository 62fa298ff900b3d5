package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/sync/errgroup"

	surface "github.com/piotrcurious/semantic-surface"
	"github.com/piotrcurious/semantic-surface/lib/encoding"
	"github.com/piotrcurious/semantic-surface/lib/layout"
	"github.com/piotrcurious/semantic-surface/lib/preview"
)

const previewShutdownTimeout = 2 * time.Second

// newLogger logs to f, with timestamps only when f is a terminal. Under a
// supervisor the supervisor stamps lines itself.
func newLogger(f *os.File) *log.Logger {
	flags := 0
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		flags = log.Ltime | log.Lmicroseconds
	}
	return log.New(f, "[surface] ", flags)
}

// loadRegistry builds the registry from the configured layout.
func loadRegistry(cfg Config) (*surface.Registry, error) {
	l := layout.Default()
	if cfg.Layout != "" {
		var err error
		if l, err = layout.LoadFile(cfg.Layout); err != nil {
			return nil, err
		}
	}
	return l.Registry()
}

func newProtocol(cfg Config, logger *log.Logger) (*surface.Protocol, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, err
	}
	codec, err := encoding.ForName(cfg.Format)
	if err != nil {
		return nil, err
	}
	return surface.NewProtocol(reg,
		surface.WithCodec(codec),
		surface.WithMaxFrame(cfg.MaxFrame),
		surface.WithLogger(logger),
		surface.WithUnknownIDReply(cfg.ReportUnknown),
	), nil
}

type stdio struct {
	io.Reader
	io.Writer
}

// run serves the device until ctx is done or, in stdio mode, input ends.
func run(ctx context.Context, cfg Config, in io.Reader, out io.Writer, logger *log.Logger) error {
	p, err := newProtocol(cfg, logger)
	if err != nil {
		return err
	}
	logger.Printf("serving %d components, %s frames every %s", p.Registry().Len(), p.Codec().Name(), cfg.Interval)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.PreviewAddr != "" {
		srv := &http.Server{Addr: cfg.PreviewAddr, Handler: preview.Handler(p.Registry(), "surface")}
		g.Go(func() error {
			logger.Printf("preview on http://%s/", cfg.PreviewAddr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), previewShutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer cancel()
		ticker := time.NewTicker(cfg.Interval)
		defer ticker.Stop()
		if cfg.Listen == "" {
			return surface.Serve(ctx, p, stdio{in, out}, ticker.C)
		}
		return listen(ctx, cfg.Listen, p, ticker.C, logger)
	})

	return g.Wait()
}

// listen accepts one client at a time and runs the device loop for it.
// Component state carries over from one client to the next.
func listen(ctx context.Context, addr string, p *surface.Protocol, ticks <-chan time.Time, logger *log.Logger) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()
	logger.Printf("listening on %s", ln.Addr())

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		logger.Printf("client %s connected", conn.RemoteAddr())
		closeConn := context.AfterFunc(ctx, func() { conn.Close() })
		err = surface.Serve(ctx, p, conn, ticks)
		closeConn()
		conn.Close()
		if err != nil {
			logger.Printf("client %s: %v", conn.RemoteAddr(), err)
			continue
		}
		logger.Printf("client %s disconnected", conn.RemoteAddr())
	}
}

// snapshot writes one frame of the configured layout to out.
func snapshot(cfg Config, out io.Writer, logger *log.Logger) error {
	p, err := newProtocol(cfg, logger)
	if err != nil {
		return err
	}
	frame, err := p.Snapshot()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", frame)
	return err
}
