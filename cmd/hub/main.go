// Command hub serves the RS Innovation Hub site and its JSON API.
//
//	@title			RS Innovation Hub API
//	@version		1.0
//	@description	Programs, events and form submissions for the RS Innovation Hub.
//	@BasePath		/
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/rsinnovationhub/hub/docs"
	"github.com/rsinnovationhub/hub/internal/api"
	"github.com/rsinnovationhub/hub/internal/catalog"
	"github.com/rsinnovationhub/hub/internal/config"
	"github.com/rsinnovationhub/hub/internal/gateway"
	"github.com/rsinnovationhub/hub/internal/handler"
	"github.com/rsinnovationhub/hub/internal/logger"
	"github.com/rsinnovationhub/hub/internal/middleware"
	"github.com/rsinnovationhub/hub/internal/session"
	"github.com/rsinnovationhub/hub/internal/static"
	"github.com/rsinnovationhub/hub/internal/template"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

func main() {
	app := &cli.App{
		Name:  "hub",
		Usage: "RS Innovation Hub website: programs, events and enquiry forms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   config.DefaultPort,
				Usage:   "HTTP server port",
				EnvVars: []string{"PORT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "content",
				Aliases: []string{"c"},
				Usage:   "TOML content file replacing the built-in catalog",
				EnvVars: []string{"CONTENT_FILE"},
			},
			&cli.BoolFlag{
				Name:    "latency",
				Value:   true,
				Usage:   "Simulate submission processing time",
				EnvVars: []string{"SIMULATED_LATENCY"},
			},
			&cli.IntFlag{
				Name:    "rate-limit",
				Value:   config.DefaultRateLimit,
				Usage:   "Form submissions per minute per IP address",
				EnvVars: []string{"RATE_LIMIT"},
			},
			&cli.DurationFlag{
				Name:    "session-ttl",
				Value:   config.DefaultSessionTTL,
				Usage:   "Idle time after which a visitor's open dialogs are dropped",
				EnvVars: []string{"SESSION_TTL"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	port := c.String("port")

	content, err := catalog.Load(c.String("content"))
	if err != nil {
		return fmt.Errorf("failed to load content: %w", err)
	}

	tmpl, err := template.New()
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	gwOpts := []gateway.SimulatedOption{gateway.WithLogger(slog.Default())}
	if !c.Bool("latency") {
		gwOpts = append(gwOpts, gateway.WithLatency(0, 0, 0))
	}
	gw := gateway.NewSimulated(gwOpts...)

	sessions, err := session.NewStore(c.Duration("session-ttl"), content, gw)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	defer sessions.Close()

	limiter, err := middleware.NewSubmissionLimiter(c.Int("rate-limit"))
	if err != nil {
		return fmt.Errorf("failed to create submission limiter: %w", err)
	}
	defer limiter.Close()

	h, err := handler.New(content, sessions, tmpl)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}
	apiHandler, err := api.New(content, gw)
	if err != nil {
		return fmt.Errorf("failed to create API handler: %w", err)
	}

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	apiHandler.RegisterRoutes(mux)
	static.Register(mux)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      middleware.CacheControl(limiter.Middleware(mux)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+port,
			"programs", len(content.Programs("")),
			"events", len(content.Events("")),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("server stopped")
	return nil
}
