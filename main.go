package main

import (
	"context"
	"errors"
	"log"
	nethttp "net/http"
	"os"
	"os/signal"
	"time"

	"github.com/freekieb7/hddp/admin"
	"github.com/freekieb7/hddp/filesystem"
	"github.com/freekieb7/hddp/http"
	"github.com/freekieb7/hddp/telemetry"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const name = "github.com/freekieb7/hddp"

var logger = otelslog.NewLogger(name)

type Config struct {
	Addr        string
	AdminAddr   string
	PagesDir    string
	ServiceName string
}

func LoadConfig() Config {
	return Config{
		Addr:        env("HDDP_ADDR", "127.0.0.1:8080"),
		AdminAddr:   env("HDDP_ADMIN_ADDR", ""),
		PagesDir:    env("HDDP_PAGES_DIR", "pages"),
		ServiceName: env("OTEL_SERVICE_NAME", "hddp"),
	}
}

func env(key, fallback string) string {
	if value, found := os.LookupEnv(key); found {
		return value
	}
	return fallback
}

func main() {
	if err := run(context.Background(), LoadConfig()); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, cfg Config) (err error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		err = errors.Join(err, shutdownTelemetry(flushCtx))
	}()

	pages := filesystem.NewPages(filesystem.NewLocalFileSystem(), cfg.PagesDir, logger)
	router := http.NewDefaultRouter(pages)

	router.AddRoute(nethttp.MethodGet, "/pizza", http.NewResponse("<h1>Pizza !</h1>"))
	router.AddRoute(nethttp.MethodPost, "/test", http.NewResponse("<h1>POST Reçu !</h1>"))

	serverErrCh := make(chan error, 2)

	server := http.NewServer(cfg.ServiceName, router, http.WithLogger(logger))
	go func() {
		log.Printf("Listening and serving on: http://%s", cfg.Addr)
		serverErrCh <- server.ListenAndServe(cfg.Addr)
	}()

	if cfg.AdminAddr != "" {
		adminServer := &nethttp.Server{
			Addr:              cfg.AdminAddr,
			Handler:           admin.NewHandler(router, logger),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			log.Printf("Admin listening on: http://%s", cfg.AdminAddr)
			serverErrCh <- adminServer.ListenAndServe()
		}()
		defer adminServer.Close()
	}

	select {
	case err := <-serverErrCh:
		return err
	case <-ctx.Done():
		stop()
	}

	return nil
}
