// Command hello is the minimal entrypoint: a single GET / route answering
// "Hello", served with the same lifecycle as the full API.
package main

import (
	"context"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/apistarter/pkg/config"
	"github.com/dmitrymomot/apistarter/pkg/httpserver"
	"github.com/dmitrymomot/apistarter/pkg/logger"
)

func main() {
	log := logger.New(logger.WithTextFormatter())

	var cfg httpserver.Config
	if err := config.Load(&cfg); err != nil {
		log.Error("failed to load configuration", logger.Error(err))
		os.Exit(1)
	}

	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
	err := srv.Run(context.Background(), newRouter())
	if err != nil {
		log.Error("server stopped with error", logger.Error(err))
	}
	os.Exit(httpserver.ExitCode(err))
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("Hello"))
	})
	return r
}
