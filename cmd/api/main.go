// Command api runs the HTTP API server.
//
// Configuration is read from the environment (and a .env file in the working
// directory, if present). The process exits with status 0 after a clean,
// signal-initiated shutdown and 1 on any failure.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/dmitrymomot/apistarter"
	"github.com/dmitrymomot/apistarter/pkg/clientip"
	"github.com/dmitrymomot/apistarter/pkg/httpserver"
	"github.com/dmitrymomot/apistarter/pkg/logger"
	"github.com/dmitrymomot/apistarter/pkg/pg"
	"github.com/dmitrymomot/apistarter/pkg/requestid"
)

func main() {
	os.Exit(run(context.Background()))
}

func run(ctx context.Context) (code int) {
	log := logger.New()
	defer func() {
		if r := recover(); r != nil {
			log.Error("uncaught panic, terminating",
				slog.String("panic", fmt.Sprint(r)),
				slog.String("stack", string(debug.Stack())),
			)
			code = 1
		}
	}()

	cfg, err := apistarter.LoadConfig()
	if err != nil {
		log.Error("failed to load configuration", logger.Error(err))
		return 1
	}

	log = logger.New(
		logger.WithEnvironment(cfg.Env(), cfg.ServiceName),
		logger.WithLevelString(cfg.LogLevel),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	var checks []httpserver.Check
	if !cfg.Database.Configured() {
		log.Warn("DATABASE_URL is not set, readiness will not check the database")
	} else {
		pool, err := pg.Open(ctx, cfg.Database)
		if err != nil {
			log.Error("failed to configure database pool", logger.Error(err))
			return 1
		}
		defer pool.Close()
		checks = append(checks, httpserver.Check{
			Name:  "postgres",
			Probe: pg.Healthcheck(pool, cfg.Database.PingTimeout),
		})
	}

	router := apistarter.NewRouter(cfg,
		apistarter.WithLogger(log),
		apistarter.WithReadinessChecks(checks...),
	)
	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))

	err = srv.Run(ctx, router)
	if err != nil {
		log.Error("server stopped with error", logger.Error(err))
	}
	return httpserver.ExitCode(err)
}
