// Package pg opens a pgx/v5 connection pool from DATABASE_URL and exposes a
// ping probe for readiness endpoints.
//
// The pool is created lazily: Open parses the configuration and returns
// immediately, and connections are dialed on first use. This keeps the
// database optional at startup while still letting /api/v1/ready report it.
//
//	var cfg pg.Config // loaded with pkg/config
//	if cfg.Configured() {
//		pool, err := pg.Open(ctx, cfg)
//		if err != nil {
//			return err
//		}
//		defer pool.Close()
//		checks = append(checks, httpserver.Check{Name: "postgres", Probe: pg.Healthcheck(pool, cfg.PingTimeout)})
//	}
package pg
