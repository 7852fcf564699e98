package main

import (
	"StatClickerApi/internal/hub"
	"StatClickerApi/internal/jsonlog"
	"StatClickerApi/internal/roster"
	"StatClickerApi/internal/stats"
	"errors"
	"expvar"
	"flag"
	"fmt"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
)

type config struct {
	version string
	port    int
	env     string
	limiter struct {
		rps     float64
		burst   int
		enabled bool
	}
	roster struct {
		autoload string
	}
	cors struct {
		trustedOrigins []string
	}
}

type application struct {
	logger  *jsonlog.Logger
	config  config
	session *stats.Ledger
	watch   *hub.Hub
	wg      sync.WaitGroup
}

func main() {
	var cfg config

	// Server Config
	cfg.version = "1.0.0"
	flag.IntVar(&cfg.port, "port", 8008, "http server port")
	flag.StringVar(&cfg.env, "env", "development", "Environment (development|staging|production)")

	// Limiter Config
	flag.Float64Var(&cfg.limiter.rps, "limiter-rps", 2, "Rate limiter maximum requests per second")
	flag.IntVar(&cfg.limiter.burst, "limiter-burst", 4, "Rate limiter maximum burst")
	flag.BoolVar(&cfg.limiter.enabled, "limiter-enabled", true, "Enable rate limiter")

	// Roster Config
	flag.StringVar(&cfg.roster.autoload, "roster-autoload", "roster.csv",
		"Roster CSV to load at startup if present (best-effort)")

	// CORS Config
	flag.Func("cors-trusted-origins", "Trusted CORS origins (space separated)", func(val string) error {
		origins := strings.Fields(val)
		if i := slices.Index(origins, "*"); i != -1 {
			return errors.New("cannot set CORS trusted origin to \"*\" with authorization header" +
				" in cross-origin requests")
		}
		cfg.cors.trustedOrigins = origins
		return nil
	})

	// Version
	displayVersion := flag.Bool("version", false, "Show API version and immediately exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version: %s\n", cfg.version)
		os.Exit(0)
	}

	logger := jsonlog.New(os.Stdout, jsonlog.LevelInfo)

	expvar.NewString("version").Set(cfg.version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))
	expvar.Publish("timestamp", expvar.Func(func() any {
		return time.Now().Unix()
	}))

	app := &application{
		logger:  logger,
		config:  cfg,
		session: stats.NewLedger(),
		watch:   hub.New(),
	}

	expvar.Publish("roster_size", expvar.Func(func() any {
		return app.session.Size()
	}))

	// Best-effort roster auto-load: only into an empty roster, and an
	// absent or malformed file is a silent no-op.
	if app.session.Size() == 0 {
		if seeds, ok := roster.LoadFile(cfg.roster.autoload); ok {
			app.session.Replace(seeds)
			logger.PrintInfo("roster auto-loaded", map[string]string{
				"file":    cfg.roster.autoload,
				"players": strconv.Itoa(app.session.Size()),
			})
		}
	}

	go app.watch.Run()

	err := app.serve()
	if err != nil {
		logger.PrintFatal(err, nil)
	}
}
