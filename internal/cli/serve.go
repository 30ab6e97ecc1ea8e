package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/matzehuels/radialmap/internal/server"
	"github.com/matzehuels/radialmap/pkg/buildinfo"
	"github.com/matzehuels/radialmap/pkg/cache"
	"github.com/matzehuels/radialmap/pkg/observability"
	"github.com/matzehuels/radialmap/pkg/pipeline"
	"github.com/matzehuels/radialmap/pkg/storage"
)

// Environment variables read by serve. Flags override them; they override
// the config file.
const (
	envAddr     = "RADIALMAP_ADDR"
	envRedis    = "RADIALMAP_REDIS_URL"
	envMongo    = "RADIALMAP_MONGO_URI"
	envDatabase = "RADIALMAP_MONGO_DB"

	redisPrefix = "radialmap:"
)

type serveOptions struct {
	envFile  string
	addr     string
	redis    string
	mongo    string
	database string
}

// serveCommand creates the serve command for the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var o serveOptions

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Settings come from flags, then the environment (a .env file is loaded first),
then the [server] section of the config file:

  --addr      RADIALMAP_ADDR        listen address
  --redis     RADIALMAP_REDIS_URL   shared cache (default: in-process LRU)
  --mongo     RADIALMAP_MONGO_URI   published map store (default: in memory)
  --database  RADIALMAP_MONGO_DB    Mongo database name

Prometheus metrics are served at /metrics.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), o)
		},
	}

	cmd.Flags().StringVar(&o.envFile, "env-file", ".env", "environment file to load if present")
	cmd.Flags().StringVar(&o.addr, "addr", "", "listen address (default \":8080\")")
	cmd.Flags().StringVar(&o.redis, "redis", "", "Redis URL, e.g. redis://localhost:6379/0")
	cmd.Flags().StringVar(&o.mongo, "mongo", "", "MongoDB URI, e.g. mongodb://localhost:27017")
	cmd.Flags().StringVar(&o.database, "database", "", "MongoDB database name (default \"radialmap\")")

	return cmd
}

// resolve merges flags, environment and config, in that order.
func (o serveOptions) resolve(c *CLI) serveOptions {
	cfg := c.config.Server
	return serveOptions{
		envFile:  o.envFile,
		addr:     firstNonEmpty(o.addr, os.Getenv(envAddr), cfg.Addr),
		redis:    firstNonEmpty(o.redis, os.Getenv(envRedis), cfg.Redis),
		mongo:    firstNonEmpty(o.mongo, os.Getenv(envMongo), cfg.Mongo),
		database: firstNonEmpty(o.database, os.Getenv(envDatabase), cfg.Database),
	}
}

func (c *CLI) runServe(ctx context.Context, o serveOptions) error {
	logger := loggerFromContext(ctx)

	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", o.envFile, err)
		}
	}
	o = o.resolve(c)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	hooks, err := observability.NewPrometheusHooks(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)
	observability.SetHTTPHooks(hooks)
	defer observability.Reset()

	var cc cache.Cache
	if o.redis != "" {
		rc, err := cache.NewRedisCache(ctx, o.redis, redisPrefix)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		cc = rc
	} else {
		lc, err := cache.NewLRUCache(c.config.Server.CacheSize)
		if err != nil {
			return err
		}
		cc = lc
	}
	runner := pipeline.NewRunner(cc, nil, logger)
	defer runner.Close()

	var store storage.Store
	if o.mongo != "" {
		ms, err := storage.NewMongoStore(ctx, o.mongo, o.database)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		store = ms
	} else {
		store = storage.NewMemoryStore()
		printWarning("Published maps are kept in memory and lost on restart (use --mongo)")
	}

	printSuccess("%s %s", StyleTitle.Render(appName), StyleDim.Render(buildinfo.Short()))
	printKeyValue("listen", StyleLink.Render("http://"+displayAddr(o.addr)))
	printKeyValue("cache", backendName(o.redis, "redis", "lru"))
	printKeyValue("store", backendName(o.mongo, "mongo/"+o.database, "memory"))

	srv := server.New(server.Config{
		Runner:   runner,
		Store:    store,
		Logger:   logger,
		Gatherer: reg,
		Timeout:  c.config.Server.Timeout,
	})
	return srv.ListenAndServe(ctx, o.addr)
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func backendName(url, set, unset string) string {
	if url != "" {
		return set
	}
	return unset
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
