package main

import (
	"context"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	elasticsearch "github.com/elastic/go-elasticsearch/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Growthlabsg/venturematch/internal/common/config"
	"github.com/Growthlabsg/venturematch/internal/common/database"
	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/observability"
	"github.com/Growthlabsg/venturematch/internal/engine/alerts"
	"github.com/Growthlabsg/venturematch/internal/events"
	"github.com/Growthlabsg/venturematch/internal/notify"
	"github.com/Growthlabsg/venturematch/internal/store"
)

func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting alert watcher...",
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New("alertwatcher", os.Getenv("JAEGER_ENDPOINT"))
	defer obs.Shutdown()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Init PostgreSQL with retry ---
	var pg *database.PostgresClient
	err = retryWithBackoff(func() error {
		var err error
		pg, err = database.NewPostgres(cfg.Database.Postgres)
		if err != nil {
			return err
		}
		return pg.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "PostgreSQL initialization")
	if err != nil {
		zapLog.Fatal("postgres failed after retries", zap.Error(err))
	}
	defer pg.Close()

	// --- Init Redis; the store degrades to uncached reads without it ---
	rdb, err := database.NewRedis(cfg.Database.Redis)
	if err != nil || rdb.Ping(ctx) != nil {
		zapLog.Warn("redis unavailable, profile cache disabled", zap.Error(err))
		rdb = nil
	}

	// --- Init Elasticsearch; job search is optional for the watcher ---
	es, err := database.NewElasticsearch(cfg.Database.Elasticsearch)
	if err != nil || es.Ping() != nil {
		zapLog.Warn("elasticsearch unavailable, job search disabled", zap.Error(err))
		es = nil
	}

	storeCfg := &store.Config{
		CacheTTL:  time.Duration(cfg.Database.Redis.CacheTTL) * time.Second,
		JobsIndex: cfg.Database.Elasticsearch.JobsIndex,
	}
	st := store.New(pg.DB, redisClient(rdb), esClient(es), storeCfg, log)

	matcher := alerts.NewMatcher(log)
	bus := events.NewBus(log)

	if cfg.Notifications.Enabled {
		notifier, err := notify.New(ctx, &notify.Config{
			AWSRegion: cfg.Notifications.AWSRegion,
			Sender:    cfg.Notifications.Sender,
			TopicARN:  cfg.Notifications.TopicARN,
		}, log)
		if err != nil {
			zapLog.Fatal("notifier init failed", zap.Error(err))
		}
		sub := bus.Subscribe(events.TopicAlertMatched, notifier.HandleAlertMatched)
		defer sub.Unsubscribe()
	}

	// --- Metrics and pprof endpoint ---
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.Handle("/debug/pprof/", http.DefaultServeMux)
		addr := fmt.Sprintf(":%d", cfg.Watcher.MetricsPort)
		zapLog.Info("metrics endpoint listening", zap.String("addr", addr))
		if err := http.ListenAndServe(addr, mux); err != nil {
			zapLog.Error("metrics server stopped", zap.Error(err))
		}
	}()

	watch(ctx, cfg, st, matcher, bus, obs, log, zapLog)

	zapLog.Info("alert watcher stopped")
}

// watch polls for newly created jobs and publishes an event for every
// enabled alert they satisfy.
func watch(
	ctx context.Context,
	cfg *config.Config,
	st *store.Store,
	matcher *alerts.Matcher,
	bus *events.Bus,
	obs *observability.Observability,
	log logger.Logger,
	zapLog *zap.Logger,
) {
	interval := time.Duration(cfg.Watcher.PollInterval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	since := time.Now().UTC()
	zapLog.Info("watch loop started", zap.Duration("interval", interval))

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cycleStart := time.Now().UTC()

			jobs, err := st.ListJobsCreatedSince(ctx, since)
			if err != nil {
				log.Error("job poll failed", map[string]interface{}{"error": err})
				continue
			}
			if len(jobs) == 0 {
				since = cycleStart
				continue
			}

			alertDefs, err := st.ListEnabledAlerts(ctx)
			if err != nil {
				log.Error("alert load failed", map[string]interface{}{"error": err})
				continue
			}

			matchedTotal := 0
			for _, job := range jobs {
				for _, alert := range matcher.FindMatchingAlerts(alertDefs, job) {
					matchedTotal++
					recipient := ""
					if profile, err := st.GetProfile(ctx, alert.UserID); err == nil {
						recipient = profile.Email
					}
					bus.Publish(ctx, events.TopicAlertMatched, notify.AlertMatch{
						Alert:     alert,
						Job:       job,
						Recipient: recipient,
					})
				}
			}

			obs.RecordCycle(ctx, matchedTotal, time.Since(cycleStart))
			log.Info("watch cycle complete", map[string]interface{}{
				"jobs":    len(jobs),
				"alerts":  len(alertDefs),
				"matched": matchedTotal,
			})
			since = cycleStart
		}
	}
}

func redisClient(c *database.RedisClient) *redis.Client {
	if c == nil {
		return nil
	}
	return c.Client
}

func esClient(c *database.ElasticsearchClient) *elasticsearch.Client {
	if c == nil {
		return nil
	}
	return c.Client
}
