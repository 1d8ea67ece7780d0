package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"

	"github.com/seanfitz121/gymtracker/internal/accounts"
	"github.com/seanfitz121/gymtracker/internal/config"
	"github.com/seanfitz121/gymtracker/internal/db"
	"github.com/seanfitz121/gymtracker/internal/middleware"
	"github.com/seanfitz121/gymtracker/internal/progression/gamification"
	"github.com/seanfitz121/gymtracker/internal/progression/integrity"
	"github.com/seanfitz121/gymtracker/internal/progression/leaderboard"
	"github.com/seanfitz121/gymtracker/internal/progression/records"
	"github.com/seanfitz121/gymtracker/internal/progression/workouts"
	"github.com/seanfitz121/gymtracker/internal/telemetry/metrics"
	"github.com/seanfitz121/gymtracker/internal/telemetry/tracing"
)

const completeWorkoutRouterName = "complete-workout"

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	rateLimiter middleware.RequestRateLimiter

	engine  *workouts.Engine
	rewards *gamification.Service

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	DBPassword              string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}
	if err := db.Migrate(ctx, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrate db: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "progression", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "progression-service", rdb)
	if err != nil {
		return nil, err
	}

	s := &Server{
		config:      cfg,
		dbPool:      dbPool,
		redisClient: rdb,
		rateLimiter: redis_rate.NewLimiter(rdb),

		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}
	s.engine, s.rewards = newProgression(cfg, dbPool, rdb, metricsManager)

	return s, nil
}

// newProgression builds the progression engine and the reward service over
// the given stores.
func newProgression(
	cfg *config.Config,
	dbPool *pgxpool.Pool,
	rdb redis.Cmdable,
	metricsManager *metrics.Manager,
) (*workouts.Engine, *gamification.Service) {
	accountsRepo := accounts.NewRepo(dbPool)
	recordsRepo := records.NewRepo(dbPool)
	sessionRepo := workouts.NewSessionRepo(dbPool)

	rankResolver := gamification.NewRankResolver(
		accountsRepo,
		gamification.NewCachedLadders(gamification.NewRanksRepo(dbPool), cfg.RankCacheTTL.Duration),
	)
	rewards := gamification.NewService(
		gamification.NewProfileRepo(dbPool),
		rankResolver,
		gamification.NewRedisLocker(rdb, cfg.RewardLockTTL.Duration, cfg.RewardLockWait.Duration),
		metricsManager,
		cfg.Location(),
	)

	aggregator := leaderboard.NewAggregator(
		sessionRepo,
		recordsRepo,
		accountsRepo,
		leaderboard.NewRepo(dbPool),
		metricsManager,
		cfg.Location(),
		cfg.AggregateTimeout.Duration,
	)

	engine := workouts.NewEngine(workouts.EngineParams{
		Validator:       integrity.NewValidator(accountsRepo),
		Sessions:        sessionRepo,
		Flags:           integrity.NewRepo(dbPool),
		Records:         records.NewDetector(recordsRepo),
		Rewards:         rewards,
		Aggregates:      aggregator,
		Metrics:         metricsManager,
		StoreTimeout:    cfg.StoreTimeout.Duration,
		DetachedTimeout: cfg.AggregateTimeout.Duration,
	})

	return engine, rewards
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("progression-router"))

	workoutsHandler := workouts.NewHandler(s.engine)
	rankHandler := gamification.NewHandler(s.rewards)

	completeRateLimit := middleware.RateLimit(
		s.rateLimiter,
		s.metricsManager,
		completeWorkoutRouterName,
		s.config.CompleteWorkoutRateLimitPerMin,
	)
	r.Handle(
		"/progression/users/{userID}/workouts",
		completeRateLimit(http.HandlerFunc(workoutsHandler.HandleComplete)),
	).Methods("POST", "OPTIONS").Name("complete-workout")

	r.HandleFunc("/progression/users/{userID}/workouts/validate", workoutsHandler.HandleValidate).Methods("POST", "OPTIONS").Name("validate-workout")
	r.HandleFunc("/progression/users/{userID}/rank", rankHandler.HandleRankProgress).Methods("GET", "OPTIONS").Name("rank-progress")
	r.HandleFunc("/progression/users/{userID}/rank/recompute", rankHandler.HandleRecomputeRank).Methods("POST", "OPTIONS").Name("recompute-rank")

	// all the rest - unhandled paths
	r.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Name("unknown")

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(s.config.AllowedOrigins))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		// otel http server metrics, per-route spans come from otelmux
		Handler:      otelhttp.NewHandler(router, "progression-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests first, then let the detached tasks finish on the
	// stores they still need
	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
		log.Warnln("server shut down")
	}

	log.Debugln("waiting for detached progression tasks ...")
	s.engine.Wait()

	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> graceful shutdown: %s", e)
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}
