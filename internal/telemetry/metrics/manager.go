package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// http counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter

	// progression counters
	CounterWorkoutsValidated     *prometheus.CounterVec
	CounterIntegrityFlags        *prometheus.CounterVec
	CounterNewPRs                prometheus.Counter
	CounterXPAwarded             prometheus.Counter
	CounterXPSkipped             *prometheus.CounterVec
	CounterStreakForgiveness     prometheus.Counter
	CounterOptimisticConflicts   prometheus.Counter
	CounterWeeklyAggregateErrors prometheus.Counter

	// gauges
	GaugeRequests   prometheus.Gauge
	GaugeLifeSignal prometheus.Gauge

	// histograms
	HistogramRequestDuration    *prometheus.HistogramVec
	HistogramWorkoutCompleteDur prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("backend", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("backend", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})

	counterWorkoutsValidated := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workouts_validated",
		Help:      "The total number of validated workout submissions, by outcome",
	}, []string{"outcome"})
	counterIntegrityFlags := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "integrity_flags_created",
		Help:      "The total number of created integrity flags, by severity",
	}, []string{"severity"})
	counterNewPRs := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "personal_records",
		Help:      "The total number of new personal records",
	})
	counterXPAwarded := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "xp_awarded",
		Help:      "The total amount of awarded XP",
	})
	counterXPSkipped := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "xp_skipped",
		Help:      "The total number of XP grants that awarded nothing, by reason",
	}, []string{"reason"})
	counterStreakForgiveness := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "streak_forgiveness_used",
		Help:      "The total number of streaks bridged with the forgiveness token",
	})
	counterOptimisticConflicts := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "profile_update_conflicts",
		Help:      "The total number of gamification profile updates lost to a concurrent write",
	})
	counterWeeklyAggregateErrors := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "weekly_aggregate_errors",
		Help:      "The total number of failed weekly aggregate recomputations",
	})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramWorkoutCompleteDur := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workout_complete_duration_seconds",
		Help:      "Duration of the complete-workout flow in seconds",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5},
	})

	return &Manager{
		CounterRequests:              counterRequests,
		CounterHandleRequestPanic:    counterHandleRequestPanic,
		CounterRateLimitedRequests:   counterRateLimitedRequests,
		CounterWorkoutsValidated:     counterWorkoutsValidated,
		CounterIntegrityFlags:        counterIntegrityFlags,
		CounterNewPRs:                counterNewPRs,
		CounterXPAwarded:             counterXPAwarded,
		CounterXPSkipped:             counterXPSkipped,
		CounterStreakForgiveness:     counterStreakForgiveness,
		CounterOptimisticConflicts:   counterOptimisticConflicts,
		CounterWeeklyAggregateErrors: counterWeeklyAggregateErrors,
		GaugeRequests:                gaugeRequests,
		GaugeLifeSignal:              gaugeLifeSignal,
		HistogramRequestDuration:     histogramRequestDuration,
		HistogramWorkoutCompleteDur:  histogramWorkoutCompleteDur,
	}
}
