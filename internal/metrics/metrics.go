// Package metrics exposes Prometheus collectors for the HTTP surface and
// for hunter progression events.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// DefaultNamespace is used when no namespace is configured
const DefaultNamespace = "ascend"

// Collector owns a private registry. It implements service.EventRecorder.
type Collector struct {
	registry *prometheus.Registry

	httpInFlight prometheus.Gauge
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	registrations   prometheus.Counter
	questsCompleted *prometheus.CounterVec
	levelsGained    prometheus.Counter
	questsFailed    *prometheus.CounterVec
	achievements    prometheus.Counter
	purchases       *prometheus.CounterVec
	guildChanges    *prometheus.CounterVec
}

// NewCollector creates a collector with every metric registered
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	c := &Collector{registry: prometheus.NewRegistry()}

	c.httpInFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "inflight_requests",
		Help:      "Current number of in-flight HTTP requests.",
	})
	c.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Total number of HTTP requests handled.",
	}, []string{"method", "path", "status"})
	c.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
	}, []string{"method", "path"})

	c.registrations = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "hunters",
		Name:      "registered_total",
		Help:      "Total number of registered hunters.",
	})
	c.questsCompleted = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "quests",
		Name:      "completed_total",
		Help:      "Total number of completed quests by kind.",
	}, []string{"kind"})
	c.levelsGained = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "hunters",
		Name:      "levels_gained_total",
		Help:      "Total number of levels gained by all hunters.",
	})
	c.questsFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "quests",
		Name:      "failed_total",
		Help:      "Total number of failed quests.",
	}, []string{"streak_protected"})
	c.achievements = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "achievements",
		Name:      "unlocked_total",
		Help:      "Total number of unlocked achievements.",
	})
	c.purchases = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "shop",
		Name:      "purchases_total",
		Help:      "Total number of shop purchases by item.",
	}, []string{"item"})
	c.guildChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "guilds",
		Name:      "membership_changes_total",
		Help:      "Total number of guild membership changes by action.",
	}, []string{"action"})

	c.registry.MustRegister(
		c.httpInFlight,
		c.httpRequests,
		c.httpDuration,
		c.registrations,
		c.questsCompleted,
		c.levelsGained,
		c.questsFailed,
		c.achievements,
		c.purchases,
		c.guildChanges,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return c
}

// Registry returns the underlying registry
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns an HTTP handler exposing the registered metrics
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// InstrumentHandler wraps the handler with request count, duration and
// in-flight metrics. Scrapes of /metrics are not counted.
func (c *Collector) InstrumentHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/metrics" {
			next.ServeHTTP(w, r)
			return
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		c.httpInFlight.Inc()
		defer c.httpInFlight.Dec()

		next.ServeHTTP(rec, r)

		path := canonicalPath(r.URL.Path)
		method := strings.ToUpper(r.Method)
		c.httpRequests.WithLabelValues(method, path, strconv.Itoa(rec.status)).Inc()
		c.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	})
}

// HunterRegistered counts a new account
func (c *Collector) HunterRegistered() {
	c.registrations.Inc()
}

// QuestCompleted counts a completion and the levels it produced
func (c *Collector) QuestCompleted(kind string, levelsGained int) {
	c.questsCompleted.WithLabelValues(kind).Inc()
	if levelsGained > 0 {
		c.levelsGained.Add(float64(levelsGained))
	}
}

// QuestFailed counts a failure
func (c *Collector) QuestFailed(streakProtected bool) {
	c.questsFailed.WithLabelValues(strconv.FormatBool(streakProtected)).Inc()
}

// AchievementsUnlocked adds n unlocks
func (c *Collector) AchievementsUnlocked(n int) {
	if n > 0 {
		c.achievements.Add(float64(n))
	}
}

// ItemPurchased counts a purchase
func (c *Collector) ItemPurchased(itemID string) {
	c.purchases.WithLabelValues(itemID).Inc()
}

// GuildChanged counts a membership change
func (c *Collector) GuildChanged(action string) {
	c.guildChanges.WithLabelValues(action).Inc()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// canonicalPath collapses record ids so label cardinality stays bounded.
// /v1/guilds/guild:abc becomes /v1/guilds/:id.
func canonicalPath(raw string) string {
	trimmed := strings.Trim(raw, "/")
	if trimmed == "" {
		return "/"
	}
	parts := strings.Split(trimmed, "/")
	if len(parts) >= 3 && parts[0] == "v1" && parts[1] == "guilds" {
		switch parts[2] {
		case "create", "join", "leave":
		default:
			parts[2] = ":id"
		}
	}
	return "/" + strings.Join(parts, "/")
}
