package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/graft/pkg/domain"
)

// Metrics holds Prometheus collectors describing applier activity.
// Create it with NewMetrics, register it on a Registerer, and wire it to
// an applier through Hooks.
type Metrics struct {
	fits              *prometheus.CounterVec
	transforms        *prometheus.CounterVec
	fitDuration       prometheus.Histogram
	transformDuration prometheus.Histogram
	rows              prometheus.Counter
}

// NewMetrics creates the collectors, unregistered.
func NewMetrics() *Metrics {
	return &Metrics{
		fits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graft_fits_total",
				Help: "Total number of fit attempts",
			},
			[]string{"backend", "status"},
		),
		transforms: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graft_transforms_total",
				Help: "Total number of transform attempts",
			},
			[]string{"backend", "status"},
		),
		fitDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "graft_fit_duration_seconds",
			Help: "Duration of fit calls",
		}),
		transformDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "graft_transform_duration_seconds",
			Help: "Duration of transform calls",
		}),
		rows: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "graft_rows_transformed_total",
			Help: "Total number of rows pushed through successful transforms",
		}),
	}
}

// MustRegister registers every collector on the given registerer.
func (m *Metrics) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(m.fits, m.transforms, m.fitDuration, m.transformDuration, m.rows)
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnFit: func(e *domain.FitEvent) {
			m.fits.WithLabelValues(e.Backend, status(e.Err)).Inc()
			m.fitDuration.Observe(e.Duration.Seconds())
		},
		OnTransform: func(e *domain.TransformEvent) {
			m.transforms.WithLabelValues(e.Backend, status(e.Err)).Inc()
			m.transformDuration.Observe(e.Duration.Seconds())
			if e.Err == nil {
				m.rows.Add(float64(e.Rows))
			}
		},
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// JoinHooks fans each lifecycle event out to every hook set, in order.
func JoinHooks(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	var fits []func(*domain.FitEvent)
	var transforms []func(*domain.TransformEvent)
	for _, h := range hooks {
		if h.OnFit != nil {
			fits = append(fits, h.OnFit)
		}
		if h.OnTransform != nil {
			transforms = append(transforms, h.OnTransform)
		}
	}

	var out domain.LifecycleHooks
	if len(fits) > 0 {
		out.OnFit = func(e *domain.FitEvent) {
			for _, fn := range fits {
				fn(e)
			}
		}
	}
	if len(transforms) > 0 {
		out.OnTransform = func(e *domain.TransformEvent) {
			for _, fn := range transforms {
				fn(e)
			}
		}
	}
	return out
}
