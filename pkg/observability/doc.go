/*
Package observability bridges applier lifecycle events to Prometheus.

Metrics owns the collectors (fit/transform counters, duration histograms,
a transformed-rows counter) and exposes them as LifecycleHooks, so an
Applier built with WithLifecycleHooks(metrics.Hooks()) feeds them without
knowing about Prometheus. JoinHooks composes several hook sets, letting
metrics run alongside custom audit hooks.
*/
package observability
