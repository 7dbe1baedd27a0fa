// Package prometheus exports asynchandler invocation metrics to Prometheus.
//
//	collector := prometheus.New(prometheus.WithNamespace("api"))
//
//	fetch := asynchandler.Handle(fetchUsers, onError,
//		asynchandler.WithName("fetch_users"),
//		asynchandler.WithObserver(collector))
//
//	http.Handle("/metrics", collector.Handler())
//
// Exposed metrics, labeled by handler name and outcome:
//
//   - <namespace>_invocations_total
//   - <namespace>_invocation_duration_seconds
package prometheus
