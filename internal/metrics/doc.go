// Package metrics records run metrics for the devdocs tools.
//
// Components receive a Recorder and default to NoopRecorder, so nothing needs
// nil checks. When a textfile path is configured the CLI swaps in a
// PrometheusRecorder and writes its registry with WriteTextfile at the end of
// the run, for pickup by a node exporter textfile collector in CI.
//
//	reg := prometheus.NewRegistry()
//	recorder := metrics.NewPrometheusRecorder(reg)
//	gen := devdocs.NewGenerator(devdocs.Options{Recorder: recorder})
//	...
//	_ = metrics.WriteTextfile(path, reg)
package metrics
