// Package observability exposes Prometheus metrics for the conversion service.
//
// Metrics live on a private registry so that several services (or tests) can
// coexist in one process. Mount Handler() wherever metrics should be scraped.
package observability
