// Package metrics records Prometheus counters and histograms for topology
// generation runs: how many graphs of each kind were built, how long that
// took, their sizes, and how many passed structural verification.
//
// The CLI creates one Registry per invocation and, when asked, dumps it as a
// textfile for node_exporter's textfile collector.
package metrics
