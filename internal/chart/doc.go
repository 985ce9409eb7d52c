// Package chart renders a meeting-time report as an interactive HTML
// chart and opens it in the browser. The aggregator never depends on
// this package; it only consumes a finished report.
package chart
