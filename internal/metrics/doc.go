// Package metrics aggregates calendar events into a meeting-time
// report: total, working and non-working hours per response status,
// plus each status's share of the working-hour budget of the analysis
// window.
//
// Aggregation is a pure function of its inputs; it performs no I/O
// and the same events and window always produce the same report.
package metrics
