// Package analytics derives campaign performance metrics from raw
// per-recipient events. Counts come back from one aggregate query; rates are
// computed here with a uniform zero-denominator policy (all rates 0 when
// nothing was sent). Results are cached in Redis for a short TTL since
// dashboards poll these endpoints.
package analytics
