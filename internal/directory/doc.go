// Package directory models the external system that provisions users. The
// dashboard only ever sees it as a slow call that eventually succeeds or
// fails, so the package exposes a one-method Client interface plus a
// simulated implementation with tunable latency and failure rate.
package directory
