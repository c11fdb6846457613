// Package retry provides bounded retries with exponential backoff for
// driver calls against a backend that may be transiently busy.
package retry
