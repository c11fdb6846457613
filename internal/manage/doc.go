// Package manage defines the capability surface a node-management backend
// must provide. A backend (docker containers or host daemon processes) is
// addressed through the Driver interface; start/stop intents are queued on a
// Generator and flushed through the driver as one batch.
package manage
