// Package ports defines the contracts between the label workflow and the
// outside world: settings and order storage, the carrier API, label storage,
// per-order locking and the submission log.
package ports
