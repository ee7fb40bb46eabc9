// Package shipment models what travels to and from the carrier: the service
// list, the label request, the carrier's response, and the artifacts the
// label workflow stores against an order. It also holds the workflow's
// state machine.
//
// Workflow states:
//
//	Idle ──> Validating ──> Submitting ──> Interpreting ──> Persisted
//	              │              │
//	              └──> Failed <──┘
package shipment
