// Package services holds the stateless domain logic of label generation.
//
// The package includes:
//   - ServiceListComposer: decides which optional carrier services apply to an order
//   - PayloadAssembler: builds the carrier label request from settings, order and services
//
// Both are pure: the same inputs always produce the same output, and neither
// performs I/O beyond the express lookup snapshot it is given.
package services
