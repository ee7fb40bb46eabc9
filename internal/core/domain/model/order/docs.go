// Package order provides the read-only projection of a shop order that the
// label workflow works from: shipping address, billing contact, total,
// payment and shipping method, and the pickup point the customer chose at
// checkout.
//
// Key business rules:
//   - Parcel locker and parcel shop methods deliver to a carrier pickup point
//     and therefore need a PickupSelection
//   - Cash on delivery is identified by the "cod" payment method
//   - Orders are never mutated by the workflow; label and tracking artifacts
//     are stored next to them
package order
