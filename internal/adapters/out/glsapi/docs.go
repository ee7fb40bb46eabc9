// Package glsapi is the HTTP client of the GLS MyGLS PrintLabels endpoint.
//
// The client sends one request per Submit call and never retries. Carrier
// refusals come back as *CarrierError, which wraps shipment.ErrCarrierRejected.
package glsapi
