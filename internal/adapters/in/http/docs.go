// Package http exposes the label workflow and the shipment view over echo.
//
// Routes:
//
//	GET  /health                       liveness check
//	POST /api/v1/orders/:id/label      generate a label for the order
//	GET  /api/v1/orders/:id/shipment   pickup, label and tracking of the order
//
// Failures are rendered as {"success":false,"error":"..."}.
package http
