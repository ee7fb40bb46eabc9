package http

import (
	"context"
	"errors"
	"net/http"

	"parcellabel/internal/core/application/usecases/commands"
	"parcellabel/internal/core/domain/model/shipment"
	"parcellabel/internal/core/domain/services"
	"parcellabel/internal/pkg/errs"
)

// statusFor maps a use case error onto an HTTP status.
func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK

	case errors.Is(err, commands.ErrBusy):
		return http.StatusConflict

	case errors.Is(err, services.ErrMissingPickupInfo):
		return http.StatusUnprocessableEntity

	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound

	case errors.Is(err, shipment.ErrCarrierRejected),
		errors.Is(err, shipment.ErrCarrierUnreachable):
		return http.StatusBadGateway

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout

	default:
		return http.StatusInternalServerError
	}
}
