package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"parcellabel/internal/core/application/usecases/commands"
	"parcellabel/internal/core/application/usecases/queries"
	"parcellabel/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// LabelGenerator runs the label workflow for one order.
type LabelGenerator interface {
	Handle(ctx context.Context, cmd commands.GenerateLabelCommand) (commands.GenerateLabelResult, error)
}

// ShipmentInfoReader reads the shipment view of one order.
type ShipmentInfoReader interface {
	Handle(ctx context.Context, query queries.GetShipmentInfoQuery) (queries.ShipmentInfo, error)
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	generateLabelHandler   LabelGenerator
	getShipmentInfoHandler ShipmentInfoReader
	logger                 *slog.Logger
}

func NewServer(
	generateLabelHandler LabelGenerator,
	getShipmentInfoHandler ShipmentInfoReader,
	logger *slog.Logger,
) *Server {
	return &Server{
		generateLabelHandler:   generateLabelHandler,
		getShipmentInfoHandler: getShipmentInfoHandler,
		logger:                 logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the health check and the order endpoints on e.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	orders := e.Group("/api/v1/orders")
	orders.POST("/:id/label", s.GenerateLabel)
	orders.GET("/:id/shipment", s.GetShipment)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

type labelResponse struct {
	Success      bool     `json:"success"`
	LabelURL     string   `json:"label_url"`
	TrackingCode string   `json:"tracking_code"`
	ParcelID     string   `json:"parcel_id"`
	Warnings     []string `json:"warnings"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// GenerateLabel handles POST /api/v1/orders/:id/label.
func (s *Server) GenerateLabel(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err)
	}

	cmd, err := commands.NewGenerateLabelCommand(orderID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err)
	}

	result, err := s.generateLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, statusFor(err), err)
	}

	response := labelResponse{
		Success:  true,
		Warnings: result.Warnings(),
	}
	if result.Label != nil {
		response.LabelURL = result.Label.URL
	}
	if result.Tracking != nil {
		response.TrackingCode = result.Tracking.TrackingCode
		response.ParcelID = result.Tracking.ParcelID
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/v1/orders/:id/shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err)
	}

	query, err := queries.NewGetShipmentInfoQuery(orderID)
	if err != nil {
		return s.writeError(ctx, http.StatusBadRequest, err)
	}

	info, err := s.getShipmentInfoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, statusFor(err), err)
	}

	return ctx.JSON(http.StatusOK, info)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("order id", err)
	}
	return id, nil
}

func (s *Server) writeError(ctx echo.Context, status int, err error) error {
	if status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"path", ctx.Path(),
			"status", status,
			"error", err,
		)
	}
	return ctx.JSON(status, errorResponse{Error: err.Error()})
}
