package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parcellabel/internal/core/domain/model/settings"
	"parcellabel/internal/core/domain/model/shipment"
	"parcellabel/internal/core/domain/services"
	"parcellabel/internal/core/ports"
)

// ErrBusy is returned when a label run for the same order is still in flight.
var ErrBusy = errors.New("label generation for this order is already in progress")

// GenerateLabelCommandHandler runs the label workflow for one order:
// validate and build the request, submit it once, then store whatever the
// carrier returned.
//
// Guarantees:
//   - at most one run per order is in flight; a concurrent call gets ErrBusy
//   - nothing is submitted when settings, order or service composition fail
//   - carrier errors are returned as they came, without retry
//   - the label and the tracking data are stored independently; a failure of
//     one is reported in the result and does not fail the run
type GenerateLabelCommandHandler struct {
	logger      *slog.Logger
	settings    ports.SettingsStore
	orders      ports.OrderStore
	composer    services.ServiceListComposer
	assembler   services.PayloadAssembler
	carrier     ports.CarrierClient
	blobs       ports.BlobStore
	lock        ports.OrderLock
	submissions ports.SubmissionLog
	now         func() time.Time
}

// NewGenerateLabelCommandHandler creates the handler. submissions may be nil.
func NewGenerateLabelCommandHandler(
	logger *slog.Logger,
	settingsStore ports.SettingsStore,
	orders ports.OrderStore,
	composer services.ServiceListComposer,
	assembler services.PayloadAssembler,
	carrier ports.CarrierClient,
	blobs ports.BlobStore,
	lock ports.OrderLock,
	submissions ports.SubmissionLog,
) *GenerateLabelCommandHandler {
	return &GenerateLabelCommandHandler{
		logger:      logger.With("component", "generate-label"),
		settings:    settingsStore,
		orders:      orders,
		composer:    composer,
		assembler:   assembler,
		carrier:     carrier,
		blobs:       blobs,
		lock:        lock,
		submissions: submissions,
		now:         time.Now,
	}
}

// Handle executes the workflow. A returned error means the run ended Failed
// (or never started for ErrBusy); otherwise the result reports the stored
// artifacts and any storage warnings.
func (h *GenerateLabelCommandHandler) Handle(ctx context.Context, cmd GenerateLabelCommand) (GenerateLabelResult, error) {
	if err := cmd.Validate(); err != nil {
		return GenerateLabelResult{}, err
	}

	orderID := cmd.OrderID()
	unlock, ok := h.lock.TryLock(orderID)
	if !ok {
		h.logger.WarnContext(ctx, "label run rejected, order is busy", "order_id", orderID)
		return GenerateLabelResult{}, ErrBusy
	}
	defer unlock()

	// Once submitted, the run finishes even if the caller goes away.
	runCtx := context.WithoutCancel(ctx)

	run := shipment.NewRun(orderID, h.now())
	logger := h.logger.With("order_id", orderID, "run_id", run.ID().String())
	defer h.recordRun(runCtx, logger, run)

	result := GenerateLabelResult{RunID: run.ID()}

	if err := run.Advance(shipment.Validating); err != nil {
		return result, err
	}
	req, err := h.buildRequest(ctx, orderID)
	if err != nil {
		return h.fail(ctx, logger, run, result, err)
	}

	if err = run.Advance(shipment.Submitting); err != nil {
		return result, err
	}
	logger.InfoContext(runCtx, "submitting label request",
		"state", run.State().String(),
		"services", len(req.ParcelList[0].ServiceList),
	)
	resp, err := h.carrier.Submit(runCtx, req)
	if err != nil {
		return h.fail(runCtx, logger, run, result, err)
	}

	if err = run.Advance(shipment.Interpreting); err != nil {
		return result, err
	}
	result = h.storeArtifacts(runCtx, logger.With("state", run.State().String()), orderID, resp, result)

	if err = run.Advance(shipment.Persisted); err != nil {
		return result, err
	}
	result.State = run.State()

	logger.InfoContext(runCtx, "label run finished",
		"state", run.State().String(),
		"label", result.Label != nil,
		"tracking", result.Tracking != nil,
	)
	return result, nil
}

func (h *GenerateLabelCommandHandler) buildRequest(ctx context.Context, orderID int64) (shipment.ShipmentRequest, error) {
	ms, err := settings.Load(ctx, h.settings)
	if err != nil {
		return shipment.ShipmentRequest{}, fmt.Errorf("load merchant settings: %w", err)
	}

	o, err := h.orders.Get(ctx, orderID)
	if err != nil {
		return shipment.ShipmentRequest{}, fmt.Errorf("load order: %w", err)
	}

	serviceList, err := h.composer.Compose(ms, o)
	if err != nil {
		return shipment.ShipmentRequest{}, err
	}

	return h.assembler.Assemble(ms, o, serviceList)
}

func (h *GenerateLabelCommandHandler) fail(
	ctx context.Context,
	logger *slog.Logger,
	run *shipment.Run,
	result GenerateLabelResult,
	reason error,
) (GenerateLabelResult, error) {
	from := run.State()
	if err := run.Fail(reason); err != nil {
		return result, errors.Join(reason, err)
	}
	result.State = run.State()

	logger.WarnContext(ctx, "label run failed",
		"state", run.State().String(),
		"failed_in", from.String(),
		"error", reason,
	)
	return result, reason
}

func (h *GenerateLabelCommandHandler) storeArtifacts(
	ctx context.Context,
	logger *slog.Logger,
	orderID int64,
	resp shipment.CarrierResponse,
	result GenerateLabelResult,
) GenerateLabelResult {
	if resp.HasLabel() {
		label, err := h.storeLabel(ctx, orderID, resp.Labels)
		if err != nil {
			logger.ErrorContext(ctx, "label was not stored", "error", err)
			result.LabelErr = err
		} else {
			result.Label = &label
		}
	}

	if entry, ok := resp.FirstTracking(); ok {
		tracking := shipment.TrackingRecord{
			OrderID:      orderID,
			TrackingCode: entry.ParcelNumber,
			ParcelID:     entry.ParcelID,
		}
		if err := h.orders.SaveTracking(ctx, orderID, tracking); err != nil {
			logger.ErrorContext(ctx, "tracking was not stored", "error", err)
			result.TrackingErr = fmt.Errorf("save tracking: %w", err)
		} else {
			result.Tracking = &tracking
		}
	}

	if !resp.HasLabel() && len(resp.Tracking) == 0 {
		logger.WarnContext(ctx, noArtifactsWarning)
	}
	return result
}

func (h *GenerateLabelCommandHandler) storeLabel(ctx context.Context, orderID int64, data []byte) (shipment.LabelArtifact, error) {
	name := shipment.LabelFileName(orderID)

	url, err := h.blobs.Write(ctx, name, data)
	if err != nil {
		return shipment.LabelArtifact{}, fmt.Errorf("write label %s: %w", name, err)
	}

	label := shipment.LabelArtifact{OrderID: orderID, FileName: name, URL: url}
	if err = h.orders.SaveLabel(ctx, orderID, label); err != nil {
		return shipment.LabelArtifact{}, fmt.Errorf("save label reference: %w", err)
	}
	return label, nil
}

func (h *GenerateLabelCommandHandler) recordRun(ctx context.Context, logger *slog.Logger, run *shipment.Run) {
	if !run.State().IsTerminal() {
		logger.ErrorContext(ctx, "label run left in a non-terminal state", "state", run.State().String())
	}
	if h.submissions == nil {
		return
	}
	if err := h.submissions.Append(ctx, run, h.now()); err != nil {
		logger.ErrorContext(ctx, "submission log write failed", "error", err)
	}
}
