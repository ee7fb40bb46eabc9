package glsapi

import (
	"fmt"
	"strings"

	"parcellabel/internal/core/domain/model/shipment"
)

// CarrierError is a PrintLabels call the carrier answered with a non-2xx
// status or a non-empty error list.
type CarrierError struct {
	StatusCode int
	Messages   []string
}

func (e *CarrierError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("gls: carrier rejected the request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("gls: carrier rejected the request: %s", strings.Join(e.Messages, "; "))
}

func (e *CarrierError) Unwrap() error {
	return shipment.ErrCarrierRejected
}

func newCarrierErrorFromList(status int, list []labelError) *CarrierError {
	messages := make([]string, 0, len(list))
	for _, item := range list {
		msg := item.ErrorDescription
		if item.ErrorCode != "" {
			msg = fmt.Sprintf("[%s] %s", item.ErrorCode, msg)
		}
		messages = append(messages, strings.TrimSpace(msg))
	}
	return &CarrierError{StatusCode: status, Messages: messages}
}
