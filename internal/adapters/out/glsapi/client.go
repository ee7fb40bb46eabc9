package glsapi

import (
	"bytes"
	"context"
	"crypto/sha512"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"parcellabel/internal/core/domain/model/shipment"

	"github.com/goccy/go-json"
)

const maxErrorBody = 64 << 10

// Client submits label requests to GLS.
type Client struct {
	httpClient    *http.Client
	endpoint      string
	username      string
	password      byteArray
	webshopEngine string
	logger        *slog.Logger
}

// NewClient validates cfg and returns a client. The password is kept only as
// its SHA-512 digest, which is what the carrier authenticates.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("gls client config: %w", err)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	engine := cfg.WebshopEngine
	if engine == "" {
		engine = DefaultWebshopEngine
	}

	digest := sha512.Sum512([]byte(cfg.Password))

	return &Client{
		httpClient:    &http.Client{Timeout: timeout},
		endpoint:      cfg.endpoint(),
		username:      cfg.Username,
		password:      digest[:],
		webshopEngine: engine,
		logger:        logger.With("component", "gls-client"),
	}, nil
}

// Endpoint is the URL the client posts to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

func (c *Client) Submit(ctx context.Context, req shipment.ShipmentRequest) (shipment.CarrierResponse, error) {
	body, err := json.Marshal(printLabelsRequest{
		Username:        c.username,
		Password:        c.password,
		WebshopEngine:   c.webshopEngine,
		ShipmentRequest: req,
	})
	if err != nil {
		return shipment.CarrierResponse{}, fmt.Errorf("gls: encode request: %w", err)
	}

	var out printLabelsResponse
	status, err := c.execute(ctx, http.MethodPost, body, &out)
	if err != nil {
		return shipment.CarrierResponse{}, err
	}

	if len(out.PrintLabelsErrorList) > 0 {
		return shipment.CarrierResponse{}, newCarrierErrorFromList(status, out.PrintLabelsErrorList)
	}
	return out.toDomain(), nil
}

// execute performs one call and decodes a 2xx body into out.
func (c *Client) execute(ctx context.Context, method string, body []byte, out any) (int, error) {
	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, fmt.Errorf("gls: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	started := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("gls: send request: %w: %w", shipment.ErrCarrierUnreachable, err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "carrier responded",
		"status", resp.StatusCode,
		"duration", time.Since(started),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		carrierErr := &CarrierError{StatusCode: resp.StatusCode}
		if msg := strings.TrimSpace(string(raw)); msg != "" {
			carrierErr.Messages = []string{msg}
		}
		return resp.StatusCode, carrierErr
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("gls: decode response: %w", err)
	}
	return resp.StatusCode, nil
}
