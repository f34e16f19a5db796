// Package estimator talks to the external delivery estimation engine over HTTP.
// The engine decides serviceability and delivery dates; this package only moves the
// question and the answer across the wire.
package estimator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dronedelivery/internal/core/domain/model/address"
	"dronedelivery/internal/core/ports"
)

// DefaultTimeout bounds each call to the engine unless overridden.
const DefaultTimeout = 5 * time.Second

var _ ports.DeliveryEstimator = (*HTTPDeliveryEstimator)(nil)

// StatusError reports a non-2xx answer from the engine.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("estimator responded with code %d: %s", e.Code, e.Body)
}

// HTTPDeliveryEstimator implements ports.DeliveryEstimator. It is safe for concurrent use.
type HTTPDeliveryEstimator struct {
	client  *http.Client
	baseURL string
}

// Option configures an HTTPDeliveryEstimator.
type Option func(*HTTPDeliveryEstimator)

// WithHTTPClient replaces the default client, whose timeout is DefaultTimeout.
func WithHTTPClient(client *http.Client) Option {
	return func(e *HTTPDeliveryEstimator) {
		e.client = client
	}
}

// WithTimeout replaces the default client with one bounded by timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(e *HTTPDeliveryEstimator) {
		e.client = &http.Client{Timeout: timeout}
	}
}

// NewHTTPDeliveryEstimator creates a client for the engine rooted at baseURL.
// It fails when baseURL is empty or cannot be parsed as a URL.
func NewHTTPDeliveryEstimator(baseURL string, opts ...Option) (*HTTPDeliveryEstimator, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("estimator base url is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("estimator base url: %w", err)
	}

	e := &HTTPDeliveryEstimator{
		client:  &http.Client{Timeout: DefaultTimeout},
		baseURL: baseURL,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// IsServiceable asks whether drones can reach destination.
func (e *HTTPDeliveryEstimator) IsServiceable(ctx context.Context, destination address.Address) (bool, error) {
	var resp serviceabilityResponse
	err := e.post(ctx, "serviceability", serviceabilityRequest{Destination: fromAddress(destination)}, &resp)
	if err != nil {
		return false, fmt.Errorf("check serviceability of %q: %w", destination.String(), err)
	}
	if resp.Serviceable == nil {
		return false, errors.New("check serviceability: response has no serviceable field")
	}
	return *resp.Serviceable, nil
}

// EstimateDelivery asks for the expected delivery date of a package shipped at shipDate.
func (e *HTTPDeliveryEstimator) EstimateDelivery(
	ctx context.Context,
	shipDate time.Time,
	origin address.Address,
	destination address.Address,
) (time.Time, error) {
	req := estimateRequest{
		ShipDate:    shipDate.UTC(),
		Origin:      fromAddress(origin),
		Destination: fromAddress(destination),
	}

	var resp estimateResponse
	if err := e.post(ctx, "estimates", req, &resp); err != nil {
		return time.Time{}, fmt.Errorf("estimate delivery to %q: %w", destination.String(), err)
	}
	if resp.DeliveryDate.IsZero() {
		return time.Time{}, errors.New("estimate delivery: response has no delivery date")
	}
	return resp.DeliveryDate, nil
}

func (e *HTTPDeliveryEstimator) post(ctx context.Context, resource string, in any, out any) error {
	endpoint, err := url.JoinPath(e.baseURL, "api", "v1", resource)
	if err != nil {
		return fmt.Errorf("build url: %w", err)
	}

	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
