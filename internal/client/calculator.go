package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	api "github.com/dx3mirror/IntegralCalculator/api/v1alpha1"
)

// Calculator is an HTTP client for the integral calculator service.
type Calculator struct {
	baseURL    string
	httpClient *http.Client
}

func NewCalculator(baseURL string, timeout time.Duration) *Calculator {
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Calculator{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Calculator) CreateCalculation(ctx context.Context, req api.CalculationCreate) (*api.Calculation, error) {
	url := fmt.Sprintf("%s/api/v1alpha1/calculations", c.baseURL)

	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "failed to call calculator service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusCreated {
		return nil, serviceError(resp.StatusCode, bodyBytes)
	}

	calculation := api.Calculation{}
	if err := json.Unmarshal(bodyBytes, &calculation); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}

	return &calculation, nil
}

func (c *Calculator) ListCalculations(ctx context.Context, rule string) (api.CalculationList, error) {
	url := fmt.Sprintf("%s/api/v1alpha1/calculations", c.baseURL)
	if rule != "" {
		url = fmt.Sprintf("%s?rule=%s", url, rule)
	}

	calculations := api.CalculationList{}
	if err := c.get(ctx, url, &calculations); err != nil {
		return nil, err
	}

	return calculations, nil
}

func (c *Calculator) GetCalculation(ctx context.Context, id uuid.UUID) (*api.Calculation, error) {
	url := fmt.Sprintf("%s/api/v1alpha1/calculations/%s", c.baseURL, id)

	calculation := api.Calculation{}
	if err := c.get(ctx, url, &calculation); err != nil {
		return nil, err
	}

	return &calculation, nil
}

func (c *Calculator) DeleteCalculation(ctx context.Context, id uuid.UUID) error {
	url := fmt.Sprintf("%s/api/v1alpha1/calculations/%s", c.baseURL, id)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "failed to call calculator service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp.StatusCode, bodyBytes)
	}

	return nil
}

func (c *Calculator) ListRules(ctx context.Context) (*api.RuleList, error) {
	url := fmt.Sprintf("%s/api/v1alpha1/rules", c.baseURL)

	rules := api.RuleList{}
	if err := c.get(ctx, url, &rules); err != nil {
		return nil, err
	}

	return &rules, nil
}

func (c *Calculator) Health(ctx context.Context) error {
	url := fmt.Sprintf("%s/health", c.baseURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "failed to call calculator service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Drain body to enable connection reuse
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calculator service health check returned status %d", resp.StatusCode)
	}

	return nil
}

func (c *Calculator) get(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return errors.Wrap(err, "failed to call calculator service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode != http.StatusOK {
		return serviceError(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return errors.Wrap(err, "failed to decode response")
	}

	return nil
}

// serviceError shapes a non-2xx response into an error, preferring the
// message carried by the service's error body.
func serviceError(statusCode int, body []byte) error {
	apiErr := api.Error{}
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("calculator service returned status %d: %s", statusCode, apiErr.Message)
	}
	return fmt.Errorf("calculator service returned status %d: %s", statusCode, string(body))
}
