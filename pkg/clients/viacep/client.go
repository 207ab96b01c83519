package viacep

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/logger"
	"github.com/navarrastar/form-autofill/pkg/models"
)

//go:generate mockgen -destination=../mocks/mock_viacep.go -package=mocks -mock_names=Client=MockViaCEPClient github.com/navarrastar/form-autofill/pkg/clients/viacep Client

// Client defines the interface for interacting with the ViaCEP API
type Client interface {
	LookupAddress(ctx context.Context, cep string) (*models.AddressRecord, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new ViaCEP client. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

// LookupAddress fetches the address for an 8 digit CEP. A record with Error
// set means ViaCEP does not know the code; transport and decode problems are
// returned as errors.
func (c *clientImpl) LookupAddress(ctx context.Context, cep string) (*models.AddressRecord, error) {
	url := fmt.Sprintf("%s/%s/json/", c.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling ViaCEP: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	// ViaCEP answers malformed codes with an HTML 400 page, which fails here
	var record models.AddressRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("error parsing response (status %d): %w", resp.StatusCode, err)
	}

	logger.Debug("ViaCEP lookup finished",
		zap.String("cep", cep),
		zap.Int("status", resp.StatusCode),
		zap.Bool("erro", bool(record.Error)))

	return &record, nil
}
