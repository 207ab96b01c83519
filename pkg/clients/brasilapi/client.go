package brasilapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/navarrastar/form-autofill/pkg/logger"
	"github.com/navarrastar/form-autofill/pkg/models"
)

//go:generate mockgen -destination=../mocks/mock_brasilapi.go -package=mocks -mock_names=Client=MockBrasilAPIClient github.com/navarrastar/form-autofill/pkg/clients/brasilapi Client

// ErrNotFound is returned for any non-success status from the CBO endpoint
var ErrNotFound = errors.New("not found")

// Client defines the interface for interacting with the BrasilAPI CBO endpoint
type Client interface {
	LookupOccupation(ctx context.Context, code string) (*models.OccupationRecord, error)
}

type clientImpl struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new BrasilAPI client. A nil httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &clientImpl{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
	}
}

func (c *clientImpl) LookupOccupation(ctx context.Context, code string) (*models.OccupationRecord, error) {
	url := fmt.Sprintf("%s/cbo/v1/%s", c.baseURL, code)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Add("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error calling BrasilAPI: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Debug("BrasilAPI CBO lookup rejected",
			zap.String("code", code),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("CBO %s: %w (status %d)", code, ErrNotFound, resp.StatusCode)
	}

	var record models.OccupationRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("error parsing response: %w", err)
	}

	return &record, nil
}
