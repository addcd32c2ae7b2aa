package restapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hrms-lite/internal/domain/health"
	"github.com/cmlabs-hris/hrms-lite/internal/pkg/apiclient"
)

type healthRepositoryImpl struct {
	transport *apiclient.Transport
}

func NewHealthRepository(transport *apiclient.Transport) health.HealthRepository {
	return &healthRepositoryImpl{transport: transport}
}

// Check implements health.HealthRepository.
func (h *healthRepositoryImpl) Check(ctx context.Context) (health.Report, error) {
	var report health.Report
	err := h.transport.Get(ctx, "/health", nil, &report)
	if err == nil {
		return report, nil
	}

	// The API answers 503 with a regular report when its database is down.
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable && apiErr.RawBody != "" {
		if jsonErr := json.Unmarshal([]byte(apiErr.RawBody), &report); jsonErr == nil && report.Status != "" {
			return report, nil
		}
	}

	return health.Report{}, fmt.Errorf("failed to check API health: %w", err)
}
