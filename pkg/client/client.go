package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("incident-log-mgmt-client")

// IncidentManagementClient submits log records to, and reads incidents from,
// a running incident-log-mgmt instance.
type IncidentManagementClient interface {
	SubmitLog(ctx context.Context, record types.LogRecord) error
	GetIncident(ctx context.Context, incidentID string) (types.Incident, error)
}

type incidentMgmtClient struct {
	url        string
	httpClient http.Client
}

func New(incidentMgmtURL string) IncidentManagementClient {
	return &incidentMgmtClient{
		url: incidentMgmtURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *incidentMgmtClient) SubmitLog(ctx context.Context, record types.LogRecord) error {
	var err error
	ctx, span := tracer.Start(ctx, "submit-log")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	body, err := json.Marshal(record)
	if err != nil {
		err = fmt.Errorf("failed to marshal log record: %w", err)
		return err
	}

	url := c.url + "/api/v0/logs"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to submit log record: %w", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		err = fmt.Errorf("ingestion rejected, server at capacity")
		return err
	}
	if resp.StatusCode != http.StatusCreated {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return err
	}

	return nil
}

func (c *incidentMgmtClient) GetIncident(ctx context.Context, incidentID string) (types.Incident, error) {
	var err error
	ctx, span := tracer.Start(ctx, "get-incident")
	defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()

	url := c.url + "/api/v0/incidents/" + incidentID

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return types.Incident{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("failed to retrieve incident: %w", err)
		return types.Incident{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		err = fmt.Errorf("no incident found with id %s", incidentID)
		return types.Incident{}, err
	}
	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("request failed with status code %d", resp.StatusCode)
		return types.Incident{}, err
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return types.Incident{}, err
	}

	incident := types.Incident{}

	err = json.Unmarshal(respBody, &incident)
	if err != nil {
		err = fmt.Errorf("failed to unmarshal response body: %w", err)
		return types.Incident{}, err
	}

	return incident, nil
}
