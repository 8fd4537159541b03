package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/incidents"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/ingest"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/router"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/storage"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/matryer/is"
)

func TestHealthEndpointReturns204(t *testing.T) {
	is, ts, _, _ := testSetup(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(http.StatusNoContent, resp.StatusCode)
}

func TestSubmitLogReturns201(t *testing.T) {
	is, ts, ingestor, _ := testSetup(t)
	defer ts.Close()

	resp := post(is, ts.URL+"/api/v0/logs", `{"serviceID":"checkout","level":"ERROR","message":"payment provider timeout"}`)
	is.Equal(http.StatusCreated, resp.StatusCode)

	is.Equal(1, len(ingestor.SubmitCalls()))
	is.Equal("checkout", ingestor.SubmitCalls()[0].Record.ServiceID)
	is.True(!ingestor.SubmitCalls()[0].Record.Timestamp.IsZero())
}

func TestSubmitLogRejectsUnknownLevel(t *testing.T) {
	is, ts, ingestor, _ := testSetup(t)
	defer ts.Close()

	resp := post(is, ts.URL+"/api/v0/logs", `{"serviceID":"checkout","level":"LOUD","message":"?"}`)
	is.Equal(http.StatusBadRequest, resp.StatusCode)

	is.Equal(0, len(ingestor.SubmitCalls()))
}

func TestSubmitLogRejectsMissingServiceID(t *testing.T) {
	is, ts, _, _ := testSetup(t)
	defer ts.Close()

	resp := post(is, ts.URL+"/api/v0/logs", `{"level":"INFO","message":"anonymous"}`)
	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestSubmitLogMapsCapacityPressureTo429(t *testing.T) {
	is, ts, ingestor, _ := testSetup(t)
	defer ts.Close()

	ingestor.SubmitFunc = func(ctx context.Context, record types.LogRecord) error {
		return ingest.ErrCapacityExceeded
	}

	resp := post(is, ts.URL+"/api/v0/logs", `{"serviceID":"checkout","level":"ERROR","message":"boom"}`)
	is.Equal(http.StatusTooManyRequests, resp.StatusCode)
}

func TestQueryIncidentsReturnsCollectionEnvelope(t *testing.T) {
	is, ts, _, svc := testSetup(t)
	defer ts.Close()

	svc.QueryFunc = func(ctx context.Context, offset, limit int, statuses []string) (types.Collection[types.Incident], error) {
		return types.Collection[types.Incident]{
			Data: []types.Incident{
				{ID: "inc-1", Title: "an incident", Severity: types.IncidentSeverityHigh, Status: types.IncidentStatusOpen},
			},
			Count:      1,
			Offset:     uint64(offset),
			Limit:      uint64(limit),
			TotalCount: 14,
		}, nil
	}

	resp, err := http.Get(ts.URL + "/api/v0/incidents?offset=5&limit=1&status=OPEN&status=BOGUS")
	is.NoErr(err)
	defer resp.Body.Close()

	is.Equal(http.StatusOK, resp.StatusCode)

	var envelope struct {
		Meta struct {
			TotalRecords uint64 `json:"totalRecords"`
			Offset       uint64 `json:"offset"`
			Limit        uint64 `json:"limit"`
		} `json:"meta"`
		Data []types.Incident `json:"data"`
	}
	is.NoErr(json.NewDecoder(resp.Body).Decode(&envelope))

	is.Equal(uint64(14), envelope.Meta.TotalRecords)
	is.Equal(uint64(5), envelope.Meta.Offset)
	is.Equal(1, len(envelope.Data))
	is.Equal("inc-1", envelope.Data[0].ID)

	is.Equal(1, len(svc.QueryCalls()))
	is.Equal([]string{"OPEN"}, svc.QueryCalls()[0].Statuses)
}

func TestGetUnknownIncidentReturns404(t *testing.T) {
	is, ts, _, svc := testSetup(t)
	defer ts.Close()

	svc.GetByIDFunc = func(ctx context.Context, incidentID string) (types.Incident, error) {
		return types.Incident{}, incidents.ErrIncidentNotFound
	}

	resp, err := http.Get(ts.URL + "/api/v0/incidents/nosuchincident")
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(http.StatusNotFound, resp.StatusCode)
}

func TestPatchIncidentStatus(t *testing.T) {
	is, ts, _, svc := testSetup(t)
	defer ts.Close()

	now := time.Now().UTC()
	svc.UpdateStatusFunc = func(ctx context.Context, incidentID string, status types.IncidentStatus) (types.Incident, error) {
		return types.Incident{ID: incidentID, Status: status, ResolvedAt: &now}, nil
	}

	resp := patch(is, ts.URL+"/api/v0/incidents/inc-1", `{"status":"RESOLVED"}`)
	defer resp.Body.Close()

	is.Equal(http.StatusOK, resp.StatusCode)

	var updated types.Incident
	is.NoErr(json.NewDecoder(resp.Body).Decode(&updated))
	is.Equal(types.IncidentStatusResolved, updated.Status)
	is.True(updated.ResolvedAt != nil)
}

func TestPatchIncidentRejectsBackwardsTransition(t *testing.T) {
	is, ts, _, svc := testSetup(t)
	defer ts.Close()

	svc.UpdateStatusFunc = func(ctx context.Context, incidentID string, status types.IncidentStatus) (types.Incident, error) {
		return types.Incident{}, incidents.ErrInvalidTransition
	}

	resp := patch(is, ts.URL+"/api/v0/incidents/inc-1", `{"status":"OPEN"}`)
	resp.Body.Close()

	is.Equal(http.StatusBadRequest, resp.StatusCode)
}

func TestQueryLogsForwardsFilters(t *testing.T) {
	is, ts, _, _ := testSetup(t)
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/v0/logs?serviceID=checkout&level=ERROR&limit=5")
	is.NoErr(err)
	resp.Body.Close()

	is.Equal(http.StatusOK, resp.StatusCode)
}

func post(is *is.I, url, body string) *http.Response {
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	is.NoErr(err)
	resp.Body.Close()
	return resp
}

func patch(is *is.I, url, body string) *http.Response {
	req, err := http.NewRequest(http.MethodPatch, url, bytes.NewBufferString(body))
	is.NoErr(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)
	return resp
}

func testSetup(t *testing.T) (*is.I, *httptest.Server, *ingest.LogIngestorMock, *incidents.IncidentServiceMock) {
	is := is.New(t)
	ctx := context.Background()

	ingestor := &ingest.LogIngestorMock{
		SubmitFunc: func(ctx context.Context, record types.LogRecord) error {
			return nil
		},
	}

	svc := &incidents.IncidentServiceMock{}

	logs := &LogRepositoryMock{
		QueryLogsFunc: func(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.LogRecord], error) {
			return types.Collection[types.LogRecord]{}, nil
		},
	}

	r, err := RegisterHandlers(ctx, router.New("testservice"), ingestor, svc, logs)
	is.NoErr(err)

	return is, httptest.NewServer(r), ingestor, svc
}
