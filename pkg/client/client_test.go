package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/matryer/is"
)

func TestSubmitLog(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal(http.MethodPost, r.Method)
		is.Equal("/api/v0/logs", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	c := New(server.URL)

	err := c.SubmitLog(context.Background(), types.LogRecord{
		ServiceID: "checkout",
		Timestamp: time.Now().UTC(),
		Level:     types.LogLevelError,
		Message:   "payment provider timeout",
	})
	is.NoErr(err)
}

func TestSubmitLogSurfacesCapacityPressure(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	c := New(server.URL)

	err := c.SubmitLog(context.Background(), types.LogRecord{ServiceID: "checkout", Level: types.LogLevelInfo})
	is.True(err != nil)
}

func TestGetIncident(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is.Equal("/api/v0/incidents/inc-1", r.URL.Path)
		w.Header().Add("Content-Type", "application/json")
		w.Write([]byte(`{"id":"inc-1","title":"error rate anomaly","severity":"CRITICAL","status":"OPEN"}`))
	}))
	defer server.Close()

	c := New(server.URL)

	incident, err := c.GetIncident(context.Background(), "inc-1")
	is.NoErr(err)
	is.Equal("inc-1", incident.ID)
	is.Equal(types.IncidentSeverityCritical, incident.Severity)
}

func TestGetUnknownIncidentFails(t *testing.T) {
	is := is.New(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL)

	_, err := c.GetIncident(context.Background(), "nosuchincident")
	is.True(err != nil)
}
