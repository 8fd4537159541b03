package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"log/slog"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/incidents"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/application/ingest"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/storage"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/tracing"
	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("incident-log-mgmt/api")

// LogRepository is the read side of the log store exposed over the API.
type LogRepository interface {
	QueryLogs(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.LogRecord], error)
}

func RegisterHandlers(ctx context.Context, router *chi.Mux, ingestor ingest.LogIngestor, incidentSvc incidents.IncidentService, logs LogRepository) (*chi.Mux, error) {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	log := logging.GetFromContext(ctx)

	router.Route("/api/v0", func(r chi.Router) {
		r.Post("/logs", ingestLogHandler(log, ingestor))
		r.Get("/logs", queryLogsHandler(log, logs))

		r.Route("/incidents", func(r chi.Router) {
			r.Get("/", queryIncidentsHandler(log, incidentSvc))
			r.Post("/", createIncidentHandler(log, incidentSvc))
			r.Get("/{incidentID}", getIncidentDetails(log, incidentSvc))
			r.Patch("/{incidentID}", patchIncidentHandler(log, incidentSvc))
		})
	})

	return router, nil
}

type meta struct {
	TotalRecords uint64 `json:"totalRecords"`
	Offset       uint64 `json:"offset"`
	Limit        uint64 `json:"limit"`
}

type collectionResponse[T any] struct {
	Meta meta `json:"meta"`
	Data []T  `json:"data"`
}

func newCollectionResponse[T any](c types.Collection[T]) collectionResponse[T] {
	return collectionResponse[T]{
		Meta: meta{
			TotalRecords: c.TotalCount,
			Offset:       c.Offset,
			Limit:        c.Limit,
		},
		Data: c.Data,
	}
}

func ingestLogHandler(log *slog.Logger, ingestor ingest.LogIngestor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "ingest-log")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var record types.LogRecord
		err = json.Unmarshal(body, &record)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if record.ServiceID == "" || !record.Level.IsValid() {
			requestLogger.Debug("rejecting malformed log record")
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if record.Timestamp.IsZero() {
			record.Timestamp = time.Now().UTC()
		}

		err = ingestor.Submit(ctx, record)
		if err != nil {
			if errors.Is(err, ingest.ErrCapacityExceeded) {
				requestLogger.Warn("ingestion buffer at capacity, rejecting record")
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}

			requestLogger.Error("unable to submit log record", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusCreated)
	}
}

func queryLogsHandler(log *slog.Logger, logs LogRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-logs")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		conditions := []storage.ConditionFunc{
			storage.WithOffset(parseQueryInt(r, "offset", 0)),
			storage.WithLimit(parseQueryInt(r, "limit", 25)),
		}

		if incidentID := r.URL.Query().Get("incidentID"); incidentID != "" {
			conditions = append(conditions, storage.WithIncidentID(incidentID))
		}
		if serviceID := r.URL.Query().Get("serviceID"); serviceID != "" {
			conditions = append(conditions, storage.WithServiceID(serviceID))
		}
		if level := r.URL.Query().Get("level"); level != "" {
			conditions = append(conditions, storage.WithLevel(level))
		}

		collection, err := logs.QueryLogs(ctx, conditions...)
		if err != nil {
			requestLogger.Error("unable to query log records", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(newCollectionResponse(collection))
		if err != nil {
			requestLogger.Error("unable to marshal log records", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func queryIncidentsHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "query-incidents")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		offset := parseQueryInt(r, "offset", 0)
		limit := parseQueryInt(r, "limit", 25)

		statuses := lo.Filter(r.URL.Query()["status"], func(s string, _ int) bool {
			return types.IncidentStatus(s).IsValid()
		})

		collection, err := svc.Query(ctx, offset, limit, statuses)
		if err != nil {
			requestLogger.Error("unable to query incidents", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(newCollectionResponse(collection))
		if err != nil {
			requestLogger.Error("unable to marshal incidents", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func createIncidentHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "create-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		body, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var incident types.Incident
		err = json.Unmarshal(body, &incident)
		if err != nil {
			requestLogger.Error("unable to unmarshal body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		created, err := svc.Add(ctx, incident)
		if err != nil {
			requestLogger.Error("unable to create incident", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		b, err := json.Marshal(created)
		if err != nil {
			requestLogger.Error("unable to marshal incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(b)
	}
}

func getIncidentDetails(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "get-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		incidentID := chi.URLParam(r, "incidentID")
		if incidentID != "" {
			requestLogger = requestLogger.With(slog.String("incident_id", incidentID))
		}

		incident, err := svc.GetByID(ctx, incidentID)
		if errors.Is(err, incidents.ErrIncidentNotFound) {
			requestLogger.Debug("incident not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err != nil {
			requestLogger.Error("could not fetch incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		b, err := json.Marshal(incident)
		if err != nil {
			requestLogger.Error("unable to marshal incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(b)
	}
}

func patchIncidentHandler(log *slog.Logger, svc incidents.IncidentService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var err error
		defer r.Body.Close()

		ctx, span := tracer.Start(r.Context(), "patch-incident")
		defer func() { tracing.RecordAnyErrorAndEndSpan(err, span) }()
		_, ctx, requestLogger := o11y.AddTraceIDToLoggerAndStoreInContext(span, log, ctx)

		incidentID := chi.URLParam(r, "incidentID")
		if incidentID != "" {
			requestLogger = requestLogger.With(slog.String("incident_id", incidentID))
		}

		b, err := io.ReadAll(r.Body)
		if err != nil {
			requestLogger.Error("unable to read body", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		var patch struct {
			Status types.IncidentStatus `json:"status"`
		}
		err = json.Unmarshal(b, &patch)
		if err != nil {
			requestLogger.Error("unable to unmarshal body into patch", "err", err.Error())
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		updated, err := svc.UpdateStatus(ctx, incidentID, patch.Status)
		if errors.Is(err, incidents.ErrIncidentNotFound) {
			requestLogger.Debug("incident not found")
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if errors.Is(err, incidents.ErrInvalidTransition) {
			requestLogger.Debug("invalid status transition", "status", string(patch.Status))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if err != nil {
			requestLogger.Error("unable to update incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		body, err := json.Marshal(updated)
		if err != nil {
			requestLogger.Error("unable to marshal incident", "err", err.Error())
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Add("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(body)
	}
}

func parseQueryInt(r *http.Request, name string, def int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return def
	}

	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}

	return n
}
