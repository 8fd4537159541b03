package incidents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/metrics"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/internal/pkg/infrastructure/storage"
	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"

	"github.com/diwise/messaging-golang/pkg/messaging"
	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
	"github.com/google/uuid"
)

var (
	ErrIncidentNotFound  = fmt.Errorf("incident not found")
	ErrInvalidSeverity   = fmt.Errorf("invalid incident severity")
	ErrInvalidTransition = fmt.Errorf("invalid incident status transition")
)

// IncidentService is the single creation and mutation contract for
// incidents. The detection engine and the HTTP layer both go through it.
//
//go:generate moq -rm -out incidentservice_mock.go . IncidentService
type IncidentService interface {
	Add(ctx context.Context, incident types.Incident) (types.Incident, error)
	Query(ctx context.Context, offset, limit int, statuses []string) (types.Collection[types.Incident], error)
	GetByID(ctx context.Context, incidentID string) (types.Incident, error)
	UpdateStatus(ctx context.Context, incidentID string, status types.IncidentStatus) (types.Incident, error)
}

//go:generate moq -rm -out incidentrepository_mock.go . IncidentRepository
type IncidentRepository interface {
	AddIncident(ctx context.Context, incident types.Incident) error
	QueryIncidents(ctx context.Context, conditions ...storage.ConditionFunc) (types.Collection[types.Incident], error)
	GetIncident(ctx context.Context, conditions ...storage.ConditionFunc) (types.Incident, error)
	UpdateIncidentStatus(ctx context.Context, incidentID string, status types.IncidentStatus, resolvedAt *time.Time) error
}

type incidentSvc struct {
	storage   IncidentRepository
	messenger messaging.MsgContext
}

func New(s IncidentRepository, m messaging.MsgContext) IncidentService {
	return &incidentSvc{
		storage:   s,
		messenger: m,
	}
}

func (svc incidentSvc) Add(ctx context.Context, incident types.Incident) (types.Incident, error) {
	if incident.Title == "" {
		return types.Incident{}, fmt.Errorf("no title is set on incident")
	}
	if !incident.Severity.IsValid() {
		return types.Incident{}, ErrInvalidSeverity
	}
	if incident.ID == "" {
		incident.ID = uuid.NewString()
	}
	if incident.Status == "" {
		incident.Status = types.IncidentStatusOpen
	}
	if incident.CreatedAt.IsZero() {
		incident.CreatedAt = time.Now().UTC()
	}

	err := svc.storage.AddIncident(ctx, incident)
	if err != nil {
		return types.Incident{}, err
	}

	metrics.CountIncidentCreated(string(incident.Severity))

	svc.publish(ctx, &IncidentCreated{
		Incident:  incident,
		Timestamp: incident.CreatedAt,
	})

	return incident, nil
}

func (svc incidentSvc) Query(ctx context.Context, offset, limit int, statuses []string) (types.Collection[types.Incident], error) {
	conditions := []storage.ConditionFunc{
		storage.WithOffset(offset),
		storage.WithLimit(limit),
	}

	if len(statuses) > 0 {
		conditions = append(conditions, storage.WithStatuses(statuses))
	}

	incidents, err := svc.storage.QueryIncidents(ctx, conditions...)
	if err != nil {
		return types.Collection[types.Incident]{}, err
	}

	return incidents, nil
}

func (svc incidentSvc) GetByID(ctx context.Context, incidentID string) (types.Incident, error) {
	incident, err := svc.storage.GetIncident(ctx, storage.WithIncidentID(incidentID))
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Incident{}, ErrIncidentNotFound
		}
		return types.Incident{}, err
	}

	return incident, nil
}

func (svc incidentSvc) UpdateStatus(ctx context.Context, incidentID string, status types.IncidentStatus) (types.Incident, error) {
	if !status.IsValid() {
		return types.Incident{}, ErrInvalidTransition
	}

	incident, err := svc.GetByID(ctx, incidentID)
	if err != nil {
		return types.Incident{}, err
	}

	if !incident.Status.CanTransitionTo(status) {
		return types.Incident{}, ErrInvalidTransition
	}

	var resolvedAt *time.Time
	if status == types.IncidentStatusResolved {
		now := time.Now().UTC()
		resolvedAt = &now
	}

	err = svc.storage.UpdateIncidentStatus(ctx, incidentID, status, resolvedAt)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Incident{}, ErrIncidentNotFound
		}
		return types.Incident{}, err
	}

	incident.Status = status
	incident.ResolvedAt = resolvedAt

	svc.publish(ctx, &IncidentStatusChanged{
		ID:        incident.ID,
		Status:    string(status),
		Timestamp: time.Now().UTC(),
	})

	return incident, nil
}

// publish is best effort: the incident is already persisted and losing a
// notification must not fail the operation that created it.
func (svc incidentSvc) publish(ctx context.Context, msg messaging.TopicMessage) {
	err := svc.messenger.PublishOnTopic(ctx, msg)
	if err != nil {
		logging.GetFromContext(ctx).Error("could not publish message", "topic", msg.TopicName(), "err", err.Error())
	}
}
