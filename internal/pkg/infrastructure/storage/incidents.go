package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/jackc/pgx/v5"
)

func (s *Storage) AddIncident(ctx context.Context, incident types.Incident) error {
	args := pgx.NamedArgs{
		"incident_id": incident.ID,
		"title":       incident.Title,
		"severity":    string(incident.Severity),
		"status":      string(incident.Status),
		"created_on":  incident.CreatedAt.UTC(),
	}

	tag, err := s.pool.Exec(ctx, `
		INSERT INTO incidents (incident_id, title, severity, status, created_on)
		VALUES (@incident_id, @title, @severity, @status, @created_on)
		ON CONFLICT (incident_id) DO NOTHING
	`, args)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	if tag.RowsAffected() == 0 {
		return ErrAlreadyExist
	}

	return nil
}

func (s *Storage) GetIncident(ctx context.Context, conditions ...ConditionFunc) (types.Incident, error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT incident_id, title, severity, status, created_on, resolved_on
		FROM incidents
		%s
	`, where)

	var incidentID, title, severity, status string
	var createdOn time.Time
	var resolvedOn *time.Time

	err := s.pool.QueryRow(ctx, query, args).Scan(&incidentID, &title, &severity, &status, &createdOn, &resolvedOn)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return types.Incident{}, ErrNoRows
		}
		return types.Incident{}, err
	}

	return types.Incident{
		ID:         incidentID,
		Title:      title,
		Severity:   types.IncidentSeverity(severity),
		Status:     types.IncidentStatus(status),
		CreatedAt:  createdOn,
		ResolvedAt: resolvedOn,
	}, nil
}

func (s *Storage) QueryIncidents(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.Incident], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "created_on"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT incident_id, title, severity, status, created_on, resolved_on, count(*) OVER () AS count
		FROM incidents
		%s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, where, condition.SortBy(), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.Incident]{}, err
	}

	var incidentID, title, severity, status string
	var createdOn time.Time
	var resolvedOn *time.Time
	var count int64

	incidents := make([]types.Incident, 0)

	_, err = pgx.ForEachRow(rows, []any{&incidentID, &title, &severity, &status, &createdOn, &resolvedOn, &count}, func() error {
		incident := types.Incident{
			ID:        incidentID,
			Title:     title,
			Severity:  types.IncidentSeverity(severity),
			Status:    types.IncidentStatus(status),
			CreatedAt: createdOn,
		}

		if resolvedOn != nil {
			t := *resolvedOn
			incident.ResolvedAt = &t
		}

		incidents = append(incidents, incident)

		return nil
	})
	if err != nil {
		return types.Collection[types.Incident]{}, err
	}

	return types.Collection[types.Incident]{
		Data:       incidents,
		Count:      uint64(len(incidents)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}

func (s *Storage) UpdateIncidentStatus(ctx context.Context, incidentID string, status types.IncidentStatus, resolvedAt *time.Time) error {
	args := pgx.NamedArgs{
		"incident_id": incidentID,
		"status":      string(status),
	}

	if resolvedAt != nil {
		args["resolved_on"] = resolvedAt.UTC()
	} else {
		args["resolved_on"] = nil
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE incidents
		SET status = @status, resolved_on = COALESCE(@resolved_on, resolved_on), modified_on = CURRENT_TIMESTAMP
		WHERE incident_id = @incident_id
	`, args)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return ErrNoRows
	}

	return nil
}
