package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
	"github.com/jackc/pgx/v5"
)

// AddLogs writes a whole batch of records with a single bulk operation.
// Record ids are assigned by the database, arrival order is preserved.
func (s *Storage) AddLogs(ctx context.Context, records []types.LogRecord) error {
	if len(records) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(records))

	for _, r := range records {
		var metadata []byte
		if r.Metadata != nil {
			b, err := json.Marshal(r.Metadata)
			if err != nil {
				return fmt.Errorf("could not marshal log metadata: %w", err)
			}
			metadata = b
		}

		rows = append(rows, []any{r.ServiceID, r.Timestamp.UTC(), string(r.Level), r.Message, metadata})
	}

	_, err := s.pool.CopyFrom(ctx,
		pgx.Identifier{"logs"},
		[]string{"service_id", "time", "level", "message", "metadata"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return nil
}

// ErrorCountsPerMinute aggregates ERROR records since the given time into
// minute buckets, most recent bucket first. Minutes without any errors yield
// no bucket at all.
func (s *Storage) ErrorCountsPerMinute(ctx context.Context, since time.Time) ([]types.BaselineBucket, error) {
	args := pgx.NamedArgs{
		"level": string(types.LogLevelError),
		"since": since.UTC(),
	}

	rows, err := s.pool.Query(ctx, `
		SELECT date_trunc('minute', time) AS bucket, count(*) AS total
		FROM logs
		WHERE level = @level AND time >= @since
		GROUP BY bucket
		ORDER BY bucket DESC
	`, args)
	if err != nil {
		return nil, err
	}

	var bucket time.Time
	var total int64

	buckets := make([]types.BaselineBucket, 0)

	_, err = pgx.ForEachRow(rows, []any{&bucket, &total}, func() error {
		buckets = append(buckets, types.BaselineBucket{
			Bucket: bucket,
			Count:  total,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return buckets, nil
}

// CountUncorrelatedErrors counts ERROR records since the cutoff that have not
// been attributed to an incident yet.
func (s *Storage) CountUncorrelatedErrors(ctx context.Context, cutoff time.Time) (int64, error) {
	args := pgx.NamedArgs{
		"level":  string(types.LogLevelError),
		"cutoff": cutoff.UTC(),
	}

	var count int64

	err := s.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM logs
		WHERE level = @level AND time >= @cutoff AND incident_id IS NULL
	`, args).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

// CorrelateErrors attributes every uncorrelated ERROR record since the cutoff
// to the given incident. Uses the same filter as CountUncorrelatedErrors, so
// a correlated burst is excluded from subsequent measurements.
func (s *Storage) CorrelateErrors(ctx context.Context, cutoff time.Time, incidentID string) (int64, error) {
	args := pgx.NamedArgs{
		"level":       string(types.LogLevelError),
		"cutoff":      cutoff.UTC(),
		"incident_id": incidentID,
	}

	tag, err := s.pool.Exec(ctx, `
		UPDATE logs
		SET incident_id = @incident_id
		WHERE level = @level AND time >= @cutoff AND incident_id IS NULL
	`, args)
	if err != nil {
		return 0, err
	}

	return tag.RowsAffected(), nil
}

func (s *Storage) QueryLogs(ctx context.Context, conditions ...ConditionFunc) (types.Collection[types.LogRecord], error) {
	condition := &Condition{}
	for _, f := range conditions {
		f(condition)
	}

	if condition.sortBy == "" {
		condition.sortBy = "time"
	}

	args := condition.NamedArgs()
	where := condition.Where()

	query := fmt.Sprintf(`
		SELECT log_id, service_id, time, level, message, metadata, incident_id, count(*) OVER () AS count
		FROM logs
		%s
		ORDER BY %s %s
		OFFSET %d LIMIT %d
	`, where, condition.SortBy(), condition.SortOrder(), condition.Offset(), condition.Limit())

	rows, err := s.pool.Query(ctx, query, args)
	if err != nil {
		return types.Collection[types.LogRecord]{}, err
	}

	var logID int64
	var serviceID, level, message string
	var ts time.Time
	var metadata []byte
	var incidentID *string
	var count int64

	logs := make([]types.LogRecord, 0)

	_, err = pgx.ForEachRow(rows, []any{&logID, &serviceID, &ts, &level, &message, &metadata, &incidentID, &count}, func() error {
		record := types.LogRecord{
			ID:        logID,
			ServiceID: serviceID,
			Timestamp: ts,
			Level:     types.LogLevel(level),
			Message:   message,
		}

		if len(metadata) > 0 {
			err := json.Unmarshal(metadata, &record.Metadata)
			if err != nil {
				return err
			}
		}

		if incidentID != nil {
			id := *incidentID
			record.IncidentID = &id
		}

		logs = append(logs, record)

		return nil
	})
	if err != nil {
		return types.Collection[types.LogRecord]{}, err
	}

	return types.Collection[types.LogRecord]{
		Data:       logs,
		Count:      uint64(len(logs)),
		Offset:     uint64(condition.Offset()),
		Limit:      uint64(condition.Limit()),
		TotalCount: uint64(count),
	}, nil
}
