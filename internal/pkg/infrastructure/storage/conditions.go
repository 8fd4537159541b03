package storage

import (
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
)

type ConditionFunc func(*Condition) *Condition

type Condition struct {
	IncidentID string
	ServiceID  string
	Level      string
	Statuses   []string

	Since time.Time

	sortBy    string
	sortOrder string

	offset *int
	limit  *int
}

func (c Condition) NamedArgs() pgx.NamedArgs {
	args := pgx.NamedArgs{}

	if c.IncidentID != "" {
		args["incident_id"] = c.IncidentID
	}
	if c.ServiceID != "" {
		args["service_id"] = c.ServiceID
	}
	if c.Level != "" {
		args["level"] = c.Level
	}
	if len(c.Statuses) > 0 {
		args["statuses"] = c.Statuses
	}
	if !c.Since.IsZero() {
		args["since"] = c.Since.UTC()
	}

	return args
}

func (c Condition) Where() string {
	where := []string{}

	if c.IncidentID != "" {
		where = append(where, "incident_id = @incident_id")
	}

	if c.ServiceID != "" {
		where = append(where, "service_id = @service_id")
	}

	if c.Level != "" {
		where = append(where, "level = @level")
	}

	if len(c.Statuses) > 0 {
		where = append(where, "status = ANY(@statuses)")
	}

	if !c.Since.IsZero() {
		where = append(where, "time >= @since")
	}

	if len(where) == 0 {
		return ""
	}

	return "WHERE " + strings.Join(where, " AND ")
}

func (c Condition) SortBy() string {
	return c.sortBy
}

func (c Condition) SortOrder() string {
	if c.sortOrder == "" {
		return "DESC"
	}
	return c.sortOrder
}

func (c Condition) Offset() int {
	if c.offset == nil {
		return 0
	}
	return *c.offset
}

func (c Condition) Limit() int {
	if c.limit == nil {
		return 10
	}
	return *c.limit
}

func WithIncidentID(incidentID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.IncidentID = incidentID
		return c
	}
}

func WithServiceID(serviceID string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.ServiceID = serviceID
		return c
	}
}

func WithLevel(level string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Level = level
		return c
	}
}

func WithStatuses(statuses []string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Statuses = statuses
		return c
	}
}

func WithSince(since time.Time) ConditionFunc {
	return func(c *Condition) *Condition {
		c.Since = since
		return c
	}
}

func WithOffset(offset int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.offset = &offset
		return c
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(c *Condition) *Condition {
		c.limit = &limit
		return c
	}
}

func WithSortBy(sortBy string) ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortBy = sortBy
		return c
	}
}

func WithSortAscending() ConditionFunc {
	return func(c *Condition) *Condition {
		c.sortOrder = "ASC"
		return c
	}
}
