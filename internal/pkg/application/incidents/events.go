package incidents

import (
	"encoding/json"
	"time"

	"github.com/Krishna-pendyala05/Intelligent-Incident-Log-Management-Platform/pkg/types"
)

type IncidentCreated struct {
	Incident  types.Incident `json:"incident"`
	Timestamp time.Time      `json:"timestamp"`
}

func (l *IncidentCreated) ContentType() string {
	return "application/json"
}
func (l *IncidentCreated) TopicName() string {
	return "incidents.incidentCreated"
}
func (l *IncidentCreated) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}

type IncidentStatusChanged struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func (l *IncidentStatusChanged) ContentType() string {
	return "application/json"
}
func (l *IncidentStatusChanged) TopicName() string {
	return "incidents.incidentStatusChanged"
}
func (l *IncidentStatusChanged) Body() []byte {
	b, _ := json.Marshal(l)
	return b
}
