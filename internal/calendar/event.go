// Package calendar projects contracts onto calendar views: it expands
// bookings into per-service events, buckets them by day and builds the
// month grid used by both the mini and the full calendar.
package calendar

import (
	"github.com/atelier-luz/backend/internal/models"
	"github.com/google/uuid"
)

// Event is the calendar projection of one service line of a contract. It is
// recomputed on every load and never persisted.
type Event struct {
	ContractID  uuid.UUID             `json:"contractId"`
	ClientName  string                `json:"clientName" example:"Ana Souza"`
	ServiceName string                `json:"serviceName,omitempty" example:"Ensaio Gestante"`
	Date        string                `json:"date" example:"2024-06-15"` // Date string key used for bucketing
	Time        string                `json:"time,omitempty" example:"14:30"`
	Location    string                `json:"location,omitempty"`
	Duration    string                `json:"duration,omitempty"`
	Type        string                `json:"type,omitempty"`
	Status      models.ContractStatus `json:"status" example:"confirmed"`

	DepositPaid      bool `json:"depositPaid"`
	FinalPaymentPaid bool `json:"finalPaymentPaid"`
	EventCompleted   bool `json:"eventCompleted"`
}

// Expand turns a contract with N service lines into N events. Per-line
// event fields win over the contract's values; a contract without service
// lines still yields a single event so that every booking shows up.
func Expand(contract models.Contract) []Event {
	base := Event{
		ContractID:       contract.ID,
		ClientName:       contract.ClientName,
		Date:             fallback(contract.EventDate, contract.EffectiveDateString()),
		Time:             contract.EventTime,
		Location:         contract.Location,
		Status:           contract.EffectiveStatus(),
		DepositPaid:      contract.DepositPaid,
		FinalPaymentPaid: contract.FinalPaymentPaid,
		EventCompleted:   contract.EventCompleted,
	}

	lines, _ := contract.ServiceLineSource()
	if len(lines) == 0 {
		return []Event{base}
	}

	events := make([]Event, 0, len(lines))
	for _, line := range lines {
		event := base
		event.ServiceName = line.Name
		event.Date = fallback(line.EventDate, base.Date)
		event.Time = fallback(line.EventTime, base.Time)
		event.Location = fallback(line.Location, base.Location)
		event.Duration = line.Duration
		event.Type = line.Type
		events = append(events, event)
	}

	return events
}

// ExpandAll expands a list of contracts into one flat event list.
func ExpandAll(contracts []models.Contract) []Event {
	var events []Event
	for _, contract := range contracts {
		events = append(events, Expand(contract)...)
	}

	return events
}

func fallback(value, def string) string {
	if value != "" {
		return value
	}

	return def
}
