package models

import (
	"strings"
	"time"

	"github.com/atelier-luz/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ContractStatus is the lifecycle state of a booking contract.
type ContractStatus string

const (
	StatusPendingApproval ContractStatus = "pending_approval"
	StatusBooked          ContractStatus = "booked"
	StatusConfirmed       ContractStatus = "confirmed"
	StatusPendingPayment  ContractStatus = "pending_payment"
	StatusDelivered       ContractStatus = "delivered"
	StatusCancelled       ContractStatus = "cancelled"
	StatusReleased        ContractStatus = "released"
)

// ContractStatuses lists all valid contract statuses.
var ContractStatuses = []ContractStatus{
	StatusPendingApproval,
	StatusBooked,
	StatusConfirmed,
	StatusPendingPayment,
	StatusDelivered,
	StatusCancelled,
	StatusReleased,
}

// ServiceLine is a single booked service on a contract.
//
// Prices on service lines are stored as strings since legacy records carry
// currency-formatted values like "R$ 1.000". The per-line event fields
// override the contract's values when set.
type ServiceLine struct {
	Name      string `json:"name,omitempty"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity,omitempty"`
	EventDate string `json:"eventDate,omitempty"`
	EventTime string `json:"eventTime,omitempty"`
	Location  string `json:"location,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Type      string `json:"type,omitempty"`
}

// ServiceLines is stored as a JSON document on the contract, mirroring the
// document-store shape the frontend writes.
type ServiceLines []ServiceLine

// StoreItem is a store product sold together with a contract.
type StoreItem struct {
	ProductID *uuid.UUID      `json:"productId,omitempty"`
	Name      string          `json:"name,omitempty"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity,omitempty"`
}

type StoreItems []StoreItem

// Contract represents a booking with a client.
type Contract struct {
	DefaultModel
	ClientName string
	Note       string

	// Calendar-date strings. Either may be empty; unparsable values
	// exclude the contract from period-filtered aggregates.
	ContractDate string
	EventDate    string
	EventTime    string
	Location     string

	TotalAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Stored total, overridden by derivation when service lines exist
	TravelFee   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`

	Services      ServiceLines `gorm:"serializer:json"`
	SnapshotItems ServiceLines `gorm:"serializer:json"` // Cart lines from the form snapshot of legacy records
	StoreItems    StoreItems   `gorm:"serializer:json"`

	EventCompleted   bool
	DepositPaid      bool
	FinalPaymentPaid bool
	Status           ContractStatus
}

// BeforeSave trims whitespace from all strings.
func (co *Contract) BeforeSave(_ *gorm.DB) error {
	co.ClientName = strings.TrimSpace(co.ClientName)
	co.Note = strings.TrimSpace(co.Note)
	co.ContractDate = strings.TrimSpace(co.ContractDate)
	co.EventDate = strings.TrimSpace(co.EventDate)
	co.EventTime = strings.TrimSpace(co.EventTime)
	co.Location = strings.TrimSpace(co.Location)

	return nil
}

// EffectiveStatus returns the stored status. When no status is set, it is
// derived from the payment and completion flags.
func (co Contract) EffectiveStatus() ContractStatus {
	if co.Status != "" {
		return co.Status
	}

	if co.EventCompleted {
		return StatusDelivered
	}

	if co.DepositPaid {
		return StatusConfirmed
	}

	return StatusPendingApproval
}

// EffectiveDateString returns the first non-empty of the contract's date
// fields, falling back to the creation timestamp.
func (co Contract) EffectiveDateString() string {
	if co.ContractDate != "" {
		return co.ContractDate
	}

	if co.EventDate != "" {
		return co.EventDate
	}

	return types.DayKey(co.CreatedAt)
}

// EffectiveDate resolves and parses the effective date. ok is false when the
// resolved date string cannot be parsed; such contracts are excluded from
// all period-filtered aggregates.
func (co Contract) EffectiveDate() (time.Time, bool) {
	t, err := types.ParseDay(co.EffectiveDateString())
	if err != nil {
		return time.Time{}, false
	}

	return t, true
}

// ServiceSource tells where a contract's service lines come from.
type ServiceSource int

const (
	ServiceSourceNone ServiceSource = iota
	ServiceSourceExplicit
	ServiceSourceSnapshot
)

// ServiceLineSource resolves the service-line list once: the explicit
// services win, the form snapshot's cart is the legacy fallback.
func (co Contract) ServiceLineSource() (ServiceLines, ServiceSource) {
	if len(co.Services) > 0 {
		return co.Services, ServiceSourceExplicit
	}

	if len(co.SnapshotItems) > 0 {
		return co.SnapshotItems, ServiceSourceSnapshot
	}

	return nil, ServiceSourceNone
}
