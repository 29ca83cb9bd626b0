package v1

import (
	"github.com/atelier-luz/backend/internal/finance"
	"github.com/atelier-luz/backend/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

type ContractEditable struct {
	ClientName string `json:"clientName" example:"Ana Souza"`
	Note       string `json:"note" example:"Referred by Marta" default:""`

	// Calendar-date strings. The first non-empty of contractDate and
	// eventDate is the effective date for all reporting; the creation
	// timestamp is the fallback.
	ContractDate string `json:"contractDate" example:"2024-05-01" default:""`
	EventDate    string `json:"eventDate" example:"2024-06-15" default:""`
	EventTime    string `json:"eventTime" example:"14:30" default:""`
	Location     string `json:"location" example:"Estúdio Central" default:""`

	TotalAmount decimal.Decimal `json:"totalAmount" example:"1100"` // Stored total, overridden by the derivation when service lines exist
	TravelFee   decimal.Decimal `json:"travelFee" example:"100"`

	Services      models.ServiceLines `json:"services"`
	SnapshotItems models.ServiceLines `json:"snapshotItems"` // Legacy cart lines, used when services is empty
	StoreItems    models.StoreItems   `json:"storeItems"`

	EventCompleted   bool `json:"eventCompleted" example:"false" default:"false"`
	DepositPaid      bool `json:"depositPaid" example:"true" default:"false"`
	FinalPaymentPaid bool `json:"finalPaymentPaid" example:"false" default:"false"`

	Status models.ContractStatus `json:"status" example:"confirmed" default:""` // Derived from the payment flags when empty
}

// model returns the database resource for the API representation of the
// editable fields
func (editable ContractEditable) model() models.Contract {
	return models.Contract{
		ClientName:       editable.ClientName,
		Note:             editable.Note,
		ContractDate:     editable.ContractDate,
		EventDate:        editable.EventDate,
		EventTime:        editable.EventTime,
		Location:         editable.Location,
		TotalAmount:      editable.TotalAmount,
		TravelFee:        editable.TravelFee,
		Services:         editable.Services,
		SnapshotItems:    editable.SnapshotItems,
		StoreItems:       editable.StoreItems,
		EventCompleted:   editable.EventCompleted,
		DepositPaid:      editable.DepositPaid,
		FinalPaymentPaid: editable.FinalPaymentPaid,
		Status:           editable.Status,
	}
}

// Contract is the API representation of a booking. The derived amounts are
// computed on every read; the raw total never leaves the backend as the
// authoritative figure.
type Contract struct {
	models.DefaultModel
	ContractEditable
	Amounts          finance.Amounts          `json:"amounts"`
	FormattedAmounts finance.FormattedAmounts `json:"formattedAmounts"`
}

// newContract returns the API v1 representation of the resource
func newContract(model models.Contract) Contract {
	amounts := finance.Derive(model)

	return Contract{
		DefaultModel: model.DefaultModel,
		ContractEditable: ContractEditable{
			ClientName:       model.ClientName,
			Note:             model.Note,
			ContractDate:     model.ContractDate,
			EventDate:        model.EventDate,
			EventTime:        model.EventTime,
			Location:         model.Location,
			TotalAmount:      model.TotalAmount,
			TravelFee:        model.TravelFee,
			Services:         model.Services,
			SnapshotItems:    model.SnapshotItems,
			StoreItems:       model.StoreItems,
			EventCompleted:   model.EventCompleted,
			DepositPaid:      model.DepositPaid,
			FinalPaymentPaid: model.FinalPaymentPaid,
			Status:           model.EffectiveStatus(),
		},
		Amounts:          amounts,
		FormattedAmounts: amounts.Formatted(),
	}
}

type ContractResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Contract `json:"data"`                                                          // The contract data, if the request was successful
}

type ContractListResponse struct {
	Data       []Contract  `json:"data"`                                                          // List of contracts
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ContractQueryFilter struct {
	ClientName       string `form:"clientName" filterField:"false"` // Glob pattern matched against the client name
	Status           string `form:"status"`
	EventCompleted   bool   `form:"eventCompleted"`
	DepositPaid      bool   `form:"depositPaid"`
	FinalPaymentPaid bool   `form:"finalPaymentPaid"`
	Period           string `form:"period" filterField:"false"` // Reporting window: all, year, month or custom
	Start            string `form:"start" filterField:"false"`  // Custom window start, inclusive
	End              string `form:"end" filterField:"false"`    // Custom window end, inclusive
	Offset           uint   `form:"offset" filterField:"false"`
	Limit            int    `form:"limit" filterField:"false"`
}

// model converts the filter into a resource struct usable in a gorm Where.
func (f ContractQueryFilter) model() (models.Contract, error) {
	if f.Status != "" && !slices.Contains(models.ContractStatuses, models.ContractStatus(f.Status)) {
		return models.Contract{}, errContractStatusInvalid
	}

	return models.Contract{
		Status:           models.ContractStatus(f.Status),
		EventCompleted:   f.EventCompleted,
		DepositPaid:      f.DepositPaid,
		FinalPaymentPaid: f.FinalPaymentPaid,
	}, nil
}

// period converts the filter's window parameters.
func (f ContractQueryFilter) period() (finance.Period, error) {
	if f.Period == "" {
		return finance.Period{Type: finance.PeriodAll}, nil
	}

	t := finance.PeriodType(f.Period)
	if !slices.Contains([]finance.PeriodType{finance.PeriodAll, finance.PeriodYear, finance.PeriodMonth, finance.PeriodCustom}, t) {
		return finance.Period{}, errPeriodTypeInvalid
	}

	return finance.Period{Type: t, Start: f.Start, End: f.End}, nil
}
