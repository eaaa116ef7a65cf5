package domain

// Product represents a product line a contract was signed for
type Product string

const (
	ProductA Product = "Product A"
	ProductB Product = "Product B"
	ProductC Product = "Product C"
	ProductD Product = "Product D"
)

// Products lists every known product
var Products = []Product{ProductA, ProductB, ProductC, ProductD}

// IsValid checks if the product is a known product
func (p Product) IsValid() bool {
	for _, known := range Products {
		if p == known {
			return true
		}
	}
	return false
}

// PaymentMethod represents how a customer pays for a contract
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodPayPal       PaymentMethod = "PayPal"
	PaymentMethodInvoice      PaymentMethod = "Invoice"
)

// PaymentMethods lists every known payment method
var PaymentMethods = []PaymentMethod{
	PaymentMethodCreditCard,
	PaymentMethodBankTransfer,
	PaymentMethodPayPal,
	PaymentMethodInvoice,
}

// IsValid checks if the payment method is a known payment method
func (m PaymentMethod) IsValid() bool {
	for _, known := range PaymentMethods {
		if m == known {
			return true
		}
	}
	return false
}

// PipelineStage represents the funnel position of a customer relationship
type PipelineStage string

const (
	StageInitialContact PipelineStage = "Initial Contact"
	StageDemoScheduled  PipelineStage = "Demo Scheduled"
	StageNegotiation    PipelineStage = "Negotiation"
	StageClosedWon      PipelineStage = "Closed Won"
	StageClosedLost     PipelineStage = "Closed Lost"
)

// PipelineStages lists the stages in funnel order
var PipelineStages = []PipelineStage{
	StageInitialContact,
	StageDemoScheduled,
	StageNegotiation,
	StageClosedWon,
	StageClosedLost,
}

// IsValid checks if the stage is a known pipeline stage
func (s PipelineStage) IsValid() bool {
	return s.FunnelRank() < len(PipelineStages)
}

// FunnelRank returns the position of the stage in the funnel.
// Unknown stages rank after every known stage.
func (s PipelineStage) FunnelRank() int {
	for i, known := range PipelineStages {
		if s == known {
			return i
		}
	}
	return len(PipelineStages)
}

// AccountManagers lists the account managers the synthetic feed assigns customers to
var AccountManagers = []string{"Alex Morgan", "Jordan Taylor", "Casey Lee", "Jamie Parker"}

// EngagementRecord is one customer engagement entry. Records are immutable once loaded.
type EngagementRecord struct {
	AccountManager         string        `json:"accountManager"`
	Customer               string        `json:"customer"`
	ContractDate           Date          `json:"contractDate"`
	TurnaroundDays         int           `json:"turnaroundDays"`
	BusiestInteractionDate Date          `json:"busiestInteractionDate"`
	Product                Product       `json:"product"`
	PaymentMethod          PaymentMethod `json:"paymentMethod"`
	ContractValue          int64         `json:"contractValue"`
	PipelineStage          PipelineStage `json:"pipelineStage"`
}
