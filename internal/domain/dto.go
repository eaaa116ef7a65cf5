package domain

// FilterRequest is the JSON body accepted by POST /dashboard/view. GET /dashboard/view
// and GET /dashboard/records read the same fields from the query string; the records
// listing has no pipeline table, so it never reads StageOrder.
// A null or absent list selects every option; an empty list selects none.
// Absent value bounds default to the observed dataset bounds.
type FilterRequest struct {
	AccountManager *string         `json:"accountManager,omitempty"`
	Products       []Product       `json:"products"`
	PaymentMethods []PaymentMethod `json:"paymentMethods"`
	MinValue       *int64          `json:"minValue,omitempty" validate:"omitempty,gte=0"`
	MaxValue       *int64          `json:"maxValue,omitempty" validate:"omitempty,gte=0"`
	StageOrder     StageOrder      `json:"stageOrder,omitempty" validate:"omitempty,oneof=lexicographic funnel"`
}

// AllAccountManagers is the selector value meaning "no account manager constraint"
const AllAccountManagers = "All"

// KPIDisplay holds the headline metrics formatted for display
type KPIDisplay struct {
	TotalContracts    string `json:"totalContracts"`
	AverageTurnaround string `json:"averageTurnaround"`
	TotalValue        string `json:"totalValue"`
}

// DashboardViewDTO is the response of the dashboard view endpoint
type DashboardViewDTO struct {
	Criteria FilterCriteria `json:"criteria"`
	KPIs     KPIDisplay     `json:"kpis"`
	View     DerivedView    `json:"view"`
}

// RecordsDTO is the response of the raw records endpoint
type RecordsDTO struct {
	Criteria FilterCriteria     `json:"criteria"`
	Records  []EngagementRecord `json:"records"`
	Total    int                `json:"total"`
}
