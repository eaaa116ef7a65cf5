package domain

// StageOrder selects how the pipeline table is sorted
type StageOrder string

const (
	// StageOrderLexicographic sorts by stage label
	StageOrderLexicographic StageOrder = "lexicographic"
	// StageOrderFunnel sorts by funnel position, Initial Contact first
	StageOrderFunnel StageOrder = "funnel"
)

// IsValid checks if the stage order is supported
func (o StageOrder) IsValid() bool {
	return o == StageOrderLexicographic || o == StageOrderFunnel
}

// DateTurnaround is one point of the average-turnaround-over-time series
type DateTurnaround struct {
	Date              Date    `json:"date"`
	AverageTurnaround float64 `json:"averageTurnaround"`
}

// DateVolume is one point of the engagement-volume series
type DateVolume struct {
	Date  Date `json:"date"`
	Count int  `json:"count"`
}

// ProductValue is the summed contract value of one product
type ProductValue struct {
	Product    Product `json:"product"`
	TotalValue int64   `json:"totalValue"`
}

// PipelineRow is the reduced projection of a record shown in the pipeline overview
type PipelineRow struct {
	Customer       string        `json:"customer"`
	AccountManager string        `json:"accountManager"`
	Product        Product       `json:"product"`
	PipelineStage  PipelineStage `json:"pipelineStage"`
	ContractValue  int64         `json:"contractValue"`
}

// DerivedView holds every metric and series computed from a filtered record set.
// AverageTurnaround is nil when the set is empty.
type DerivedView struct {
	TotalCount        int              `json:"totalCount"`
	AverageTurnaround *float64         `json:"averageTurnaround"`
	TotalValue        int64            `json:"totalValue"`
	TurnaroundByDate  []DateTurnaround `json:"turnaroundByDate"`
	VolumeByDate      []DateVolume     `json:"volumeByDate"`
	ValueByProduct    []ProductValue   `json:"valueByProduct"`
	PipelineView      []PipelineRow    `json:"pipelineView"`
	StageOrder        StageOrder       `json:"stageOrder"`
}
