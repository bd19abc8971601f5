package reports

import (
	"fmt"
	"time"
)

type VSMInput struct {
	CompanyName      string `json:"companyName" validate:"required"`
	CompanyActivity  string `json:"companyActivity" validate:"required"`
	ProcessToImprove string `json:"processToImprove" validate:"required"`
}

// OperationRow is one line of the as-is operation diagram
type OperationRow struct {
	Stage         string `json:"stage"`
	Description   string `json:"description"`
	OperationTime string `json:"operationTime"`
	WaitTime      string `json:"waitTime"`
	Responsible   string `json:"responsible"`
	Problems      string `json:"problems"`
	AddsValue     string `json:"addsValue"`
	HasWaste      string `json:"hasWaste"`
}

type OperatorLoadRow struct {
	Operator   string  `json:"operator"`
	UsefulLoad float64 `json:"usefulLoad"`
	Waste      float64 `json:"waste"`
	Comment    string  `json:"comment"`
}

// JITMeasure is one Just-in-Time improvement action
type JITMeasure struct {
	Principle      string `json:"principle"`
	Action         string `json:"action"`
	Deadline       string `json:"deadline"`
	Responsible    string `json:"responsible"`
	ExpectedResult string `json:"expectedResult"`
}

type VSMOutput struct {
	AsIsMap          []OperationRow    `json:"asIsMap"`
	OperatorLoad     []OperatorLoadRow `json:"operatorLoad"`
	SpaghettiDiagram string            `json:"spaghettiDiagram"`
	WasteTable       string            `json:"wasteTable"`
	JITMeasures      []JITMeasure      `json:"jitMeasures"`
	ToBeMap          string            `json:"toBeMap"`
}

func (o *VSMOutput) Check() error {
	if len(o.AsIsMap) == 0 {
		return fmt.Errorf("asIsMap is empty")
	}
	if o.OperatorLoad == nil {
		o.OperatorLoad = []OperatorLoadRow{}
	}
	if o.JITMeasures == nil {
		o.JITMeasures = []JITMeasure{}
	}
	return nil
}

// ValueStreamMap aggregate
type ValueStreamMap struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Input     VSMInput  `json:"input"`
	Output    VSMOutput `json:"output"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (m ValueStreamMap) Created() time.Time { return m.CreatedAt }

// VSMContexts are the allowed improve-text discriminators
var VSMContexts = map[string]bool{"activity": true, "process": true}
