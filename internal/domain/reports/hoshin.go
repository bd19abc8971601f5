package reports

import (
	"fmt"
	"time"
)

type HoshinInput struct {
	Mission string `json:"mission" validate:"required"`
	Vision  string `json:"vision" validate:"required"`
	Values  string `json:"values" validate:"required"`
	Goals   string `json:"goals" validate:"required"`
}

// HoshinTask is one tactical task cascaded from a yearly goal
type HoshinTask struct {
	GoalName       string `json:"goalName"`
	TacticalTask   string `json:"tacticalTask"`
	Deadline       string `json:"deadline"`
	Responsible    string `json:"responsible"`
	ExpectedResult string `json:"expectedResult"`
}

type HoshinOutput struct {
	Analysis string       `json:"analysis"`
	Tasks    []HoshinTask `json:"tasks"`
}

func (o *HoshinOutput) Check() error {
	if len(o.Tasks) == 0 {
		return fmt.Errorf("tasks is empty")
	}
	return nil
}

// HoshinReport aggregate. User identity lives on the history mirror row,
// not on the record itself, same as the other kinds.
type HoshinReport struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Input     HoshinInput  `json:"input"`
	Output    HoshinOutput `json:"output"`
	Status    Status       `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

func (r HoshinReport) Created() time.Time { return r.CreatedAt }

// HoshinFields are the allowed improve-input discriminators
var HoshinFields = map[string]bool{
	"mission": true, "vision": true, "values": true, "goals": true,
}

// ConsistencyCheck is one pairwise check of the strategy elements
type ConsistencyCheck struct {
	Passed bool   `json:"passed"`
	Issue  string `json:"issue,omitempty"`
}

// ConsistencyResult is the cross-field validation verdict
type ConsistencyResult struct {
	IsConsistent    bool             `json:"isConsistent"`
	MissionVision   ConsistencyCheck `json:"missionVision"`
	VisionGoals     ConsistencyCheck `json:"visionGoals"`
	ValuesAlignment ConsistencyCheck `json:"valuesAlignment"`
	GoalsMeasurable ConsistencyCheck `json:"goalsMeasurable"`
	Recommendations []string         `json:"recommendations"`
}
