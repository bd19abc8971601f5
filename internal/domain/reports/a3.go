package reports

import (
	"fmt"
	"time"
)

// A3Input is the 5W1H questionnaire
type A3Input struct {
	What  string `json:"what" validate:"required"`
	Where string `json:"where" validate:"required"`
	When  string `json:"when" validate:"required"`
	Who   string `json:"who" validate:"required"`
	Why   string `json:"why" validate:"required"`
	How   string `json:"how" validate:"required"`
}

// Ishikawa diagram (6M categories)
type Ishikawa struct {
	Man         []string `json:"man"`
	Machine     []string `json:"machine"`
	Method      []string `json:"method"`
	Material    []string `json:"material"`
	Measurement []string `json:"measurement"`
	Environment []string `json:"environment"`
}

// FiveWhyBranch is one chain of the "5 Why" analysis
type FiveWhyBranch struct {
	InitialCause string   `json:"initialCause"`
	WhyChain     []string `json:"whyChain"`
	RootCause    string   `json:"rootCause"`
}

type RootCauseAnalysis struct {
	Ishikawa        Ishikawa        `json:"ishikawa"`
	FiveWhyBranches []FiveWhyBranch `json:"fiveWhyBranches"`
}

type Countermeasure struct {
	Action      string `json:"action"`
	Deadline    string `json:"deadline"`
	Responsible string `json:"responsible"`
	KPI         string `json:"kpi"`
}

// A3Output is the generated report body
type A3Output struct {
	Title               string            `json:"title"`
	ProblemStatement    string            `json:"problemStatement"`
	CurrentState        string            `json:"currentState"`
	RootCauseAnalysis   RootCauseAnalysis `json:"rootCauseAnalysis"`
	TargetCondition     string            `json:"targetCondition"`
	CountermeasuresPlan []Countermeasure  `json:"countermeasuresPlan"`
	Standardize         string            `json:"standardize"`
}

// Check validates the decoded shape and fills absent ishikawa categories
// with empty arrays so every category key is always present.
func (o *A3Output) Check() error {
	if o.Title == "" {
		return fmt.Errorf("title is empty")
	}
	if len(o.CountermeasuresPlan) == 0 {
		return fmt.Errorf("countermeasuresPlan is empty")
	}
	ish := &o.RootCauseAnalysis.Ishikawa
	for _, p := range []*[]string{&ish.Man, &ish.Machine, &ish.Method, &ish.Material, &ish.Measurement, &ish.Environment} {
		if *p == nil {
			*p = []string{}
		}
	}
	if o.RootCauseAnalysis.FiveWhyBranches == nil {
		o.RootCauseAnalysis.FiveWhyBranches = []FiveWhyBranch{}
	}
	return nil
}

// A3Report aggregate
type A3Report struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Input     A3Input   `json:"input"`
	Output    A3Output  `json:"output"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (r A3Report) Created() time.Time { return r.CreatedAt }

// A3Fields are the allowed fieldType discriminators for assist endpoints
var A3Fields = map[string]bool{
	"what": true, "where": true, "when": true, "who": true, "why": true, "how": true,
}

// InputVerdict is the per-field validation result for assist endpoints
type InputVerdict struct {
	IsValid bool   `json:"isValid"`
	Message string `json:"message"`
}
