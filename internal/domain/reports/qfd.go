package reports

import (
	"fmt"
	"time"
)

// List size and rating limits for the House of Quality
const (
	MaxRequirements    = 10
	MaxCharacteristics = 10
	MaxCompetitors     = 3
)

type CustomerRequirement struct {
	ID                 string  `json:"id"`
	Text               string  `json:"text"`
	Category           string  `json:"category"`
	Importance         float64 `json:"importance,omitempty"`
	RelativeImportance float64 `json:"relativeImportance,omitempty"`
}

// TechnicalCharacteristic direction: "↑" more is better, "↓" less is
// better, "○" has an optimum.
type TechnicalCharacteristic struct {
	ID             string  `json:"id"`
	Text           string  `json:"text"`
	Category       string  `json:"category"`
	Unit           string  `json:"unit"`
	Direction      string  `json:"direction"`
	AbsoluteWeight float64 `json:"absoluteWeight,omitempty"`
	RelativeWeight float64 `json:"relativeWeight,omitempty"`
	Rank           int     `json:"rank,omitempty"`
	CurrentValue   string  `json:"currentValue,omitempty"`
	TargetValue    string  `json:"targetValue,omitempty"`
	TargetDate     string  `json:"targetDate,omitempty"`
}

// QFDLists is the stage-1 result the user edits before the full report
type QFDLists struct {
	CustomerRequirements     []CustomerRequirement     `json:"customerRequirements"`
	TechnicalCharacteristics []TechnicalCharacteristic `json:"technicalCharacteristics"`
}

// Check enforces 1..10 entries per list, truncating overlong ones.
func (l *QFDLists) Check() error {
	if len(l.CustomerRequirements) == 0 {
		return fmt.Errorf("customerRequirements is empty")
	}
	if len(l.TechnicalCharacteristics) == 0 {
		return fmt.Errorf("technicalCharacteristics is empty")
	}
	if len(l.CustomerRequirements) > MaxRequirements {
		l.CustomerRequirements = l.CustomerRequirements[:MaxRequirements]
	}
	if len(l.TechnicalCharacteristics) > MaxCharacteristics {
		l.TechnicalCharacteristics = l.TechnicalCharacteristics[:MaxCharacteristics]
	}
	return nil
}

type Competitors struct {
	Competitor1 string `json:"competitor1,omitempty"`
	Competitor2 string `json:"competitor2,omitempty"`
	Competitor3 string `json:"competitor3,omitempty"`
}

// QFDReportInput is the stage-2 request: the original description plus the
// user-curated lists and the optional competitor block.
type QFDReportInput struct {
	CompanyDescription       string                    `json:"companyDescription" validate:"required"`
	CustomerRequirements     []CustomerRequirement     `json:"customerRequirements" validate:"required,min=1,max=10"`
	TechnicalCharacteristics []TechnicalCharacteristic `json:"technicalCharacteristics" validate:"required,min=1,max=10"`
	CompetitorsEnabled       bool                      `json:"competitorsEnabled"`
	Competitors              *Competitors              `json:"competitors,omitempty"`
}

// Correlation between two technical characteristics in the roof of the
// house: "++", "+", "-", "--" or "".
type Correlation struct {
	Characteristic1ID string `json:"characteristic1Id"`
	Characteristic2ID string `json:"characteristic2Id"`
	Type              string `json:"type"`
	Description       string `json:"description"`
}

type CompetitiveRating struct {
	RequirementID     string   `json:"requirementId"`
	OurProduct        float64  `json:"ourProduct"`
	Competitor1       float64  `json:"competitor1,omitempty"`
	Competitor2       float64  `json:"competitor2,omitempty"`
	Competitor3       float64  `json:"competitor3,omitempty"`
	ImprovementNeeded *float64 `json:"improvementNeeded,omitempty"`
}

type CompetitiveStrategy struct {
	Strengths     []string `json:"strengths"`
	Gaps          []string `json:"gaps"`
	Opportunities []string `json:"opportunities"`
}

type ActionPlan struct {
	Phase1 string `json:"phase1"`
	Phase2 string `json:"phase2"`
	Phase3 string `json:"phase3"`
}

type QFDAction struct {
	ID               string   `json:"id"`
	Action           string   `json:"action"`
	RequirementIDs   []string `json:"requirementIds"`
	CharacteristicID string   `json:"characteristicId"`
	Impact           float64  `json:"impact"`
	Duration         string   `json:"duration"`
	Responsible      string   `json:"responsible"`
}

// QFDOutput is the full House of Quality. The relationship matrix maps
// "{requirementId}-{characteristicId}" to a strength symbol (9/3/1/"").
type QFDOutput struct {
	CustomerRequirements     []CustomerRequirement     `json:"customerRequirements"`
	TechnicalCharacteristics []TechnicalCharacteristic `json:"technicalCharacteristics"`
	RelationshipMatrix       map[string]string         `json:"relationshipMatrix"`
	Correlations             []Correlation             `json:"correlations"`
	CompetitiveRatings       []CompetitiveRating       `json:"competitiveRatings,omitempty"`
	TopPriorities            []string                  `json:"topPriorities,omitempty"`
	QuickWins                []string                  `json:"quickWins,omitempty"`
	CriticalTradeoffs        []string                  `json:"criticalTradeoffs,omitempty"`
	CompetitiveStrategy      *CompetitiveStrategy      `json:"competitiveStrategy,omitempty"`
	ActionPlan               *ActionPlan               `json:"actionPlan,omitempty"`
	Actions                  []QFDAction               `json:"actions,omitempty"`
}

func (o *QFDOutput) Check() error {
	if o.RelationshipMatrix == nil {
		o.RelationshipMatrix = map[string]string{}
	}
	if o.Correlations == nil {
		o.Correlations = []Correlation{}
	}
	return nil
}

// QFDReport aggregate. Title carries the derived product name.
type QFDReport struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Input     QFDReportInput `json:"input"`
	Output    QFDOutput      `json:"output"`
	Status    Status         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func (r QFDReport) Created() time.Time { return r.CreatedAt }

// CompanySearchResult is the /qfd/search-company response
type CompanySearchResult struct {
	Found       bool   `json:"found"`
	CompanyName string `json:"companyName"`
	Description string `json:"description"`
	Confidence  string `json:"confidence"`
	Suggestion  string `json:"suggestion,omitempty"`
}
