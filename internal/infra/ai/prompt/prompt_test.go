package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

func TestA3Generation(t *testing.T) {
	p := A3Generation(reports.A3Input{
		What: "брак", Where: "линия 2", When: "ночью", Who: "оператор", Why: "потери", How: "регулярно",
	})
	assert.Contains(t, p, "брак")
	assert.Contains(t, p, "линия 2")
	assert.Contains(t, p, "countermeasuresPlan")
}

func TestA3FieldPrompts(t *testing.T) {
	p := A3ImproveInput("брак на линии", "where")
	assert.Contains(t, p, "where")
	assert.Contains(t, p, "ГДЕ произошло")
	assert.Contains(t, p, "брак на линии")

	v := A3ValidateInput("вчера", "when")
	assert.Contains(t, v, "isValid")
	assert.Contains(t, v, "КОГДА произошло")
}

func TestVSMGenerationEscapesPercent(t *testing.T) {
	p := VSMGeneration(reports.VSMInput{
		CompanyName: "Ромашка", CompanyActivity: "напитки", ProcessToImprove: "отгрузка",
	})
	assert.Contains(t, p, "Ромашка")
	assert.Contains(t, p, "usefulLoad (число, %)")
	assert.NotContains(t, p, "%!", "format verbs must all be consumed")
}

func TestQFDReportCompetitorSection(t *testing.T) {
	in := reports.QFDReportInput{
		CompanyDescription:       "насосы",
		CustomerRequirements:     []reports.CustomerRequirement{{ID: "req1", Text: "надежность"}},
		TechnicalCharacteristics: []reports.TechnicalCharacteristic{{ID: "tc1", Text: "ресурс"}},
	}

	without := QFDReport(in)
	assert.NotContains(t, without, "competitiveRatings")

	in.CompetitorsEnabled = true
	in.Competitors = &reports.Competitors{Competitor1: "АкваПром", Competitor3: "ГидроТех"}
	with := QFDReport(in)
	assert.Contains(t, with, "competitiveRatings")
	assert.Contains(t, with, "АкваПром, ГидроТех")
}

func TestHoshinImproveKnowsEachField(t *testing.T) {
	for field := range reports.HoshinFields {
		p := HoshinImprove("текст", field)
		assert.Contains(t, p, field)
		assert.NotContains(t, p, "ТРЕБОВАНИЯ К ПОЛЮ:\n\n", "brief must exist for %s", field)
	}
}

func TestAITestReportDeterministicOrder(t *testing.T) {
	inputs := map[string]any{"b": 2, "a": 1, "c": 3}
	first := AITestReport("тест", inputs)
	second := AITestReport("тест", inputs)
	assert.Equal(t, first, second)
	assert.Less(t, strings.Index(first, "a: 1"), strings.Index(first, "b: 2"))
}

func TestAITestReportSystemEmbedsSchema(t *testing.T) {
	base := AITestReportSystem(nil)
	withSchema := AITestReportSystem(map[string]any{"rootCause": "text"})
	assert.NotEqual(t, base, withSchema)
	assert.Contains(t, withSchema, "rootCause")
}
