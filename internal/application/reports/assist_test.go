package reports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/infra/kv/memory"
)

func newAssistService(gen *fakeGen) *Service {
	return NewService(gen, memory.NewStore(), &recHistory{}, nil,
		&stepClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}, "gpt-4o", "gpt-4o-mini")
}

func TestValidateA3InputShortCircuit(t *testing.T) {
	gen := &fakeGen{replies: []string{`{"isValid": true, "message": ""}`}}
	svc := newAssistService(gen)

	verdict, err := svc.ValidateA3Input(context.Background(), "ок", "what")
	require.NoError(t, err)
	assert.False(t, verdict.IsValid)
	assert.Equal(t, "Ответ слишком короткий. Добавьте больше деталей.", verdict.Message)
	assert.Empty(t, gen.prompts, "short answers never reach the ai")
}

func TestValidateA3Input(t *testing.T) {
	gen := &fakeGen{replies: []string{`{"isValid": false, "message": "Ответ не содержит даты."}`}}
	svc := newAssistService(gen)

	verdict, err := svc.ValidateA3Input(context.Background(), "во время ночной смены", "when")
	require.NoError(t, err)
	assert.False(t, verdict.IsValid)
	assert.Equal(t, "Ответ не содержит даты.", verdict.Message)

	require.Len(t, gen.opts, 1)
	assert.InDelta(t, 0.3, float64(gen.opts[0].Temperature), 0.001)
}

func TestValidateA3InputUnknownField(t *testing.T) {
	svc := newAssistService(&fakeGen{replies: []string{"{}"}})

	_, err := svc.ValidateA3Input(context.Background(), "достаточно длинный текст", "severity")
	var ve *reports.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestImproveA3InputTooShort(t *testing.T) {
	gen := &fakeGen{replies: []string{"улучшено"}}
	svc := newAssistService(gen)

	_, err := svc.ImproveA3Input(context.Background(), "брак", "what")
	var ve *reports.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, gen.prompts)
}

func TestImproveA3InputStripsQuotes(t *testing.T) {
	gen := &fakeGen{replies: []string{"\"Брак выявлен на линии розлива №2.\"\n"}}
	svc := newAssistService(gen)

	improved, err := svc.ImproveA3Input(context.Background(), "брак на линии", "what")
	require.NoError(t, err)
	assert.Equal(t, "Брак выявлен на линии розлива №2.", improved)
}

func TestImproveVSMText(t *testing.T) {
	gen := &fakeGen{replies: []string{`{"improvedText": "Компания производит и разливает напитки."}`}}
	svc := newAssistService(gen)

	improved, err := svc.ImproveVSMText(context.Background(), "делаем напитки", "activity")
	require.NoError(t, err)
	assert.Equal(t, "Компания производит и разливает напитки.", improved)

	_, err = svc.ImproveVSMText(context.Background(), "делаем напитки", "layout")
	var ve *reports.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestSearchCompany(t *testing.T) {
	gen := &fakeGen{replies: []string{`{"found": true, "companyName": "ООО Ромашка", "description": "Производитель напитков.", "confidence": "high"}`}}
	svc := newAssistService(gen)

	res, err := svc.SearchCompany(context.Background(), "Ромашка")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "ООО Ромашка", res.CompanyName)

	require.Len(t, gen.opts, 1)
	assert.Equal(t, "gpt-4o", gen.opts[0].Model)
	assert.InDelta(t, 0.4, float64(gen.opts[0].Temperature), 0.001)
}

func TestImproveQFDDescriptionEmptyReply(t *testing.T) {
	gen := &fakeGen{replies: []string{`{"improvedDescription": ""}`}}
	svc := newAssistService(gen)

	_, err := svc.ImproveQFDDescription(context.Background(), "насосы")
	var fe *reports.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestValidateHoshin(t *testing.T) {
	gen := &fakeGen{replies: []string{`{
  "isConsistent": false,
  "missionVision": {"passed": true},
  "visionGoals": {"passed": false, "issue": "Цели не ведут к видению."},
  "valuesAlignment": {"passed": true},
  "goalsMeasurable": {"passed": true}
}`}}
	svc := newAssistService(gen)

	res, err := svc.ValidateHoshin(context.Background(), reports.HoshinInput{
		Mission: "м", Vision: "в", Values: "ц", Goals: "г",
	})
	require.NoError(t, err)
	assert.False(t, res.IsConsistent)
	assert.False(t, res.VisionGoals.Passed)
	assert.NotNil(t, res.Recommendations, "recommendations are never null")
}

func TestImproveHoshinFieldUnknown(t *testing.T) {
	svc := newAssistService(&fakeGen{replies: []string{"текст"}})

	_, err := svc.ImproveHoshinField(context.Background(), "наша миссия", "strategy")
	var ve *reports.ValidationError
	assert.ErrorAs(t, err, &ve)
}
