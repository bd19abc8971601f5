package aitest

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
)

type fakeGen struct {
	reply   string
	prompts []string
	opts    []ai.Options
}

func (f *fakeGen) GenerateText(_ context.Context, prompt string, opts ai.Options) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	return f.reply, nil
}

type recHistory struct {
	recs []*reports.HistoryRecord
}

func (h *recHistory) Insert(_ context.Context, rec *reports.HistoryRecord) error {
	rec.ID = int64(len(h.recs) + 1)
	h.recs = append(h.recs, rec)
	return nil
}

func (h *recHistory) List(_ context.Context, userID string, includeAll bool) ([]*reports.HistoryRecord, error) {
	if includeAll {
		return h.recs, nil
	}
	var out []*reports.HistoryRecord
	for _, r := range h.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func TestExtractSchema(t *testing.T) {
	gen := &fakeGen{reply: `{
  "inputs": ["problem"],
  "inputLabels": {"problem": "Опишите проблему"},
  "outputs": {"whys": "table", "rootCause": "text"}
}`}
	svc := NewService(gen, &recHistory{}, fixedClock{}, "", "")

	schema, err := svc.ExtractSchema(context.Background(), "Создай тест 5 Почему")
	require.NoError(t, err)
	assert.Equal(t, []string{"problem"}, schema.Inputs)
	assert.Equal(t, "table", schema.Outputs["whys"])

	require.Len(t, gen.opts, 1)
	assert.Equal(t, "gpt-4o-mini", gen.opts[0].Model)
	assert.InDelta(t, 0.3, float64(gen.opts[0].Temperature), 0.001)
}

func TestExtractSchemaEmpty(t *testing.T) {
	gen := &fakeGen{reply: `{"inputs": [], "outputs": {}}`}
	svc := NewService(gen, &recHistory{}, fixedClock{}, "", "")

	_, err := svc.ExtractSchema(context.Background(), "Создай тест")
	var fe *reports.FormatError
	assert.ErrorAs(t, err, &fe)
}

func TestGenerateReport(t *testing.T) {
	gen := &fakeGen{reply: "```json\n{\"rootCause\": \"нет регламента\", \"whys\": [{\"n\": 1}]}\n```"}
	svc := NewService(gen, &recHistory{}, fixedClock{}, "", "")

	result, err := svc.GenerateReport(context.Background(), "Задай 5 раз почему",
		map[string]any{"problem": "срыв сроков"},
		map[string]any{"rootCause": "text", "whys": "table"})
	require.NoError(t, err)
	assert.Equal(t, "нет регламента", result["rootCause"])

	require.Len(t, gen.opts, 1)
	assert.Equal(t, "gpt-4o", gen.opts[0].Model)
	assert.Contains(t, gen.prompts[0], "срыв сроков")
	assert.Contains(t, gen.opts[0].System, "rootCause", "output schema embedded in the system prompt")
}

func TestSaveHistoryDefaultsType(t *testing.T) {
	hist := &recHistory{}
	svc := NewService(&fakeGen{}, hist, fixedClock{t: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)}, "", "")

	rec, err := svc.SaveHistory(context.Background(), "", json.RawMessage(`{"x":1}`), "u1")
	require.NoError(t, err)
	assert.Equal(t, "custom", rec.Type)
	assert.Equal(t, int64(1), rec.ID)
	assert.Equal(t, "u1", rec.UserID)
}

func TestListHistoryScoping(t *testing.T) {
	hist := &recHistory{}
	svc := NewService(&fakeGen{}, hist, fixedClock{}, "", "")

	_, err := svc.SaveHistory(context.Background(), "a3", json.RawMessage(`{}`), "u1")
	require.NoError(t, err)
	_, err = svc.SaveHistory(context.Background(), "vsm", json.RawMessage(`{}`), "u2")
	require.NoError(t, err)

	own, err := svc.ListHistory(context.Background(), "u1", false)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	all, err := svc.ListHistory(context.Background(), "u1", true)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestTemplates(t *testing.T) {
	svc := NewService(&fakeGen{}, &recHistory{}, fixedClock{}, "", "")

	tpls := svc.Templates()
	require.NotEmpty(t, tpls)
	for _, tpl := range tpls {
		assert.NotEmpty(t, tpl.ID)
		assert.NotEmpty(t, tpl.Prompt)
	}
}
