package aitest

import (
	"context"
	"encoding/json"

	"github.com/kaizen-center/backend/internal/application"
	"github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/infra/ai/prompt"
)

// TestSchema is the form description extracted from a freeform test prompt
type TestSchema struct {
	Inputs      []string          `json:"inputs"`
	InputLabels map[string]string `json:"inputLabels"`
	Outputs     map[string]string `json:"outputs"`
}

// Template is a ready-made test prompt users can start from
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Prompt      string `json:"prompt"`
}

// Service implements the freeform AI test builder: schema extraction,
// report generation and the shared history log.
type Service struct {
	Gen       ai.TextGenerator
	History   reports.History
	Clock     application.Clock
	Model     string
	MiniModel string
}

func NewService(gen ai.TextGenerator, history reports.History, clock application.Clock, model, miniModel string) *Service {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if model == "" {
		model = "gpt-4o"
	}
	if miniModel == "" {
		miniModel = "gpt-4o-mini"
	}
	return &Service{Gen: gen, History: history, Clock: clock, Model: model, MiniModel: miniModel}
}

// ExtractSchema turns a freeform test description into a form schema.
func (s *Service) ExtractSchema(ctx context.Context, userPrompt string) (*TestSchema, error) {
	if userPrompt == "" {
		return nil, reports.Invalid("prompt is required")
	}

	raw, err := s.Gen.GenerateText(ctx, userPrompt, ai.Options{
		Model: s.MiniModel, Temperature: 0.3, JSONOnly: true,
		System: prompt.AITestExtractSchemaSystem,
	})
	if err != nil {
		return nil, err
	}

	var schema TestSchema
	if err := reports.DecodeObject(raw, &schema); err != nil {
		return nil, err
	}
	if len(schema.Inputs) == 0 || len(schema.Outputs) == 0 {
		return nil, &reports.FormatError{Hint: "schema has no inputs or outputs"}
	}
	if schema.InputLabels == nil {
		schema.InputLabels = map[string]string{}
	}
	return &schema, nil
}

// GenerateReport runs the original test prompt against the user's answers
// and returns the freeform JSON result.
func (s *Service) GenerateReport(ctx context.Context, originalPrompt string, userInputs map[string]any, outputSchema map[string]any) (map[string]any, error) {
	if originalPrompt == "" {
		return nil, reports.Invalid("prompt is required")
	}
	if len(userInputs) == 0 {
		return nil, reports.Invalid("userInputs is required")
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.AITestReport(originalPrompt, userInputs), ai.Options{
		Model: s.Model, Temperature: 0.7, JSONOnly: true,
		System: prompt.AITestReportSystem(outputSchema),
	})
	if err != nil {
		return nil, err
	}

	var result map[string]any
	if err := reports.DecodeObject(raw, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveHistory records a finished test run. typ defaults to "custom".
func (s *Service) SaveHistory(ctx context.Context, typ string, data json.RawMessage, userID string) (*reports.HistoryRecord, error) {
	if len(data) == 0 {
		return nil, reports.Invalid("data is required")
	}
	if typ == "" {
		typ = string(reports.KindCustom)
	}
	rec := &reports.HistoryRecord{
		Type:      typ,
		Data:      data,
		UserID:    userID,
		CreatedAt: s.Clock.Now(),
	}
	if err := s.History.Insert(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListHistory returns the caller's history, or everyone's for admins.
func (s *Service) ListHistory(ctx context.Context, userID string, includeAll bool) ([]*reports.HistoryRecord, error) {
	return s.History.List(ctx, userID, includeAll)
}

// Templates returns the built-in test prompts.
func (s *Service) Templates() []Template {
	return templates
}

var templates = []Template{
	{
		ID:          "five-why",
		Name:        "5 Почему",
		Description: "Поиск корневой причины проблемы методом пяти вопросов",
		Prompt:      "Создай тест «5 Почему». Спроси у пользователя описание проблемы. Задай последовательно пять вопросов «почему» и выведи цепочку ответов таблицей. В конце сформулируй корневую причину и одну контрмеру.",
	},
	{
		ID:          "pareto",
		Name:        "Анализ Парето",
		Description: "Ранжирование причин проблем по правилу 80/20",
		Prompt:      "Создай тест «Анализ Парето». Спроси у пользователя список проблем с частотой возникновения каждой. Отсортируй проблемы по убыванию частоты, посчитай накопленный процент и выведи таблицей. Отметь, какие проблемы попадают в первые 80%.",
	},
	{
		ID:          "smart-goals",
		Name:        "Проверка целей по SMART",
		Description: "Оценка формулировок целей по критериям SMART",
		Prompt:      "Создай тест проверки целей по SMART. Спроси у пользователя список целей. Для каждой цели оцени соответствие критериям Specific, Measurable, Achievable, Relevant, Time-bound и выведи таблицей. Для несоответствующих целей предложи улучшенную формулировку.",
	},
	{
		ID:          "kaizen-blitz",
		Name:        "План кайдзен-блица",
		Description: "Недельный план быстрого улучшения процесса",
		Prompt:      "Создай тест «Кайдзен-блиц». Спроси у пользователя процесс для улучшения и состав команды. Составь план блица на пять дней: день, активность, ответственный, ожидаемый результат. Выведи план таблицей и добавь текстовые рекомендации по подготовке.",
	},
}
