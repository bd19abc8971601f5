package prompt

import (
	"fmt"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// HoshinStrategy builds the strategy-deployment prompt. The model answers
// {"analysis": "...", "tasks": [...]}.
func HoshinStrategy(in reports.HoshinInput) string {
	return fmt.Sprintf(`Ты эксперт по стратегическому планированию Хосин Канри. Разверни стратегию компании в тактические задачи.

МИССИЯ:
%s

ВИДЕНИЕ:
%s

ЦЕННОСТИ:
%s

ЦЕЛИ НА ГОД:
%s

ЗАДАЧА:
1. analysis — анализ связи между миссией, видением, ценностями и целями (2-4 предложения).
2. tasks — для каждой годовой цели составь 2-3 тактические задачи: goalName (название цели), tacticalTask (описание задачи), deadline (срок), responsible (ответственная роль), expectedResult (ожидаемый результат в числовом выражении).

ФОРМАТ ОТВЕТА (JSON):
{
  "analysis": "...",
  "tasks": [{"goalName": "...", "tacticalTask": "...", "deadline": "...", "responsible": "...", "expectedResult": "..."}]
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки и без комментариев.`,
		in.Mission, in.Vision, in.Values, in.Goals)
}

// hoshinImproveBriefs describe what a strong version of each field looks like.
var hoshinImproveBriefs = map[string]string{
	"mission": "Миссия должна отвечать на вопрос «зачем существует компания», быть краткой (1-2 предложения) и ориентированной на пользу для клиентов и общества.",
	"vision":  "Видение должно описывать желаемое состояние компании через 3-5 лет, быть амбициозным, но достижимым, и задавать направление развития.",
	"values":  "Ценности должны быть списком из 3-5 принципов, которыми компания руководствуется в ежедневной работе, сформулированных конкретно, а не лозунгами.",
	"goals":   "Цели на год должны быть измеримыми (SMART): с числовыми показателями, сроками и понятной связью с видением компании.",
}

// HoshinImprove builds the field improvement prompt for one of
// mission/vision/values/goals. The model returns plain improved text.
func HoshinImprove(text, fieldType string) string {
	return fmt.Sprintf(`Ты эксперт по стратегическому планированию Хосин Канри. Улучши формулировку поля «%s».

ТРЕБОВАНИЯ К ПОЛЮ:
%s

ИСХОДНЫЙ ТЕКСТ:
%s

ВАЖНО:
- Сохрани смысл и все факты исходного текста
- Сделай формулировку конкретной и профессиональной
- Не добавляй вымышленных фактов о компании

Верни только улучшенный текст без пояснений и без кавычек.`,
		fieldType, hoshinImproveBriefs[fieldType], text)
}

// HoshinValidation builds the cross-field consistency prompt. The model
// answers a ConsistencyResult JSON object.
func HoshinValidation(in reports.HoshinInput) string {
	return fmt.Sprintf(`Ты эксперт по Хосин Канри. Проверь согласованность элементов стратегии компании.

МИССИЯ:
%s

ВИДЕНИЕ:
%s

ЦЕННОСТИ:
%s

ЦЕЛИ НА ГОД:
%s

ПРОВЕРКИ:
1. missionVision — следует ли видение из миссии
2. visionGoals — ведут ли годовые цели к видению
3. valuesAlignment — не противоречат ли цели заявленным ценностям
4. goalsMeasurable — являются ли цели измеримыми

ФОРМАТ ОТВЕТА (JSON):
{
  "isConsistent": true/false,
  "missionVision": {"passed": true/false, "issue": "описание проблемы или пустая строка"},
  "visionGoals": {"passed": true/false, "issue": ""},
  "valuesAlignment": {"passed": true/false, "issue": ""},
  "goalsMeasurable": {"passed": true/false, "issue": ""},
  "recommendations": ["конкретная рекомендация", "..."]
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`,
		in.Mission, in.Vision, in.Values, in.Goals)
}
