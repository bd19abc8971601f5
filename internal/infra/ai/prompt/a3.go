package prompt

import (
	"fmt"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// A3ImproveSystem frames the model for field-level text improvement.
const A3ImproveSystem = `Ты помощник для улучшения описаний проблем в A3 отчетах. Твоя задача - сделать текст более структурированным, конкретным и полезным для анализа. СТРОГО следуй инструкциям по методике 5W1H и не добавляй информацию, которая относится к другим полям.`

// A3ValidateSystem frames the model for strict field validation.
const A3ValidateSystem = `Ты строгий валидатор ответов для A3 отчетов. Проверяй соответствие методике 5W1H. Отвечай ТОЛЬКО валидным JSON без дополнительного текста, markdown или комментариев.`

// a3FieldHints describe what each 5W1H field must contain.
var a3FieldHints = map[string]string{
	"what":  "ЧТО произошло: суть проблемы, отклонение от нормы",
	"where": "ГДЕ произошло: участок, линия, подразделение",
	"when":  "КОГДА произошло: дата, смена, период",
	"who":   "КТО обнаружил или кого затрагивает проблема",
	"why":   "ПОЧЕМУ это проблема: влияние на качество, сроки, затраты",
	"how":   "КАК проявляется: частота, масштаб, способ обнаружения",
}

// A3Generation builds the full report-generation prompt from 5W1H input.
func A3Generation(in reports.A3Input) string {
	return fmt.Sprintf(`Ты эксперт по методологии A3 и решению проблем по циклу PDCA.
На основе ответов 5W1H составь полный A3 отчет.

ОТВЕТЫ ПОЛЬЗОВАТЕЛЯ (5W1H):
- Что произошло: %s
- Где произошло: %s
- Когда произошло: %s
- Кто обнаружил/затронут: %s
- Почему это проблема: %s
- Как проявляется: %s

ЗАДАЧА:
1. Сформулируй краткий заголовок отчета (title).
2. Составь формулировку проблемы (problemStatement) и описание текущего состояния (currentState).
3. Построй диаграмму Исикавы по шести категориям 6M: man, machine, method, material, measurement, environment. Для каждой категории укажи массив вероятных причин (массив может быть пустым).
4. Построй 2-3 ветки анализа "5 Почему" (fiveWhyBranches): initialCause, whyChain (массив из 3-5 "почему"), rootCause.
5. Сформулируй целевое состояние (targetCondition).
6. Составь план контрмер (countermeasuresPlan): для каждой меры action, deadline, responsible, kpi.
7. Опиши стандартизацию результата (standardize).

ФОРМАТ ОТВЕТА (JSON):
{
  "title": "...",
  "problemStatement": "...",
  "currentState": "...",
  "rootCauseAnalysis": {
    "ishikawa": {"man": [], "machine": [], "method": [], "material": [], "measurement": [], "environment": []},
    "fiveWhyBranches": [{"initialCause": "...", "whyChain": ["..."], "rootCause": "..."}]
  },
  "targetCondition": "...",
  "countermeasuresPlan": [{"action": "...", "deadline": "...", "responsible": "...", "kpi": "..."}],
  "standardize": "..."
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки и без пояснений.`,
		in.What, in.Where, in.When, in.Who, in.Why, in.How)
}

// A3ImproveInput builds the field improvement prompt.
func A3ImproveInput(text, fieldType string) string {
	return fmt.Sprintf(`Улучши ответ пользователя на вопрос методики 5W1H.

ПОЛЕ: %s (%s)

ИСХОДНЫЙ ТЕКСТ:
%s

ТРЕБОВАНИЯ:
- Сохрани все факты из исходного текста
- Сделай формулировку конкретной и измеримой
- Не добавляй информацию, относящуюся к другим полям 5W1H
- Ответ 1-3 предложения

Верни только улучшенный текст без пояснений и без кавычек.`,
		fieldType, a3FieldHints[fieldType], text)
}

// A3ValidateInput builds the field validation prompt. The model must return
// {"isValid": bool, "message": string}.
func A3ValidateInput(text, fieldType string) string {
	return fmt.Sprintf(`Проверь, отвечает ли текст пользователя на вопрос методики 5W1H.

ПОЛЕ: %s (%s)

ТЕКСТ ПОЛЬЗОВАТЕЛЯ:
%s

КРИТЕРИИ:
- Текст отвечает именно на этот вопрос, а не на другой вопрос 5W1H
- Текст содержит конкретику, а не общие слова
- Текста достаточно для дальнейшего анализа

ФОРМАТ ОТВЕТА (JSON):
{"isValid": true/false, "message": "короткое пояснение или совет"}

Возвращай ТОЛЬКО валидный JSON.`,
		fieldType, a3FieldHints[fieldType], text)
}
