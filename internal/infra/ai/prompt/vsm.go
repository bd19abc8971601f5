package prompt

import (
	"fmt"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// VSMSystem frames the model as a Lean/VSM expert.
const VSMSystem = `Ты эксперт по Lean Manufacturing и Value Stream Mapping. Отвечай ТОЛЬКО валидным JSON без markdown или комментариев.`

// VSMGeneration builds the map-generation prompt.
func VSMGeneration(in reports.VSMInput) string {
	return fmt.Sprintf(`Построй анализ потока создания ценности (Value Stream Map) для компании.

КОМПАНИЯ: %s
ДЕЯТЕЛЬНОСТЬ: %s
ПРОЦЕСС ДЛЯ УЛУЧШЕНИЯ: %s

ЗАДАЧА:
1. asIsMap — пооперационная диаграмма текущего состояния: для каждой операции stage, description, operationTime, waitTime, responsible, problems, addsValue ("да"/"нет"), hasWaste ("да"/"нет").
2. operatorLoad — диаграмма загрузки операторов: operator, usefulLoad (число, %%), waste (число, %%), comment.
3. spaghettiDiagram — текстовое описание перемещений (диаграмма спагетти).
4. wasteTable — текстовая таблица потерь по 7 видам muda.
5. jitMeasures — мероприятия Just in Time: principle, action, deadline, responsible, expectedResult.
6. toBeMap — текстовое описание будущего состояния потока.

ФОРМАТ ОТВЕТА (JSON):
{
  "asIsMap": [{"stage": "...", "description": "...", "operationTime": "...", "waitTime": "...", "responsible": "...", "problems": "...", "addsValue": "...", "hasWaste": "..."}],
  "operatorLoad": [{"operator": "...", "usefulLoad": 0, "waste": 0, "comment": "..."}],
  "spaghettiDiagram": "...",
  "wasteTable": "...",
  "jitMeasures": [{"principle": "...", "action": "...", "deadline": "...", "responsible": "...", "expectedResult": "..."}],
  "toBeMap": "..."
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`,
		in.CompanyName, in.CompanyActivity, in.ProcessToImprove)
}

// VSMImproveActivity builds the company-activity improvement prompt. The
// model answers {"improvedText": "..."}.
func VSMImproveActivity(text string) string {
	return fmt.Sprintf(`Ты — эксперт по бизнес-анализу и Lean Manufacturing. Твоя задача — улучшить описание основной деятельности компании для последующего анализа Value Stream Mapping.

ИСХОДНОЕ ОПИСАНИЕ:
%s

ЗАДАЧА:
Улучши описание деятельности компании, сделав его более структурированным и информативным:

1. Четко опиши основной вид деятельности
2. Укажи ключевые продукты или услуги
3. Опиши основные процессы или этапы работы
4. Добавь контекст отрасли, если это уместно

ВАЖНО:
- Сохрани всю важную информацию из исходного описания
- Добавь логичные детали на основе контекста
- Описание должно быть 2-4 предложения, структурированное
- Фокус на производственных/операционных процессах

ФОРМАТ ОТВЕТА (JSON):
{
  "improvedText": "Улучшенное описание деятельности компании"
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`, text)
}

// VSMImproveProcess builds the process-description improvement prompt.
func VSMImproveProcess(text string) string {
	return fmt.Sprintf(`Ты — эксперт по процессному анализу и Lean Manufacturing. Твоя задача — улучшить описание процесса для последующего построения Value Stream Map.

ИСХОДНОЕ ОПИСАНИЕ:
%s

ЗАДАЧА:
Улучши описание процесса, сделав его более четким и детализированным:

1. Четко определи начало процесса (триггер, инициатор)
2. Опиши ключевые этапы процесса
3. Укажи конечный результат процесса
4. Добавь важные детали о взаимодействиях между этапами

ВАЖНО:
- Сохрани всю важную информацию из исходного описания
- Опиши процесс как последовательность шагов от начала до конца
- Описание должно быть 2-4 предложения, структурированное
- Фокус на потоке создания ценности

ФОРМАТ ОТВЕТА (JSON):
{
  "improvedText": "Улучшенное описание процесса"
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`, text)
}
