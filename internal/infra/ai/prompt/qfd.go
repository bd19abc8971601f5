package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kaizen-center/backend/internal/domain/reports"
)

// QFDSystem frames the model as a QFD expert for structured output.
const QFDSystem = `You are an expert in Quality Function Deployment (QFD). Always respond with valid JSON only, no markdown.`

// QFDReportSystem is the stage-2 variant.
const QFDReportSystem = `You are an expert in Quality Function Deployment (QFD) analysis. Always respond with valid JSON only, no markdown.`

// QFDSearchSystem frames the company-lookup call.
const QFDSearchSystem = `You are an expert analyst. Provide a structured company description. IMPORTANT: Return ONLY valid JSON with no markdown formatting, no code blocks, no explanatory text - just pure JSON.`

// QFDLists builds the stage-1 prompt producing the editable requirement and
// characteristic lists (max 10 each).
func QFDLists(companyDescription string) string {
	return fmt.Sprintf(`Ты эксперт по Quality Function Deployment (QFD). На основе описания компании составь списки для Дома качества.

ОПИСАНИЕ КОМПАНИИ:
%s

ЗАДАЧА:
1. customerRequirements — требования клиентов ("голос клиента"): от 5 до %d пунктов. Для каждого: id (req1, req2, ...), text, category, importance (1-10).
2. technicalCharacteristics — технические характеристики продукта: от 5 до %d пунктов. Для каждой: id (tc1, tc2, ...), text, category, unit (единица измерения), direction ("↑" больше лучше, "↓" меньше лучше, "○" есть оптимум).

ФОРМАТ ОТВЕТА (JSON):
{
  "customerRequirements": [{"id": "req1", "text": "...", "category": "...", "importance": 8}],
  "technicalCharacteristics": [{"id": "tc1", "text": "...", "category": "...", "unit": "...", "direction": "↑"}]
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`,
		companyDescription, reports.MaxRequirements, reports.MaxCharacteristics)
}

// QFDReport builds the stage-2 prompt from the curated lists. Competitor
// sections are requested only when the competitor block is enabled.
func QFDReport(in reports.QFDReportInput) string {
	reqJSON, _ := json.Marshal(in.CustomerRequirements)
	chJSON, _ := json.Marshal(in.TechnicalCharacteristics)

	var b strings.Builder
	fmt.Fprintf(&b, `Ты эксперт по Quality Function Deployment (QFD). Построй полный Дом качества.

ОПИСАНИЕ КОМПАНИИ:
%s

ТРЕБОВАНИЯ КЛИЕНТОВ:
%s

ТЕХНИЧЕСКИЕ ХАРАКТЕРИСТИКИ:
%s

ЗАДАЧА:
1. relationshipMatrix — матрица взаимосвязей: ключ "requirementId-characteristicId", значение "9" (сильная), "3" (средняя), "1" (слабая) или "" (нет связи).
2. correlations — корреляции между характеристиками (крыша дома): characteristic1Id, characteristic2Id, type ("++", "+", "-", "--"), description.
3. customerRequirements — верни списки с заполненными importance и relativeImportance.
4. technicalCharacteristics — верни списки с absoluteWeight, relativeWeight, rank, currentValue, targetValue, targetDate.
5. topPriorities, quickWins, criticalTradeoffs — массивы строк.
6. actionPlan — {"phase1": "...", "phase2": "...", "phase3": "..."}.
7. actions — план мероприятий: id, action, requirementIds, characteristicId, impact (1-10), duration, responsible.
`, in.CompanyDescription, reqJSON, chJSON)

	if in.CompetitorsEnabled && in.Competitors != nil {
		var names []string
		for _, n := range []string{in.Competitors.Competitor1, in.Competitors.Competitor2, in.Competitors.Competitor3} {
			if n != "" {
				names = append(names, n)
			}
		}
		fmt.Fprintf(&b, `8. competitiveRatings — конкурентная оценка каждого требования по шкале 1-5: requirementId, ourProduct, competitor1..competitor3, improvementNeeded.
9. competitiveStrategy — {"strengths": [], "gaps": [], "opportunities": []}.

КОНКУРЕНТЫ: %s
`, strings.Join(names, ", "))
	}

	b.WriteString(`
Возвращай ТОЛЬКО валидный JSON со всеми перечисленными полями, без markdown разметки.`)
	return b.String()
}

// QFDSearchCompany builds the company-lookup prompt.
func QFDSearchCompany(companyName string) string {
	return fmt.Sprintf(`Найди актуальную информацию о компании "%s" и составь структурированное описание для QFD анализа.

ЗАДАЧА:
1. Найди информацию о компании "%s"
2. Определи основную деятельность и продукты/услуги
3. Определи целевую аудиторию
4. Выдели ключевые особенности и позиционирование

ФОРМАТ ОТВЕТА (JSON):
{
  "found": true/false,
  "companyName": "Официальное название компании",
  "description": "Полное описание: основная деятельность, продукты/услуги, целевая аудитория, ключевые особенности (3-5 предложений)",
  "confidence": "high/medium/low",
  "suggestion": "Совет пользователю (если confidence = low или found = false)"
}

ПРАВИЛА:
- Если нашел достоверную информацию → found: true, confidence: high
- Если информации мало или неясна → found: true, confidence: low, добавь suggestion
- Если компания не найдена → found: false, suggestion с советом ввести описание вручную
- description должно быть конкретным и полезным для QFD анализа

Возвращай ТОЛЬКО валидный JSON.`, companyName, companyName)
}

// QFDImproveDescription builds the description improvement prompt. The
// model answers {"improvedDescription": "..."}.
func QFDImproveDescription(description string) string {
	return fmt.Sprintf(`Ты — эксперт по Quality Function Deployment (QFD). Твоя задача — улучшить описание компании для последующего QFD анализа.

ИСХОДНОЕ ОПИСАНИЕ:
%s

ЗАДАЧА:
Улучши описание, добавив недостающую информацию и структурировав её для эффективного QFD анализа:

1. Четко опиши основную деятельность и продукт/услугу
2. Укажи целевую аудиторию (кто клиенты)
3. Выдели ключевые характеристики и особенности
4. Добавь контекст, который поможет определить требования клиентов

ВАЖНО:
- Сохрани всю важную информацию из исходного описания
- Добавь логичные детали на основе контекста
- Описание должно быть 3-5 предложений, структурированное
- Фокус на аспектах, важных для анализа качества продукта

ФОРМАТ ОТВЕТА (JSON):
{
  "improvedDescription": "Улучшенное описание компании и продукта"
}

Возвращай ТОЛЬКО валидный JSON, без markdown разметки.`, description)
}
