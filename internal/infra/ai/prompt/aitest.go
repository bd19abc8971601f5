package prompt

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// AITestExtractSchemaSystem asks the model to turn a freeform test
// description into a form schema.
const AITestExtractSchemaSystem = `Ты помощник для создания тестов и отчетов.
Пользователь описывает какой тест нужен.

Твоя задача:
1. Определи какие поля нужно спросить у пользователя (inputs)
2. Определи какие данные должны быть в результате (outputs)
3. Для каждого output укажи тип: "text" (строка/параграф) или "table" (таблица)

ВАЖНО: Верни ТОЛЬКО валидный JSON без markdown, без комментариев.

Формат ответа:
{
  "inputs": ["название_поля_1", "название_поля_2"],
  "inputLabels": {
    "название_поля_1": "Красивый лейбл для UI",
    "название_поля_2": "Красивый лейбл для UI"
  },
  "outputs": {
    "название_секции_1": "text",
    "название_секции_2": "table"
  }
}

Пример:
Промпт: "Создай тест 5 Почему. Спроси проблему. Задай 5 раз почему. Выдай корневую причину."
Ответ:
{
  "inputs": ["problem"],
  "inputLabels": {
    "problem": "Опишите проблему"
  },
  "outputs": {
    "whys": "table",
    "rootCause": "text"
  }
}`

// AITestReportSystem frames the freeform report generation. outputSchema is
// optional; when present it is embedded so the model mirrors the structure.
func AITestReportSystem(outputSchema map[string]any) string {
	base := `Ты помощник для создания отчетов и анализов.
Выполни задачу пользователя используя предоставленные данные.

ВАЖНО:
1. Верни ТОЛЬКО валидный JSON без markdown, без комментариев
2. Структура JSON должна соответствовать описанию в промпте
3. Для полей типа "table" возвращай массив объектов
4. Для полей типа "text" возвращай строку`
	if len(outputSchema) == 0 {
		return base
	}
	b, _ := json.MarshalIndent(outputSchema, "", "  ")
	return base + "\n\nОжидаемая структура:\n" + string(b)
}

// AITestReport combines the original test prompt with the user's answers.
// Keys are emitted in sorted order so identical input yields an identical
// prompt.
func AITestReport(originalPrompt string, userInputs map[string]any) string {
	keys := make([]string, 0, len(userInputs))
	for k := range userInputs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(originalPrompt)
	b.WriteString("\n\nДанные пользователя:\n")
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %v\n", k, userInputs[k])
	}
	return b.String()
}
