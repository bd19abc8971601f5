package reports

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/infra/ai/prompt"
)

// Minimum input lengths for the A3 field assist (runes, after trimming)
const (
	minValidateLen = 3
	minImproveLen  = 5
)

//
// ==== A3 field assist ====
//

// ImproveA3Input rewrites one 5W1H answer. Returns the improved plain text.
func (s *Service) ImproveA3Input(ctx context.Context, text, fieldType string) (string, error) {
	if !reports.A3Fields[fieldType] {
		return "", reports.Invalid("unknown fieldType: " + fieldType)
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minImproveLen {
		return "", reports.Invalid("Текст слишком короткий для улучшения")
	}

	out, err := s.Gen.GenerateText(ctx, prompt.A3ImproveInput(text, fieldType), ai.Options{
		Model: s.MiniModel, Temperature: genTemp, System: prompt.A3ImproveSystem,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

// ValidateA3Input checks one 5W1H answer against its question. Very short
// answers are rejected locally without an AI call.
func (s *Service) ValidateA3Input(ctx context.Context, text, fieldType string) (*reports.InputVerdict, error) {
	if !reports.A3Fields[fieldType] {
		return nil, reports.Invalid("unknown fieldType: " + fieldType)
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < minValidateLen {
		return &reports.InputVerdict{
			IsValid: false,
			Message: "Ответ слишком короткий. Добавьте больше деталей.",
		}, nil
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.A3ValidateInput(text, fieldType), ai.Options{
		Model: s.MiniModel, Temperature: validateTemp, System: prompt.A3ValidateSystem,
	})
	if err != nil {
		return nil, err
	}
	var verdict reports.InputVerdict
	if err := reports.DecodeObject(raw, &verdict); err != nil {
		return nil, err
	}
	return &verdict, nil
}

//
// ==== VSM text assist ====
//

// ImproveVSMText rewrites the company-activity or process description.
// context selects the prompt: "activity" or "process".
func (s *Service) ImproveVSMText(ctx context.Context, text, textContext string) (string, error) {
	if !reports.VSMContexts[textContext] {
		return "", reports.Invalid("unknown context: " + textContext)
	}
	if strings.TrimSpace(text) == "" {
		return "", reports.Invalid("text is required")
	}

	var p string
	if textContext == "activity" {
		p = prompt.VSMImproveActivity(text)
	} else {
		p = prompt.VSMImproveProcess(text)
	}
	raw, err := s.Gen.GenerateText(ctx, p, ai.Options{
		Model: s.MiniModel, Temperature: genTemp, JSONOnly: true,
	})
	if err != nil {
		return "", err
	}
	var out struct {
		ImprovedText string `json:"improvedText"`
	}
	if err := reports.DecodeObject(raw, &out); err != nil {
		return "", err
	}
	if out.ImprovedText == "" {
		return "", &reports.FormatError{Hint: "improvedText is empty"}
	}
	return out.ImprovedText, nil
}

//
// ==== QFD assist ====
//

// SearchCompany looks a company up by name and returns a structured
// description suitable as QFD input.
func (s *Service) SearchCompany(ctx context.Context, companyName string) (*reports.CompanySearchResult, error) {
	if strings.TrimSpace(companyName) == "" {
		return nil, reports.Invalid("companyName is required")
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.QFDSearchCompany(companyName), ai.Options{
		Model: s.Model, Temperature: searchTemp, JSONOnly: true, System: prompt.QFDSearchSystem,
	})
	if err != nil {
		return nil, err
	}
	var res reports.CompanySearchResult
	if err := reports.DecodeObject(raw, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// ImproveQFDDescription restructures a company description for analysis.
func (s *Service) ImproveQFDDescription(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", reports.Invalid("description is required")
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.QFDImproveDescription(description), ai.Options{
		Model: s.MiniModel, Temperature: genTemp, JSONOnly: true,
	})
	if err != nil {
		return "", err
	}
	var out struct {
		ImprovedDescription string `json:"improvedDescription"`
	}
	if err := reports.DecodeObject(raw, &out); err != nil {
		return "", err
	}
	if out.ImprovedDescription == "" {
		return "", &reports.FormatError{Hint: "improvedDescription is empty"}
	}
	return out.ImprovedDescription, nil
}

//
// ==== Hoshin assist ====
//

// ImproveHoshinField rewrites one of mission/vision/values/goals. Returns
// the improved plain text.
func (s *Service) ImproveHoshinField(ctx context.Context, text, fieldType string) (string, error) {
	if !reports.HoshinFields[fieldType] {
		return "", reports.Invalid("unknown fieldType: " + fieldType)
	}
	if strings.TrimSpace(text) == "" {
		return "", reports.Invalid("text is required")
	}

	out, err := s.Gen.GenerateText(ctx, prompt.HoshinImprove(text, fieldType), ai.Options{
		Model: s.MiniModel, Temperature: genTemp,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(strings.TrimSpace(out), `"`), nil
}

// ValidateHoshin cross-checks mission, vision, values and goals for
// consistency.
func (s *Service) ValidateHoshin(ctx context.Context, in reports.HoshinInput) (*reports.ConsistencyResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, &reports.ValidationError{Message: "mission, vision, values and goals are required", Details: err.Error()}
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.HoshinValidation(in), ai.Options{
		Model: s.MiniModel, Temperature: validateTemp,
	})
	if err != nil {
		return nil, err
	}
	var res reports.ConsistencyResult
	if err := reports.DecodeObject(raw, &res); err != nil {
		return nil, err
	}
	if res.Recommendations == nil {
		res.Recommendations = []string{}
	}
	return &res, nil
}
