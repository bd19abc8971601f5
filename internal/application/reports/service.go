package reports

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/kaizen-center/backend/internal/application"
	"github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/infra/ai/prompt"
)

// Sampling temperatures per call class
const (
	genTemp      = 0.7
	validateTemp = 0.3
	searchTemp   = 0.4
)

// Service implements the report use-cases: generate, list, get, delete
// plus the field-assist operations. Thread-safe.
type Service struct {
	Gen       ai.TextGenerator
	Store     reports.Store
	History   reports.History
	Snapshots reports.SnapshotArchive
	Clock     application.Clock
	Model     string
	MiniModel string

	validate *validator.Validate
}

func NewService(gen ai.TextGenerator, store reports.Store, history reports.History, snapshots reports.SnapshotArchive, clock application.Clock, model, miniModel string) *Service {
	if clock == nil {
		clock = application.SystemClock{}
	}
	if model == "" {
		model = "gpt-4o"
	}
	if miniModel == "" {
		miniModel = "gpt-4o-mini"
	}
	return &Service{
		Gen:       gen,
		Store:     store,
		History:   history,
		Snapshots: snapshots,
		Clock:     clock,
		Model:     model,
		MiniModel: miniModel,
		validate:  validator.New(),
	}
}

//
// ==== A3 ====
//

func (s *Service) GenerateA3(ctx context.Context, in reports.A3Input, userID string) (*reports.A3Report, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, &reports.ValidationError{Message: "all 5W1H fields are required", Details: err.Error()}
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.A3Generation(in), ai.Options{
		Model: s.MiniModel, Temperature: genTemp, JSONOnly: true,
	})
	if err != nil {
		return nil, err
	}

	var out reports.A3Output
	if err := reports.DecodeObject(raw, &out); err != nil {
		return nil, err
	}
	if err := out.Check(); err != nil {
		return nil, &reports.FormatError{Hint: "a3 shape check", Err: err}
	}

	now := s.Clock.Now()
	rec := &reports.A3Report{
		ID:        uuid.New().String(),
		Title:     out.Title,
		Input:     in,
		Output:    out,
		Status:    reports.StatusGenerated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, reports.KindA3.Key(rec.ID), rec); err != nil {
		return nil, err
	}
	s.bestEffortMirror(ctx, reports.KindA3, rec.ID, userID, rec)
	return rec, nil
}

func (s *Service) ListA3(ctx context.Context) ([]reports.A3Report, error) {
	return list[reports.A3Report](ctx, s.Store, reports.KindA3)
}

func (s *Service) GetA3(ctx context.Context, id string) (*reports.A3Report, error) {
	return get[reports.A3Report](ctx, s.Store, reports.KindA3, id)
}

//
// ==== VSM ====
//

func (s *Service) GenerateVSM(ctx context.Context, in reports.VSMInput, userID string) (*reports.ValueStreamMap, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, &reports.ValidationError{Message: "companyName, companyActivity and processToImprove are required", Details: err.Error()}
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.VSMGeneration(in), ai.Options{
		Model: s.Model, Temperature: genTemp, JSONOnly: true, System: prompt.VSMSystem,
	})
	if err != nil {
		return nil, err
	}

	var out reports.VSMOutput
	if err := reports.DecodeObject(raw, &out); err != nil {
		return nil, err
	}
	if err := out.Check(); err != nil {
		return nil, &reports.FormatError{Hint: "vsm shape check", Err: err}
	}

	now := s.Clock.Now()
	rec := &reports.ValueStreamMap{
		ID:        uuid.New().String(),
		Title:     fmt.Sprintf("Карта потока (VSM): %s - %s", in.CompanyName, firstWords(in.ProcessToImprove, 4)),
		Input:     in,
		Output:    out,
		Status:    reports.StatusGenerated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, reports.KindVSM.Key(rec.ID), rec); err != nil {
		return nil, err
	}
	s.bestEffortMirror(ctx, reports.KindVSM, rec.ID, userID, rec)
	return rec, nil
}

func (s *Service) ListVSM(ctx context.Context) ([]reports.ValueStreamMap, error) {
	return list[reports.ValueStreamMap](ctx, s.Store, reports.KindVSM)
}

func (s *Service) GetVSM(ctx context.Context, id string) (*reports.ValueStreamMap, error) {
	return get[reports.ValueStreamMap](ctx, s.Store, reports.KindVSM, id)
}

//
// ==== QFD ====
//

// GenerateQFDLists is stage 1: produce the editable requirement and
// characteristic lists. Nothing is persisted here.
func (s *Service) GenerateQFDLists(ctx context.Context, companyDescription string) (*reports.QFDLists, error) {
	if strings.TrimSpace(companyDescription) == "" {
		return nil, reports.Invalid("companyDescription is required")
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.QFDLists(companyDescription), ai.Options{
		Model: s.Model, Temperature: genTemp, JSONOnly: true, System: prompt.QFDSystem,
	})
	if err != nil {
		return nil, err
	}

	var lists reports.QFDLists
	if err := reports.DecodeObject(raw, &lists); err != nil {
		return nil, err
	}
	if err := lists.Check(); err != nil {
		return nil, &reports.FormatError{Hint: "qfd lists shape check", Err: err}
	}
	return &lists, nil
}

// GenerateQFDReport is stage 2: build the full House of Quality from the
// curated lists and persist it.
func (s *Service) GenerateQFDReport(ctx context.Context, in reports.QFDReportInput, userID string) (*reports.QFDReport, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, &reports.ValidationError{Message: "companyDescription and both lists (1-10 entries) are required", Details: err.Error()}
	}
	if !in.CompetitorsEnabled {
		in.Competitors = nil
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.QFDReport(in), ai.Options{
		Model: s.Model, Temperature: genTemp, JSONOnly: true, System: prompt.QFDReportSystem,
	})
	if err != nil {
		return nil, err
	}

	var out reports.QFDOutput
	if err := reports.DecodeObject(raw, &out); err != nil {
		return nil, err
	}
	if err := out.Check(); err != nil {
		return nil, &reports.FormatError{Hint: "qfd shape check", Err: err}
	}
	// the model sometimes omits the echoed lists; fall back to the input
	if len(out.CustomerRequirements) == 0 {
		out.CustomerRequirements = in.CustomerRequirements
	}
	if len(out.TechnicalCharacteristics) == 0 {
		out.TechnicalCharacteristics = in.TechnicalCharacteristics
	}
	if !in.CompetitorsEnabled {
		out.CompetitiveRatings = nil
		out.CompetitiveStrategy = nil
	}

	now := s.Clock.Now()
	rec := &reports.QFDReport{
		ID:        fmt.Sprintf("qfd_%d", now.UnixMilli()),
		Title:     productName(in.CompanyDescription),
		Input:     in,
		Output:    out,
		Status:    reports.StatusGenerated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, reports.KindQFD.Key(rec.ID), rec); err != nil {
		return nil, err
	}
	s.bestEffortMirror(ctx, reports.KindQFD, rec.ID, userID, rec)
	return rec, nil
}

func (s *Service) ListQFD(ctx context.Context) ([]reports.QFDReport, error) {
	return list[reports.QFDReport](ctx, s.Store, reports.KindQFD)
}

func (s *Service) GetQFD(ctx context.Context, id string) (*reports.QFDReport, error) {
	return get[reports.QFDReport](ctx, s.Store, reports.KindQFD, id)
}

//
// ==== Hoshin Kanri ====
//

func (s *Service) GenerateHoshin(ctx context.Context, in reports.HoshinInput, userID string) (*reports.HoshinReport, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, &reports.ValidationError{Message: "mission, vision, values and goals are required", Details: err.Error()}
	}

	raw, err := s.Gen.GenerateText(ctx, prompt.HoshinStrategy(in), ai.Options{
		Model: s.MiniModel, Temperature: genTemp,
	})
	if err != nil {
		return nil, err
	}

	var out reports.HoshinOutput
	if err := reports.DecodeObject(raw, &out); err != nil {
		return nil, err
	}
	if err := out.Check(); err != nil {
		return nil, &reports.FormatError{Hint: "hoshin shape check", Err: err}
	}

	now := s.Clock.Now()
	rec := &reports.HoshinReport{
		ID:        uuid.New().String(),
		Title:     "Hoshin Kanri - " + now.Format("02.01.2006"),
		Input:     in,
		Output:    out,
		Status:    reports.StatusGenerated,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Store.Set(ctx, reports.KindHoshin.Key(rec.ID), rec); err != nil {
		return nil, err
	}
	s.bestEffortMirror(ctx, reports.KindHoshin, rec.ID, userID, rec)
	return rec, nil
}

func (s *Service) ListHoshin(ctx context.Context) ([]reports.HoshinReport, error) {
	return list[reports.HoshinReport](ctx, s.Store, reports.KindHoshin)
}

func (s *Service) GetHoshin(ctx context.Context, id string) (*reports.HoshinReport, error) {
	return get[reports.HoshinReport](ctx, s.Store, reports.KindHoshin, id)
}

//
// ==== shared ====
//

// Delete removes a record of any kind. Idempotent: deleting an unknown id
// succeeds.
func (s *Service) Delete(ctx context.Context, kind reports.Kind, id string) error {
	if id == "" {
		return reports.Invalid("id is required")
	}
	return s.Store.Delete(ctx, kind.Key(id))
}

// list scans the kind prefix and returns records newest first. Blobs that
// no longer decode are skipped rather than failing the whole listing.
func list[T reports.Record](ctx context.Context, st reports.Store, kind reports.Kind) ([]T, error) {
	raws, err := st.GetByPrefix(ctx, kind.Prefix())
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		var rec T
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		out = append(out, rec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Created().After(out[j].Created())
	})
	return out, nil
}

func get[T reports.Record](ctx context.Context, st reports.Store, kind reports.Kind, id string) (*T, error) {
	var rec T
	if err := st.Get(ctx, kind.Key(id), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// firstWords returns up to n leading words of s
func firstWords(s string, n int) string {
	words := strings.Fields(s)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

// productName derives a short title from the company description: the
// first sentence capped at 50 runes.
func productName(description string) string {
	first := strings.TrimSpace(strings.SplitN(description, ".", 2)[0])
	r := []rune(first)
	if len(r) > 50 {
		r = r[:50]
	}
	return string(r)
}
