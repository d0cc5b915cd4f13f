package service

import (
	"context"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/genai"
	"github.com/octobees/huntflow/api/internal/store"
)

// PitchGenerator drafts the analysis/email pair for a lead.
type PitchGenerator interface {
	GeneratePitch(ctx context.Context, lead entity.Lead, serviceOffered string, profile entity.UserProfile) genai.Pitch
}

// PitchService runs the analyze-and-outreach actions for a single lead.
type PitchService struct {
	generator PitchGenerator
	store     *store.Memory
}

// NewPitchService wires the pitch workflow.
func NewPitchService(generator PitchGenerator, st *store.Memory) *PitchService {
	return &PitchService{generator: generator, store: st}
}

// AnalyzeLead generates a pitch for the lead, marks it Analyzing and records
// the analysis on the record. The generator never fails, so the only error
// here is an unknown lead id.
func (s *PitchService) AnalyzeLead(ctx context.Context, leadID, serviceOffered string) (genai.Pitch, entity.Lead, error) {
	lead, err := s.store.Lead(leadID)
	if err != nil {
		return genai.Pitch{}, entity.Lead{}, err
	}

	pitch := s.generator.GeneratePitch(ctx, lead, serviceOffered, s.store.Profile())

	updated, err := s.store.UpdateLead(leadID, func(l *entity.Lead) {
		l.Status = entity.StatusAnalyzing
		l.AIAnalysis = pitch.Analysis
	})
	if err != nil {
		return genai.Pitch{}, entity.Lead{}, err
	}

	return pitch, updated, nil
}

// SendEmail marks the lead Contacted and bumps the outreach counter. Actual
// delivery is out of scope; the dashboard only tracks the state change.
func (s *PitchService) SendEmail(leadID string) (entity.Lead, error) {
	updated, err := s.store.UpdateLead(leadID, func(l *entity.Lead) {
		l.Status = entity.StatusContacted
	})
	if err != nil {
		return entity.Lead{}, err
	}
	s.store.IncrementEmailsSent()
	return updated, nil
}
