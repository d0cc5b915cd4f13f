package handler

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/genai"
	"github.com/octobees/huntflow/api/internal/store"
)

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return env
}

type searcherStub struct {
	leads []entity.Lead
	err   error
}

func (s *searcherStub) Search(ctx context.Context, keyword, location string) ([]entity.Lead, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.leads, nil
}

type enricherStub struct {
	leads          []entity.Lead
	pitch          genai.Pitch
	classification genai.Classification
}

func (e *enricherStub) SimulateLeads(ctx context.Context, keyword, location string) []entity.Lead {
	return e.leads
}

func (e *enricherStub) GeneratePitch(ctx context.Context, lead entity.Lead, serviceOffered string, profile entity.UserProfile) genai.Pitch {
	return e.pitch
}

func (e *enricherStub) ClassifySentiment(ctx context.Context, replyText string) genai.Classification {
	return e.classification
}

func newTestStore() *store.Memory {
	return store.NewMemory(entity.UserProfile{
		Name:        "John Doe",
		JobTitle:    "Lead Developer",
		CompanyName: "Orbit Agency",
	}, entity.CampaignStats{TotalLeads: 1240, EmailsSent: 850})
}
