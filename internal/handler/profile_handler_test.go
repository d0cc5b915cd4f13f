package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/octobees/huntflow/api/internal/entity"
	"github.com/octobees/huntflow/api/internal/service"
	"github.com/octobees/huntflow/api/internal/store"
)

func newProfileHandler(st *store.Memory) *ProfileHandler {
	return NewProfileHandler(service.NewProfileService(st, "US"))
}

func TestProfileHandler_Get(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := newProfileHandler(newTestStore()).Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	var profile entity.UserProfile
	if err := json.Unmarshal(env.Data, &profile); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if profile.Name != "John Doe" {
		t.Fatalf("unexpected profile name: %q", profile.Name)
	}
}

func TestProfileHandler_Update(t *testing.T) {
	e := echo.New()

	newContext := func(body []byte) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPut, "/profile", bytes.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("missing name", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"name": "  "})
		c, rec := newContext(body)

		_ = newProfileHandler(newTestStore()).Update(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("invalid email", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{
			"name":           "Jane Roe",
			"personal_email": "not-an-email",
		})
		c, rec := newContext(body)

		_ = newProfileHandler(newTestStore()).Update(c)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		st := newTestStore()
		body, _ := json.Marshal(map[string]string{
			"name":           "Jane Roe",
			"job_title":      "Founder",
			"company_name":   "Roe Studio",
			"personal_email": "Jane@Example.COM",
			"phone":          "(650) 253-0000",
		})
		c, rec := newContext(body)

		_ = newProfileHandler(st).Update(c)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}

		env := decodeEnvelope(t, rec)
		var saved entity.UserProfile
		if err := json.Unmarshal(env.Data, &saved); err != nil {
			t.Fatalf("decode data: %v", err)
		}
		if saved.PersonalEmail != "jane@example.com" {
			t.Fatalf("email not normalized: %q", saved.PersonalEmail)
		}
		if saved.Phone != "+16502530000" {
			t.Fatalf("phone not normalized: %q", saved.Phone)
		}
		if st.Profile().Name != "Jane Roe" {
			t.Fatalf("profile not persisted: %q", st.Profile().Name)
		}
	})
}

func TestStatsHandler_Get(t *testing.T) {
	e := echo.New()
	st := newTestStore()
	st.PrependLeads([]entity.Lead{{ID: "lead-1", Status: entity.StatusNew}})

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := NewStatsHandler(st).Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	env := decodeEnvelope(t, rec)
	var stats entity.CampaignStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if stats.TotalLeads != 1241 {
		t.Fatalf("expected total 1241, got %d", stats.TotalLeads)
	}
}
