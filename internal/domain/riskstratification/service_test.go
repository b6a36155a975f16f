package riskstratification

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

type fakeStation struct {
	gets  []string
	reply string
	err   error
}

func (f *fakeStation) Get(ctx context.Context, path string, out interface{}, opts ...station.Option) error {
	f.gets = append(f.gets, path)
	if f.err != nil {
		return f.err
	}
	if out != nil && f.reply != "" {
		return json.Unmarshal([]byte(f.reply), out)
	}
	return nil
}

func newTestService(f *fakeStation) *Service {
	return NewService(f, zerolog.Nop())
}

func TestListMapsProtocols(t *testing.T) {
	f := &fakeStation{reply: `[{"id": 1, "name": "Chest Pain", "high_risk": true}, {"id": 2, "name": "General", "general": true}]`}
	s := newTestService(f)

	out, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2", len(out))
	}
	if !out[0].HighRisk || out[0].Name != "Chest Pain" {
		t.Errorf("out[0] = %+v", out[0])
	}
	if !out[1].General {
		t.Errorf("out[1] = %+v", out[1])
	}
}

func TestListEmptyUpstream(t *testing.T) {
	s := newTestService(&fakeStation{})

	out, err := s.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty slice, got %#v", out)
	}
}

func TestGetKeepsQuestionOrder(t *testing.T) {
	f := &fakeStation{reply: `{
		"id": 7, "name": "Chest Pain",
		"questions": [
			{"id": 10, "name": "Crushing pain?", "order": 1, "weight": 10},
			{"id": 11, "name": "Radiating to arm?", "order": 2, "weight": 5, "allow_na": true}
		]
	}`}
	s := newTestService(f)

	out, err := s.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Questions) != 2 {
		t.Fatalf("questions = %+v", out.Questions)
	}
	if out.Questions[0].ID != 10 || out.Questions[1].ID != 11 {
		t.Errorf("question order changed: %+v", out.Questions)
	}
	if !out.Questions[1].AllowNA || out.Questions[1].Weight != 5 {
		t.Errorf("question[1] = %+v", out.Questions[1])
	}
}

func TestGetQuestionsDefaultToEmpty(t *testing.T) {
	f := &fakeStation{reply: `{"id": 7, "name": "Chest Pain"}`}
	s := newTestService(f)

	out, err := s.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Questions == nil || len(out.Questions) != 0 {
		t.Errorf("questions = %#v, want empty slice", out.Questions)
	}
}

func TestGetWithoutIDFails(t *testing.T) {
	f := &fakeStation{reply: `{"name": "Chest Pain"}`}
	s := newTestService(f)

	_, err := s.Get(context.Background(), 7)
	if err == nil {
		t.Fatal("expected error for response without id")
	}
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.ProtocolID != 7 {
		t.Fatalf("expected NotFoundError for protocol 7, got %v", err)
	}
	if !strings.Contains(err.Error(), "7") {
		t.Errorf("error should name the requested id: %v", err)
	}
}

func TestSecondaryScreeningsDefaultToEmpty(t *testing.T) {
	s := newTestService(&fakeStation{})

	out, err := s.SecondaryScreenings(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out == nil || len(out) != 0 {
		t.Errorf("expected empty slice, got %#v", out)
	}
}

func TestSecondaryScreeningsMapsFields(t *testing.T) {
	f := &fakeStation{reply: `[{"id": 1, "provider_id": 33, "approval_status": "approved", "note": "cleared"}]`}
	s := newTestService(f)

	out, err := s.SecondaryScreenings(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(f.gets) != 1 || f.gets[0] != "/api/care_requests/42/secondary_screenings" {
		t.Errorf("gets = %v", f.gets)
	}
	if len(out) != 1 || out[0].ProviderID != 33 || out[0].ApprovalStatus != "approved" {
		t.Errorf("out = %+v", out)
	}
}
