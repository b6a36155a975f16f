package channelitem

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Rukio/nx-repo-sub005/internal/platform/station"
)

type fakeStation struct {
	gets    []string
	queries []url.Values
	posts   []string
	reply   string
	err     error
}

func (f *fakeStation) Get(ctx context.Context, path string, out interface{}, opts ...station.Option) error {
	f.gets = append(f.gets, path)
	f.queries = append(f.queries, station.QueryOf(opts))
	if f.err != nil {
		return f.err
	}
	if out != nil && f.reply != "" {
		return json.Unmarshal([]byte(f.reply), out)
	}
	return nil
}

func (f *fakeStation) Post(ctx context.Context, path string, body, out interface{}, opts ...station.Option) error {
	f.posts = append(f.posts, path)
	if f.err != nil {
		return f.err
	}
	if out != nil && f.reply != "" {
		return json.Unmarshal([]byte(f.reply), out)
	}
	return nil
}

func newTestHandler(f *fakeStation) *Handler {
	return NewHandler(NewService(f, zerolog.Nop()), zerolog.Nop())
}

func TestGetMapsUpstreamShape(t *testing.T) {
	f := &fakeStation{reply: `{"id": 12, "channel_name": "Provider Group", "bypass_risk_stratification": true}`}
	h := newTestHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/channel-items/12", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("12")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Success bool        `json:"success"`
		Data    ChannelItem `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data.ChannelName != "Provider Group" || !body.Data.BypassRiskStratification {
		t.Errorf("data = %+v", body.Data)
	}
}

func TestSearchForwardsQuery(t *testing.T) {
	f := &fakeStation{reply: `[{"id": 1, "name": "urgent care"}]`}
	h := newTestHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/channel-items?search=urgent", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(f.gets) != 1 || f.gets[0] != "/api/channel_items" {
		t.Fatalf("gets = %v", f.gets)
	}
	if got := f.queries[0].Get("search"); got != "urgent" {
		t.Errorf("search query = %q, want urgent", got)
	}
	if got := f.queries[0].Get("limit"); got != "20" {
		t.Errorf("limit query = %q, want default 20", got)
	}
}

func TestSearchEmptyResultIsEmptyArray(t *testing.T) {
	f := &fakeStation{reply: `[]`}
	h := newTestHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/channel-items", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Search(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	var body map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(body["data"]) != "[]" {
		t.Errorf("data = %s, want []", body["data"])
	}
}

func TestCreateSendsStationShape(t *testing.T) {
	f := &fakeStation{reply: `{"id": 99}`}
	h := newTestHandler(f)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/channel-items",
		strings.NewReader(`{"name": "urgent care", "bypassScreeningProtocol": true}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(f.posts) != 1 || f.posts[0] != "/api/channel_items" {
		t.Errorf("posts = %v", f.posts)
	}
}
