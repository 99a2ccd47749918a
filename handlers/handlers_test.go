package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm_portal/config"
	"gtm_portal/models"
	"gtm_portal/repository"
	"gtm_portal/services"
	"gtm_portal/taxonomy"
	"gtm_portal/utils"
)

type stubAssistant struct {
	chatCalls int
	reply     models.AssistantReply
	draft     models.ImportDraft
	polished  string
	err       error
}

func (s *stubAssistant) Chat(_ context.Context, _ string, _ []models.ConversationTurn) models.AssistantReply {
	s.chatCalls++
	return s.reply
}

func (s *stubAssistant) Import(context.Context, string) (models.ImportDraft, error) {
	return s.draft, s.err
}

func (s *stubAssistant) Polish(context.Context, string) (string, error) {
	return s.polished, s.err
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T, assistant services.Assistant, burst int) *chi.Mux {
	t.Helper()
	cfg := &config.Config{}
	cfg.RateLimit.PerSecond = 0.001
	cfg.RateLimit.Burst = burst

	tax := taxonomy.Default()
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	limiter := RegisterRoutes(r, Deps{
		Config:    cfg,
		Catalog:   services.NewCatalogService(repository.NewMemoryProvider(nil), repository.NewMemoryEngagementStore(), tax),
		Assistant: assistant,
		Charts:    services.NewChartService(),
		Taxonomy:  tax,
		Validator: utils.NewValidator(),
	})
	t.Cleanup(limiter.Stop)
	return r
}

func do(t *testing.T, r http.Handler, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestParseCatalogQuery(t *testing.T) {
	values, err := url.ParseQuery("q=质量&sort=hot&industry=大制造,金融&industry=能源&role=&scene=+质量检测+")
	require.NoError(t, err)

	q := parseCatalogQuery(values)
	assert.Equal(t, "质量", q.Text)
	assert.Equal(t, "hot", q.Sort)
	assert.Equal(t, []string{"大制造", "金融", "能源"}, q.Selections["industry"])
	assert.Equal(t, []string{"质量检测"}, q.Selections["scene"])
	assert.NotContains(t, q.Selections, "role")
}

func TestListCatalog(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	rec, env := do(t, r, http.MethodGet, "/api/catalog/solution?"+url.Values{"industry": {"大制造"}}.Encode(), "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, models.CodeSuccess, env.Code)

	var page models.CatalogPage
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "sol-001", page.Items[0].ID)
}

func TestListCatalogEmptyIsNotAnError(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	_, env := do(t, r, http.MethodGet, "/api/catalog/case?q=nothing-matches", "")
	require.Equal(t, models.CodeSuccess, env.Code)
	assert.Contains(t, string(env.Data), `"items": []`)
}

func TestCatalogErrors(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	_, env := do(t, r, http.MethodGet, "/api/catalog/news", "")
	assert.Equal(t, models.CodeUnknownKind, env.Code)

	_, env = do(t, r, http.MethodGet, "/api/catalog/case/case-404", "")
	assert.Equal(t, models.CodeItemNotFound, env.Code)
}

func TestEngage(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	_, env := do(t, r, http.MethodPost, "/api/catalog/resource/res-001/engage", `{"metric":"downloads"}`)
	require.Equal(t, models.CodeSuccess, env.Code)

	var item models.CatalogItem
	require.NoError(t, json.Unmarshal(env.Data, &item))

	_, env = do(t, r, http.MethodGet, "/api/catalog/resource/res-001", "")
	var again models.CatalogItem
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.Equal(t, item.Metrics["downloads"], again.Metrics["downloads"])

	_, env = do(t, r, http.MethodPost, "/api/catalog/resource/res-001/engage", `{"metric":"shares"}`)
	assert.Equal(t, models.CodeInvalidParams, env.Code)

	_, env = do(t, r, http.MethodPost, "/api/catalog/resource/res-001/engage", "")
	assert.Equal(t, models.CodeMissingParams, env.Code)
}

func TestBattlemap(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	_, env := do(t, r, http.MethodGet, "/api/battlemap", "")
	require.Equal(t, models.CodeSuccess, env.Code)

	var bm models.BattleMap
	require.NoError(t, json.Unmarshal(env.Data, &bm))
	assert.Equal(t, 4, bm.Total)
	assert.Equal(t, "大制造", bm.Sections[0].Label)
}

func TestTaxonomy(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	_, env := do(t, r, http.MethodGet, "/api/taxonomy", "")
	require.Equal(t, models.CodeSuccess, env.Code)
	assert.Contains(t, string(env.Data), "汽车产业链")
}

func TestChat(t *testing.T) {
	stub := &stubAssistant{reply: models.PlainText("你好")}
	r := newTestRouter(t, stub, 5)

	_, env := do(t, r, http.MethodPost, "/api/assistant/chat", `{"message":"   "}`)
	assert.Equal(t, models.CodeInvalidParams, env.Code)
	assert.Equal(t, 0, stub.chatCalls)

	_, env = do(t, r, http.MethodPost, "/api/assistant/chat", `{"message":"hi","history":[{"role":"system","text":"x"}]}`)
	assert.Equal(t, models.CodeInvalidParams, env.Code)
	assert.Equal(t, 0, stub.chatCalls)

	_, env = do(t, r, http.MethodPost, "/api/assistant/chat", `{"message":"hi","history":[{"role":"user","text":"x"}]}`)
	require.Equal(t, models.CodeSuccess, env.Code)
	assert.Equal(t, 1, stub.chatCalls)

	var reply models.AssistantReply
	require.NoError(t, json.Unmarshal(env.Data, &reply))
	assert.Equal(t, models.PlainText("你好"), reply)
}

func TestImportAndPolish(t *testing.T) {
	stub := &stubAssistant{draft: models.ImportDraft{Title: "草稿", Structured: true}, polished: "润色后"}
	r := newTestRouter(t, stub, 5)

	_, env := do(t, r, http.MethodPost, "/api/assistant/import", `{"text":"原始资料"}`)
	require.Equal(t, models.CodeSuccess, env.Code)
	assert.Contains(t, string(env.Data), "草稿")

	_, env = do(t, r, http.MethodPost, "/api/assistant/polish", `{"text":"原文"}`)
	require.Equal(t, models.CodeSuccess, env.Code)
	assert.Contains(t, string(env.Data), "润色后")
}

func TestAssistantUnavailable(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{err: models.ErrAssistantUnavailable}, 5)

	_, env := do(t, r, http.MethodPost, "/api/assistant/polish", `{"text":"原文"}`)
	assert.Equal(t, models.CodeAssistantUnavailable, env.Code)
	assert.Equal(t, services.UnavailableText, env.Message)
}

func TestChartRendersPNG(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	rec, _ := do(t, r, http.MethodPost, "/api/assistant/chart",
		`{"type":"bar","title":"签约","data":[{"name":"A","value":3},{"name":"B","value":5}]}`)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "\x89PNG"))

	_, env := do(t, r, http.MethodPost, "/api/assistant/chart", `{"type":"bar","data":[]}`)
	assert.Equal(t, models.CodeInvalidParams, env.Code)
}

func TestAssistantRateLimit(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{reply: models.PlainText("ok")}, 1)

	rec, _ := do(t, r, http.MethodPost, "/api/assistant/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, env := do(t, r, http.MethodPost, "/api/assistant/chat", `{"message":"hi"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, models.CodeTooManyRequest, env.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	// 列表接口不限流
	rec, _ = do(t, r, http.MethodGet, "/api/catalog/app", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestRouter(t, &stubAssistant{}, 5)

	do(t, r, http.MethodGet, "/api/catalog/app", "")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "gtm_portal_catalog_queries_total")
}
