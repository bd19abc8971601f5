package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appaitest "github.com/kaizen-center/backend/internal/application/aitest"
	appauth "github.com/kaizen-center/backend/internal/application/auth"
	appreports "github.com/kaizen-center/backend/internal/application/reports"
	"github.com/kaizen-center/backend/internal/domain/ai"
	"github.com/kaizen-center/backend/internal/domain/reports"
	"github.com/kaizen-center/backend/internal/domain/users"
	"github.com/kaizen-center/backend/internal/infra/kv/memory"
	"github.com/kaizen-center/backend/internal/middleware"
)

type scriptedGen struct {
	reply string
	err   error
}

func (g *scriptedGen) GenerateText(context.Context, string, ai.Options) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	return g.reply, nil
}

type memHistory struct {
	recs []*reports.HistoryRecord
}

func (h *memHistory) Insert(_ context.Context, rec *reports.HistoryRecord) error {
	rec.ID = int64(len(h.recs) + 1)
	h.recs = append(h.recs, rec)
	return nil
}

func (h *memHistory) List(_ context.Context, userID string, includeAll bool) ([]*reports.HistoryRecord, error) {
	if includeAll {
		return h.recs, nil
	}
	var out []*reports.HistoryRecord
	for _, r := range h.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type noUsers struct{ u *users.User }

func (n noUsers) ByEmail(_ context.Context, email string) (*users.User, error) {
	if n.u != nil && n.u.Email == email {
		return n.u, nil
	}
	return nil, users.ErrNotFound
}

const hoshinBody = `{
  "analysis": "ок",
  "tasks": [{"goalName": "g", "tacticalTask": "t", "deadline": "d", "responsible": "r", "expectedResult": "e"}]
}`

func newTestServer(t *testing.T, gen *scriptedGen) (http.Handler, *memory.Store) {
	t.Helper()

	store := memory.NewStore()
	hist := &memHistory{}

	hash, err := appauth.HashPassword("pw")
	require.NoError(t, err)
	authSvc := appauth.NewService(noUsers{u: &users.User{
		ID: "u1", Email: "admin@example.com", PasswordHash: hash, Role: users.RoleAdmin,
	}}, []byte("test-secret"), time.Hour, nil)

	reportsSvc := appreports.NewService(gen, store, hist, nil, nil, "gpt-4o", "gpt-4o-mini")
	aiTestSvc := appaitest.NewService(gen, hist, nil, "gpt-4o", "gpt-4o-mini")

	h := middleware.SessionAuth(authSvc)(NewRouter(reportsSvc, aiTestSvc, authSvc))
	return h, store
}

func doJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestHoshinRoundTrip(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{reply: hoshinBody})

	in := map[string]string{"mission": "м", "vision": "в", "values": "ц", "goals": "г"}
	rec := doJSON(t, h, "POST", "/api/hoshin/generate", in)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created reports.HoshinReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)

	// list lives at /hoshin/list and returns a bare array
	rec = doJSON(t, h, "GET", "/api/hoshin/list", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listed []reports.HoshinReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listed))
	require.Len(t, listed, 1)

	rec = doJSON(t, h, "GET", "/api/hoshin/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, "DELETE", "/api/hoshin/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())

	// idempotent delete
	rec = doJSON(t, h, "DELETE", "/api/hoshin/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
}

func TestHoshinValidationError(t *testing.T) {
	h, store := newTestServer(t, &scriptedGen{reply: hoshinBody})

	rec := doJSON(t, h, "POST", "/api/hoshin/generate", map[string]string{"mission": "м"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
	assert.Equal(t, 0, store.Len())
}

func TestA3Envelopes(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{reply: `{
  "title": "T",
  "countermeasuresPlan": [{"action": "a", "deadline": "d", "responsible": "r", "kpi": "k"}]
}`})

	in := map[string]string{"what": "w", "where": "w", "when": "w", "who": "w", "why": "w", "how": "w"}
	rec := doJSON(t, h, "POST", "/api/a3-reports/generate", in)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var envelope struct {
		Report reports.A3Report `json:"report"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "T", envelope.Report.Title)

	rec = doJSON(t, h, "GET", "/api/a3-reports", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var listEnvelope struct {
		Reports []reports.A3Report `json:"reports"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listEnvelope))
	assert.Len(t, listEnvelope.Reports, 1)
}

func TestGetUnknownIDIs404(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "GET", "/api/vsm/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestQuotaExceededIs429(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{err: ai.ErrQuotaExceeded})

	in := map[string]string{"companyName": "c", "companyActivity": "a", "processToImprove": "p"}
	rec := doJSON(t, h, "POST", "/api/vsm/generate", in)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestLoginSessionLogout(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "POST", "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			cookie = c
		}
	}
	require.NotNil(t, cookie, "login must set the session cookie")
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)

	// session endpoint sees the cookie
	req := httptest.NewRequest("GET", "/api/auth/session", nil)
	req.AddCookie(cookie)
	sessRec := httptest.NewRecorder()
	h.ServeHTTP(sessRec, req)
	require.Equal(t, http.StatusOK, sessRec.Code)
	assert.Contains(t, sessRec.Body.String(), "admin@example.com")

	// without a cookie the session endpoint rejects
	rec = doJSON(t, h, "GET", "/api/auth/session", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// logout clears the cookie
	rec = doJSON(t, h, "POST", "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	found := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == "access_token" {
			found = true
			assert.Less(t, c.MaxAge, 0)
		}
	}
	assert.True(t, found)
}

func TestLoginBadPassword(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "POST", "/api/auth/login", map[string]string{
		"email": "admin@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAITestTemplatesRoute(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "GET", "/api/ai-test/test-templates", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tpls []appaitest.Template
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tpls))
	assert.NotEmpty(t, tpls)
}

func TestAITestHistoryNeverNull(t *testing.T) {
	h, _ := newTestServer(t, &scriptedGen{})

	rec := doJSON(t, h, "GET", "/api/ai-test/test-history", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}
