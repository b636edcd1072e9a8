package profile

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftpanner/storefront/internal/platform/kv"
	"github.com/giftpanner/storefront/internal/platform/response"
)

const validBody = `{"name":"Nour Adel","phone":"01001234567","address":"12 Corniche St"}`

func newProfileRouter(allowReset bool) (http.Handler, Service) {
	svc := NewService(NewKVRepository(kv.NewMemory()))
	r := chi.NewRouter()
	NewHandler(svc, allowReset).RegisterRoutes(r)
	r.With(RequireProfile(svc)).Get("/api/v1/catalog/products", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return r, svc
}

func call(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestGateFlow(t *testing.T) {
	h, _ := newProfileRouter(false)

	rec := call(h, http.MethodGet, "/api/v1/profile/state", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"state":"UNGATED"}`, rec.Body.String())

	rec = call(h, http.MethodGet, "/api/v1/profile", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/catalog/products", "")
	require.Equal(t, http.StatusForbidden, rec.Code)
	var blocked response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blocked))
	assert.Equal(t, WelcomePath, blocked.Redirect)

	rec = call(h, http.MethodPost, "/api/v1/profile", validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/catalog/products", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = call(h, http.MethodGet, "/api/v1/profile", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var p Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, "Nour Adel", p.Name)

	rec = call(h, http.MethodPost, "/api/v1/profile", validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSaveRejectsMissingField(t *testing.T) {
	h, svc := newProfileRouter(false)

	rec := call(h, http.MethodPost, "/api/v1/profile", `{"name":"","phone":"0100","address":"Cairo"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "name", body.Field)

	state, err := svc.State(httptest.NewRequest(http.MethodGet, "/", nil).Context())
	require.NoError(t, err)
	assert.Equal(t, Ungated, state)

	rec = call(h, http.MethodPost, "/api/v1/profile", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResetRoute(t *testing.T) {
	h, _ := newProfileRouter(false)
	require.Equal(t, http.StatusCreated, call(h, http.MethodPost, "/api/v1/profile", validBody).Code)
	assert.Equal(t, http.StatusMethodNotAllowed, call(h, http.MethodDelete, "/api/v1/profile", "").Code)

	h, _ = newProfileRouter(true)
	require.Equal(t, http.StatusCreated, call(h, http.MethodPost, "/api/v1/profile", validBody).Code)
	assert.Equal(t, http.StatusNoContent, call(h, http.MethodDelete, "/api/v1/profile", "").Code)
	assert.Equal(t, http.StatusForbidden, call(h, http.MethodGet, "/api/v1/catalog/products", "").Code)
}
