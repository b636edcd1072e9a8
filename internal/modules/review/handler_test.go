package review

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/kv"
	"github.com/giftpanner/storefront/internal/platform/response"
)

func newReviewRouter(t *testing.T) http.Handler {
	t.Helper()
	clock := &stepClock{t: time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)}
	svc := NewService(NewKVRepository(kv.NewMemory()), WithClock(clock.now))
	known := func(_ context.Context, id int) error {
		if id > 6 {
			return fmt.Errorf("product %d: %w", id, errs.ErrNotFound)
		}
		return nil
	}
	r := chi.NewRouter()
	NewHandler(svc, known).RegisterRoutes(r)
	return r
}

func serve(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, strings.NewReader(body)))
	return rec
}

func TestReviewHandlerSubmitAndList(t *testing.T) {
	h := newReviewRouter(t)

	rec := serve(h, http.MethodPost, "/api/v1/products/2/reviews", `{"rating":5,"comment":"Great colours","author":"Salma"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var first Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, 2, first.ProductID)

	rec = serve(h, http.MethodPost, "/api/v1/products/2/reviews", `{"rating":4,"comment":"Arrived quickly","author":"Omar"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = serve(h, http.MethodPost, "/api/v1/products/3/reviews", `{"rating":1,"comment":"Not for me","author":"Hana"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/products/2/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got productReviews
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got.Reviews, 2)
	assert.Equal(t, "Omar", got.Reviews[0].Author, "newest first")
	assert.Equal(t, Summary{Average: 4.5, Count: 2}, got.Summary)

	rec = serve(h, http.MethodDelete, "/api/v1/reviews/"+first.ID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/products/2/reviews", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, Summary{Average: 4, Count: 1}, got.Summary)
}

func TestReviewHandlerEmptyProduct(t *testing.T) {
	rec := serve(newReviewRouter(t), http.MethodGet, "/api/v1/products/5/reviews", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviews":[],"summary":{"average":0,"count":0}}`, rec.Body.String())
}

func TestReviewHandlerRejectsInvalidForm(t *testing.T) {
	h := newReviewRouter(t)

	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"rating too high", `{"rating":6,"comment":"Great colours","author":"Salma"}`, "rating"},
		{"rating missing", `{"comment":"Great colours","author":"Salma"}`, "rating"},
		{"short comment", `{"rating":3,"comment":"  ok  ","author":"Salma"}`, "comment"},
		{"short author", `{"rating":3,"comment":"Great colours","author":" S "}`, "author"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(h, http.MethodPost, "/api/v1/products/1/reviews", tc.body)
			require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			var body response.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tc.field, body.Field)
		})
	}

	rec := serve(h, http.MethodGet, "/api/v1/products/1/reviews", "")
	assert.Contains(t, rec.Body.String(), `"count":0`, "rejected submissions are not stored")
}

func TestReviewHandlerUnknownProduct(t *testing.T) {
	h := newReviewRouter(t)

	rec := serve(h, http.MethodPost, "/api/v1/products/99/reviews", `{"rating":5,"comment":"Great colours","author":"Salma"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(h, http.MethodGet, "/api/v1/products/abc/reviews", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
