package profile

import (
	"net/http"

	"github.com/giftpanner/storefront/internal/platform/errs"
	"github.com/giftpanner/storefront/internal/platform/response"
)

// RequireProfile lets a request through only in the Gated state. The gate is
// read from storage on every request, so a save that has returned is seen by
// the very next request.
func RequireProfile(service Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, err := service.State(r.Context())
			if err != nil {
				response.Error(w, r, err)
				return
			}
			if state != Gated {
				response.JSON(w, errs.StatusCode(errs.ErrProfileRequired), response.ErrorBody{
					Error:    errs.ErrProfileRequired.Error(),
					Redirect: WelcomePath,
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
