package middleware

import (
	"net/http"

	appctx "github.com/jsamuelsen11/assignment-schedule-service/internal/app/context"
)

// AppContext opens a fresh unit of work per request. The schedule service
// picks it up with appctx.FromContext, so reads of the same range within
// one request hit the platform once.
//
// It belongs innermost: the unit of work captures r.Context() and every
// platform call made through it inherits that context's deadline, span and
// logger.
func AppContext() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			next.ServeHTTP(w, r.WithContext(appctx.WithRequestContext(ctx, appctx.New(ctx))))
		})
	}
}
