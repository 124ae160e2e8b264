package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/workfriar/timesheet-backend-go/internal/domain/user"
	"github.com/workfriar/timesheet-backend-go/internal/handler/http/response"
)

// ReviewerOnly restricts a route to managers and admins.
func ReviewerOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		reviewer := user.User{Role: user.Role(roleStr)}
		if !reviewer.CanReview() {
			response.HandleError(w, user.ErrManagerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
