package middleware

import (
	"net/http"

	"github.com/gestionobras/obras-backend-go/internal/domain/user"
	"github.com/gestionobras/obras-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireManagementRole allows only supervisors and architects through.
// Permission checks beyond the role gate happen in the services, which see
// individual grants as well as the role.
func RequireManagementRole(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		role := user.Role(roleStr)
		if role != user.RoleArchitect && role != user.RoleSupervisor {
			response.HandleError(w, user.ErrInsufficientPermissions)
			return
		}

		next.ServeHTTP(w, r)
	})
}
