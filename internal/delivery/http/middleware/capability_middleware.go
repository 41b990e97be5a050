package middleware

import (
	"net/http"

	"hotel-booking-backend/internal/domain/entity"
	"hotel-booking-backend/pkg/response"
)

// CapabilityMiddleware enforces the role capability table. It must run
// after Authenticate, which puts the role into the request context.
type CapabilityMiddleware struct{}

func NewCapabilityMiddleware() *CapabilityMiddleware {
	return &CapabilityMiddleware{}
}

// Require rejects the request unless the authenticated role holds the
// named capability
func (m *CapabilityMiddleware) Require(action entity.Action) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetRoleFromContext(r.Context())
			if !ok {
				response.Unauthorized(w, "")
				return
			}
			if !role.Can(action) {
				response.Forbidden(w, "You do not have permission to perform this action")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireStaff rejects customers; any staff role passes
func (m *CapabilityMiddleware) RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRoleFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "")
			return
		}
		if !role.IsStaff() {
			response.Forbidden(w, "Staff account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects everyone but administrators
func (m *CapabilityMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := GetRoleFromContext(r.Context())
		if !ok {
			response.Unauthorized(w, "")
			return
		}
		if role != entity.RoleAdmin {
			response.Forbidden(w, "Administrator account required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
