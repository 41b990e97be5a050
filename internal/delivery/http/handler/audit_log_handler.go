package handler

import (
	"net/http"
	"strconv"

	"hotel-booking-backend/internal/usecase"
	"hotel-booking-backend/pkg/response"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
	}
}

// ListRecent returns the most recent audit trail entries
// @Summary List recent audit logs
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum entries to return (default 100)"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /staff/audit-logs [get]
func (h *AuditLogHandler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	logs, err := h.auditLogUsecase.ListRecent(r.Context(), limit)
	if err != nil {
		response.InternalServerError(w, "Failed to list audit logs")
		return
	}

	response.Success(w, http.StatusOK, "Audit logs retrieved successfully", logs)
}
