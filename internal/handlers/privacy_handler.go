package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PrivacyHandler struct {
	*BaseHandler
	privacyService services.PrivacyService
	auditService   services.AuditService
}

func NewPrivacyHandler(base *BaseHandler, privacyService services.PrivacyService, auditService services.AuditService) *PrivacyHandler {
	return &PrivacyHandler{
		BaseHandler:    base,
		privacyService: privacyService,
		auditService:   auditService,
	}
}

func (h *PrivacyHandler) RegisterRoutes(r *gin.RouterGroup) {
	privacy := r.Group("/privacy")
	privacy.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleCandidate))
	{
		privacy.GET("/settings", h.ListSettings)
		privacy.PUT("/settings", h.UpsertSetting)
	}

	// transparency-отчет доступен любому аутентифицированному
	// пользователю: каждый видит журнал действий над своими данными
	audit := r.Group("/privacy/audit-trail")
	audit.Use(middleware.AuthMiddleware())
	{
		audit.GET("", h.GetAuditTrail)
	}
}

func (h *PrivacyHandler) ListSettings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.privacyService.ListSettings(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *PrivacyHandler) UpsertSetting(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpsertPrivacySettingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	setting, err := h.privacyService.UpsertSetting(userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, setting)
}

func (h *PrivacyHandler) GetAuditTrail(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.AuditTrailCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	resp, err := h.auditService.GetMyAuditTrail(userID, criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
