package handlers

import (
	"net/http"

	"jobboard_backend/internal/middleware"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TeamHandler struct {
	*BaseHandler
	teamService services.TeamService
}

func NewTeamHandler(base *BaseHandler, teamService services.TeamService) *TeamHandler {
	return &TeamHandler{
		BaseHandler: base,
		teamService: teamService,
	}
}

func (h *TeamHandler) RegisterRoutes(r *gin.RouterGroup) {
	// принятие приглашения - публичный маршрут: у приглашенного
	// еще нет аккаунта, токен из письма и есть аутентификация
	r.POST("/team/accept", h.AcceptInvitation)

	team := r.Group("/companies/:companyId/team")
	team.Use(middleware.AuthMiddleware(), middleware.RequireRoles(models.UserRoleEmployer, models.UserRoleTeamMember))
	{
		team.GET("", h.ListMembers)
		team.POST("/invite", h.InviteMember)
		team.PUT("/:memberId", h.UpdateMember)
		team.PUT("/:memberId/deactivate", h.DeactivateMember)
		team.DELETE("/:memberId", h.RemoveMember)
	}
}

func (h *TeamHandler) InviteMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companyID := c.Param("companyId")

	var req dto.InviteTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.teamService.InviteMember(userID, companyID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

func (h *TeamHandler) AcceptInvitation(c *gin.Context) {
	var req dto.AcceptInvitationRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.teamService.AcceptInvitation(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) ListMembers(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companyID := c.Param("companyId")

	resp, err := h.teamService.ListMembers(userID, companyID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *TeamHandler) UpdateMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companyID := c.Param("companyId")
	memberID := c.Param("memberId")

	var req dto.UpdateTeamMemberRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	member, err := h.teamService.UpdateMember(userID, companyID, memberID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func (h *TeamHandler) DeactivateMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companyID := c.Param("companyId")
	memberID := c.Param("memberId")

	if err := h.teamService.DeactivateMember(userID, companyID, memberID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member deactivated"})
}

func (h *TeamHandler) RemoveMember(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	companyID := c.Param("companyId")
	memberID := c.Param("memberId")

	if err := h.teamService.RemoveMember(userID, companyID, memberID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Team member removed"})
}
