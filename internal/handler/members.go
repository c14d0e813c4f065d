package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alliance-hq/roster/internal/model"
	"github.com/alliance-hq/roster/internal/service"
)

type MemberHandler struct {
	svc *service.MemberService
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// List godoc
// @Summary List members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.MemberListResponse
// @Failure 401 {object} model.ErrorResponse
// @Router /api/v1/members [get]
func (h *MemberHandler) List(c *gin.Context) {
	members, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	out := make([]model.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, memberResponse(c, &members[i]))
	}
	c.JSON(http.StatusOK, model.MemberListResponse{Members: out, Count: len(out)})
}

// Get godoc
// @Summary Get a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} model.MemberResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/members/{id} [get]
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := memberID(c)
	if err != nil {
		writeError(c, service.ErrNotFound)
		return
	}

	member, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberResponse(c, member))
}

// Create godoc
// @Summary Create a member
// @Description Admin only. The member is attributed to the calling user.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.MemberRequest true "Member input"
// @Success 201 {object} model.MemberResponse
// @Failure 400 {object} model.FieldErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Router /api/v1/members [post]
func (h *MemberHandler) Create(c *gin.Context) {
	principal := GetPrincipal(c)
	if principal == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req model.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	member, err := h.svc.Create(c.Request.Context(), principal.UserID, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, memberResponse(c, member))
}

// Update godoc
// @Summary Update a member
// @Description Admin only.
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body model.MemberRequest true "Member input"
// @Success 200 {object} model.MemberResponse
// @Failure 400 {object} model.FieldErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/members/{id} [put]
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := memberID(c)
	if err != nil {
		writeError(c, service.ErrNotFound)
		return
	}

	var req model.MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	member, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, memberResponse(c, member))
}

// Delete godoc
// @Summary Delete a member
// @Description Admin only.
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} model.StatusResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 403 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /api/v1/members/{id} [delete]
func (h *MemberHandler) Delete(c *gin.Context) {
	id, err := memberID(c)
	if err != nil {
		writeError(c, service.ErrNotFound)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.StatusResponse{Status: "deleted"})
}

func memberID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func memberResponse(c *gin.Context, m *model.Member) model.MemberResponse {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	return model.MemberResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		Phone:     m.Phone,
		CreatedAt: m.CreatedAt,
		URL:       fmt.Sprintf("%s://%s/api/v1/members/%d", scheme, c.Request.Host, m.ID),
		Creator:   m.Creator,
	}
}
