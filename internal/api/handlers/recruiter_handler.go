package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/skillbridge/internal/services"
)

type RecruiterHandler struct {
	svc services.MatchService
}

func NewRecruiterHandler(svc services.MatchService) *RecruiterHandler {
	return &RecruiterHandler{svc: svc}
}

type MatchRequest struct {
	Project string `json:"project"`
}

func (h *RecruiterHandler) MatchProfiles(c *gin.Context) {
	var req MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, invalidBody("RecruiterHandler.MatchProfiles", err))
		return
	}

	users, err := h.svc.MatchProfiles(c.Request.Context(), req.Project)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
