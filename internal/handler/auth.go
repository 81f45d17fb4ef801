package handler

import (
	"employee-directory/pkg/apperrors"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

const msgCredentialsRequired = "Login and password are required"

func (h *Handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, msgCredentialsRequired)
		return
	}

	err := h.services.Login(c.Request.Context(), req.Login, req.Password)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, loginStatusResponse{LoginStatus: "success"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, loginStatusResponse{LoginStatus: "failed"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		newErrorResponse(c, http.StatusBadRequest, msgCredentialsRequired)
	default:
		internalError(c, err)
	}
}
