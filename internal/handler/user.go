package handler

import (
	"employee-directory/pkg/apperrors"
	"errors"
	"github.com/gin-gonic/gin"
	"net/http"
)

type uploadPhotoRequest struct {
	Photo string `json:"photo" binding:"required"`
}

func (h *Handlers) getPersonal(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	user, err := h.services.GetPersonal(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			newErrorResponse(c, http.StatusNotFound, msgUserNotFound)
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *Handlers) getJobInfo(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	info, err := h.services.GetJobInfo(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			newMessageResponse(c, http.StatusNotFound, "No job titles or departments found for this user")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handlers) getDetails(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	details, err := h.services.GetUserDetails(c.Request.Context(), id)
	if err != nil {
		if isNotFound(err) {
			newMessageResponse(c, http.StatusNotFound, "No details found for this user")
			return
		}
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handlers) getPhoto(c *gin.Context) {
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	photo, err := h.services.GetUserPhoto(c.Request.Context(), id)
	if err != nil {
		internalError(c, err)
		return
	}
	c.JSON(http.StatusOK, photo)
}

func (h *Handlers) uploadPhoto(c *gin.Context) {
	var req uploadPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Photo is required")
		return
	}
	id, ok := parseUserID(c)
	if !ok {
		return
	}

	err := h.services.UploadPhoto(c.Request.Context(), id, req.Photo)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, messageResponse{Message: "Photo uploaded successfully"})
	case errors.Is(err, apperrors.ErrInvalidInput):
		newErrorResponse(c, http.StatusBadRequest, "Invalid photo encoding")
	case isNotFound(err):
		newErrorResponse(c, http.StatusNotFound, msgUserNotFound)
	default:
		internalError(c, err)
	}
}
