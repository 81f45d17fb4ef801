package handler

import (
	"employee-directory/pkg/apperrors"
	"errors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"net/http"
	"strconv"
)

const msgUserNotFound = "User not found"

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginStatusResponse struct {
	LoginStatus string `json:"login_status"`
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: message})
}

func newMessageResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, messageResponse{Message: message})
}

// internalError reports err to the client verbatim with a 500.
func internalError(c *gin.Context, err error) {
	log.WithField("request_id", c.GetString(requestIDKey)).Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	newErrorResponse(c, http.StatusInternalServerError, err.Error())
}

// parseUserID reads the :id path segment. Only non-negative integers name a
// user; anything else is answered as an unknown user.
func parseUserID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 0 {
		newErrorResponse(c, http.StatusNotFound, msgUserNotFound)
		return 0, false
	}
	return id, true
}

func isNotFound(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound)
}
