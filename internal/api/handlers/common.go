package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yoockh/skillbridge/internal/utils"
)

// APIError keeps "msg" as the message key, the field clients of this API read.
type APIError struct {
	Code    utils.Code `json:"code"`
	Message string     `json:"msg"`
}

type messageResponse struct {
	Msg string `json:"msg"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{
			Code:    ae.Code,
			Message: ae.Message,
		})
		return
	}

	c.JSON(status, APIError{
		Code:    utils.CodeInternal,
		Message: "Server Error",
	})
}

func requireUserID(c *gin.Context) (string, bool) {
	if s := c.GetString("user_id"); s != "" {
		return s, true
	}

	writeError(c, utils.E(utils.CodeUnauthorized, "Auth", "No Token Provided", nil))
	return "", false
}

func invalidBody(op string, err error) error {
	return utils.E(utils.CodeInvalidArgument, op, "invalid request body", err)
}

// Root answers GET / so load balancers and humans see the service is up.
func Root(c *gin.Context) { c.JSON(http.StatusOK, "Hi") }

func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
}
