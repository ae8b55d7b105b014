package response

import (
	"github.com/gin-gonic/gin"
)

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type errorBody struct {
	Error *Error `json:"error"`
}

// Message is the body for liveness and deletion confirmations.
type Message struct {
	Msg string `json:"message"`
}

func OK(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func MessageResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Message{Msg: message})
}

func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, errorBody{Error: &Error{Code: code, Message: message}})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, errorBody{Error: &Error{Code: code, Message: message, Details: details}})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, 400, "BAD_REQUEST", message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, 404, "NOT_FOUND", message)
}

func InternalServerError(c *gin.Context, message string) {
	ErrorResponse(c, 500, "INTERNAL_SERVER_ERROR", message)
}
