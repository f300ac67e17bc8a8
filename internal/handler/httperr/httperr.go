package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the error envelope every endpoint writes. Status stays out of
// the body; Detail carries optional field-level information.
type Response struct {
	Status int       `json:"-"`
	Error  ErrorBody `json:"error"`
	Detail any       `json:"detail,omitempty"`
}

type ErrorBody struct {
	Message string `json:"message"`
}

// AbortWithError writes the envelope and records the underlying error on the
// gin context so the logging and error middleware can see the cause. msg is
// what the client reads; err is never sent over the wire.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{
		Status: status,
		Error:  ErrorBody{Message: msg},
		Detail: detail,
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}
