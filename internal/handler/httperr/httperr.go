package httperr

import (
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail
	AbortWithPayload(c, status, err, resp)
}

// AbortWithPayload records err on the context like AbortWithError but lets the
// caller keep a surface-specific body. The tool executor uses it to answer
// with its own envelope.
func AbortWithPayload(c *gin.Context, status int, err error, payload any) {
	if err == nil {
		panic("httperr: err cannot be nil")
	}

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: payload,
	})
	c.AbortWithStatusJSON(status, payload)
}
