package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return fmt.Sprintf("%v - %v", e.StatusCode, e.Msg)
}

func NewErr(statusCode int, msg string) *Err {
	return &Err{
		StatusCode: statusCode,
		Msg:        msg,
	}
}

func ErrBadRequest(err error) *Err {
	return NewErr(http.StatusBadRequest, err.Error())
}

func ErrNotFound(msg string) *Err {
	return NewErr(http.StatusNotFound, msg)
}

// ErrInternalServerError logs the full error server-side and returns an
// opaque message, so storage details never leak to the caller.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return NewErr(http.StatusInternalServerError, "Error interno del servidor")
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.JSON(err.StatusCode, err)
}
