package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Produce      plain
// @Success      200  {string}  string  "ok"
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.String(http.StatusOK, "ok")
}
