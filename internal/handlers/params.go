package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// pathID parses the :id segment. An id that is not a positive integer cannot
// match any row, so callers answer it with their not-found error.
func pathID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func bindJSON(ctx *gin.Context, obj any) bool {
	if err := ctx.ShouldBindJSON(obj); err != nil {
		_ = ctx.Error(err).SetType(gin.ErrorTypeBind)
		return false
	}
	return true
}
