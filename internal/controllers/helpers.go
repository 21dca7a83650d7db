package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/franciscosanchezn/pizza-restaurants-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// parseID reads the :id path parameter. Ids that are not positive integers can never
// resolve to a row, so callers treat ok == false as not found.
func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondLookupError renders the 404 body for entity when err is services.ErrNotFound
// and a 500 otherwise
func respondLookupError(ctx *gin.Context, err error, entity string) {
	if errors.Is(err, services.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundError(entity))
		return
	}
	respondInternalError(ctx, err)
}

func respondInternalError(ctx *gin.Context, err error) {
	log.WithFields(log.Fields{
		"method": ctx.Request.Method,
		"path":   ctx.FullPath(),
	}).WithError(err).Error("Request failed")
	ctx.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: models.MsgInternalServer})
}

// Index godoc
// @Summary Landing page
// @Description Returns a greeting
// @Tags index
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>Code challenge</h1>"))
}
