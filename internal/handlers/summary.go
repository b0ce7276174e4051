package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errSummary = "Failed to build summary"

// @Summary      Dashboard summary
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.Summary
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	sum, err := h.services.Dashboard.Summary(c.Request.Context(), callerUID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errSummary, "summary_failed", err)
		return
	}
	c.JSON(http.StatusOK, sum)
}
