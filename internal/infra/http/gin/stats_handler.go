package ginserver

import (
	"net/http"

	gin "github.com/gin-gonic/gin"

	"staybook/internal/app/handlers/stats"
)

type StatsHandler struct {
	Handler *stats.ExportHandler

	// ExportDir is the fallback when the request does not name a folder.
	ExportDir string
}

var _ StatsHTTP = StatsHandler{}

func (h StatsHandler) Export(c *gin.Context) {
	dir := c.Query("path_to_folder")
	if dir == "" {
		dir = h.ExportDir
	}
	res, err := h.Handler.Handle(c.Request.Context(), dir)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
