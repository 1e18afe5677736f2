package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
)

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{Status: "ok"})
}
