package handlers

import (
	"net/http"

	"salonbook/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the latest health snapshot.
func HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, utils.GetHealthStatus())
}
