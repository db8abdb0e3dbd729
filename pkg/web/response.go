package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// apiResponse is the uniform envelope for every endpoint. The optional
// counters only appear on the endpoints that historically carried them.
type apiResponse struct {
	Success    bool   `json:"success"`
	TotalUsers *int   `json:"total_users,omitempty"`
	Found      *int   `json:"found,omitempty"`
	Data       any    `json:"data,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ok writes a success envelope
func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: data})
}

// okTotalUsers writes a success envelope with the top-level total_users count
func okTotalUsers(c *gin.Context, total int, data any) {
	c.JSON(http.StatusOK, apiResponse{Success: true, TotalUsers: &total, Data: data})
}

// okFound writes a success envelope with the top-level found count
func okFound(c *gin.Context, found int, data any) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Found: &found, Data: data})
}

// fail writes an error envelope with the given status
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, apiResponse{Success: false, Error: message})
}
