package web

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// searchRobloxHandler finds verified users whose Roblox username contains the
// query, case-insensitively.
func (s *Server) searchRobloxHandler(c *gin.Context) {
	query := strings.ToLower(c.Param("username"))
	followers := s.store.Followers()

	results := make([]gin.H, 0)
	for discordID, userData := range followers.VerifiedUsers {
		if strings.Contains(strings.ToLower(userData.RobloxUsername), query) {
			results = append(results, gin.H{
				"discord_id":      discordID,
				"roblox_username": userData.RobloxUsername,
				"verified_at":     userData.VerifiedAt,
			})
		}
	}

	if len(results) == 0 {
		fail(c, http.StatusNotFound, "No se encontraron usuarios con ese nombre de Roblox")
		return
	}

	okFound(c, len(results), results)
}
