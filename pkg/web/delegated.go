package web

import (
	"github.com/gin-gonic/gin"
)

// delegatedHandler lists the delegated owners joined with their identity.
// Owners without a verified record render the "Desconocido" placeholder.
func (s *Server) delegatedHandler(c *gin.Context) {
	delegated := s.store.Delegated()
	followers := s.store.Followers()

	owners := make([]gin.H, 0, len(delegated.DelegatedOwners))
	for _, userID := range delegated.DelegatedOwners {
		username := "Desconocido"
		var verifiedAt any
		if userData, found := followers.VerifiedUsers[userID]; found {
			username = userData.RobloxUsername
			verifiedAt = userData.VerifiedAt
		}

		owners = append(owners, gin.H{
			"discord_id":      userID,
			"roblox_username": username,
			"verified_at":     verifiedAt,
		})
	}

	ok(c, gin.H{
		"total_delegated": len(owners),
		"owners":          owners,
		"last_updated":    delegated.LastUpdated,
	})
}
