package web

import (
	"time"

	"github.com/RbxServers/rbxservers-api/pkg/store"
	"github.com/gin-gonic/gin"
)

// statsHandler returns the aggregate counters of every subsystem
func (s *Server) statsHandler(c *gin.Context) {
	followers := s.store.Followers()
	coins := s.store.Coins()
	bans := s.store.Bans()
	warnings := s.store.Warnings()
	delegated := s.store.Delegated()
	serversData := s.store.Servers()

	// total_games cuenta entradas por usuario, no juegos distintos
	totalGames := 0
	for _, user := range serversData.Users {
		totalGames += len(user.Games)
	}

	ok(c, gin.H{
		"users": gin.H{
			"total_verified":         len(followers.VerifiedUsers),
			"total_banned":           len(bans.BannedUsers),
			"total_with_warnings":    len(warnings.Warnings),
			"total_delegated_owners": len(delegated.DelegatedOwners),
			"total_with_coins":       len(coins.UserCoins),
		},
		"servers": gin.H{
			"total_servers": store.MetadataTotalServers(serversData.Metadata),
			"total_games":   totalGames,
		},
		"last_updated": time.Now().UTC().Format(time.RFC3339),
	})
}
