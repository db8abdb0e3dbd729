package web

import (
	"net/http"

	"github.com/RbxServers/rbxservers-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// lastTimestamp returns the timestamp of the most recent transaction, or nil
// when the user has none.
func lastTimestamp(transactions []models.Transaction) any {
	if len(transactions) == 0 {
		return nil
	}
	return transactions[len(transactions)-1].Timestamp
}

// usersHandler lists every verified user joined with coin and server summaries
func (s *Server) usersHandler(c *gin.Context) {
	followers := s.store.Followers()
	coins := s.store.Coins()
	serversData := s.store.Servers()

	users := make([]gin.H, 0, len(followers.VerifiedUsers))
	for discordID, userData := range followers.VerifiedUsers {
		userCoins := coins.UserCoins[discordID]
		userServers := serversData.Users[discordID]

		totalServers := 0
		for _, game := range userServers.Games {
			totalServers += len(game.ServerLinks)
		}

		users = append(users, gin.H{
			"discord_id":        discordID,
			"roblox_username":   userData.RobloxUsername,
			"verified_at":       userData.VerifiedAt,
			"verification_code": userData.VerificationCode,
			"coins": gin.H{
				"balance":            userCoins.Balance,
				"total_earned":       userCoins.TotalEarned,
				"total_transactions": len(userCoins.Transactions),
			},
			"servers": gin.H{
				"total_games":   len(userServers.Games),
				"total_servers": totalServers,
				"favorites":     len(userServers.Favorites),
			},
			"last_activity": lastTimestamp(userCoins.Transactions),
		})
	}

	okTotalUsers(c, len(users), users)
}

// userHandler returns the detailed record of a single verified user
func (s *Server) userHandler(c *gin.Context) {
	userID := c.Param("id")
	followers := s.store.Followers()

	userData, found := followers.VerifiedUsers[userID]
	if !found {
		fail(c, http.StatusNotFound, "Usuario no encontrado")
		return
	}

	coins := s.store.Coins()
	bans := s.store.Bans()
	warnings := s.store.Warnings()
	serversData := s.store.Servers()
	alerts := s.store.Alerts()

	userCoins := coins.UserCoins[userID]
	userServers := serversData.Users[userID]
	banTime, isBanned := bans.BannedUsers[userID]
	monitoring, isMonitored := alerts.MonitoredUsers[userID]

	var banTimeValue any
	if isBanned {
		banTimeValue = banTime
	}

	var monitoringValue any
	if isMonitored {
		monitoringValue = monitoring
	}

	transactions := userCoins.Transactions
	if transactions == nil {
		transactions = []models.Transaction{}
	}

	var lastTransaction any
	if len(transactions) > 0 {
		lastTransaction = transactions[len(transactions)-1]
	}

	ok(c, gin.H{
		"discord_id":      userID,
		"roblox_username": userData.RobloxUsername,
		"verification": gin.H{
			"verified_at":       userData.VerifiedAt,
			"verification_code": userData.VerificationCode,
			"is_verified":       true,
		},
		"status": gin.H{
			"is_banned":     isBanned,
			"ban_time":      banTimeValue,
			"warning_count": warnings.Warnings[userID],
			"is_monitored":  isMonitored,
		},
		"coins": gin.H{
			"balance":          userCoins.Balance,
			"total_earned":     userCoins.TotalEarned,
			"transactions":     transactions,
			"last_transaction": lastTransaction,
		},
		"servers": gin.H{
			"games":            nonNilGames(userServers.Games),
			"usage_history":    nonNilRaw(userServers.UsageHistory),
			"favorites":        nonNilStrings(userServers.Favorites),
			"reserved_servers": nonNilRaw(userServers.ReservedServers),
		},
		"monitoring": monitoringValue,
	})
}
