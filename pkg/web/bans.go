package web

import (
	"time"

	"github.com/gin-gonic/gin"
)

// banWindowSeconds is the fixed period a ban stays active after its timestamp
const banWindowSeconds = 7 * 24 * 60 * 60

// banIsActive reports whether a ban placed at banTime is still active at now.
// The boundary instant itself counts as expired.
func banIsActive(now, banTime float64) bool {
	return now < banTime+banWindowSeconds
}

// bansHandler lists every ban, split into active and expired at read time
func (s *Server) bansHandler(c *gin.Context) {
	bans := s.store.Bans()
	followers := s.store.Followers()

	now := float64(time.Now().Unix())

	bannedUsers := make([]gin.H, 0, len(bans.BannedUsers))
	activeCount := 0
	for userID, banTime := range bans.BannedUsers {
		username := "Desconocido"
		if userData, found := followers.VerifiedUsers[userID]; found {
			username = userData.RobloxUsername
		}

		expires := banTime + banWindowSeconds
		isActive := banIsActive(now, banTime)
		if isActive {
			activeCount++
		}

		bannedUsers = append(bannedUsers, gin.H{
			"discord_id":      userID,
			"roblox_username": username,
			"banned_at":       banTime,
			"ban_expires":     expires,
			"is_active":       isActive,
		})
	}

	ok(c, gin.H{
		"total_banned": len(bannedUsers),
		"active_bans":  activeCount,
		"expired_bans": len(bannedUsers) - activeCount,
		"users":        bannedUsers,
	})
}
