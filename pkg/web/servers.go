package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// serversHandler flattens every VIP server listing and aggregates per-game stats
func (s *Server) serversHandler(c *gin.Context) {
	serversData := s.store.Servers()

	allServers := make([]gin.H, 0)
	gameStats := make(map[string]gin.H)

	for userID, userData := range serversData.Users {
		for gameID, gameData := range userData.Games {
			stats, exists := gameStats[gameID]
			if !exists {
				stats = gin.H{
					"game_id":       gameID,
					"game_name":     gameData.GameName,
					"category":      gameData.Category,
					"total_servers": 0,
					"users_count":   0,
				}
				gameStats[gameID] = stats
			}

			stats["total_servers"] = stats["total_servers"].(int) + len(gameData.ServerLinks)
			stats["users_count"] = stats["users_count"].(int) + 1

			for _, link := range gameData.ServerLinks {
				var details any
				if d, found := gameData.ServerDetails[link]; found {
					details = d
				}

				allServers = append(allServers, gin.H{
					"user_id":     userID,
					"game_id":     gameID,
					"game_name":   gameData.GameName,
					"category":    gameData.Category,
					"server_link": link,
					"details":     details,
				})
			}
		}
	}

	games := make([]gin.H, 0, len(gameStats))
	for _, stats := range gameStats {
		games = append(games, stats)
	}

	metadata := serversData.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	ok(c, gin.H{
		"total_servers": len(allServers),
		"total_games":   len(gameStats),
		"games":         games,
		"metadata":      metadata,
	})
}

// userServersHandler returns one user's game and server breakdown
func (s *Server) userServersHandler(c *gin.Context) {
	userID := c.Param("userId")
	serversData := s.store.Servers()

	userData, found := serversData.Users[userID]
	if !found {
		fail(c, http.StatusNotFound, "Usuario no encontrado en el sistema de servidores")
		return
	}

	totalServers := 0
	games := make([]gin.H, 0, len(userData.Games))
	for gameID, gameData := range userData.Games {
		totalServers += len(gameData.ServerLinks)
		games = append(games, gin.H{
			"game_id":        gameID,
			"game_name":      gameData.GameName,
			"category":       gameData.Category,
			"server_count":   len(gameData.ServerLinks),
			"servers":        nonNilStrings(gameData.ServerLinks),
			"server_details": nonNilRawMap(gameData.ServerDetails),
		})
	}

	ok(c, gin.H{
		"user_id":          userID,
		"total_games":      len(games),
		"total_servers":    totalServers,
		"games":            games,
		"usage_history":    nonNilRaw(userData.UsageHistory),
		"favorites":        nonNilStrings(userData.Favorites),
		"reserved_servers": nonNilRaw(userData.ReservedServers),
	})
}
