// Package web provides API routes for the query server.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// availableEndpoints is the catalog returned by the fallback 404 handler
var availableEndpoints = []string{
	"/stats", "/users", "/users/:id", "/coins", "/coins/:userId",
	"/servers", "/servers/:userId", "/bans", "/marketplace",
	"/alerts", "/delegated", "/search/roblox/:username",
}

// setupRoutes registers every endpoint of the query API
func (s *Server) setupRoutes() {
	s.engine.GET("/", s.rootHandler)
	s.engine.GET("/stats", guard("Error obteniendo estadísticas", s.statsHandler))
	s.engine.GET("/users", guard("Error obteniendo usuarios", s.usersHandler))
	s.engine.GET("/users/:id", guard("Error obteniendo información del usuario", s.userHandler))
	s.engine.GET("/coins", guard("Error obteniendo información de monedas", s.coinsHandler))
	s.engine.GET("/coins/:userId", guard("Error obteniendo monedas del usuario", s.userCoinsHandler))
	s.engine.GET("/servers", guard("Error obteniendo información de servidores", s.serversHandler))
	s.engine.GET("/servers/:userId", guard("Error obteniendo servidores del usuario", s.userServersHandler))
	s.engine.GET("/bans", guard("Error obteniendo información de bans", s.bansHandler))
	s.engine.GET("/marketplace", guard("Error obteniendo información del marketplace", s.marketplaceHandler))
	s.engine.GET("/alerts", guard("Error obteniendo información de alertas", s.alertsHandler))
	s.engine.GET("/delegated", guard("Error obteniendo owners delegados", s.delegatedHandler))
	s.engine.GET("/search/roblox/:username", guard("Error buscando usuario", s.searchRobloxHandler))
}

// rootHandler returns the service descriptor and the endpoint map
func (s *Server) rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "RbxServers Bot API",
		"version":     "1.0.0",
		"description": "API para obtener información del bot RbxServers",
		"endpoints": gin.H{
			"/stats":                   "Estadísticas generales del bot",
			"/users":                   "Lista de usuarios verificados",
			"/users/:id":               "Información específica de un usuario",
			"/coins":                   "Sistema de monedas/créditos",
			"/coins/:userId":           "Monedas de un usuario específico",
			"/servers":                 "Información de servidores VIP",
			"/servers/:userId":         "Servidores de un usuario específico",
			"/bans":                    "Lista de usuarios baneados",
			"/marketplace":             "Marketplace del bot",
			"/alerts":                  "Sistema de alertas",
			"/delegated":               "Owners delegados",
			"/search/roblox/:username": "Buscar usuario por nombre de Roblox",
		},
		"created_by": "hesiz",
		"bot_name":   "RbxServers",
	})
}
