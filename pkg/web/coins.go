package web

import (
	"net/http"

	"github.com/RbxServers/rbxservers-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// coinsHandler returns the economy-wide totals and shop categories
func (s *Server) coinsHandler(c *gin.Context) {
	coins := s.store.Coins()
	shop := s.store.Shop()

	var totalCoins, totalEarned int64
	for _, account := range coins.UserCoins {
		totalCoins += account.Balance
		totalEarned += account.TotalEarned
	}

	categories := make([]string, 0, len(shop.ShopItems))
	for category := range shop.ShopItems {
		categories = append(categories, category)
	}

	ok(c, gin.H{
		"total_users_with_coins":     len(coins.UserCoins),
		"total_coins_in_circulation": totalCoins,
		"total_coins_ever_earned":    totalEarned,
		"shop_categories":            categories,
		"last_updated":               coins.LastUpdated,
	})
}

// userCoinsHandler returns one user's balance and transaction history
func (s *Server) userCoinsHandler(c *gin.Context) {
	userID := c.Param("userId")
	coins := s.store.Coins()

	userCoins, found := coins.UserCoins[userID]
	if !found {
		fail(c, http.StatusNotFound, "Usuario no encontrado en el sistema de monedas")
		return
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
		"user_id":           userID,
		"balance":           userCoins.Balance,
		"total_earned":      userCoins.TotalEarned,
		"transaction_count": len(transactions),
		"transactions":      transactions,
		"last_transaction":  lastTransaction,
	})
}
