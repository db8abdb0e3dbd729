package web

import (
	"github.com/gin-gonic/gin"
)

// marketplaceHandler returns the listings and exchanges with their counts
func (s *Server) marketplaceHandler(c *gin.Context) {
	marketplace := s.store.Marketplace()
	exchanges := s.store.Exchanges()

	ok(c, gin.H{
		"listings":        nonNilRaw(marketplace.Listings),
		"total_listings":  len(marketplace.Listings),
		"exchanges":       nonNilRaw(exchanges.Exchanges),
		"total_exchanges": len(exchanges.Exchanges),
		"last_updated":    marketplace.LastUpdated,
	})
}
