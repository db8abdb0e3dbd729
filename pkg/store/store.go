// Package store reads the bot's persisted JSON documents from disk.
// Reads are fail-open: a missing, unreadable or corrupt file yields the
// document's zero value and the error only reaches the log. The API never
// writes, so there is no cache and no locking; every call reads fresh.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/RbxServers/rbxservers-api/pkg/logger"
	"github.com/RbxServers/rbxservers-api/pkg/models"
	"github.com/goccy/go-json"
)

// Document filenames, fixed by the bot that owns them.
const (
	FileFollowers       = "followers.json"
	FileUserCoins       = "user_coins.json"
	FileBans            = "bans.json"
	FileWarnings        = "warnings.json"
	FileDelegatedOwners = "delegated_owners.json"
	FileUsersServers    = "users_servers.json"
	FileMarketplace     = "marketplace.json"
	FileExchanges       = "exchanges.json"
	FileUserAlerts      = "user_alerts.json"
	FileStartupAlerts   = "startup_alerts.json"
	FileShopItems       = "shop_items.json"
)

// Store provides access to the bot's data directory
type Store struct {
	dir string
}

// New creates a Store rooted at the given data directory
func New(dir string) *Store {
	return &Store{dir: dir}
}

// load decodes the named file into v. Errors are logged and swallowed so
// callers always receive a usable (possibly zero) value.
func (s *Store) load(filename string, v any) {
	path := filepath.Join(s.dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error(fmt.Sprintf("Error leyendo archivo %s: %v", filename, err), "Store")
		}
		return
	}

	if err := json.Unmarshal(data, v); err != nil {
		logger.Error(fmt.Sprintf("Error leyendo archivo %s: %v", filename, err), "Store")
	}
}

// Followers returns the verified-users document
func (s *Store) Followers() models.Followers {
	var doc models.Followers
	s.load(FileFollowers, &doc)
	return doc
}

// Coins returns the coin-accounts document
func (s *Store) Coins() models.UserCoins {
	var doc models.UserCoins
	s.load(FileUserCoins, &doc)
	return doc
}

// Bans returns the banned-users document
func (s *Store) Bans() models.Bans {
	var doc models.Bans
	s.load(FileBans, &doc)
	return doc
}

// Warnings returns the warnings document
func (s *Store) Warnings() models.Warnings {
	var doc models.Warnings
	s.load(FileWarnings, &doc)
	return doc
}

// Delegated returns the delegated-owners document
func (s *Store) Delegated() models.DelegatedOwners {
	var doc models.DelegatedOwners
	s.load(FileDelegatedOwners, &doc)
	return doc
}

// Servers returns the per-user VIP servers document
func (s *Store) Servers() models.UsersServers {
	var doc models.UsersServers
	s.load(FileUsersServers, &doc)
	return doc
}

// Marketplace returns the marketplace listings document
func (s *Store) Marketplace() models.Marketplace {
	var doc models.Marketplace
	s.load(FileMarketplace, &doc)
	return doc
}

// Exchanges returns the exchanges document
func (s *Store) Exchanges() models.Exchanges {
	var doc models.Exchanges
	s.load(FileExchanges, &doc)
	return doc
}

// Alerts returns the user-monitoring document
func (s *Store) Alerts() models.UserAlerts {
	var doc models.UserAlerts
	s.load(FileUserAlerts, &doc)
	return doc
}

// StartupAlerts returns the startup-subscriptions document
func (s *Store) StartupAlerts() models.StartupAlerts {
	var doc models.StartupAlerts
	s.load(FileStartupAlerts, &doc)
	return doc
}

// Shop returns the shop-items document
func (s *Store) Shop() models.ShopItems {
	var doc models.ShopItems
	s.load(FileShopItems, &doc)
	return doc
}

// MetadataTotalServers extracts metadata.total_servers from the servers
// document, tolerating the number arriving as any JSON numeric type.
func MetadataTotalServers(metadata map[string]any) int {
	switch n := metadata["total_servers"].(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	default:
		return 0
	}
}
