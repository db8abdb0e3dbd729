// Package models contains the shapes of the documents persisted by the bot.
// Every document is a flat JSON file keyed by Discord user id; missing files
// decode to zero values so aggregation code never has to null-check.
package models

import "github.com/goccy/go-json"

// VerifiedUser representa un usuario verificado con su cuenta de Roblox
type VerifiedUser struct {
	RobloxUsername   string  `json:"roblox_username"`
	VerifiedAt       float64 `json:"verified_at"`
	VerificationCode string  `json:"verification_code"`
}

// Followers es el documento followers.json
type Followers struct {
	VerifiedUsers map[string]VerifiedUser `json:"verified_users"`
}

// Transaction es una transacción individual de monedas
type Transaction struct {
	Type      string  `json:"type,omitempty"`
	Amount    int64   `json:"amount,omitempty"`
	Reason    string  `json:"reason,omitempty"`
	Timestamp float64 `json:"timestamp"`
}

// CoinAccount es la cuenta de monedas de un usuario.
// Transactions is append-only; the last element is the most recent.
type CoinAccount struct {
	Balance      int64         `json:"balance"`
	TotalEarned  int64         `json:"total_earned"`
	Transactions []Transaction `json:"transactions"`
}

// UserCoins es el documento user_coins.json
type UserCoins struct {
	UserCoins   map[string]CoinAccount `json:"user_coins"`
	LastUpdated any                    `json:"last_updated"`
}

// Bans es el documento bans.json. Los valores son timestamps (segundos) del
// momento del baneo; la expiración se calcula al leer, no se guarda.
type Bans struct {
	BannedUsers map[string]float64 `json:"banned_users"`
}

// Warnings es el documento warnings.json
type Warnings struct {
	Warnings map[string]int `json:"warnings"`
}

// DelegatedOwners es el documento delegated_owners.json
type DelegatedOwners struct {
	DelegatedOwners []string `json:"delegated_owners"`
	LastUpdated     any      `json:"last_updated"`
}

// Game agrupa los servidores VIP de un juego para un usuario
type Game struct {
	GameName      string                     `json:"game_name"`
	Category      string                     `json:"category"`
	ServerLinks   []string                   `json:"server_links"`
	ServerDetails map[string]json.RawMessage `json:"server_details"`
}

// UserServers agrupa todos los juegos y servidores de un usuario
type UserServers struct {
	Games           map[string]Game   `json:"games"`
	UsageHistory    []json.RawMessage `json:"usage_history"`
	Favorites       []string          `json:"favorites"`
	ReservedServers []json.RawMessage `json:"reserved_servers"`
}

// UsersServers es el documento users_servers.json
type UsersServers struct {
	Metadata map[string]any         `json:"metadata"`
	Users    map[string]UserServers `json:"users"`
}

// Marketplace es el documento marketplace.json
type Marketplace struct {
	Listings    []json.RawMessage `json:"listings"`
	LastUpdated any               `json:"last_updated"`
}

// Exchanges es el documento exchanges.json
type Exchanges struct {
	Exchanges   []json.RawMessage `json:"exchanges"`
	LastUpdated any               `json:"last_updated"`
}

// UserAlerts es el documento user_alerts.json
type UserAlerts struct {
	MonitoredUsers map[string]json.RawMessage `json:"monitored_users"`
	UserStates     map[string]json.RawMessage `json:"user_states"`
}

// StartupAlerts es el documento startup_alerts.json
type StartupAlerts struct {
	SubscribedUsers []string `json:"subscribed_users"`
	LastStartup     any      `json:"last_startup"`
}

// ShopItems es el documento shop_items.json. La forma canónica es un mapa
// categoría -> items; los handlers sólo exponen las claves.
type ShopItems struct {
	ShopItems map[string]json.RawMessage `json:"shop_items"`
}
