package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/RbxServers/rbxservers-api/pkg/store"
)

func newTestServer(t *testing.T) (string, *Server) {
	t.Helper()
	dir := t.TempDir()
	return dir, NewServer(store.New(dir))
}

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
}

func doGet(t *testing.T, s *Server, path string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding response for %s: %v (body: %s)", path, err, w.Body.String())
	}
	return w.Code, body
}

func data(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	d, okCast := body["data"].(map[string]any)
	if !okCast {
		t.Fatalf("expected data object, got %T", body["data"])
	}
	return d
}

func TestRootDescriptor(t *testing.T) {
	_, s := newTestServer(t)

	code, body := doGet(t, s, "/")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["name"] != "RbxServers Bot API" {
		t.Errorf("name = %v, want RbxServers Bot API", body["name"])
	}
	endpoints, okCast := body["endpoints"].(map[string]any)
	if !okCast || len(endpoints) != 12 {
		t.Errorf("expected 12 documented endpoints, got %v", body["endpoints"])
	}
}

func TestStatsTotalGames(t *testing.T) {
	dir, s := newTestServer(t)
	// user A has 2 game entries, user B has 1: total_games must be 3
	writeDoc(t, dir, store.FileUsersServers, `{
		"metadata": {"total_servers": 9},
		"users": {
			"111111111111111111": {"games": {"10": {"game_name": "Jailbreak"}, "20": {"game_name": "Adopt Me"}}},
			"222222222222222222": {"games": {"10": {"game_name": "Jailbreak"}}}
		}
	}`)
	writeDoc(t, dir, store.FileFollowers, `{"verified_users": {"111111111111111111": {"roblox_username": "Uno"}}}`)

	code, body := doGet(t, s, "/stats")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	servers := d["servers"].(map[string]any)
	if servers["total_games"] != float64(3) {
		t.Errorf("total_games = %v, want 3", servers["total_games"])
	}
	if servers["total_servers"] != float64(9) {
		t.Errorf("total_servers = %v, want 9", servers["total_servers"])
	}

	users := d["users"].(map[string]any)
	if users["total_verified"] != float64(1) {
		t.Errorf("total_verified = %v, want 1", users["total_verified"])
	}
}

func TestMissingFilesEqualEmptyFiles(t *testing.T) {
	// An absent document and one containing {} must produce the same result
	_, missing := newTestServer(t)

	emptyDir, empty := newTestServer(t)
	for _, name := range []string{
		store.FileFollowers, store.FileUserCoins, store.FileBans,
		store.FileWarnings, store.FileDelegatedOwners, store.FileUsersServers,
		store.FileMarketplace, store.FileExchanges, store.FileUserAlerts,
		store.FileStartupAlerts, store.FileShopItems,
	} {
		writeDoc(t, emptyDir, name, `{}`)
	}

	for _, path := range []string{"/users", "/coins", "/servers", "/bans", "/marketplace", "/alerts", "/delegated"} {
		codeA, bodyA := doGet(t, missing, path)
		codeB, bodyB := doGet(t, empty, path)
		if codeA != codeB {
			t.Errorf("%s: status %d (missing) != %d (empty)", path, codeA, codeB)
		}

		jsonA, _ := json.Marshal(bodyA)
		jsonB, _ := json.Marshal(bodyB)
		if string(jsonA) != string(jsonB) {
			t.Errorf("%s: body differs\nmissing: %s\nempty:   %s", path, jsonA, jsonB)
		}
	}
}

func TestUsersList(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileFollowers, `{
		"verified_users": {
			"111111111111111111": {"roblox_username": "PlayerOne", "verified_at": 1700000000, "verification_code": "AAA"},
			"222222222222222222": {"roblox_username": "PlayerTwo", "verified_at": 1700000500, "verification_code": "BBB"}
		}
	}`)
	writeDoc(t, dir, store.FileUserCoins, `{
		"user_coins": {
			"111111111111111111": {
				"balance": 100,
				"total_earned": 250,
				"transactions": [{"timestamp": 1700000100}, {"timestamp": 1700000900}]
			}
		}
	}`)

	code, body := doGet(t, s, "/users")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["total_users"] != float64(2) {
		t.Errorf("total_users = %v, want 2", body["total_users"])
	}

	usersList := body["data"].([]any)
	byID := map[string]map[string]any{}
	for _, u := range usersList {
		user := u.(map[string]any)
		byID[user["discord_id"].(string)] = user
	}

	one := byID["111111111111111111"]
	if one["last_activity"] != float64(1700000900) {
		t.Errorf("last_activity = %v, want 1700000900", one["last_activity"])
	}
	coins := one["coins"].(map[string]any)
	if coins["total_transactions"] != float64(2) {
		t.Errorf("total_transactions = %v, want 2", coins["total_transactions"])
	}

	// A user with no transactions has null last_activity
	two := byID["222222222222222222"]
	if two["last_activity"] != nil {
		t.Errorf("last_activity = %v, want null", two["last_activity"])
	}
}

func TestUserNotFoundRegardlessOfOtherDocuments(t *testing.T) {
	dir, s := newTestServer(t)
	// Present in coins and bans, but not verified: must still 404
	writeDoc(t, dir, store.FileUserCoins, `{"user_coins": {"333333333333333333": {"balance": 10}}}`)
	writeDoc(t, dir, store.FileBans, `{"banned_users": {"333333333333333333": 1700000000}}`)

	code, body := doGet(t, s, "/users/333333333333333333")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["success"] != false {
		t.Error("expected success=false")
	}
	if body["error"] != "Usuario no encontrado" {
		t.Errorf("error = %v, want Usuario no encontrado", body["error"])
	}
}

func TestUserDetail(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileFollowers, `{
		"verified_users": {"111111111111111111": {"roblox_username": "PlayerOne", "verified_at": 1700000000, "verification_code": "AAA"}}
	}`)
	writeDoc(t, dir, store.FileBans, `{"banned_users": {"111111111111111111": 1700000300}}`)
	writeDoc(t, dir, store.FileWarnings, `{"warnings": {"111111111111111111": 2}}`)

	code, body := doGet(t, s, "/users/111111111111111111")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	status := d["status"].(map[string]any)
	if status["is_banned"] != true {
		t.Error("expected is_banned=true")
	}
	if status["ban_time"] != float64(1700000300) {
		t.Errorf("ban_time = %v, want 1700000300", status["ban_time"])
	}
	if status["warning_count"] != float64(2) {
		t.Errorf("warning_count = %v, want 2", status["warning_count"])
	}

	verification := d["verification"].(map[string]any)
	if verification["is_verified"] != true {
		t.Error("expected is_verified=true")
	}

	// Absent coin/server documents render as empty collections, not null
	coins := d["coins"].(map[string]any)
	if _, okCast := coins["transactions"].([]any); !okCast {
		t.Errorf("transactions should be an empty list, got %T", coins["transactions"])
	}
	servers := d["servers"].(map[string]any)
	if _, okCast := servers["games"].(map[string]any); !okCast {
		t.Errorf("games should be an empty object, got %T", servers["games"])
	}
}

func TestCoinsTotals(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileUserCoins, `{
		"user_coins": {
			"111111111111111111": {"balance": 100, "total_earned": 400},
			"222222222222222222": {"balance": 50, "total_earned": 100}
		},
		"last_updated": "2024-06-01"
	}`)
	writeDoc(t, dir, store.FileShopItems, `{"shop_items": {"themes": [], "boosts": []}}`)

	code, body := doGet(t, s, "/coins")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_coins_in_circulation"] != float64(150) {
		t.Errorf("total_coins_in_circulation = %v, want 150", d["total_coins_in_circulation"])
	}
	if d["total_coins_ever_earned"] != float64(500) {
		t.Errorf("total_coins_ever_earned = %v, want 500", d["total_coins_ever_earned"])
	}
	if d["total_users_with_coins"] != float64(2) {
		t.Errorf("total_users_with_coins = %v, want 2", d["total_users_with_coins"])
	}
	categories := d["shop_categories"].([]any)
	if len(categories) != 2 {
		t.Errorf("shop_categories = %v, want 2 entries", categories)
	}
	if d["last_updated"] != "2024-06-01" {
		t.Errorf("last_updated = %v, want 2024-06-01", d["last_updated"])
	}
}

func TestUserCoinsResolvesDeclaredParam(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileUserCoins, `{
		"user_coins": {"111111111111111111": {"balance": 75, "total_earned": 75, "transactions": [{"timestamp": 1700000100}]}}
	}`)

	code, body := doGet(t, s, "/coins/111111111111111111")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["user_id"] != "111111111111111111" {
		t.Errorf("user_id = %v, want 111111111111111111", d["user_id"])
	}
	if d["balance"] != float64(75) {
		t.Errorf("balance = %v, want 75", d["balance"])
	}
	if d["transaction_count"] != float64(1) {
		t.Errorf("transaction_count = %v, want 1", d["transaction_count"])
	}
}

func TestUserCoinsNotFound(t *testing.T) {
	_, s := newTestServer(t)

	code, body := doGet(t, s, "/coins/999999999999999999")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["error"] != "Usuario no encontrado en el sistema de monedas" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestServersAggregation(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileUsersServers, `{
		"metadata": {"total_servers": 3},
		"users": {
			"111111111111111111": {
				"games": {
					"10": {
						"game_name": "Jailbreak",
						"category": "adventure",
						"server_links": ["https://a", "https://b"],
						"server_details": {"https://a": {"region": "us"}}
					}
				}
			},
			"222222222222222222": {
				"games": {
					"10": {"game_name": "Jailbreak", "category": "adventure", "server_links": ["https://c"]}
				}
			}
		}
	}`)

	code, body := doGet(t, s, "/servers")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_servers"] != float64(3) {
		t.Errorf("total_servers = %v, want 3", d["total_servers"])
	}
	if d["total_games"] != float64(1) {
		t.Errorf("total_games = %v, want 1 distinct game", d["total_games"])
	}

	games := d["games"].([]any)
	game := games[0].(map[string]any)
	if game["total_servers"] != float64(3) {
		t.Errorf("game total_servers = %v, want 3", game["total_servers"])
	}
	if game["users_count"] != float64(2) {
		t.Errorf("game users_count = %v, want 2", game["users_count"])
	}
}

func TestUserServers(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileUsersServers, `{
		"users": {
			"111111111111111111": {
				"games": {"10": {"game_name": "Jailbreak", "category": "adventure", "server_links": ["https://a"]}},
				"favorites": ["10"]
			}
		}
	}`)

	code, body := doGet(t, s, "/servers/111111111111111111")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_games"] != float64(1) {
		t.Errorf("total_games = %v, want 1", d["total_games"])
	}
	if d["total_servers"] != float64(1) {
		t.Errorf("total_servers = %v, want 1", d["total_servers"])
	}

	code, body = doGet(t, s, "/servers/999999999999999999")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["error"] != "Usuario no encontrado en el sistema de servidores" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestBanIsActiveBoundary(t *testing.T) {
	const banTime = 1700000000.0

	if !banIsActive(banTime+banWindowSeconds-1, banTime) {
		t.Error("one second before expiry must classify as active")
	}
	if banIsActive(banTime+banWindowSeconds, banTime) {
		t.Error("the expiry instant must classify as expired")
	}
}

func TestBansPartition(t *testing.T) {
	dir, s := newTestServer(t)
	now := float64(time.Now().Unix())
	recent := now - 3600
	old := now - banWindowSeconds - 3600

	doc := map[string]any{"banned_users": map[string]float64{
		"111111111111111111": recent,
		"222222222222222222": old,
	}}
	raw, _ := json.Marshal(doc)
	writeDoc(t, dir, store.FileBans, string(raw))
	writeDoc(t, dir, store.FileFollowers, `{"verified_users": {"111111111111111111": {"roblox_username": "PlayerOne"}}}`)

	code, body := doGet(t, s, "/bans")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_banned"] != float64(2) {
		t.Errorf("total_banned = %v, want 2", d["total_banned"])
	}
	if d["active_bans"] != float64(1) {
		t.Errorf("active_bans = %v, want 1", d["active_bans"])
	}
	if d["expired_bans"] != float64(1) {
		t.Errorf("expired_bans = %v, want 1", d["expired_bans"])
	}

	// The unverified banned user joins as "Desconocido"
	for _, u := range d["users"].([]any) {
		user := u.(map[string]any)
		if user["discord_id"] == "222222222222222222" && user["roblox_username"] != "Desconocido" {
			t.Errorf("roblox_username = %v, want Desconocido", user["roblox_username"])
		}
	}
}

func TestMarketplace(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileMarketplace, `{"listings": [{"id": 1}, {"id": 2}], "last_updated": "2024-05-01"}`)
	writeDoc(t, dir, store.FileExchanges, `{"exchanges": [{"id": 9}]}`)

	code, body := doGet(t, s, "/marketplace")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_listings"] != float64(2) {
		t.Errorf("total_listings = %v, want 2", d["total_listings"])
	}
	if d["total_exchanges"] != float64(1) {
		t.Errorf("total_exchanges = %v, want 1", d["total_exchanges"])
	}
	if d["last_updated"] != "2024-05-01" {
		t.Errorf("last_updated = %v, want 2024-05-01", d["last_updated"])
	}
}

func TestAlerts(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileUserAlerts, `{"monitored_users": {"111111111111111111": {"reason": "spam"}}, "user_states": {}}`)
	writeDoc(t, dir, store.FileStartupAlerts, `{"subscribed_users": ["111111111111111111", "222222222222222222"], "last_startup": 1700000000}`)

	code, body := doGet(t, s, "/alerts")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	monitoring := d["user_monitoring"].(map[string]any)
	if monitoring["total_monitored"] != float64(1) {
		t.Errorf("total_monitored = %v, want 1", monitoring["total_monitored"])
	}
	startup := d["startup_alerts"].(map[string]any)
	if startup["total_subscribed"] != float64(2) {
		t.Errorf("total_subscribed = %v, want 2", startup["total_subscribed"])
	}
	if startup["last_startup"] != float64(1700000000) {
		t.Errorf("last_startup = %v, want 1700000000", startup["last_startup"])
	}
}

func TestDelegatedJoin(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileDelegatedOwners, `{"delegated_owners": ["111111111111111111", "999999999999999999"], "last_updated": 1700000000}`)
	writeDoc(t, dir, store.FileFollowers, `{"verified_users": {"111111111111111111": {"roblox_username": "PlayerOne", "verified_at": 1700000000}}}`)

	code, body := doGet(t, s, "/delegated")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}

	d := data(t, body)
	if d["total_delegated"] != float64(2) {
		t.Errorf("total_delegated = %v, want 2", d["total_delegated"])
	}

	owners := d["owners"].([]any)
	second := owners[1].(map[string]any)
	if second["roblox_username"] != "Desconocido" {
		t.Errorf("roblox_username = %v, want Desconocido", second["roblox_username"])
	}
	if second["verified_at"] != nil {
		t.Errorf("verified_at = %v, want null", second["verified_at"])
	}
}

func TestSearchRobloxCaseInsensitiveSubstring(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileFollowers, `{
		"verified_users": {
			"111111111111111111": {"roblox_username": "RbxPlayer123", "verified_at": 1700000000},
			"222222222222222222": {"roblox_username": "OtherName", "verified_at": 1700000500}
		}
	}`)

	code, body := doGet(t, s, "/search/roblox/player")
	if code != http.StatusOK {
		t.Fatalf("status = %d, want 200", code)
	}
	if body["found"] != float64(1) {
		t.Errorf("found = %v, want 1", body["found"])
	}

	results := body["data"].([]any)
	match := results[0].(map[string]any)
	if match["roblox_username"] != "RbxPlayer123" {
		t.Errorf("roblox_username = %v, want RbxPlayer123", match["roblox_username"])
	}
}

func TestSearchRobloxNoMatches(t *testing.T) {
	dir, s := newTestServer(t)
	writeDoc(t, dir, store.FileFollowers, `{"verified_users": {"111111111111111111": {"roblox_username": "RbxPlayer123"}}}`)

	code, body := doGet(t, s, "/search/roblox/nomatch")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["error"] != "No se encontraron usuarios con ese nombre de Roblox" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestNoRouteListsEndpoints(t *testing.T) {
	_, s := newTestServer(t)

	code, body := doGet(t, s, "/no/such/path")
	if code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", code)
	}
	if body["error"] != "Endpoint no encontrado" {
		t.Errorf("error = %v, want Endpoint no encontrado", body["error"])
	}

	endpoints := body["available_endpoints"].([]any)
	if len(endpoints) != 12 {
		t.Errorf("available_endpoints has %d entries, want 12", len(endpoints))
	}
}
