package web

import (
	"github.com/RbxServers/rbxservers-api/pkg/models"
	"github.com/goccy/go-json"
)

// nil maps/slices from absent documents are rendered as empty collections,
// never null.

func nonNilGames(games map[string]models.Game) map[string]models.Game {
	if games == nil {
		return map[string]models.Game{}
	}
	return games
}

func nonNilRaw(items []json.RawMessage) []json.RawMessage {
	if items == nil {
		return []json.RawMessage{}
	}
	return items
}

func nonNilStrings(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

func nonNilRawMap(items map[string]json.RawMessage) map[string]json.RawMessage {
	if items == nil {
		return map[string]json.RawMessage{}
	}
	return items
}
