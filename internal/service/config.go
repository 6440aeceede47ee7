package service

import (
	"fmt"
	"strings"

	"github.com/JBLinx-Studio/vitalsync-cli/internal/store"
)

const (
	ConfigUSDAAPIKey   = "usda_api_key"
	ConfigFoodProvider = "food_provider"
)

var knownConfigKeys = map[string]bool{
	ConfigUSDAAPIKey:   true,
	ConfigFoodProvider: true,
}

func SetConfig(s *store.Store, key, value string) error {
	key = normalizeName(key)
	if !knownConfigKeys[key] {
		return fmt.Errorf("unknown config key %q", key)
	}
	return s.SetConfig(key, strings.TrimSpace(value))
}

func GetConfig(s *store.Store, key string) (string, bool) {
	return s.GetConfig(normalizeName(key))
}
