package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port        string
	DBPath      string
	LLMEndpoint string
	LLMAPIKey   string
	LLMModel    string
	CatalogCSV  string
	CatalogXLSX string
	RequireUser bool
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] No .env file found or error loading: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	cfg := AppConfig{
		Port:        get("PORT", "8080"),
		DBPath:      get("DB_PATH", "herbaverse.db"),
		LLMEndpoint: get("LLM_ENDPOINT", ""),
		LLMAPIKey:   get("LLM_API_KEY", ""),
		LLMModel:    get("LLM_MODEL", "gpt-4o-mini"),
		CatalogCSV:  get("CATALOG_CSV", ""),
		CatalogXLSX: get("CATALOG_XLSX", ""),
		RequireUser: get("REQUIRE_USER", "false") == "true",
	}
	log.Printf("[cfg] port=%s db=%s llm_model=%s require_user=%v", cfg.Port, cfg.DBPath, cfg.LLMModel, cfg.RequireUser)
	return cfg
}
