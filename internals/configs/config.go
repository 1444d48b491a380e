package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	CatalogFile     string
	RulesFile       string
	SearchDebounce  time.Duration
	TrackingEnabled bool
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	CatalogFile = GetEnv("CATALOG_FILE")
	RulesFile = GetEnv("RULES_FILE")
	SearchDebounce = time.Duration(GetEnvInt("SEARCH_DEBOUNCE_MS", 300)) * time.Millisecond
	TrackingEnabled = GetEnvBool("TRACKING_ENABLED", true)

	if CatalogFile == "" {
		log.Println("ℹ️ CATALOG_FILE kosong, pakai catalog bawaan.")
	} else {
		log.Printf("✅ CATALOG_FILE = %s", CatalogFile)
	}
	if RulesFile == "" {
		log.Println("ℹ️ RULES_FILE kosong, pakai rule klasifikasi bawaan.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, defaultValue int) int {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("[WARN] ❌ %s=%q bukan angka valid, pakai default %d", key, raw, defaultValue)
		return defaultValue
	}
	return n
}

func GetEnvBool(key string, defaultValue bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("[WARN] ❌ %s=%q bukan boolean valid, pakai default %v", key, raw, defaultValue)
		return defaultValue
	}
	return b
}
