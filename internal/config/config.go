package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	GoogleAPIKey string

	SpreadsheetID string
	SkipRows      int

	InputPath  string
	OutputPath string

	ColorsPath       string
	ReplacementsPath string
	AdditionalPath   string
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),

		SpreadsheetID: getEnv("SPREADSHEET_ID", "1ITQm2xYrVj7sycFsjwPSe8bbCFu3OJmPSGtzm3ZImRE"),
		SkipRows:      getEnvInt("SKIP_ROWS", 7),

		InputPath:  getEnv("INPUT_FILE", "Joe - Streams.csv"),
		OutputPath: getEnv("OUTPUT_FILE", "stream-index.txt"),

		ColorsPath:       getEnv("COLORS_FILE", "colors.json"),
		ReplacementsPath: getEnv("REPLACEMENTS_FILE", "replacements.json"),
		AdditionalPath:   getEnv("ADDITIONAL_FILE", "additional_stream_data.json"),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
