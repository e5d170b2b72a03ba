package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DefaultOutputDir   = `C:\Users\Administrator\Platform Sales & Procurement`
	DefaultOutputFile  = "sample_products.xlsx"
	DefaultHistoryPath = "data/generations.db"

	// HistoryDisabled HISTORY_DB_PATH shu qiymatda bo'lsa tarix xotirada qoladi
	HistoryDisabled = "none"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	OutputDir     string
	OutputFile    string
	HistoryDBPath string
	HistoryLimit  int
}

// Load konfiguratsiyani yuklash
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	config := &Config{
		OutputDir:     DefaultOutputDir,
		OutputFile:    DefaultOutputFile,
		HistoryDBPath: DefaultHistoryPath,
		HistoryLimit:  20, // Default qiymat
	}

	if dir := os.Getenv("SAMPLE_OUTPUT_DIR"); dir != "" {
		config.OutputDir = dir
	}

	if file := os.Getenv("SAMPLE_OUTPUT_FILE"); file != "" {
		config.OutputFile = file
	}

	if dbPath := os.Getenv("HISTORY_DB_PATH"); dbPath != "" {
		config.HistoryDBPath = dbPath
	}

	if rawLimit := os.Getenv("HISTORY_LIMIT"); rawLimit != "" {
		if parsed, err := strconv.Atoi(rawLimit); err == nil {
			config.HistoryLimit = parsed
		} else {
			return nil, fmt.Errorf("HISTORY_LIMIT noto'g'ri formatda: %v", err)
		}
	}

	return config, nil
}

// HistoryInMemory tarix SQLite ga yozilmasligi kerakmi
func (c *Config) HistoryInMemory() bool {
	return c.HistoryDBPath == HistoryDisabled
}
