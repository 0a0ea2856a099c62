package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	LogMode            string
	ServerPort         string
	DownloadFolder     string
	ConcurrencyWorkers int
	DownloadOverride   bool
	BitRate            string
	MaxDownloadRetries int
	MaxTasks           int
	MediaAPIURL        string
	MediaARL           string
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	return checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"DOWNLOAD_FOLDER",
		"MEDIA_API_URL",
	})
}

func envInt(name string, fallback int) (int, error) {
	raw, exists := os.LookupEnv(name)
	if !exists || raw == "" {
		return fallback, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", name, err)
	}

	return value, nil
}

func envBool(name string, fallback bool) (bool, error) {
	raw, exists := os.LookupEnv(name)
	if !exists || raw == "" {
		return fallback, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", name, err)
	}

	return value, nil
}

func envString(name, fallback string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return fallback
}

func LoadConfig(path string) (*Config, error) {
	err := godotenv.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration file: %w", err)
	}

	if err := validateEnv(); err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	workers, err := envInt("CONCURRENCY_WORKERS", 4)
	if err != nil {
		return nil, err
	}

	override, err := envBool("DOWNLOAD_OVERRIDE", false)
	if err != nil {
		return nil, err
	}

	maxRetries, err := envInt("MAX_DOWNLOAD_RETRIES", 5)
	if err != nil {
		return nil, err
	}

	maxTasks, err := envInt("MAX_TASKS", 1000)
	if err != nil {
		return nil, err
	}

	return &Config{
		LogMode:            os.Getenv("LOG_MODE"),
		ServerPort:         os.Getenv("SERVER_PORT"),
		DownloadFolder:     os.Getenv("DOWNLOAD_FOLDER"),
		ConcurrencyWorkers: workers,
		DownloadOverride:   override,
		BitRate:            envString("BIT_RATE", "MP3_320"),
		MaxDownloadRetries: maxRetries,
		MaxTasks:           maxTasks,
		MediaAPIURL:        os.Getenv("MEDIA_API_URL"),
		MediaARL:           os.Getenv("MEDIA_ARL"),
	}, nil
}
