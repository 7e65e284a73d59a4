package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	DbHost     string
	DbUser     string
	DbPassword string
	DbName     string
	DbPort     int
	DbSSLMode  string
	AppPort    int

	// Recommendation defaults, applied when a user has no reservation history.
	RecDefaultCuisines      []string
	RecDefaultMaxPrice      float64
	RecDefaultMaxDistanceKm float64
	RecDefaultTimeSlot      string
	RecTopN                 int
	RecSimilarTopN          int
}

var (
	lock      = &sync.Mutex{}
	appConfig *AppConfig
)

func GetConfig() (*AppConfig, error) {
	if appConfig != nil {
		return appConfig, nil
	}

	lock.Lock()
	defer lock.Unlock()

	if appConfig != nil {
		return appConfig, nil
	}

	cfg, err := initConfig()
	if err != nil {
		return nil, err
	}
	appConfig = cfg
	return appConfig, nil
}

func initConfig() (*AppConfig, error) {
	var finalConfig AppConfig

	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.SetConfigName("app.config")
	viper.SetConfigType("json")

	viper.SetDefault("recommendation.default_cuisines", []string{"italiana", "mexicana", "asiatica"})
	viper.SetDefault("recommendation.default_max_price", 15.0)
	viper.SetDefault("recommendation.default_max_distance_km", 10.0)
	viper.SetDefault("recommendation.default_time_slot", "18:00-22:00")
	viper.SetDefault("recommendation.top_n", 10)
	viper.SetDefault("recommendation.similar_top_n", 5)

	err := viper.ReadInConfig()
	if err != nil {
		finalConfig.AppPort = getEnvIntOrDefault("APP_PORT", 8080)
		finalConfig.DbHost = getEnvOrDefault("DB_HOST", "postgres")
		finalConfig.DbPort = getEnvIntOrDefault("DB_PORT", 5432)
		finalConfig.DbUser = getEnvOrDefault("DB_USER", "postgres")
		finalConfig.DbPassword = getEnvOrDefault("DB_PASSWORD", "1")
		finalConfig.DbName = getEnvOrDefault("DB_NAME", "toogoodtogo")
		finalConfig.DbSSLMode = getEnvOrDefault("DB_SSLMODE", "disable")
		finalConfig.RecDefaultCuisines = getEnvListOrDefault("REC_DEFAULT_CUISINES", []string{"italiana", "mexicana", "asiatica"})
		finalConfig.RecDefaultMaxPrice = getEnvFloatOrDefault("REC_DEFAULT_MAX_PRICE", 15)
		finalConfig.RecDefaultMaxDistanceKm = getEnvFloatOrDefault("REC_DEFAULT_MAX_DISTANCE_KM", 10)
		finalConfig.RecDefaultTimeSlot = getEnvOrDefault("REC_DEFAULT_TIME_SLOT", "18:00-22:00")
		finalConfig.RecTopN = getEnvIntOrDefault("REC_TOP_N", 10)
		finalConfig.RecSimilarTopN = getEnvIntOrDefault("REC_SIMILAR_TOP_N", 5)
		return &finalConfig, nil
	}

	finalConfig.AppPort = viper.GetInt("server.port")
	finalConfig.DbHost = viper.GetString("database.host")
	finalConfig.DbPort = viper.GetInt("database.port")
	finalConfig.DbUser = viper.GetString("database.username")
	finalConfig.DbPassword = viper.GetString("database.password")
	finalConfig.DbName = viper.GetString("database.dbname")
	finalConfig.DbSSLMode = viper.GetString("database.sslmode")
	finalConfig.RecDefaultCuisines = viper.GetStringSlice("recommendation.default_cuisines")
	finalConfig.RecDefaultMaxPrice = viper.GetFloat64("recommendation.default_max_price")
	finalConfig.RecDefaultMaxDistanceKm = viper.GetFloat64("recommendation.default_max_distance_km")
	finalConfig.RecDefaultTimeSlot = viper.GetString("recommendation.default_time_slot")
	finalConfig.RecTopN = viper.GetInt("recommendation.top_n")
	finalConfig.RecSimilarTopN = viper.GetInt("recommendation.similar_top_n")

	fmt.Printf("Using config file: %s\n\n", viper.ConfigFileUsed())

	return &finalConfig, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
