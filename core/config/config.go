package config

import (
	"meetpoll-api/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Port             string
	DBPath           string
	JWTSecret        string
	TokenExpiryHours int
	BcryptCost       int
	LogLevel         string
	AllowOrigins     []string
}

var instance *Config

// Load reads configuration from the environment (and an optional .env file)
// and stores the result as the package-level instance.
func Load() *Config {
	// .env is optional; environment variables always win.
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", constants.DefaultPort)
	viper.SetDefault("DB_PATH", constants.DefaultDBPath)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("TOKEN_EXPIRY_HOURS", constants.DefaultTokenExpiryHours)
	viper.SetDefault("BCRYPT_COST", bcrypt.DefaultCost)
	viper.SetDefault("LOG_LEVEL", constants.DefaultLogLevel)
	viper.SetDefault("ALLOW_ORIGINS", "*")

	instance = &Config{
		Port:             viper.GetString("PORT"),
		DBPath:           viper.GetString("DB_PATH"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		TokenExpiryHours: viper.GetInt("TOKEN_EXPIRY_HOURS"),
		BcryptCost:       viper.GetInt("BCRYPT_COST"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		AllowOrigins:     viper.GetStringSlice("ALLOW_ORIGINS"),
	}

	return instance
}

// Get returns the loaded configuration, loading defaults on first use.
func Get() *Config {
	if instance == nil {
		return Load()
	}
	return instance
}
