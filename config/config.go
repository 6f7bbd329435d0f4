package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Config struct {
	PlotDir  string
	TgToken  string
	TgChatID int64
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration, loading .env on first use.
// A missing .env file is fine; everything has a default or is optional.
func GetConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			log.WithError(err).Warn("error loading .env file")
		}

		plotDir := os.Getenv("PLOT_DIR")
		if plotDir == "" {
			plotDir = "plots"
		}

		var chatID int64
		if raw := os.Getenv("TG_CHAT_ID"); raw != "" {
			var err error
			chatID, err = strconv.ParseInt(raw, 10, 64)
			if err != nil {
				log.WithError(err).Warn("invalid TG_CHAT_ID, telegram publishing disabled")
			}
		}

		config = &Config{
			PlotDir:  plotDir,
			TgToken:  os.Getenv("TG_TOKEN"),
			TgChatID: chatID,
		}
	})
	return config
}
