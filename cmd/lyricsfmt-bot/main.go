package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/sukalov/lyricsfmt/internal/bot"
	"github.com/sukalov/lyricsfmt/internal/bot/format"
	"github.com/sukalov/lyricsfmt/internal/db"
	"github.com/sukalov/lyricsfmt/internal/logger"
	"github.com/sukalov/lyricsfmt/internal/redis"
	"github.com/sukalov/lyricsfmt/internal/utils"
)

func main() {
	env, err := utils.LoadEnv([]string{"BOT_TOKEN"})
	if err != nil {
		log.Fatal("required env missing: BOT_TOKEN")
	}

	appLogger := logger.New(os.Stderr, os.Getenv("DEBUG") == "1")

	b, err := bot.New("lyricsfmt", env["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to start bot: %v", err)
	}

	// Mirror logs into a Telegram channel when one is configured.
	if rawChannelID := os.Getenv("LOG_CHANNEL_ID"); rawChannelID != "" {
		channelID, err := strconv.ParseInt(rawChannelID, 10, 64)
		if err != nil {
			log.Fatalf("failed to parse LOG_CHANNEL_ID: %v", err)
		}
		appLogger = appLogger.WithChannel(b, channelID)
	}

	// The cache and history backends are optional; the bot degrades to
	// stateless processing without them.
	cache, err := redis.NewManager()
	if err != nil {
		appLogger.Info(fmt.Sprintf("running without redis cache: %v", err))
		cache = nil
	}

	history, err := db.Open()
	if err != nil {
		appLogger.Info(fmt.Sprintf("running without history store: %v", err))
		history = nil
	} else {
		defer history.Close()
	}

	handlers := format.New(appLogger, cache, history)

	appLogger.Success("lyricsfmt bot starting")
	b.Start(handlers.CommandHandlers(), handlers.MessageHandlers())
}
