// cmd/bot/main.go
package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/producttracker/backend/internal/bot"
	"github.com/producttracker/backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	if err := cfg.ValidateBot(); err != nil {
		logrus.WithError(err).Fatal("Invalid bot configuration")
	}

	relay := bot.NewRelayClient(cfg.Bot.WebhookURL, time.Duration(cfg.Bot.WebhookTimeout)*time.Second)
	dispatcher := bot.NewDispatcher(relay, cfg.Bot.CommandPrefix, cfg.Dashboard.BaseURL)

	b, err := bot.New(cfg.Bot.DiscordToken, dispatcher)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create bot")
	}

	if err := b.Open(); err != nil {
		logrus.WithError(err).Fatal("Failed to connect to Discord")
	}

	logrus.Info("Bot is running, press Ctrl+C to exit")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down...")

	if err := b.Close(); err != nil {
		logrus.WithError(err).Error("Error closing discord session")
	}
}
