package main

import (
	"context"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	log "github.com/sirupsen/logrus"

	"github.com/bluejacket-trading/bluejacket/pkg/logging"
	"github.com/bluejacket-trading/bluejacket/pkg/settings"
	"github.com/bluejacket-trading/bluejacket/trading-bot/internal"
	"github.com/bluejacket-trading/bluejacket/trading-bot/pkg/notification"
)

// Lambda handler for AWS Lambda triggered by EventBridge Scheduler
func handler(ctx context.Context, request events.CloudWatchEvent) error {
	s, err := settings.Load()
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to load settings")
		return err
	}
	logging.Setup(s.LogLevel, true)

	log.WithFields(log.Fields{"event_id": request.ID}).Info("Bluejacket Trading Bot triggered by EventBridge Scheduler")

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	source, err := s.NewSource(ctx)
	if err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to create credential source")
		return err
	}

	return run(ctx, s, source, notification.NewDiscordNotificationService(s.DiscordWebhookURL))
}

// run configures the bot from source and scrubs the token before returning
func run(ctx context.Context, s *settings.Settings, source settings.Source, notifier internal.Notifier) error {
	bot := internal.NewTradingBot(s, source, notifier)
	defer bot.Close()

	if _, err := bot.Configure(ctx); err != nil {
		log.WithFields(log.Fields{"err": err}).Error("Failed to configure trading bot")
		return err
	}

	log.Info("Bluejacket Trading Bot configured")
	return nil
}

func main() {
	lambda.Start(handler)
}
