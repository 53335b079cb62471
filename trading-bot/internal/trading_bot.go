package internal

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/bluejacket-trading/bluejacket/pkg/settings"
	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

// Notifier reports the outcome of bot startup
type Notifier interface {
	NotifyReady(ctx context.Context, endpoint string) error
	NotifyConfigError(ctx context.Context, err error) error
}

// TradingBot owns the Tradier configuration the trading loop runs with
type TradingBot struct {
	settings *settings.Settings
	source   settings.Source
	notifier Notifier
	config   *tradier.Config
}

// NewTradingBot creates a new trading bot instance
func NewTradingBot(s *settings.Settings, source settings.Source, notifier Notifier) *TradingBot {
	return &TradingBot{
		settings: s,
		source:   source,
		notifier: notifier,
	}
}

// Configure resolves the Tradier configuration. A previously resolved
// configuration is destroyed first. On failure nothing is kept and the
// error is reported to the notifier.
func (tb *TradingBot) Configure(ctx context.Context) (*tradier.Config, error) {
	tb.Close()

	log.WithFields(log.Fields{
		"source":  tb.settings.CredentialSource,
		"profile": tb.settings.Profile,
	}).Info("Resolving Tradier API configuration")

	cfg, err := tb.settings.Resolve(ctx, tb.source)
	if err != nil {
		if nerr := tb.notifier.NotifyConfigError(ctx, err); nerr != nil {
			log.WithFields(log.Fields{"err": nerr}).Warn("Failed to send configuration error notification")
		}
		return nil, fmt.Errorf("failed to resolve configuration: %w", err)
	}
	tb.config = cfg

	log.WithFields(cfg.Fields()).Info("Tradier API configuration resolved")
	if err := tb.notifier.NotifyReady(ctx, cfg.Endpoint); err != nil {
		log.WithFields(log.Fields{"err": err}).Warn("Failed to send startup notification")
	}

	return cfg, nil
}

// Config returns the resolved configuration, or nil before Configure succeeds
func (tb *TradingBot) Config() *tradier.Config {
	return tb.config
}

// Close scrubs the access token
func (tb *TradingBot) Close() {
	if tb.config != nil {
		tb.config.Destroy()
		tb.config = nil
	}
}
