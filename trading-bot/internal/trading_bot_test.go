package internal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bluejacket-trading/bluejacket/pkg/settings"
	"github.com/bluejacket-trading/bluejacket/pkg/tradier"
)

type fakeSource struct {
	cfg *tradier.Config
	err error
}

func (f *fakeSource) LoadConfig(ctx context.Context, profile string) (*tradier.Config, error) {
	return f.cfg, f.err
}

type fakeNotifier struct {
	ready     []string
	configErr []error
	err       error
}

func (f *fakeNotifier) NotifyReady(ctx context.Context, endpoint string) error {
	f.ready = append(f.ready, endpoint)
	return f.err
}

func (f *fakeNotifier) NotifyConfigError(ctx context.Context, err error) error {
	f.configErr = append(f.configErr, err)
	return f.err
}

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	logger := log.StandardLogger()
	out, level := logger.Out, logger.GetLevel()
	logger.SetOutput(&buf)
	logger.SetLevel(log.DebugLevel)
	t.Cleanup(func() {
		logger.SetOutput(out)
		logger.SetLevel(level)
	})
	return &buf
}

func TestConfigureSuccess(t *testing.T) {
	logs := captureLogs(t)
	notifier := &fakeNotifier{}
	bot := NewTradingBot(
		&settings.Settings{CredentialSource: settings.SourceEnv, Profile: "default"},
		&fakeSource{cfg: tradier.New(tradier.SandboxEndpoint, "secret_token_value")},
		notifier,
	)

	cfg, err := bot.Configure(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tradier.SandboxEndpoint, cfg.Endpoint)
	assert.Same(t, cfg, bot.Config())
	assert.Equal(t, []string{tradier.SandboxEndpoint}, notifier.ready)
	assert.Empty(t, notifier.configErr)
	assert.NotContains(t, logs.String(), "secret_token_value")
	assert.Contains(t, logs.String(), "[REDACTED]")
}

func TestConfigureProductionOverride(t *testing.T) {
	captureLogs(t)
	bot := NewTradingBot(
		&settings.Settings{Profile: "default", Environment: "production"},
		&fakeSource{cfg: tradier.New(tradier.SandboxEndpoint, "token")},
		&fakeNotifier{},
	)

	cfg, err := bot.Configure(context.Background())
	require.NoError(t, err)

	assert.Equal(t, tradier.ProductionEndpoint, cfg.Endpoint)
}

func TestConfigureMissingCredential(t *testing.T) {
	captureLogs(t)
	notifier := &fakeNotifier{}
	bot := NewTradingBot(
		&settings.Settings{Profile: "default"},
		&fakeSource{err: &tradier.MissingCredentialError{Variable: tradier.AccessTokenVariable}},
		notifier,
	)

	cfg, err := bot.Configure(context.Background())

	assert.Nil(t, cfg)
	assert.Nil(t, bot.Config())
	assert.ErrorIs(t, err, tradier.ErrMissingCredential)
	require.Len(t, notifier.configErr, 1)
	assert.Empty(t, notifier.ready)
}

func TestConfigureNotifierFailureIsNotFatal(t *testing.T) {
	logs := captureLogs(t)
	bot := NewTradingBot(
		&settings.Settings{Profile: "default"},
		&fakeSource{cfg: tradier.New(tradier.SandboxEndpoint, "token")},
		&fakeNotifier{err: errors.New("webhook down")},
	)

	_, err := bot.Configure(context.Background())
	require.NoError(t, err)

	assert.Contains(t, logs.String(), "webhook down")
}

func TestClose(t *testing.T) {
	captureLogs(t)
	bot := NewTradingBot(
		&settings.Settings{Profile: "default"},
		&fakeSource{cfg: tradier.New(tradier.SandboxEndpoint, "token")},
		&fakeNotifier{},
	)

	cfg, err := bot.Configure(context.Background())
	require.NoError(t, err)

	bot.Close()

	assert.Nil(t, bot.Config())
	assert.Equal(t, "", cfg.AccessToken.Reveal())
	bot.Close()
}

func TestConfigureTwiceDestroysPrevious(t *testing.T) {
	captureLogs(t)
	source := &fakeSource{cfg: tradier.New(tradier.SandboxEndpoint, "first_token")}
	bot := NewTradingBot(&settings.Settings{Profile: "default"}, source, &fakeNotifier{})

	first, err := bot.Configure(context.Background())
	require.NoError(t, err)

	source.cfg = tradier.New(tradier.SandboxEndpoint, "second_token")
	second, err := bot.Configure(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "", first.AccessToken.Reveal())
	assert.Equal(t, "second_token", second.AccessToken.Reveal())
	assert.Same(t, second, bot.Config())
}
