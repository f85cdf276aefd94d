package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/numberfield/pkg/config"
	"github.com/dmitrymomot/numberfield/pkg/fieldapi"
	"github.com/dmitrymomot/numberfield/pkg/httpserver"
	"github.com/dmitrymomot/numberfield/pkg/logger"
	"github.com/dmitrymomot/numberfield/pkg/numberfield"
	"github.com/dmitrymomot/numberfield/pkg/preset"
	"github.com/dmitrymomot/numberfield/pkg/requestid"
)

type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Presets string `env:"NUMBERFIELD_PRESETS"`
}

func main() {
	var (
		app      appConfig
		server   httpserver.Config
		settings numberfield.Settings
	)
	config.MustLoad(&app)
	config.MustLoad(&server)
	config.MustLoad(&settings)

	log := logger.New(
		logger.WithEnvironment(app.Env, "numberfield-demo"),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	)
	logger.SetAsDefault(log)

	presets := preset.Default()
	if app.Presets != "" {
		custom, err := preset.LoadFile(app.Presets)
		if err != nil {
			log.Error("failed to load presets", slog.String("path", app.Presets), logger.Error(err))
			os.Exit(1)
		}
		presets = presets.Merge(custom)
	}

	defaults := settings.Config()
	log.Info("field defaults",
		logger.Locale(settings.Tag().String()),
		slog.String("decimal_separator", string(defaults.DecimalSeparator)),
		slog.String("grouping_separator", string(defaults.GroupingSeparator)),
		slog.Int("decimal_precision", defaults.DecimalPrecision),
		slog.Any("presets", presets.Names()),
	)

	api := fieldapi.New(
		fieldapi.WithPresets(presets),
		fieldapi.WithDefaults(defaults),
		fieldapi.WithErrorText(settings.ErrorText),
		fieldapi.WithLogger(log),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := httpserver.NewFromConfig(server, httpserver.WithLogger(log))
	if err := srv.Run(ctx, api.Router()); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
