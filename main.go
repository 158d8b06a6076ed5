package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"thumbd/internal/adapters/codec"
	"thumbd/internal/adapters/handler"
	"thumbd/internal/adapters/metrics"
	"thumbd/internal/adapters/sender"
	"thumbd/internal/core/domain/commands"
	"thumbd/internal/core/port"
	"thumbd/internal/core/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting thumbd...")

	log.Info().Msg("reading config file...")
	if err := loadConfig(); err != nil {
		log.Fatal().Err(err).Msg("could not read config file")
	}

	setupLogging()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fullDir := absDir("storage.full_dir")
	thumbDir := absDir("storage.thumb_dir")
	maxDimension := viper.GetInt("limits.max_dimension")
	handlerTimeout := duration("handler.timeout")

	imageCodec, err := newCodec(viper.GetString("codec.backend"))
	if err != nil {
		log.Panic().Err(err).Msg("failed initializing image codec")
	}

	afs := afero.NewOsFs()
	recorder := metrics.NewPrometheus()
	thumbnails := service.NewThumbnailService(afs, imageCodec, fullDir, thumbDir, service.WithRecorder(recorder))

	if token := viper.GetString("telegram.bot_token"); token != "" {
		if err := startBot(ctx, token, thumbnails, afs, maxDimension, handlerTimeout); err != nil {
			log.Panic().Err(err).Msg("failed initializing telegram bot")
		}
	}

	gin.SetMode(gin.ReleaseMode)
	router := handler.NewRouter(handler.NewImages(thumbnails, afs, maxDimension), afs, fullDir, recorder.Handler())

	srv := &http.Server{
		Addr:              viper.GetString("server.address"),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().
			Str("address", srv.Addr).
			Str("fullDir", fullDir).
			Str("thumbDir", thumbDir).
			Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()

	log.Info().Msg("shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), duration("server.shutdown_timeout"))
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to shut down server gracefully")
	}

	log.Info().Msg("server stopped")
}

func newCodec(backend string) (port.ImageCodec, error) {
	switch backend {
	case "imaging", "":
		return codec.NewImaging(), nil
	case "magick":
		return codec.NewMagick()
	default:
		return nil, fmt.Errorf("unknown codec backend %q", backend)
	}
}

func startBot(ctx context.Context, token string, thumbnails port.ThumbnailResolver, afs afero.Fs, maxDimension int,
	timeout time.Duration) error {
	b, err := bot.New(token, bot.WithDefaultHandler(noOpHandler))
	if err != nil {
		return err
	}

	s := sender.NewTelegram(b)

	commandRegistry := &commands.Registry{}
	commandRegistry.Register(commands.NewThumbHandler(thumbnails, afs, s, s, maxDimension, "/thumb"))
	commandRegistry.Register(commands.NewHelpHandler(commandRegistry, s, "/help"))

	commandHandler := handler.NewCommand(commandRegistry, timeout)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/", bot.MatchTypePrefix, commandHandler.Handle)

	log.Info().Msg("bot listening")
	go b.Start(ctx)

	return nil
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
