package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	_ "remoji/internal/command/core"
	_ "remoji/internal/command/dev"
	_ "remoji/internal/command/emotes"

	"remoji/internal/api"
	"remoji/internal/command"
	"remoji/internal/config"
	"remoji/internal/discord"
	"remoji/internal/i18n"
	"remoji/internal/imagefetch"
	"remoji/internal/storage"
	"remoji/internal/version"
	"remoji/internal/votes"
	"remoji/pkg/ratelimit"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.WithError(err).Fatal("configuration error")
	}

	if cfg.Development() {
		log.SetLevel(log.DebugLevel)
	}
	log.WithFields(log.Fields{"version": version.Version, "env": cfg.Env}).Info("starting remoji")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		log.WithError(err).Fatal("redis connection failed")
	}
	defer store.Close()

	deps := &command.Deps{
		Config:  cfg,
		Store:   store,
		APIKeys: store.APIKeys(),
		I18N:    i18n.NewResolver(store),
		Votes:   votes.New(store, cfg.TopGGToken, cfg.ApplicationID, cfg.Development(), cfg.VoteCacheTTL),
		Limiter: ratelimit.New(),
		Fetcher: imagefetch.New(),
	}

	bot, err := discord.NewBot(deps, command.DefaultRegistry)
	if err != nil {
		log.WithError(err).Fatal("session construction failed")
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- bot.Run(ctx)
	}()
	go func() {
		errCh <- api.NewServer(cfg, deps.APIKeys, bot.Session()).Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.WithField("signal", s.String()).Info("shutting down")
		cancel()
	case err := <-errCh:
		if err != nil {
			log.WithError(err).Error("fatal runtime error")
		}
		cancel()
	}

	log.Info("remoji exited cleanly")
}
