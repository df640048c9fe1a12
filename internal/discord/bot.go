// Package discord owns the gateway session: it dispatches interactions to
// registered commands through the gate pipeline and synchronizes slash
// command definitions with Discord.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"remoji/internal/command"
	"remoji/internal/i18n"
)

// Bot is the Discord-facing half of Remoji.
type Bot struct {
	session  *discordgo.Session
	deps     *command.Deps
	registry *command.Registry
}

// NewBot creates a session and wires the interaction handler. It does not
// connect; call Run.
func NewBot(deps *command.Deps, registry *command.Registry) (*Bot, error) {
	dg, err := discordgo.New("Bot " + deps.Config.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	b := &Bot{session: dg, deps: deps, registry: registry}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildEmojis
	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onInteractionCreate)
	return b, nil
}

// Session exposes the underlying session for the status API.
func (b *Bot) Session() *discordgo.Session {
	return b.session
}

// Run opens the gateway connection, synchronizes commands, and blocks until
// ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	if err := b.syncCommands(ctx); err != nil {
		return fmt.Errorf("sync commands: %w", err)
	}

	<-ctx.Done()
	log.Info("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	log.WithFields(log.Fields{
		"user":   r.User.Username,
		"guilds": len(r.Guilds),
	}).Info("connected to Discord")
}

// onInteractionCreate routes one interaction through the registry and the
// gate pipeline. A panicking or failing command never takes the process down:
// the error is logged and the user gets a generic reply.
func (b *Bot) onInteractionCreate(s *discordgo.Session, e *discordgo.InteractionCreate) {
	if e.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := context.Background()
	name := e.ApplicationCommandData().Name

	locale := i18n.ForCode(i18n.DefaultLocale)
	if u := interactionUser(e); u != nil {
		locale = b.deps.I18N.Resolve(ctx, u.ID)
	}
	cctx := command.NewContext(ctx, s, e, locale, b.deps)

	cmd := b.registry.Get(name)
	if cmd == nil {
		_ = cctx.Error(locale.Get(i18n.CommandUnknown, name))
		return
	}

	clog := log.WithFields(log.Fields{
		"command": name,
		"user":    interactionUserID(e),
		"guild":   e.GuildID,
	})
	clog.Info("running command")

	defer func() {
		if r := recover(); r != nil {
			clog.WithField("panic", r).Error("command panicked")
			_ = cctx.Error(locale.Get(i18n.CommandErrorUnknown))
		}
	}()

	if err := command.Chain(cmd).Run(cctx); err != nil {
		clog.WithError(err).Error("command failed")
		_ = cctx.Error(locale.Get(i18n.CommandErrorUnknown))
	}
}

func interactionUser(e *discordgo.InteractionCreate) *discordgo.User {
	if e.Member != nil {
		return e.Member.User
	}
	return e.User
}

func interactionUserID(e *discordgo.InteractionCreate) string {
	if u := interactionUser(e); u != nil {
		return u.ID
	}
	return ""
}
