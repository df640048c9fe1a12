package command

import (
	log "github.com/sirupsen/logrus"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/i18n"
)

// Middleware wraps a command with a gate. The dispatcher applies the full
// chain uniformly; command types never implement gating themselves.
type Middleware func(Command) Command

// ApplyMiddlewares wraps cmd with mws in order: the first middleware in the
// list runs closest to the command, the last runs first.
func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}

// Chain is the standard gate pipeline in execution order:
// developer check, guild check, user permissions, bot permissions, vote gate.
func Chain(cmd Command) Command {
	return ApplyMiddlewares(cmd,
		WithVoterCheck(),
		WithBotPermissionCheck(),
		WithUserPermissionCheck(),
		WithGuildOnly(),
		WithDeveloperCheck(),
	)
}

type wrappedCommand struct {
	Command
	wrap func(ctx *Context) error
}

func (w *wrappedCommand) Run(ctx *Context) error {
	return w.wrap(ctx)
}

// SlashDefinition forwards to the wrapped command so the dispatcher can still
// reach the definition through the middleware chain.
func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// WithDeveloperCheck rejects developerOnly commands from non-developers.
func WithDeveloperCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if cmd.DeveloperOnly() && !ctx.Deps.Config.IsDeveloper(ctx.User().ID) {
				return ctx.Error(ctx.T(i18n.CommandErrorDeveloperOnly))
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithGuildOnly rejects guildOnly commands invoked outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if cmd.GuildOnly() && !ctx.InGuild() {
				log.WithField("command", cmd.Name()).Error("guildOnly command run outside of a guild")
				return ctx.Error(ctx.T(i18n.CommandErrorGuildOnly))
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithUserPermissionCheck rejects invocations where the member lacks any of
// the command's required user permissions. Skipped outside guilds.
func WithUserPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if !ctx.InGuild() || cmd.UserPermissions() == 0 {
				return cmd.Run(ctx)
			}
			missing := Missing(cmd.UserPermissions(), ctx.Event.Member.Permissions)
			if missing != 0 {
				return ctx.Error(ctx.T(i18n.CommandErrorUserMissing, FormatPermissions(missing)))
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithBotPermissionCheck rejects invocations where the bot itself lacks any
// of the command's required permissions in the channel. Skipped outside guilds.
func WithBotPermissionCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if !ctx.InGuild() || cmd.BotPermissions() == 0 {
				return cmd.Run(ctx)
			}

			botID := ctx.Session.State.User.ID
			given, err := ctx.Session.State.UserChannelPermissions(botID, ctx.Event.ChannelID)
			if err != nil {
				given, err = ctx.Session.UserChannelPermissions(botID, ctx.Event.ChannelID)
				if err != nil {
					log.WithError(err).Warn("could not resolve bot permissions")
					return ctx.Error(ctx.T(i18n.CommandErrorUnknown))
				}
			}

			missing := Missing(cmd.BotPermissions(), given)
			if missing != 0 {
				return ctx.Error(ctx.T(i18n.CommandErrorBotMissing, FormatPermissions(missing)))
			}
			return cmd.Run(ctx)
		}}
	}
}

// WithVoterCheck rejects voterOnly commands for users without an active vote,
// pointing them at the vote page.
func WithVoterCheck() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{Command: cmd, wrap: func(ctx *Context) error {
			if !cmd.VoterOnly() {
				return cmd.Run(ctx)
			}
			voted, err := ctx.Deps.Votes.HasVoted(ctx.Ctx, ctx.User().ID)
			if err != nil {
				log.WithError(err).Warn("vote check failed")
			}
			if !voted {
				return ctx.Error(ctx.T(i18n.CommandErrorVoteLocked, cmd.Name(), ctx.Deps.Config.TopGGVoteURL))
			}
			return cmd.Run(ctx)
		}}
	}
}
