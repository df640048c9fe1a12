package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"remoji/internal/command"
	"remoji/internal/config"
)

// syncCommands reconciles Discord's registered application commands with the
// local registry in both scopes: the global set and the testing guild's set.
// Remote commands that no longer belong in a scope (removed, renamed, or
// moved between scopes by an environment change) are deleted, then local
// definitions are registered where commandScope places them.
func (b *Bot) syncCommands(ctx context.Context) error {
	appID := b.deps.Config.ApplicationID

	local := make(map[string]command.Command)
	for _, cmd := range b.registry.All() {
		local[cmd.Name()] = cmd
	}

	scopes := []string{""}
	if g := b.deps.Config.TestingGuildID; g != "" {
		scopes = append(scopes, g)
	}

	for _, scope := range scopes {
		remote, err := b.session.ApplicationCommands(appID, scope, discordgo.WithContext(ctx))
		if err != nil {
			return err
		}
		for _, rc := range remote {
			if !obsolete(b.deps.Config, local, rc.Name, scope) {
				continue
			}
			log.WithFields(log.Fields{"command": rc.Name, "guild": scope}).Info("deleting obsolete remote command")
			if err := b.session.ApplicationCommandDelete(appID, scope, rc.ID, discordgo.WithContext(ctx)); err != nil {
				log.WithFields(log.Fields{"command": rc.Name, "guild": scope}).WithError(err).Error("failed to delete remote command")
			}
		}
	}

	for _, cmd := range b.registry.All() {
		guildID, ok := commandScope(b.deps.Config, cmd)
		if !ok {
			if cmd.DeveloperOnly() || b.deps.Config.Development() {
				log.WithField("command", cmd.Name()).Warn("no testing guild configured, skipping guild-scoped registration")
			}
			continue
		}

		if _, err := b.session.ApplicationCommandCreate(appID, guildID, slashDefinition(cmd), discordgo.WithContext(ctx)); err != nil {
			log.WithFields(log.Fields{"command": cmd.Name(), "guild": guildID}).WithError(err).Error("failed to register command")
			continue
		}
		log.WithFields(log.Fields{"command": cmd.Name(), "guild": guildID}).Info("registered command")

		// Stay well under Discord's registration rate limit.
		time.Sleep(25 * time.Millisecond)
	}

	return nil
}

// commandScope decides where cmd belongs: "" for global, the testing guild
// ID for guild-scoped. ok is false when the command cannot be registered at
// all (no slash definition, or a guild-scoped command with no testing guild
// configured).
func commandScope(cfg *config.Config, cmd command.Command) (string, bool) {
	if slashDefinition(cmd) == nil {
		return "", false
	}
	if cfg.Development() || cmd.DeveloperOnly() {
		if cfg.TestingGuildID == "" {
			return "", false
		}
		return cfg.TestingGuildID, true
	}
	return "", true
}

// obsolete reports whether a remote command registered in scope should be
// deleted: it has no local counterpart, or its counterpart belongs elsewhere.
func obsolete(cfg *config.Config, local map[string]command.Command, name, scope string) bool {
	cmd, ok := local[name]
	if !ok {
		return true
	}
	want, ok := commandScope(cfg, cmd)
	return !ok || want != scope
}

func slashDefinition(cmd command.Command) *discordgo.ApplicationCommand {
	if sp, ok := cmd.(command.SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}
