// Package dev holds developer-only commands. These register into the testing
// guild instead of globally.
package dev

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&apiCommand{Meta: command.Meta{
		CommandName: "api",
		Cat:         "Developer",
		Desc:        "Manage your status API key.",
		Developer:   true,
	}})
}

type apiCommand struct {
	command.Meta
}

func (c *apiCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommandGroup,
				Name:        "key",
				Description: "API key operations.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "get",
						Description: "Get your API key, creating one if needed.",
					},
					{
						Type:        discordgo.ApplicationCommandOptionSubCommand,
						Name:        "revoke",
						Description: "Revoke your API key.",
					},
				},
			},
		},
	}
}

func (c *apiCommand) Run(ctx *command.Context) error {
	key, ok := ctx.Options().Subcommand("key")
	if !ok {
		return fmt.Errorf("missing subcommand group")
	}

	userID := ctx.User().ID

	if _, ok := key.Subcommand("get"); ok {
		apiKey, _, err := ctx.Deps.APIKeys.GetOrCreate(ctx.Ctx, userID)
		if err != nil {
			return fmt.Errorf("issue API key: %w", err)
		}
		// Always ephemeral, the key is a credential.
		return ctx.Base(ctx.T(i18n.APIKeyIssued, apiKey), true)
	}

	if _, ok := key.Subcommand("revoke"); ok {
		revoked, err := ctx.Deps.APIKeys.Revoke(ctx.Ctx, userID)
		if err != nil {
			return fmt.Errorf("revoke API key: %w", err)
		}
		if !revoked {
			return ctx.Base(ctx.T(i18n.APIKeyMissing), true)
		}
		return ctx.Base(ctx.T(i18n.APIKeyRevoked), true)
	}

	return fmt.Errorf("unknown subcommand")
}
