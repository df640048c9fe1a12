package core

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&languageCommand{Meta: command.Meta{
		CommandName: "language",
		Cat:         "General",
		Desc:        "Show or change your preferred language.",
	}})
}

type languageCommand struct {
	command.Meta
}

func (c *languageCommand) SlashDefinition() *discordgo.ApplicationCommand {
	codes := i18n.Codes()
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(codes))
	for _, code := range codes {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  code,
			Value: code,
		})
	}
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "language",
				Description: "The language to switch to. Leave empty to show the current one.",
				Choices:     choices,
			},
		},
	}
}

func (c *languageCommand) Run(ctx *command.Context) error {
	code := ctx.Options().String("language")
	if code == "" {
		return ctx.Info(fmt.Sprintf("`%s`", ctx.Locale.Code))
	}
	if !i18n.Known(code) {
		return ctx.Error(fmt.Sprintf("Unknown language `%s`. Available: `%s`.", code, strings.Join(i18n.Codes(), "`, `")))
	}

	previous := ctx.Locale.Code
	if err := ctx.Deps.I18N.SetPreference(ctx.Ctx, ctx.User().ID, code); err != nil {
		return fmt.Errorf("store language preference: %w", err)
	}

	// Reply in the language just chosen, not the one the interaction arrived with.
	ctx.Locale = i18n.ForCode(code)
	return ctx.Success(ctx.T(i18n.LanguageChangeSuccess, previous, code))
}
