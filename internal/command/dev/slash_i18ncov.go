package dev

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&i18ncovCommand{Meta: command.Meta{
		CommandName: "i18ncov",
		Cat:         "Developer",
		Desc:        "Report translation coverage per locale.",
		Developer:   true,
	}})
}

type i18ncovCommand struct {
	command.Meta
}

func (c *i18ncovCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
	}
}

func (c *i18ncovCommand) Run(ctx *command.Context) error {
	embed := &command.EmbedBuilder{MessageEmbed: discordgo.MessageEmbed{
		Color: command.ColorInfo,
		Title: "Translation coverage",
	}}

	for _, code := range i18n.Codes() {
		percent, missing := i18n.Coverage(code)
		value := fmt.Sprintf("%.1f%% translated", percent*100)
		if len(missing) > 0 {
			value += fmt.Sprintf("\nMissing %d: %s", len(missing), formatMissing(missing))
		}
		embed.AddField(code, value, false)
	}

	return ctx.ReplyEmbed(embed.Build(), true)
}

// formatMissing lists up to ten missing keys, to stay within field limits.
func formatMissing(missing []i18n.Key) string {
	const maxShown = 10
	shown := missing
	if len(shown) > maxShown {
		shown = shown[:maxShown]
	}
	parts := make([]string, len(shown))
	for i, k := range shown {
		parts[i] = "`" + string(k) + "`"
	}
	out := strings.Join(parts, ", ")
	if len(missing) > maxShown {
		out += fmt.Sprintf(", and %d more", len(missing)-maxShown)
	}
	return out
}
