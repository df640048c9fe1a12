// Package core holds the general-purpose commands: ping, info, language.
package core

import (
	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&pingCommand{Meta: command.Meta{
		CommandName: "ping",
		Cat:         "General",
		Desc:        "Check whether the bot is alive and how slow it is.",
	}})
}

type pingCommand struct {
	command.Meta
}

func (c *pingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
	}
}

func (c *pingCommand) Run(ctx *command.Context) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	return ctx.Base(ctx.T(i18n.PingSuccess, latency), false)
}
