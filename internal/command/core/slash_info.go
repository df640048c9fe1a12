package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
	"remoji/internal/version"
)

func init() {
	command.Register(&infoCommand{Meta: command.Meta{
		CommandName: "info",
		Cat:         "General",
		Desc:        "Show information about the bot.",
	}})
}

type infoCommand struct {
	command.Meta
}

func (c *infoCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
	}
}

func (c *infoCommand) Run(ctx *command.Context) error {
	cfg := ctx.Deps.Config

	embed := &command.EmbedBuilder{MessageEmbed: discordgo.MessageEmbed{
		Color: command.ColorInfo,
		Author: &discordgo.MessageEmbedAuthor{
			Name: ctx.T(i18n.EmbedAuthorName),
			URL:  cfg.TopGGVoteURL,
		},
	}}
	embed.SetDescription(ctx.T(i18n.InfoDescription)).
		AddField(ctx.T(i18n.InfoServerField), ctx.T(i18n.InfoServerInvite, cfg.SupportInvite), true).
		AddField(ctx.T(i18n.InfoVoteField), ctx.T(i18n.InfoVoteValue, cfg.TopGGVoteURL), true).
		SetFooter(fmt.Sprintf("%s | %d guilds", ctx.T(i18n.InfoVersion, version.Version, version.Commit), guildCount(ctx.Session)))

	return ctx.ReplyEmbed(embed.Build(), false)
}

func guildCount(s *discordgo.Session) int {
	s.State.RLock()
	defer s.State.RUnlock()
	return len(s.State.Guilds)
}
