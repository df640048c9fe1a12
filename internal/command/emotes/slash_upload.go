package emotes

import (
	"strings"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/emoji"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&uploadCommand{Meta: command.Meta{
		CommandName: "upload",
		Cat:         "Emotes",
		Desc:        "Upload a new emote from an image URL.",
		Guild:       true,
		UserPerms:   discordgo.PermissionManageEmojis,
		BotPerms:    discordgo.PermissionManageEmojis,
	}})
}

type uploadCommand struct {
	command.Meta
}

func (c *uploadCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "url",
				Description: "Image URL hosted on imgur or Discord.",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "Name for the new emote.",
				Required:    true,
			},
		},
	}
}

func (c *uploadCommand) Run(ctx *command.Context) error {
	opts := ctx.Options()
	name := strings.TrimSpace(opts.String("name"))
	url := strings.TrimSpace(opts.String("url"))

	if !emoji.ValidName(name) {
		return ctx.Error(ctx.T(i18n.EmoteCopyInvalidName))
	}

	animated := strings.HasSuffix(strings.ToLower(url), ".gif")
	return copySingle(ctx, name, url, animated)
}
