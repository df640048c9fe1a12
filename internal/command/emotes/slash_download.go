package emotes

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/emoji"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&downloadCommand{Meta: command.Meta{
		CommandName: "download",
		Cat:         "Emotes",
		Desc:        "Download an emote's image.",
	}})
}

type downloadCommand struct {
	command.Meta
}

func (c *downloadCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "emote",
				Description: "The emote to download, picked from the emoji picker.",
				Required:    true,
			},
		},
	}
}

func (c *downloadCommand) Run(ctx *command.Context) error {
	ref, ok := emoji.Parse(strings.TrimSpace(ctx.Options().String("emote")))
	if !ok {
		return ctx.Error(ctx.T(i18n.EmoteCopyInvalidEmote))
	}

	res := ctx.Deps.Fetcher.Download(ref.URL())
	if !res.Success {
		return ctx.Error(ctx.T(i18n.EmoteDownloadFailed))
	}

	ext := "png"
	if ref.Animated {
		ext = "gif"
	}
	content := fmt.Sprintf("**Name:** `%s`\n**Animated:** %v\n**ID:** `%s`\n**URL:** %s",
		ref.Name, ref.Animated, ref.ID, ref.URL())

	return ctx.ReplyFile(content, &discordgo.File{
		Name:        fmt.Sprintf("%s.%s", ref.Name, ext),
		ContentType: res.MIME,
		Reader:      bytes.NewReader(res.Data),
	})
}
