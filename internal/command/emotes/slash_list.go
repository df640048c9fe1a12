package emotes

import (
	"fmt"
	"sort"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/emoji"
	"remoji/internal/i18n"
	"remoji/pkg/chunk"
)

// embedFieldBudget is Discord's per-field value length limit.
const embedFieldBudget = 1024

func init() {
	command.Register(&listCommand{Meta: command.Meta{
		CommandName: "list",
		Cat:         "Emotes",
		Desc:        "List this server's emotes.",
		Guild:       true,
	}})
}

type listCommand struct {
	command.Meta
}

func (c *listCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
	}
}

func (c *listCommand) Run(ctx *command.Context) error {
	guild, err := ctx.Guild()
	if err != nil {
		return fmt.Errorf("load guild: %w", err)
	}

	var regular, animated []string
	for _, e := range guild.Emojis {
		// Trailing space separates items within a chunked field.
		rendered := fmt.Sprintf("%s `:%s:` ", e.MessageFormat(), e.Name)
		if e.Animated {
			animated = append(animated, rendered)
		} else {
			regular = append(regular, rendered)
		}
	}
	sort.Strings(regular)
	sort.Strings(animated)

	remainingStandard, remainingAnimated := emoji.RemainingSlots(guild)

	embed := &command.EmbedBuilder{MessageEmbed: discordgo.MessageEmbed{
		Color: command.ColorBase,
		Title: guild.Name,
	}}
	addSection(embed, ctx, i18n.EmoteListRegularFooter, regular, len(regular), remainingStandard)
	addSection(embed, ctx, i18n.EmoteListAnimatedFooter, animated, len(animated), remainingAnimated)

	return ctx.ReplyEmbed(embed.Build(), false)
}

// addSection lays one emote kind out as embed fields, chunked to the field
// value limit, with a count-and-slots header.
func addSection(embed *command.EmbedBuilder, ctx *command.Context, footer i18n.Key, items []string, count, remaining int) {
	title := ctx.T(footer, count, remaining)
	if len(items) == 0 {
		embed.AddField(title, ctx.T(i18n.EmoteListNone), false)
		return
	}

	for i, part := range chunk.ByBudget(items, embedFieldBudget) {
		name := title
		if i > 0 {
			name = fmt.Sprintf("%s (%d)", title, i+1)
		}
		embed.AddField(name, part, false)
	}
}
