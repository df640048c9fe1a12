package command

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/config"
	"remoji/internal/i18n"
	"remoji/internal/imagefetch"
	"remoji/internal/storage"
	"remoji/internal/votes"
	"remoji/pkg/ratelimit"
)

// Embed palette.
const (
	ColorBase    = 0xfffffe
	ColorSuccess = 0x55ff55
	ColorError   = 0xff5555
	ColorInfo    = 0x5555ff
)

// Deps carries the process-wide collaborators commands use. Constructed once
// at startup and shared by reference; never mutated afterwards.
type Deps struct {
	Config  *config.Config
	Store   *storage.Connection
	APIKeys *storage.APIKeys
	I18N    *i18n.Resolver
	Votes   *votes.Client
	Limiter *ratelimit.Limiter
	Fetcher *imagefetch.Fetcher
}

// Context wraps one incoming interaction. Created per interaction, discarded
// after the reply; never persisted.
type Context struct {
	Ctx     context.Context
	Session *discordgo.Session
	Event   *discordgo.InteractionCreate
	Locale  *i18n.Locale
	Deps    *Deps

	responded bool
}

// NewContext builds a Context for one interaction.
func NewContext(ctx context.Context, s *discordgo.Session, e *discordgo.InteractionCreate, locale *i18n.Locale, deps *Deps) *Context {
	return &Context{Ctx: ctx, Session: s, Event: e, Locale: locale, Deps: deps}
}

// InGuild reports whether the interaction occurred in a guild. When it did,
// GuildID and Member are present; in DMs both are absent.
func (c *Context) InGuild() bool {
	return c.Event.GuildID != ""
}

// User returns the invoking user, from the member in guilds or directly in DMs.
func (c *Context) User() *discordgo.User {
	if c.Event.Member != nil {
		return c.Event.Member.User
	}
	return c.Event.User
}

// Guild returns a fresh guild snapshot, preferring session state over REST.
func (c *Context) Guild() (*discordgo.Guild, error) {
	if !c.InGuild() {
		return nil, fmt.Errorf("no guild in context")
	}
	if g, err := c.Session.State.Guild(c.Event.GuildID); err == nil {
		return g, nil
	}
	return c.Session.Guild(c.Event.GuildID, discordgo.WithContext(c.Ctx))
}

// T translates a message key for the resolved locale.
func (c *Context) T(key i18n.Key, args ...interface{}) string {
	return c.Locale.Get(key, args...)
}

// Options returns a resolver over the interaction's command options.
func (c *Context) Options() *OptionResolver {
	data := c.Event.ApplicationCommandData()
	return &OptionResolver{opts: data.Options}
}

// Defer acknowledges the interaction without a reply; subsequent replies are
// sent as followups.
func (c *Context) Defer() error {
	err := c.Session.InteractionRespond(c.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		return err
	}
	c.responded = true
	return nil
}

// ReplyEmbed sends an embed, responding directly the first time and as a
// followup after Defer or a prior reply.
func (c *Context) ReplyEmbed(embed *discordgo.MessageEmbed, ephemeral bool) error {
	if c.responded {
		_, err := c.Session.FollowupMessageCreate(c.Event.Interaction, true, &discordgo.WebhookParams{
			Embeds: []*discordgo.MessageEmbed{embed},
		})
		return err
	}

	var flags discordgo.MessageFlags
	if ephemeral {
		flags = discordgo.MessageFlagsEphemeral
	}
	err := c.Session.InteractionRespond(c.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Embeds: []*discordgo.MessageEmbed{embed},
			Flags:  flags,
		},
	})
	if err != nil {
		return err
	}
	c.responded = true
	return nil
}

// ReplyFile sends a message with content and an attached file.
func (c *Context) ReplyFile(content string, file *discordgo.File) error {
	if c.responded {
		_, err := c.Session.FollowupMessageCreate(c.Event.Interaction, true, &discordgo.WebhookParams{
			Content: content,
			Files:   []*discordgo.File{file},
		})
		return err
	}
	err := c.Session.InteractionRespond(c.Event.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Files:   []*discordgo.File{file},
		},
	})
	if err != nil {
		return err
	}
	c.responded = true
	return nil
}

// Base sends a plain base embed.
func (c *Context) Base(message string, ephemeral bool) error {
	return c.ReplyEmbed(c.baseEmbed().SetDescription(message).Build(), ephemeral)
}

// Success sends a success embed with the vote callout.
func (c *Context) Success(message string) error {
	e := c.baseEmbed()
	e.Color = ColorSuccess
	e.Author = &discordgo.MessageEmbedAuthor{
		Name: c.T(i18n.EmbedVoteCalloutLink),
		URL:  c.Deps.Config.TopGGVoteURL,
	}
	e.Footer = &discordgo.MessageEmbedFooter{Text: c.T(i18n.EmbedFooterTagline)}
	return c.ReplyEmbed(e.SetDescription(message).Build(), false)
}

// Error sends an error embed with the support-server callout.
func (c *Context) Error(message string) error {
	e := c.baseEmbed()
	e.Color = ColorError
	e.Fields = append(e.Fields, &discordgo.MessageEmbedField{
		Name:  c.T(i18n.EmbedHelpCalloutTitle),
		Value: fmt.Sprintf("[%s](%s)", c.T(i18n.EmbedSupportLink), c.Deps.Config.SupportInvite),
	})
	return c.ReplyEmbed(e.SetDescription(message).Build(), false)
}

// Info sends an informational embed.
func (c *Context) Info(message string) error {
	e := c.baseEmbed()
	e.Color = ColorInfo
	return c.ReplyEmbed(e.SetDescription(message).Build(), false)
}

func (c *Context) baseEmbed() *EmbedBuilder {
	return &EmbedBuilder{MessageEmbed: discordgo.MessageEmbed{
		Color: ColorBase,
		Author: &discordgo.MessageEmbedAuthor{
			Name: c.T(i18n.EmbedAuthorName),
			URL:  c.Deps.Config.TopGGVoteURL,
		},
	}}
}

// EmbedBuilder is a thin fluent wrapper over discordgo.MessageEmbed.
type EmbedBuilder struct {
	discordgo.MessageEmbed
}

// SetDescription sets the embed description.
func (b *EmbedBuilder) SetDescription(d string) *EmbedBuilder {
	b.Description = d
	return b
}

// SetTitle sets the embed title.
func (b *EmbedBuilder) SetTitle(t string) *EmbedBuilder {
	b.Title = t
	return b
}

// AddField appends a field.
func (b *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	b.Fields = append(b.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: inline})
	return b
}

// SetFooter sets the footer text.
func (b *EmbedBuilder) SetFooter(text string) *EmbedBuilder {
	b.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Build returns the built embed.
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return &b.MessageEmbed
}

// OptionResolver walks an interaction's typed option tree.
type OptionResolver struct {
	opts []*discordgo.ApplicationCommandInteractionDataOption
}

// Subcommand returns a resolver over the named subcommand's (or subcommand
// group's) options, if present.
func (o *OptionResolver) Subcommand(name string) (*OptionResolver, bool) {
	for _, opt := range o.opts {
		if opt.Name != name {
			continue
		}
		if opt.Type == discordgo.ApplicationCommandOptionSubCommand ||
			opt.Type == discordgo.ApplicationCommandOptionSubCommandGroup {
			return &OptionResolver{opts: opt.Options}, true
		}
	}
	return nil, false
}

// String returns the named string option, or "" when absent.
func (o *OptionResolver) String(name string) string {
	for _, opt := range o.opts {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
