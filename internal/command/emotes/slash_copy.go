package emotes

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/emoji"
	"remoji/internal/i18n"
)

func init() {
	command.Register(&copyCommand{Meta: command.Meta{
		CommandName: "copy",
		Cat:         "Emotes",
		Desc:        "Copy emotes from other servers into this one.",
		Guild:       true,
		UserPerms:   discordgo.PermissionManageEmojis,
		BotPerms:    discordgo.PermissionManageEmojis,
	}})
}

type copyCommand struct {
	command.Meta
}

func (c *copyCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.CommandName,
		Description: c.Desc,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "single",
				Description: "Copy one emote.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "emote",
						Description: "The emote to copy, picked from the emoji picker.",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Rename the copy. Defaults to the original name.",
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "multiple",
				Description: "Copy up to 30 emotes in one go. Requires a top.gg vote.",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "emotes",
						Description: "A message containing all the emotes to copy.",
						Required:    true,
					},
				},
			},
		},
	}
}

func (c *copyCommand) Run(ctx *command.Context) error {
	cfg := ctx.Deps.Config
	if !ctx.Deps.Limiter.Take(1, cfg.CopyCooldown, "copy", ctx.User().ID) {
		return ctx.Error(ctx.T(i18n.CommandErrorRateLimited))
	}

	opts := ctx.Options()
	if single, ok := opts.Subcommand("single"); ok {
		return c.runSingle(ctx, single)
	}
	if multiple, ok := opts.Subcommand("multiple"); ok {
		return c.runMultiple(ctx, multiple)
	}
	return fmt.Errorf("unknown subcommand")
}

func (c *copyCommand) runSingle(ctx *command.Context, opts *command.OptionResolver) error {
	ref, ok := emoji.Parse(strings.TrimSpace(opts.String("emote")))
	if !ok {
		return ctx.Error(ctx.T(i18n.EmoteCopyInvalidEmote))
	}

	name := ref.Name
	if rename := opts.String("name"); rename != "" {
		name = rename
	}
	if !emoji.ValidName(name) {
		return ctx.Error(ctx.T(i18n.EmoteCopyInvalidName))
	}

	return copySingle(ctx, name, ref.URL(), ref.Animated)
}

// copySingle is the shared single-emote path used by /copy single and /upload.
func copySingle(ctx *command.Context, name, url string, animated bool) error {
	guild, err := ctx.Guild()
	if err != nil {
		return fmt.Errorf("load guild: %w", err)
	}

	remainingStandard, remainingAnimated := emoji.RemainingSlots(guild)
	remaining, kind := remainingStandard, "regular"
	if animated {
		remaining, kind = remainingAnimated, "animated"
	}
	if remaining < 1 {
		return ctx.Error(ctx.T(i18n.EmoteCopyNoSlots, kind))
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	p := pipeline{
		fetch:  ctx.Deps.Fetcher.Download,
		create: sessionCreator{session: ctx.Session, guildID: ctx.Event.GuildID},
		reason: auditReason(ctx.User(), "Emote copied"),
	}
	em, fail := p.copyOne(ctx.Ctx, name, url)
	switch fail.Kind {
	case failDownload:
		return ctx.Error(downloadErrorMessage(ctx, fail.Fetch))
	case failUpload:
		return ctx.Error(ctx.T(i18n.EmoteCopyUploadError))
	}

	return ctx.Success(ctx.T(i18n.EmoteCopySuccess, em.Name, em.MessageFormat()))
}

func (c *copyCommand) runMultiple(ctx *command.Context, opts *command.OptionResolver) error {
	refs := dedupByURL(emoji.Extract(opts.String("emotes")))
	if len(refs) == 0 {
		return ctx.Error(ctx.T(i18n.EmoteCopyInvalidEmote))
	}
	if len(refs) > maxBatch {
		return ctx.Error(ctx.T(i18n.EmoteCopyBatchTooLarge, maxBatch))
	}
	if len(refs) == 1 {
		return copySingle(ctx, refs[0].Name, refs[0].URL(), refs[0].Animated)
	}

	// Batch copying is vote locked regardless of the command's own gates.
	if voteLocked(ctx.Ctx, ctx.Deps.Votes, ctx.User().ID) {
		return ctx.Error(ctx.T(i18n.CommandErrorVoteLocked, c.CommandName, ctx.Deps.Config.TopGGVoteURL))
	}

	guild, err := ctx.Guild()
	if err != nil {
		return fmt.Errorf("load guild: %w", err)
	}
	remainingStandard, remainingAnimated := emoji.RemainingSlots(guild)
	if msg := shortfallMessage(ctx, refs, remainingStandard, remainingAnimated); msg != "" {
		return ctx.Error(msg)
	}

	if err := ctx.Defer(); err != nil {
		return err
	}

	runner := newBatchRunner(pipeline{
		fetch:  ctx.Deps.Fetcher.Download,
		create: sessionCreator{session: ctx.Session, guildID: ctx.Event.GuildID},
		reason: auditReason(ctx.User(), "Emote batch copied"),
	}, func(fail copyFailure) string {
		if fail.Kind == failUpload {
			return ctx.T(i18n.EmoteCopyUploadError)
		}
		return downloadErrorMessage(ctx, fail.Fetch)
	})

	result := runner.run(ctx.Ctx, refs)
	return replyBatch(ctx, result)
}

// shortfallMessage rejects a whole batch up front when the guild cannot hold
// it, naming the exact number of missing slots per kind.
func shortfallMessage(ctx *command.Context, refs []emoji.Ref, remainingStandard, remainingAnimated int) string {
	standard, animated := projectShortfall(refs, remainingStandard, remainingAnimated)

	var lines []string
	if standard > 0 {
		lines = append(lines, ctx.T(i18n.EmoteCopyBatchShortfall, standard, "regular"))
	}
	if animated > 0 {
		lines = append(lines, ctx.T(i18n.EmoteCopyBatchShortfall, animated, "animated"))
	}
	return strings.Join(lines, "\n")
}

func replyBatch(ctx *command.Context, result batchResult) error {
	if len(result.Failures) == 0 {
		return ctx.Success(ctx.T(i18n.EmoteCopyBatchSuccess, result.Attempted))
	}

	var lines []string
	for _, f := range result.Failures {
		lines = append(lines, fmt.Sprintf("`:%s:` %s", f.Ref.Name, f.Message))
	}
	detail := strings.Join(lines, "\n")

	if len(result.Created) == 0 {
		return ctx.Error(ctx.T(i18n.EmoteCopyBatchAllFailed, result.Attempted, detail))
	}
	return ctx.Base(ctx.T(i18n.EmoteCopyBatchPartial, len(result.Created), result.Attempted, detail), false)
}
