// Package emotes holds the emoji commands: copy, upload, download, list.
package emotes

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/i18n"
	"remoji/internal/imagefetch"
)

// creator abstracts guild emoji creation so the workflows can be tested
// without a gateway session.
type creator interface {
	Create(ctx context.Context, name, image, reason string) (*discordgo.Emoji, error)
}

type sessionCreator struct {
	session *discordgo.Session
	guildID string
}

func (s sessionCreator) Create(ctx context.Context, name, image, reason string) (*discordgo.Emoji, error) {
	return s.session.GuildEmojiCreate(s.guildID, &discordgo.EmojiParams{
		Name:  name,
		Image: image,
	}, discordgo.WithContext(ctx), discordgo.WithAuditLogReason(reason))
}

// dataURI packs image bytes into the data URI form the emoji API expects.
func dataURI(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}

// downloadErrorMessage maps a failed fetch result onto the user-facing reply.
func downloadErrorMessage(ctx *command.Context, res imagefetch.Result) string {
	switch res.Reason {
	case imagefetch.ReasonInvalidURL:
		return ctx.T(i18n.EmoteCopyInvalidURL)
	case imagefetch.ReasonDomainNotAllowed:
		return ctx.T(i18n.EmoteCopyInvalidDomain)
	default:
		return ctx.T(i18n.EmoteCopyDownloadError)
	}
}

func auditReason(user *discordgo.User, verb string) string {
	return fmt.Sprintf("%s by %s (%s)", verb, user.Username, user.ID)
}
