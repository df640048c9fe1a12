// Package i18n maps users to language packs. A pack is a map of message keys
// to fmt templates; anything a locale lacks falls back to en-US, and the
// coverage report diffs each locale against the en-US key set.
package i18n

import (
	"context"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"remoji/internal/storage"
)

// Key identifies one translatable message.
type Key string

// Message keys. en-US must define every one of these.
const (
	PingSuccess Key = "ping_success"

	CommandErrorGuildOnly      Key = "command_error_guild_only"
	CommandErrorDeveloperOnly  Key = "command_error_developer_only"
	CommandErrorUserMissing    Key = "command_error_user_missing_permission"
	CommandErrorBotMissing     Key = "command_error_bot_missing_permission"
	CommandErrorVoteLocked     Key = "command_error_vote_locked"
	CommandErrorRateLimited    Key = "command_error_rate_limited"
	CommandErrorUnknown        Key = "command_error_unknown"
	CommandUnknown             Key = "command_unknown"

	EmbedAuthorName       Key = "embed_remoji_author_name"
	EmbedHelpCalloutTitle Key = "embed_help_callout_title"
	EmbedSupportLink      Key = "embed_join_support_server_link"
	EmbedVoteCalloutLink  Key = "embed_vote_callout_link"
	EmbedFooterTagline    Key = "embed_footer_tagline"

	EmoteCopyInvalidEmote    Key = "emote_copy_invalid_emote"
	EmoteCopyInvalidName     Key = "emote_copy_invalid_name"
	EmoteCopyInvalidURL      Key = "emote_copy_invalid_url"
	EmoteCopyInvalidDomain   Key = "emote_copy_invalid_domain"
	EmoteCopyDownloadError   Key = "emote_copy_unknown_download_error"
	EmoteCopyUploadError     Key = "emote_copy_unknown_upload_error"
	EmoteCopySuccess         Key = "emote_copy_success"
	EmoteCopyNoSlots         Key = "emote_copy_no_slots"
	EmoteCopyBatchTooLarge   Key = "emote_copy_batch_too_large"
	EmoteCopyBatchShortfall  Key = "emote_copy_batch_shortfall"
	EmoteCopyBatchAllFailed  Key = "emote_copy_batch_all_failed"
	EmoteCopyBatchPartial    Key = "emote_copy_batch_partial"
	EmoteCopyBatchSuccess    Key = "emote_copy_batch_success"
	EmoteDownloadFailed      Key = "emote_download_failed"
	EmoteListNone            Key = "emote_list_none"
	EmoteListRegularFooter   Key = "emote_list_regular_footer"
	EmoteListAnimatedFooter  Key = "emote_list_animated_footer"

	ImageDownloadErrorReason Key = "image_download_error_with_reason"

	LanguageChangeSuccess Key = "language_change_success"

	InfoDescription  Key = "info_remoji_description"
	InfoServerField  Key = "info_remoji_server_field"
	InfoServerInvite Key = "info_remoji_server_invite"
	InfoVoteField    Key = "info_remoji_vote_field"
	InfoVoteValue    Key = "info_remoji_vote_value"
	InfoVersion      Key = "info_remoji_version"

	APIKeyIssued  Key = "api_key_issued"
	APIKeyRevoked Key = "api_key_revoked"
	APIKeyMissing Key = "api_key_missing"
)

// Pack maps message keys to fmt templates for one locale.
type Pack map[Key]string

// Locale is a resolved language pack with fallback behavior.
type Locale struct {
	Code string
	pack Pack
}

var packs = map[string]Pack{
	"en-US": langEnUS,
	"de-DE": langDeDE,
	"nl-NL": langNlNL,
}

// DefaultLocale is the fallback language.
const DefaultLocale = "en-US"

// Codes returns all known locale codes, sorted.
func Codes() []string {
	codes := make([]string, 0, len(packs))
	for c := range packs {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}

// Known reports whether code names a known locale.
func Known(code string) bool {
	_, ok := packs[code]
	return ok
}

// ForCode returns the locale for code, defaulting to en-US.
func ForCode(code string) *Locale {
	if pack, ok := packs[code]; ok {
		return &Locale{Code: code, pack: pack}
	}
	return &Locale{Code: DefaultLocale, pack: packs[DefaultLocale]}
}

// Get formats the message for key, falling back to en-US when the locale
// lacks it.
func (l *Locale) Get(key Key, args ...interface{}) string {
	tmpl, ok := l.pack[key]
	if !ok {
		tmpl, ok = packs[DefaultLocale][key]
		if !ok {
			log.WithFields(log.Fields{"key": key, "locale": l.Code}).Warn("missing i18n key")
			return string(key)
		}
	}
	if len(args) == 0 {
		return tmpl
	}
	return fmt.Sprintf(tmpl, args...)
}

// Resolver looks up per-user language preferences.
type Resolver struct {
	prefs *storage.Store
}

// NewResolver returns a Resolver backed by the i18n preference store.
func NewResolver(conn *storage.Connection) *Resolver {
	return &Resolver{prefs: conn.NewStore("i18nUser")}
}

// Resolve returns the user's preferred locale, or en-US when unset, unknown,
// or when the store is unreachable.
func (r *Resolver) Resolve(ctx context.Context, userID string) *Locale {
	code, found, err := r.prefs.Get(ctx, userID)
	if err != nil {
		log.WithError(err).Warn("i18n preference lookup failed")
		return ForCode(DefaultLocale)
	}
	if !found {
		return ForCode(DefaultLocale)
	}
	return ForCode(code)
}

// SetPreference stores the user's preferred locale code.
func (r *Resolver) SetPreference(ctx context.Context, userID, code string) error {
	return r.prefs.Set(ctx, userID, code)
}

// Preference returns the user's stored locale code, if any.
func (r *Resolver) Preference(ctx context.Context, userID string) (string, bool, error) {
	return r.prefs.Get(ctx, userID)
}

// Coverage reports how much of the en-US key set a locale defines, plus the
// sorted list of keys it is missing.
func Coverage(code string) (float64, []Key) {
	base := packs[DefaultLocale]
	pack := packs[code]

	var missing []Key
	for key := range base {
		if _, ok := pack[key]; !ok {
			missing = append(missing, key)
		}
	}
	sort.Slice(missing, func(i, j int) bool { return missing[i] < missing[j] })

	if len(base) == 0 {
		return 0, missing
	}
	return float64(len(base)-len(missing)) / float64(len(base)), missing
}
