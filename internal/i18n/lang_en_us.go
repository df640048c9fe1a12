package i18n

// en-US is the reference pack; every key must be present here.
var langEnUS = Pack{
	PingSuccess: "Pong! Latency: %dms",

	CommandErrorGuildOnly:     ":x: This command can only be used in a server!",
	CommandErrorDeveloperOnly: ":x: You must be a developer to run this command.",
	CommandErrorUserMissing:   "**You** need the following permissions to run this command: %s",
	CommandErrorBotMissing:    "**Remoji** needs the following permissions to run this command: %s",
	CommandErrorVoteLocked:    ":lock: To unlock `/%s`, [vote for Remoji on top.gg](%s)!",
	CommandErrorRateLimited:   ":hourglass: Slow down! Try that again in a few seconds.",
	CommandErrorUnknown:       ":boom: Something went wrong running that command. Try again, or ask in the support server.",
	CommandUnknown:            "Unknown command: `%s`",

	EmbedAuthorName:       "Remoji - Discord Emoji Manager",
	EmbedHelpCalloutTitle: "Need help?",
	EmbedSupportLink:      "Join the support server",
	EmbedVoteCalloutLink:  "Vote for Remoji on top.gg!",
	EmbedFooterTagline:    "Remoji - Copy, upload, and manage emoji with ease",

	EmoteCopyInvalidEmote:   ":x: That doesn't look like a valid custom emote. Select it from the emoji picker when prompted.",
	EmoteCopyInvalidName:    ":x: That isn't a valid emote name. Use 2-32 letters, numbers, or underscores.",
	EmoteCopyInvalidURL:     ":x: That doesn't look like a valid URL.",
	EmoteCopyInvalidDomain:  ":x: That image isn't hosted on an allowed website. Try uploading it to imgur or Discord first!",
	EmoteCopyDownloadError:  ":x: Could not download the emote. Make sure you typed it correctly!",
	EmoteCopyUploadError:    ":no_entry: Couldn't upload the emote. Maybe try a different image, or re-upload the image to Discord first.",
	EmoteCopySuccess:        ":tada: Copied `:%s:` to this server! %s",
	EmoteCopyNoSlots:        ":no_entry: You do not have any available %s emote slots left in this server.",
	EmoteCopyBatchTooLarge:  ":x: You can copy at most %d emotes at once.",
	EmoteCopyBatchShortfall: ":no_entry: Not enough slots: you need %d more %s emote slot(s) to copy all of those.",
	EmoteCopyBatchAllFailed: ":no_entry: None of the %d emotes could be copied:\n%s\nCheck that the emotes still exist and that the server has free slots.",
	EmoteCopyBatchPartial:   ":warning: Copied %d of %d emotes. Failures:\n%s",
	EmoteCopyBatchSuccess:   ":white_check_mark: Copied all %d emotes!",
	EmoteDownloadFailed:     ":x: Could not download the emote. Make sure you typed it correctly!",
	EmoteListNone:           "None! *yet...*",
	EmoteListRegularFooter:  "%d regular emotes (%d slots available)",
	EmoteListAnimatedFooter: "%d animated emotes (%d slots available)",

	ImageDownloadErrorReason: ":x: Could not download the image: `%v`",

	LanguageChangeSuccess: ":white_check_mark: Language changed from `%s` to `%s`.",

	InfoDescription:  "Remoji lets you copy, upload, download, and list custom emoji with simple slash commands.",
	InfoServerField:  "Support server",
	InfoServerInvite: "[Join here](%s)",
	InfoVoteField:    "Vote",
	InfoVoteValue:    "[Vote for Remoji on top.gg](%s)",
	InfoVersion:      "Remoji v%s (%s)",

	APIKeyIssued:  "Your API key is: `%s`",
	APIKeyRevoked: "Your API key has been revoked.",
	APIKeyMissing: "You don't have an API key.",
}
