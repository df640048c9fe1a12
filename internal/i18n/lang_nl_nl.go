package i18n

var langNlNL = Pack{
	PingSuccess: "Pong! Vertraging: %dms",

	CommandErrorGuildOnly:     ":x: Dit commando kan alleen in een server worden gebruikt!",
	CommandErrorDeveloperOnly: ":x: Je moet een ontwikkelaar zijn om dit commando uit te voeren.",
	CommandErrorVoteLocked:    ":lock: Om `/%s` te ontgrendelen, [stem op Remoji via top.gg](%s)!",

	EmoteCopyInvalidEmote:  ":x: Dat lijkt geen geldige emote. Kies hem uit de emoji-kiezer.",
	EmoteCopyInvalidName:   ":x: Geen geldige emote-naam. Gebruik 2-32 letters, cijfers of underscores.",
	EmoteCopyInvalidURL:    ":x: Dat lijkt geen geldige URL.",
	EmoteCopyInvalidDomain: ":x: De afbeelding staat niet op een toegestane website. Upload hem eerst naar imgur of Discord!",
	EmoteCopyDownloadError: ":x: De emote kon niet worden gedownload.",
	EmoteCopyUploadError:   ":no_entry: De emote kon niet worden geüpload.",
	EmoteCopySuccess:       ":tada: `:%s:` gekopieerd naar deze server! %s",

	LanguageChangeSuccess: ":white_check_mark: Taal gewijzigd van `%s` naar `%s`.",
}
