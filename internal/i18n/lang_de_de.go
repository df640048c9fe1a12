package i18n

var langDeDE = Pack{
	PingSuccess: "Pong! Latenz: %dms",

	CommandErrorGuildOnly:     ":x: Dieser Befehl kann nur auf einem Server verwendet werden!",
	CommandErrorDeveloperOnly: ":x: Du musst Entwickler sein, um diesen Befehl auszuführen.",
	CommandErrorUserMissing:   "**Du** brauchst folgende Berechtigungen für diesen Befehl: %s",
	CommandErrorBotMissing:    "**Remoji** braucht folgende Berechtigungen für diesen Befehl: %s",
	CommandErrorVoteLocked:    ":lock: Um `/%s` freizuschalten, [stimme für Remoji auf top.gg](%s)!",
	CommandErrorRateLimited:   ":hourglass: Langsam! Versuche es in ein paar Sekunden erneut.",
	CommandErrorUnknown:       ":boom: Beim Ausführen des Befehls ist etwas schiefgelaufen.",

	EmoteCopyInvalidEmote:  ":x: Das sieht nicht nach einem gültigen Emote aus. Wähle es aus dem Emoji-Picker.",
	EmoteCopyInvalidName:   ":x: Kein gültiger Emote-Name. Verwende 2-32 Buchstaben, Zahlen oder Unterstriche.",
	EmoteCopyInvalidURL:    ":x: Das sieht nicht nach einer gültigen URL aus.",
	EmoteCopyInvalidDomain: ":x: Das Bild liegt nicht auf einer erlaubten Website. Lade es zuerst auf imgur oder Discord hoch!",
	EmoteCopyDownloadError: ":x: Das Emote konnte nicht heruntergeladen werden.",
	EmoteCopyUploadError:   ":no_entry: Das Emote konnte nicht hochgeladen werden.",
	EmoteCopySuccess:       ":tada: `:%s:` wurde auf diesen Server kopiert! %s",

	LanguageChangeSuccess: ":white_check_mark: Sprache von `%s` zu `%s` geändert.",
}
