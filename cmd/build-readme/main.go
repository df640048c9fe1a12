package main

import (
	log "github.com/sirupsen/logrus"

	_ "remoji/internal/command/core"
	_ "remoji/internal/command/dev"
	_ "remoji/internal/command/emotes"

	"remoji/internal/command"
	"remoji/internal/docs"
)

func main() {
	if err := docs.UpdateReadme(command.DefaultRegistry, "README.md.tmpl", "README.md"); err != nil {
		log.WithError(err).Fatal("README generation failed")
	}
	log.Info("README.md updated with current commands")
}
