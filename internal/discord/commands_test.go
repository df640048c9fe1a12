package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"remoji/internal/command"
	"remoji/internal/config"
)

type fakeCommand struct {
	command.Meta
}

func (f *fakeCommand) Run(*command.Context) error { return nil }

func (f *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{Name: f.CommandName, Description: f.Desc}
}

func TestCommandScopePlacement(t *testing.T) {
	prod := &config.Config{Env: "production", TestingGuildID: "g1"}
	dev := &config.Config{Env: "development", TestingGuildID: "g1"}
	noGuild := &config.Config{Env: "production"}

	public := &fakeCommand{Meta: command.Meta{CommandName: "copy"}}
	devOnly := &fakeCommand{Meta: command.Meta{CommandName: "i18ncov", Developer: true}}

	if scope, ok := commandScope(prod, public); !ok || scope != "" {
		t.Fatalf("production public command scope = (%q, %v), want global", scope, ok)
	}
	if scope, ok := commandScope(prod, devOnly); !ok || scope != "g1" {
		t.Fatalf("production developer command scope = (%q, %v), want g1", scope, ok)
	}
	if scope, ok := commandScope(dev, public); !ok || scope != "g1" {
		t.Fatalf("development public command scope = (%q, %v), want g1", scope, ok)
	}
	if _, ok := commandScope(noGuild, devOnly); ok {
		t.Fatalf("developer command registered with no testing guild configured")
	}
}

func TestObsoleteReconcilesBothScopes(t *testing.T) {
	prod := &config.Config{Env: "production", TestingGuildID: "g1"}
	dev := &config.Config{Env: "development", TestingGuildID: "g1"}

	local := map[string]command.Command{
		"copy":    &fakeCommand{Meta: command.Meta{CommandName: "copy"}},
		"i18ncov": &fakeCommand{Meta: command.Meta{CommandName: "i18ncov", Developer: true}},
	}

	// Removed or renamed commands are deleted everywhere.
	if !obsolete(prod, local, "snipe", "") || !obsolete(prod, local, "snipe", "g1") {
		t.Fatalf("unknown remote command not deleted")
	}

	// A command sitting in the wrong scope is deleted there and kept in its own.
	if obsolete(prod, local, "copy", "") {
		t.Fatalf("global public command deleted in production")
	}
	if !obsolete(prod, local, "copy", "g1") {
		t.Fatalf("guild leftover of a global command not deleted")
	}
	if !obsolete(prod, local, "i18ncov", "") {
		t.Fatalf("global leftover of a developer command not deleted")
	}
	if obsolete(prod, local, "i18ncov", "g1") {
		t.Fatalf("developer command deleted from the testing guild")
	}

	// Development moves everything to the testing guild.
	if !obsolete(dev, local, "copy", "") {
		t.Fatalf("global command kept while development registers per guild")
	}
	if obsolete(dev, local, "copy", "g1") {
		t.Fatalf("development guild command deleted")
	}
}
