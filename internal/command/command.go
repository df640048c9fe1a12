// Package command defines the slash command contract, the per-interaction
// Context, the name-keyed registry, and the gating middleware pipeline that
// the dispatcher applies uniformly to every command.
package command

import (
	"github.com/bwmarrin/discordgo"
)

// Command is the contract every slash command implements. Metadata is fixed
// at construction; gating (permissions, votes, rate limits) is applied by
// middleware around Run, never inside the command type itself.
type Command interface {
	Name() string
	Description() string

	GuildOnly() bool
	DeveloperOnly() bool
	VoterOnly() bool

	// UserPermissions and BotPermissions are permission bitfields the invoking
	// member and the bot must hold in guild context. Zero means no requirement.
	UserPermissions() int64
	BotPermissions() int64

	Run(ctx *Context) error
}

// SlashProvider is implemented by commands that register a slash definition
// with Discord.
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}
