package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PermissionNames maps permission bits to their display names.
var PermissionNames = map[int64]string{
	discordgo.PermissionCreateInstantInvite:    "Create Instant Invite",
	discordgo.PermissionKickMembers:            "Kick Members",
	discordgo.PermissionBanMembers:             "Ban Members",
	discordgo.PermissionAdministrator:          "Administrator",
	discordgo.PermissionManageChannels:         "Manage Channels",
	discordgo.PermissionManageGuild:            "Manage Server",
	discordgo.PermissionAddReactions:           "Add Reactions",
	discordgo.PermissionViewAuditLogs:          "View Audit Logs",
	discordgo.PermissionViewChannel:            "View Channel",
	discordgo.PermissionSendMessages:           "Send Messages",
	discordgo.PermissionManageMessages:         "Manage Messages",
	discordgo.PermissionEmbedLinks:             "Embed Links",
	discordgo.PermissionAttachFiles:            "Attach Files",
	discordgo.PermissionReadMessageHistory:     "Read Message History",
	discordgo.PermissionMentionEveryone:        "Mention Everyone",
	discordgo.PermissionUseExternalEmojis:      "Use External Emojis",
	discordgo.PermissionManageRoles:            "Manage Roles",
	discordgo.PermissionManageWebhooks:         "Manage Webhooks",
	discordgo.PermissionManageEmojis:           "Manage Emojis and Stickers",
	discordgo.PermissionModerateMembers:        "Moderate Members",
	discordgo.PermissionUseApplicationCommands: "Use Application Commands",
}

// Missing returns the bits of required that are absent from given. Zero means
// no gate failure. Pure: identical inputs always yield identical results.
func Missing(required, given int64) int64 {
	return required &^ given
}

// FormatPermissions renders a permission bitfield as a comma-separated list
// of backticked names, falling back to hex for unknown bits.
func FormatPermissions(perms int64) string {
	var names []string
	for bit := int64(1); bit != 0 && bit <= perms; bit <<= 1 {
		if perms&bit == 0 {
			continue
		}
		name, ok := PermissionNames[bit]
		if !ok {
			name = fmt.Sprintf("0x%x", bit)
		}
		names = append(names, "`"+name+"`")
	}
	return strings.Join(names, ", ")
}
