package emoji

import "github.com/bwmarrin/discordgo"

// TotalSlots returns the emoji slot count granted by a guild's premium tier.
// Unknown tiers get zero.
func TotalSlots(tier discordgo.PremiumTier) int {
	switch tier {
	case discordgo.PremiumTierNone:
		return 50
	case discordgo.PremiumTier1:
		return 100
	case discordgo.PremiumTier2:
		return 150
	case discordgo.PremiumTier3:
		return 200
	default:
		return 0
	}
}

// RemainingSlots computes how many standard and animated emoji slots the guild
// has left. Values are recomputed fresh from the guild snapshot on every call;
// callers must not cache them across a batch decision.
func RemainingSlots(g *discordgo.Guild) (standard, animated int) {
	total := TotalSlots(g.PremiumTier)
	for _, e := range g.Emojis {
		if e.Animated {
			animated++
		} else {
			standard++
		}
	}
	return total - standard, total - animated
}
