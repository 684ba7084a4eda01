package icons

import "strings"

const (
	// Source Icons (Nerd Font)
	IconPerson  = "󰀄"
	IconChannel = "󰻞"
	IconTag     = "󰓹"
	IconRecent  = "󰋚"
	IconGeneric = "󰍡"

	// Utility Icons
	IconSuccess   = "✓"
	IconError     = "⚠"
	IconSelect    = "▸"
	IconBullet    = "•"
	IconSeparator = "  •  "
)

// GetSourceIcon returns the icon shown next to a suggestion source.
func GetSourceIcon(source string) string {
	if strings.HasPrefix(source, "recent") {
		return IconRecent
	}
	switch source {
	case "directory", "people":
		return IconPerson
	case "channels":
		return IconChannel
	case "tags":
		return IconTag
	default:
		return IconGeneric
	}
}
