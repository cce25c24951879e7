package discord

const (
	webhookURL = "https://discord.com/api/webhooks/%s/%s"

	// MaxMessageLength is the Discord plain message character limit.
	MaxMessageLength = 2000
	// MaxEmbedLength is the combined embed character limit.
	MaxEmbedLength = 6000
)

// Embed colors per message type.
const (
	ColorInfo    = 0x3498DB
	ColorSuccess = 0x2ECC71
	ColorWarning = 0xF39C12
	ColorError   = 0xE74C3C
)
