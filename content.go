package tgrender

// Message is rendered markup ready to be sent with the Bot API.
type Message struct {
	Text string `json:"text"`
	// ParseMode is the parse_mode to send Text with; empty for flavors that
	// are not meant to be sent.
	ParseMode string `json:"parse_mode,omitempty"`
}
