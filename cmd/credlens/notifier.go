// cmd/credlens/notifier.go
package main

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Notifier posts high-confidence FAKE verdicts to a Discord channel.
// Entirely optional: without a token and channel it does nothing.
type Notifier struct {
	session       *discordgo.Session
	channelID     string
	minConfidence int
}

// NewNotifier opens the Discord session when configured. Failures are
// logged and leave the notifier disabled rather than failing startup.
func NewNotifier(token, channelID string, minConfidence int) *Notifier {
	n := &Notifier{channelID: channelID, minConfidence: minConfidence}

	if token == "" || channelID == "" {
		return n
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		Logger().Warning("Discord notifier disabled: %v", err)
		return n
	}
	if err := session.Open(); err != nil {
		Logger().Warning("Discord notifier disabled: %v", err)
		return n
	}

	n.session = session
	Logger().Info("Discord notifier enabled for channel %s", channelID)
	return n
}

// MaybeAlert posts an embed when the verdict warrants an alert.
func (n *Notifier) MaybeAlert(result *AnalysisResult) {
	if n.session == nil {
		return
	}
	if result.Verdict != VerdictFake || result.ConfidenceScore < n.minConfidence {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "Likely misinformation detected",
		Description: result.Explanation,
		Color:       0xCC0000,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Verdict", Value: string(result.Verdict), Inline: true},
			{Name: "Confidence", Value: fmt.Sprintf("%d%%", result.ConfidenceScore), Inline: true},
			{Name: "Analysis ID", Value: result.ID, Inline: true},
		},
	}

	if _, err := n.session.ChannelMessageSendEmbed(n.channelID, embed); err != nil {
		Logger().Warning("Failed to send Discord alert: %v", err)
	}
}

// Close shuts the Discord session down.
func (n *Notifier) Close() {
	if n.session != nil {
		n.session.Close()
	}
}
