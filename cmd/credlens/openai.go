// cmd/credlens/openai.go
package main

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const completionBudget = 1500

const completionSystemPrompt = `You are a news credibility assistant. Assess whether the article text below is likely REAL, FAKE, or UNVERIFIED.
Respond with JSON only, using these fields:
{
  "verdict": "REAL" | "FAKE" | "UNVERIFIED",
  "confidence": 0.0 to 1.0,
  "reason": "one sentence"
}`

// CompletionEngine asks a chat-completion model for a verdict. A
// missing key or any failure degrades to an UNKNOWN verdict with zero
// confidence; the adapter never errors out.
type CompletionEngine struct {
	apiKey string
}

// NewCompletionEngine creates the chat-completion adapter
func NewCompletionEngine(apiKey string) *CompletionEngine {
	return &CompletionEngine{apiKey: apiKey}
}

// Configured reports whether the adapter has a key.
func (ce *CompletionEngine) Configured() bool {
	return ce.apiKey != ""
}

// Judge returns the model's verdict for the text.
func (ce *CompletionEngine) Judge(ctx context.Context, text string) EngineVerdict {
	out := EngineVerdict{Verdict: VerdictUnverified, Engine: "completion"}
	if !ce.Configured() {
		return out
	}

	client := openai.NewClient(ce.apiKey)
	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	resp, err := client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: completionSystemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: truncateText(text, completionBudget),
				},
			},
			Temperature: 0.2,
		},
	)
	if err != nil {
		Logger().Warning("%v", NewAdapterError("completion engine failed", err))
		return out
	}
	if len(resp.Choices) == 0 {
		return out
	}

	verdict, confidence, ok := parseCompletionVerdict(resp.Choices[0].Message.Content)
	if !ok {
		// Parse failures degrade, they are not errors.
		Logger().Debug("completion reply was not parseable JSON")
		return out
	}

	out.Verdict = verdict
	out.Confidence = clampFloat(confidence, 0, 1)
	out.Available = true
	return out
}

// parseCompletionVerdict digs a structured payload out of the model's
// free-text reply. Models wrap JSON in code fences often enough that
// both forms are handled.
func parseCompletionVerdict(reply string) (Verdict, float64, bool) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")
	reply = strings.TrimSpace(reply)

	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start == -1 || end <= start {
		return VerdictUnverified, 0, false
	}

	var parsed struct {
		Verdict    string  `json:"verdict"`
		Confidence float64 `json:"confidence"`
		Reason     string  `json:"reason"`
	}
	if err := json.Unmarshal([]byte(reply[start:end+1]), &parsed); err != nil {
		return VerdictUnverified, 0, false
	}

	switch strings.ToUpper(strings.TrimSpace(parsed.Verdict)) {
	case "REAL":
		return VerdictReal, parsed.Confidence, true
	case "FAKE":
		return VerdictFake, parsed.Confidence, true
	case "UNVERIFIED", "UNKNOWN":
		return VerdictUnverified, parsed.Confidence, true
	default:
		return VerdictUnverified, 0, false
	}
}
