package gemini

import (
	"fmt"
	"strings"
	"time"

	"github.com/leofalp/aitutor/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to the generateContent body.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents:         buildContents(request.Messages),
		GenerationConfig: buildGenerationConfig(request.GenerationConfig),
	}
	if request.SystemPrompt != "" {
		req.SystemInstruction = &systemInstruction{Parts: []part{{Text: request.SystemPrompt}}}
	}
	return req
}

// buildContents maps roles: user -> user, assistant -> model. A system
// message inside Messages is sent as a user turn.
func buildContents(messages []ai.Message) []content {
	contents := make([]content, 0, len(messages))
	for _, msg := range messages {
		role := "user"
		if msg.Role == ai.RoleAssistant {
			if msg.Content == "" {
				continue
			}
			role = "model"
		}
		contents = append(contents, content{Role: role, Parts: []part{{Text: msg.Content}}})
	}
	return contents
}

func buildGenerationConfig(cfg *ai.GenerationConfig) *generationConfig {
	if cfg == nil {
		return nil
	}

	gc := &generationConfig{}
	if cfg.Temperature > 0 {
		t := float64(cfg.Temperature)
		gc.Temperature = &t
	}
	if cfg.TopP > 0 {
		p := float64(cfg.TopP)
		gc.TopP = &p
	}
	if cfg.MaxOutputTokens > 0 {
		n := cfg.MaxOutputTokens
		gc.MaxOutputTokens = &n
	}
	return gc
}

// geminiToGeneric converts a generateContent reply. A reply without
// candidates is a prompt-level block when promptFeedback says so.
func geminiToGeneric(resp generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:    resp.ResponseID,
		Model: resp.ModelVersion,
	}
	if result.Id == "" {
		result.Id = fmt.Sprintf("gemini-%d", time.Now().UnixNano())
	}

	if resp.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     resp.UsageMetadata.PromptTokenCount,
			CompletionTokens: resp.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      resp.UsageMetadata.TotalTokenCount,
		}
	}

	if len(resp.Candidates) == 0 {
		result.FinishReason = "error"
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			result.FinishReason = "content_filter"
			result.Refusal = resp.PromptFeedback.BlockReason
		}
		return result
	}

	c := resp.Candidates[0]
	result.FinishReason = mapFinishReason(c.FinishReason)
	if result.FinishReason == "content_filter" {
		result.Refusal = c.FinishReason
	}
	if c.Content != nil {
		var textParts []string
		for _, p := range c.Content.Parts {
			if p.Text != "" && !p.Thought {
				textParts = append(textParts, p.Text)
			}
		}
		result.Content = strings.Join(textParts, "\n")
	}
	return result
}

// mapFinishReason converts a Gemini finish reason to the generic vocabulary.
func mapFinishReason(geminiReason string) string {
	switch geminiReason {
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT", "SPII":
		return "content_filter"
	default:
		return "stop"
	}
}
