package dto

import "github.com/kangsm1989-hue/ai-counsel-web/pkg/guidance"

type DailyGuidanceResponse struct {
	Date     string            `json:"date"`
	Template guidance.Template `json:"template"`
}

type PromptBudgetResponse struct {
	Date   string          `json:"date"`
	Budget guidance.Budget `json:"budget"`
}

type InjectPromptRequest struct {
	// Buffer is the user's current free-text draft; prompts it already
	// contains are not offered again.
	Buffer string `json:"buffer"`
}

type InjectPromptResponse struct {
	Injected bool            `json:"injected"`
	Prompt   string          `json:"prompt,omitempty"`
	Budget   guidance.Budget `json:"budget"`
}
