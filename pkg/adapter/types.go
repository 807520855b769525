package adapter

// Usage captures normalized token usage as reported by a provider.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a normalized provider reply.
type Response struct {
	Content string `json:"content"`
	Adapter string `json:"adapter"`
	Model   string `json:"model"`
	Usage   *Usage `json:"usage,omitempty"`
}
