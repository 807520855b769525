package adapter

import (
	"context"
	"fmt"
)

// MockAdapter returns deterministic responses for local runs and tests.
type MockAdapter struct {
	responses       map[string]string
	defaultResponse string
	Err             error
	Calls           int
}

// NewMockAdapter creates a mock adapter with a default response.
func NewMockAdapter() *MockAdapter {
	return &MockAdapter{
		responses:       make(map[string]string),
		defaultResponse: "mock response:",
	}
}

// NewMockAdapterWithResponses creates a mock adapter with predefined responses.
func NewMockAdapterWithResponses(responses map[string]string, defaultResponse string) *MockAdapter {
	if defaultResponse == "" {
		defaultResponse = "mock response:"
	}
	return &MockAdapter{responses: responses, defaultResponse: defaultResponse}
}

// Name returns the adapter identifier.
func (a *MockAdapter) Name() string {
	return "mock"
}

// Models returns the list of supported mock models.
func (a *MockAdapter) Models() []string {
	return []string{"mock-1"}
}

// Generate returns a deterministic response for the prompt.
func (a *MockAdapter) Generate(_ context.Context, model string, prompt string) (*Response, error) {
	a.Calls++
	if a.Err != nil {
		return nil, a.Err
	}
	if model == "" {
		model = "mock-1"
	}
	content, ok := a.responses[prompt]
	if !ok {
		content = fmt.Sprintf("%s\n%s", a.defaultResponse, prompt)
	}
	return &Response{Content: content, Adapter: a.Name(), Model: model}, nil
}
