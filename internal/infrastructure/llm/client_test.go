package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

type fakeModel struct {
	response *llms.ContentResponse
	err      error
	messages []llms.MessageContent
	opts     llms.CallOptions
}

func (m *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	m.messages = messages
	for _, opt := range options {
		opt(&m.opts)
	}
	return m.response, m.err
}

func (m *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return "", errors.New("not used")
}

func TestCompleteSendsSystemAndUserMessages(t *testing.T) {
	model := &fakeModel{response: &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: "  {\"ok\":true}  "}},
	}}
	client := NewClient(model)

	out, err := client.Complete(context.Background(), CompletionRequest{
		Name:   "medical_triage",
		System: "classify",
		User:   "headache",
		Schema: map[string]interface{}{"type": "object"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, out)

	require.Len(t, model.messages, 2)
	assert.Equal(t, schema.ChatMessageTypeSystem, model.messages[0].Role)
	assert.Equal(t, schema.ChatMessageTypeHuman, model.messages[1].Role)

	system, ok := model.messages[0].Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, system.Text, "classify")
	assert.Contains(t, system.Text, `"medical_triage"`)
	assert.Contains(t, system.Text, `{"type":"object"}`)

	assert.True(t, model.opts.JSONMode)
	assert.InDelta(t, 0.1, model.opts.Temperature, 1e-9)
}

func TestCompleteEmptyChoices(t *testing.T) {
	client := NewClient(&fakeModel{response: &llms.ContentResponse{}})

	_, err := client.Complete(context.Background(), CompletionRequest{User: "x"})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestCompleteWrapsProviderErrors(t *testing.T) {
	client := NewClient(&fakeModel{err: errors.New("503")})

	_, err := client.Complete(context.Background(), CompletionRequest{User: "x"})
	assert.ErrorContains(t, err, "503")
}
