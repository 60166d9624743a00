package service

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/infrastructure/llm"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCompletionClient struct {
	response string
	err      error
	delay    time.Duration
	calls    int
	last     llm.CompletionRequest
}

func (f *fakeCompletionClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	f.calls++
	f.last = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.response, f.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newTestLLMClassifier(t *testing.T, client CompletionClient, timeout time.Duration) *LLMClassifier {
	t.Helper()
	classifier, err := NewLLMClassifier(client, NewRuleClassifier(), timeout, quietLogger())
	require.NoError(t, err)
	return classifier
}

func TestLLMClassifierUsesRemoteAnswer(t *testing.T) {
	client := &fakeCompletionClient{response: "Here you go:\n```json\n{\"specialization\":\"ORTHOPEDIC\",\"urgency\":\"HIGH\"}\n```"}
	classifier := newTestLLMClassifier(t, client, time.Second)

	result, source := classifier.Classify(context.Background(), "my knee is swollen")

	assert.Equal(t, entity.TriageResult{Specialization: entity.SpecializationOrthopedic, Urgency: entity.UrgencyHigh}, result)
	assert.Equal(t, entity.TriageSourceLLM, source)
	assert.Equal(t, "my knee is swollen", client.last.User)
	assert.Equal(t, "medical_triage", client.last.Name)
	assert.NotEmpty(t, client.last.Schema)
}

func TestLLMClassifierFallsBack(t *testing.T) {
	symptoms := "I have mild itching and a skin rash"
	expected := entity.TriageResult{Specialization: entity.SpecializationDermatologist, Urgency: entity.UrgencyLow}

	tests := []struct {
		name   string
		client *fakeCompletionClient
	}{
		{"service error", &fakeCompletionClient{err: errors.New("rate limited")}},
		{"no json", &fakeCompletionClient{response: "I cannot help with that."}},
		{"broken json", &fakeCompletionClient{response: `{"specialization": "CARDIOLOGIST",}`}},
		{"unknown specialization", &fakeCompletionClient{response: `{"specialization":"ONCOLOGIST","urgency":"LOW"}`}},
		{"unknown urgency", &fakeCompletionClient{response: `{"specialization":"CARDIOLOGIST","urgency":"URGENT"}`}},
		{"missing field", &fakeCompletionClient{response: `{"specialization":"CARDIOLOGIST"}`}},
		{"extra field", &fakeCompletionClient{response: `{"specialization":"CARDIOLOGIST","urgency":"LOW","diagnosis":"flu"}`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := newTestLLMClassifier(t, tt.client, time.Second)

			result, source := classifier.Classify(context.Background(), symptoms)

			assert.Equal(t, expected, result)
			assert.Equal(t, entity.TriageSourceRules, source)
			assert.Equal(t, 1, tt.client.calls)
		})
	}
}

func TestLLMClassifierWithoutClientUsesRules(t *testing.T) {
	classifier := newTestLLMClassifier(t, nil, time.Second)

	result, source := classifier.Classify(context.Background(), "chest pain")

	assert.Equal(t, entity.UrgencyEmergency, result.Urgency)
	assert.Equal(t, entity.TriageSourceRules, source)
}

func TestLLMClassifierTimesOut(t *testing.T) {
	client := &fakeCompletionClient{
		response: `{"specialization":"CARDIOLOGIST","urgency":"LOW"}`,
		delay:    time.Second,
	}
	classifier := newTestLLMClassifier(t, client, 20*time.Millisecond)

	start := time.Now()
	result, source := classifier.Classify(context.Background(), "sudden numbness in left arm")

	assert.Less(t, time.Since(start), 500*time.Millisecond)
	assert.Equal(t, entity.TriageSourceRules, source)
	assert.Equal(t, entity.SpecializationNeurologist, result.Specialization)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"prefix {\"a\":{\"b\":2}} suffix", `{"a":{"b":2}}`},
		{"no braces", ""},
		{"} backwards {", ""},
		{"{", ""},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractJSON(tt.raw), tt.raw)
	}
}
