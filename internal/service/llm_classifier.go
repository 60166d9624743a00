package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"doctor-triage/internal/domain/entity"
	"doctor-triage/internal/infrastructure/llm"

	"github.com/sirupsen/logrus"
	"github.com/xeipuuv/gojsonschema"
)

const (
	triageSchemaName   = "medical_triage"
	defaultLLMTimeout  = 5 * time.Second
	triageSystemPrompt = `You are a medical triage assistant. Read the patient's description of their symptoms and choose the single most appropriate medical specialization to consult and the urgency of seeking care.
Urgency levels: LOW (can wait, self-care is likely enough), MEDIUM (see a doctor in the coming days), HIGH (see a doctor within 24 hours), EMERGENCY (seek emergency care immediately).
Use GENERAL_PHYSICIAN when no specialization clearly fits. Do not give a diagnosis or any other text.`
)

var (
	// ErrClassificationUnavailable marks every reason the remote classifier
	// could not produce a usable answer. It never leaves this package.
	ErrClassificationUnavailable = errors.New("remote classification unavailable")

	errClassifierDisabled = fmt.Errorf("%w: no remote classifier configured", ErrClassificationUnavailable)
)

// CompletionClient is the remote text-classification collaborator.
type CompletionClient interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (string, error)
}

type triagePayload struct {
	Specialization string `json:"specialization"`
	Urgency        string `json:"urgency"`
}

// LLMClassifier asks a language model for a classification and falls back to
// the rule-based classifier on any failure.
type LLMClassifier struct {
	client   CompletionClient
	fallback *RuleClassifier
	schema   *gojsonschema.Schema
	rawSpec  map[string]interface{}
	timeout  time.Duration
	log      *logrus.Logger
}

// NewLLMClassifier accepts a nil client, in which case every call uses the fallback.
func NewLLMClassifier(client CompletionClient, fallback *RuleClassifier, timeout time.Duration, log *logrus.Logger) (*LLMClassifier, error) {
	if fallback == nil {
		fallback = NewRuleClassifier()
	}
	if timeout <= 0 {
		timeout = defaultLLMTimeout
	}

	rawSpec := TriageResponseSchema()
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(rawSpec))
	if err != nil {
		return nil, fmt.Errorf("failed to compile triage schema: %w", err)
	}

	return &LLMClassifier{
		client:   client,
		fallback: fallback,
		schema:   schema,
		rawSpec:  rawSpec,
		timeout:  timeout,
		log:      log,
	}, nil
}

// TriageResponseSchema constrains the remote answer to exactly one value of each taxonomy.
func TriageResponseSchema() map[string]interface{} {
	specs := make([]interface{}, 0, len(entity.Specializations()))
	for _, s := range entity.Specializations() {
		specs = append(specs, string(s))
	}
	urgencies := make([]interface{}, 0, len(entity.Urgencies()))
	for _, u := range entity.Urgencies() {
		urgencies = append(urgencies, string(u))
	}

	return map[string]interface{}{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]interface{}{
			"specialization": map[string]interface{}{"type": "string", "enum": specs},
			"urgency":        map[string]interface{}{"type": "string", "enum": urgencies},
		},
		"required": []interface{}{"specialization", "urgency"},
	}
}

// Classify never fails; the returned source tells which path answered.
func (c *LLMClassifier) Classify(ctx context.Context, symptoms string) (entity.TriageResult, entity.TriageSource) {
	result, err := c.classifyRemote(ctx, symptoms)
	if err != nil {
		c.log.WithField("reason", err.Error()).Warn("Falling back to rule-based triage")
		return c.fallback.Classify(symptoms), entity.TriageSourceRules
	}
	return result, entity.TriageSourceLLM
}

func (c *LLMClassifier) classifyRemote(ctx context.Context, symptoms string) (entity.TriageResult, error) {
	if c.client == nil {
		return entity.TriageResult{}, errClassifierDisabled
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	raw, err := c.client.Complete(ctx, llm.CompletionRequest{
		Name:   triageSchemaName,
		System: triageSystemPrompt,
		User:   symptoms,
		Schema: c.rawSpec,
	})
	if err != nil {
		return entity.TriageResult{}, fmt.Errorf("%w: %v", ErrClassificationUnavailable, err)
	}

	return c.parse(raw)
}

func (c *LLMClassifier) parse(raw string) (entity.TriageResult, error) {
	doc := ExtractJSON(raw)
	if doc == "" {
		return entity.TriageResult{}, fmt.Errorf("%w: response has no JSON object", ErrClassificationUnavailable)
	}

	validation, err := c.schema.Validate(gojsonschema.NewStringLoader(doc))
	if err != nil {
		return entity.TriageResult{}, fmt.Errorf("%w: unparseable JSON: %v", ErrClassificationUnavailable, err)
	}
	if !validation.Valid() {
		problems := make([]string, 0, len(validation.Errors()))
		for _, e := range validation.Errors() {
			problems = append(problems, e.String())
		}
		return entity.TriageResult{}, fmt.Errorf("%w: %s", ErrClassificationUnavailable, strings.Join(problems, "; "))
	}

	var payload triagePayload
	if err := json.Unmarshal([]byte(doc), &payload); err != nil {
		return entity.TriageResult{}, fmt.Errorf("%w: %v", ErrClassificationUnavailable, err)
	}

	return entity.NormalizeTriage(payload.Specialization, payload.Urgency), nil
}

// ExtractJSON returns the text between the first '{' and the last '}', or ""
// when no such span exists.
func ExtractJSON(raw string) string {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end <= start {
		return ""
	}
	return raw[start : end+1]
}
