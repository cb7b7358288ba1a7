package triage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/swasthya/triage/internal/platform/llm"
)

// Fallback result returned whenever the model is unavailable or its output is
// unusable. The exact strings are part of the API contract.
const (
	fallbackAdvice    = "Please consult a healthcare provider for proper diagnosis"
	fallbackReasoning = "AI analysis unavailable - defaulting to doctor consultation"
)

// FallbackResult is the fixed classification used on any classifier failure.
func FallbackResult() Result {
	return Result{
		Severity:  SeverityOPDVisit,
		Advice:    fallbackAdvice,
		Reasoning: fallbackReasoning,
	}
}

// Classifier turns free-text symptom descriptions into a Result by prompting
// an external model and validating its reply against the severity contract.
// Classify never returns an error; every failure path resolves to the
// fallback Result.
type Classifier struct {
	gen    llm.Generator
	logger zerolog.Logger
}

func NewClassifier(gen llm.Generator, logger zerolog.Logger) *Classifier {
	return &Classifier{gen: gen, logger: logger}
}

const promptTemplate = `Analyze these symptoms and classify severity into one of these three categories:
- Self-care: Mild symptoms that can be managed at home
- OPD Visit: Requires doctor consultation but not emergency
- Emergency: Needs immediate medical attention

Symptoms: %s
Language: %s

Respond with a single JSON object and no other text, in this exact format:
{
    "severity": "Self-care/OPD Visit/Emergency",
    "advice": "Specific medical advice in 2-3 sentences",
    "reasoning": "Explanation for this classification in 2-3 sentences"
}

Be medically accurate and cautious. When in doubt, recommend the higher care level.`

// Classify runs one model call for the symptom text. Malformed output,
// transport errors, missing fields, and out-of-enum severities all produce
// the fallback; the model response is never trusted uninterpreted.
func (c *Classifier) Classify(ctx context.Context, symptoms, language string) Result {
	if language == "" {
		language = "en"
	}

	raw, err := c.gen.Generate(ctx, fmt.Sprintf(promptTemplate, symptoms, language))
	if err != nil {
		c.logger.Warn().Err(err).Msg("classifier call failed, using fallback")
		return FallbackResult()
	}

	var parsed struct {
		Severity  *string `json:"severity"`
		Advice    *string `json:"advice"`
		Reasoning *string `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(extractJSON(raw)), &parsed); err != nil {
		c.logger.Warn().Err(err).Msg("classifier response is not valid JSON, using fallback")
		return FallbackResult()
	}
	if parsed.Severity == nil || parsed.Advice == nil || parsed.Reasoning == nil {
		c.logger.Warn().Msg("classifier response missing required fields, using fallback")
		return FallbackResult()
	}

	severity := Severity(*parsed.Severity)
	if !severity.Valid() {
		c.logger.Warn().Str("severity", *parsed.Severity).Msg("classifier returned out-of-enum severity, using fallback")
		return FallbackResult()
	}

	return Result{
		Severity:  severity,
		Advice:    *parsed.Advice,
		Reasoning: *parsed.Reasoning,
	}
}

// extractJSON strips prose the model may wrap around its JSON object. Fenced
// code blocks take priority; otherwise the slice between the first "{" and
// the last "}" is used.
func extractJSON(raw string) string {
	text := strings.TrimSpace(raw)

	if i := strings.Index(text, "```json"); i >= 0 {
		text = text[i+len("```json"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
		return strings.TrimSpace(text)
	}
	if i := strings.Index(text, "```"); i >= 0 {
		text = text[i+len("```"):]
		if j := strings.Index(text, "```"); j >= 0 {
			text = text[:j]
		}
		return strings.TrimSpace(text)
	}

	if strings.HasPrefix(text, "{") && strings.HasSuffix(text, "}") {
		return text
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		return text[start : end+1]
	}
	return text
}
