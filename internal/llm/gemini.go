package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nadeen-odeh/dept-assistant-api/internal/nlp"
	"github.com/nadeen-odeh/dept-assistant-api/pkg/config"
)

// Classifier abstracts the hosted question classifier so the chat pipeline
// can run against a deterministic double in tests. Every method degrades
// to (nil, nil) on transport or parse failure; callers fall through to
// their generic answers.
type Classifier interface {
	ClassifyCourse(ctx context.Context, question string) (*nlp.CourseClassification, error)
	ClassifyEmotion(ctx context.Context, question string) (*nlp.EmotionClassification, error)
	ClassifyLab(ctx context.Context, question string) (*nlp.LabClassification, error)
	ClassifyRegistration(ctx context.Context, question string) (*nlp.RegistrationClassification, error)
}

// GeminiClassifier calls the hosted generative-language endpoint with a
// fixed instruction prompt per classification task, temperature 0, and
// expects a JSON-only reply.
type GeminiClassifier struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewGeminiClassifier builds a classifier from config.
func NewGeminiClassifier(cfg config.GeminiConfig, logger *zap.Logger) *GeminiClassifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &GeminiClassifier{
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

const coursePrompt = `
החזירי JSON בלבד בפורמט הבא:
{
  "kind": "lookup" | "relation",
  "courseA": "שם קורס או קוד א",
  "courseB": "שם קורס או קוד ב (רק אם זה relation)"
}

שאלה:
%q
`

const emotionPrompt = `
את מערכת שמזהה מצוקה רגשית של סטודנטים.

החזירי JSON בלבד בפורמט:
{ "intent": "emotional_support" | "other" }

סווגי כ-"emotional_support" אם יש ביטוי אישי של קושי,
גם אם מוזכרים לימודים או קורסים.

דוגמאות למצוקה:
- קשה לי
- אני לא מצליחה
- אני תקועה
- אני טובעת
- לא הולך לי
- אני בלחץ
- לא מבינה כלום

סווגי כ-"other" רק אם השאלה היא מידע אקדמי טכני בלבד
(קוד קורס, דרישות קדם, לוח זמנים).

שאלה:
%q
`

const labPrompt = `
החזירי JSON בלבד.
{
  "intent": "lab_query" | "next_lab",
  "course": string | null,
  "session": string | null,
  "time": "today" | "tomorrow" | "week" | "all"
}
חוקים:
- אם המשתמש מבקש "המעבדה הבאה" / "הקרובה" → intent="next_lab"

שאלה:
%q
`

const registrationPrompt = `
את מערכת שמסווגת שאלות על הנחיות רישום.

החזירי JSON בלבד:
{
  "intent": "window" | "advisors" | "labs" | "links" | "credits"
          | "exemptions" | "contacts" | "mentors"
          | "internship" | "rules" | "general"
}

שאלה:
%q
`

// ClassifyCourse determines the question kind and raw course references.
func (c *GeminiClassifier) ClassifyCourse(ctx context.Context, question string) (*nlp.CourseClassification, error) {
	var out nlp.CourseClassification
	if !c.generateInto(ctx, fmt.Sprintf(coursePrompt, question), &out) {
		return nil, nil
	}
	if out.Kind != nlp.KindLookup && out.Kind != nlp.KindRelation {
		return nil, nil
	}
	return &out, nil
}

// ClassifyEmotion flags emotional-distress questions.
func (c *GeminiClassifier) ClassifyEmotion(ctx context.Context, question string) (*nlp.EmotionClassification, error) {
	var out nlp.EmotionClassification
	if !c.generateInto(ctx, fmt.Sprintf(emotionPrompt, question), &out) {
		return nil, nil
	}
	return &out, nil
}

// ClassifyLab extracts the lab query shape when the rule pre-classifier
// had no signal.
func (c *GeminiClassifier) ClassifyLab(ctx context.Context, question string) (*nlp.LabClassification, error) {
	var out nlp.LabClassification
	if !c.generateInto(ctx, fmt.Sprintf(labPrompt, question), &out) {
		return nil, nil
	}
	return &out, nil
}

// ClassifyRegistration picks the registration facet.
func (c *GeminiClassifier) ClassifyRegistration(ctx context.Context, question string) (*nlp.RegistrationClassification, error) {
	var out nlp.RegistrationClassification
	if !c.generateInto(ctx, fmt.Sprintf(registrationPrompt, question), &out) {
		return nil, nil
	}
	return &out, nil
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// generateInto sends the prompt and parses the JSON-only reply into dest.
// Returns false on any failure: no retry, no backoff, the pipeline
// degrades to its default answer.
func (c *GeminiClassifier) generateInto(ctx context.Context, prompt string, dest interface{}) bool {
	text, err := c.generate(ctx, prompt)
	if err != nil {
		c.logger.Warn("classifier call failed", zap.Error(err))
		return false
	}
	raw := ExtractJSON(text)
	if raw == "" {
		c.logger.Warn("classifier returned no json", zap.String("text", text))
		return false
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.logger.Warn("classifier json unmarshal failed", zap.Error(err))
		return false
	}
	return true
}

func (c *GeminiClassifier) generate(ctx context.Context, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(c.apiKey))

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: 0},
	})
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("call classifier: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("classifier status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode classifier response: %w", err)
	}
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("classifier returned no candidates")
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}

var (
	codeFenceRe  = regexp.MustCompile("```json|```")
	jsonObjectRe = regexp.MustCompile(`(?s)\{.*\}`)
)

// ExtractJSON pulls a JSON object out of a model reply: code fences are
// stripped first, then the whole text is tried, then the outermost {...}
// span. Empty string means no parseable object was found.
func ExtractJSON(text string) string {
	cleaned := strings.TrimSpace(codeFenceRe.ReplaceAllString(text, ""))
	if cleaned == "" {
		return ""
	}
	if json.Valid([]byte(cleaned)) {
		return cleaned
	}
	m := jsonObjectRe.FindString(cleaned)
	if m == "" || !json.Valid([]byte(m)) {
		return ""
	}
	return m
}
