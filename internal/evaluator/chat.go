package evaluator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

var (
	ErrUnavailable = errors.New("evaluator unavailable")
	ErrTimeout     = errors.New("evaluator timed out")
)

// EvalError wraps evaluator failures so callers can distinguish "the LLM
// returned a bad verdict" from "the LLM was unreachable".
type EvalError struct {
	Reason  string
	Wrapped error
}

func (e *EvalError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("evaluation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("evaluation failed: %s", e.Reason)
}

func (e *EvalError) Unwrap() error {
	return e.Wrapped
}

// ChatEvaluator judges answers by calling an OpenAI-compatible chat endpoint.
type ChatEvaluator struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
	timeout    time.Duration
}

var _ Evaluator = (*ChatEvaluator)(nil)

func NewChatEvaluator(apiURL, apiKey, model string, timeout time.Duration) *ChatEvaluator {
	return &ChatEvaluator{
		httpClient: &http.Client{},
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
	}
}

func (e *ChatEvaluator) IsAvailable() bool {
	return e.apiURL != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

const systemPrompt = `You are an answer judge for a language-learning exam. Compare the learner's answer to the expected answer and decide whether it is semantically equivalent. Minor spelling slips are acceptable; a different meaning is not. You must respond with ONLY valid JSON (no markdown, no code fences, no explanations) in the following format:

{"is_correct": true, "score": 0.9, "feedback": "one short sentence for the learner"}

Rules:
- "is_correct" is required and must be a boolean
- "score" is optional, a number between 0 and 1
- "feedback" is optional, at most one sentence, in the language of the question
- Return ONLY the JSON object, nothing else`

// Evaluate sends one answer pair to the judge. A single attempt is made; the
// configured deadline maps expiry to ErrTimeout, every other transport or
// shape failure to ErrUnavailable.
func (e *ChatEvaluator) Evaluate(ctx context.Context, ev Evaluation) (*Verdict, error) {
	if !e.IsAvailable() {
		return nil, &EvalError{Reason: "not configured", Wrapped: ErrUnavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	userContent := fmt.Sprintf("Question: %s\nExpected answer: %s\nLearner answer: %s", ev.Question, ev.CorrectAnswer, ev.UserAnswer)
	if ev.Context != "" {
		userContent += "\nContext: " + ev.Context
	}

	reqBody := chatRequest{
		Model: e.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userContent},
		},
		Temperature: 0,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &EvalError{Reason: "failed to marshal request", Wrapped: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL+"/v1/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, &EvalError{Reason: "failed to create request", Wrapped: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if e.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+e.apiKey)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, &EvalError{Reason: "deadline exceeded", Wrapped: ErrTimeout}
		}
		return nil, &EvalError{Reason: "request failed", Wrapped: ErrUnavailable}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &EvalError{Reason: "failed to read response", Wrapped: ErrUnavailable}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &EvalError{Reason: fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)), Wrapped: ErrUnavailable}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return nil, &EvalError{Reason: "invalid API response", Wrapped: ErrUnavailable}
	}
	if chatResp.Error != nil {
		return nil, &EvalError{Reason: chatResp.Error.Message, Wrapped: ErrUnavailable}
	}
	if len(chatResp.Choices) == 0 {
		return nil, &EvalError{Reason: "empty response", Wrapped: ErrUnavailable}
	}

	return parseVerdict(chatResp.Choices[0].Message.Content)
}

// parseVerdict validates the judge's output shape. A missing boolean or a
// score outside [0,1] is a failure, never folded into a correctness verdict.
func parseVerdict(content string) (*Verdict, error) {
	jsonStr := extractJSON(cleanFences(content))
	if jsonStr == "" {
		return nil, &EvalError{Reason: "no JSON object in response", Wrapped: ErrUnavailable}
	}

	var raw struct {
		IsCorrect *bool    `json:"is_correct"`
		Score     *float64 `json:"score"`
		Feedback  string   `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return nil, &EvalError{Reason: "invalid JSON verdict", Wrapped: ErrUnavailable}
	}
	if raw.IsCorrect == nil {
		return nil, &EvalError{Reason: "verdict missing is_correct", Wrapped: ErrUnavailable}
	}
	if raw.Score != nil && (*raw.Score < 0 || *raw.Score > 1) {
		return nil, &EvalError{Reason: "score out of range", Wrapped: ErrUnavailable}
	}

	return &Verdict{IsCorrect: *raw.IsCorrect, Score: raw.Score, Feedback: raw.Feedback}, nil
}

func cleanFences(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}

// extractJSON finds the outermost JSON object in a string, skipping braces
// inside quoted strings.
func extractJSON(s string) string {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, ch := range s {
		if escaped {
			escaped = false
			continue
		}
		if ch == '\\' && inString {
			escaped = true
			continue
		}
		if ch == '"' {
			inString = !inString
			continue
		}
		if inString {
			continue
		}

		switch ch {
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			depth--
			if depth == 0 && start >= 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
