package synthesis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"interview-content-be/pkg/llm"
)

// FailurePolicy decides what a provider failure means for the caller. The two
// content pipelines share one synthesis path and differ only in this value.
type FailurePolicy int

const (
	// FallbackOnError substitutes the request's fallback text when the
	// provider fails or returns nothing. Finalize uses this: a best-effort
	// summary beats an error.
	FallbackOnError FailurePolicy = iota
	// FailOnError surfaces the provider failure. Derived content uses this:
	// a low-quality draft is worse than none.
	FailOnError
)

// FallbackModelName marks outputs produced by the local template.
const FallbackModelName = "local-fallback"

// Request is one synthesis call.
type Request struct {
	System      string
	User        string
	Model       string // override the synthesizer default
	MaxTokens   int
	Temperature float64
	Fallback    string // used only with FallbackOnError
}

// Output is the synthesized text plus accounting.
type Output struct {
	Text         string
	Model        string
	Usage        llm.Usage
	UsedFallback bool
}

// Synthesizer runs prompts against an injected provider. The provider is a
// dependency, not package state, so tests can substitute a fake.
type Synthesizer struct {
	provider llm.LLMProvider
	model    string
	now      func() time.Time
}

func NewSynthesizer(provider llm.LLMProvider, model string) *Synthesizer {
	return &Synthesizer{
		provider: provider,
		model:    model,
		now:      time.Now,
	}
}

// WithClock overrides the timestamp source. Test hook.
func (s *Synthesizer) WithClock(now func() time.Time) *Synthesizer {
	s.now = now
	return s
}

// Synthesize performs one provider call under the given failure policy.
// An empty provider response counts as a failure.
func (s *Synthesizer) Synthesize(ctx context.Context, req *Request, policy FailurePolicy) (*Output, error) {
	out, err := s.callProvider(ctx, req)
	if err == nil {
		return out, nil
	}

	if policy == FailOnError {
		return nil, err
	}

	fallback := req.Fallback
	return &Output{
		Text:  fallback,
		Model: FallbackModelName,
		Usage: llm.Usage{
			PromptTokens:     EstimateTokens(req.User),
			CompletionTokens: EstimateTokens(fallback),
			TotalTokens:      EstimateTokens(req.User) + EstimateTokens(fallback),
		},
		UsedFallback: true,
	}, nil
}

func (s *Synthesizer) callProvider(ctx context.Context, req *Request) (*Output, error) {
	var history []llm.Message
	if req.System != "" {
		history = append(history, llm.Message{Role: "system", Content: req.System})
	}
	history = append(history, llm.Message{Role: "user", Content: req.User})

	opts := []llm.Option{}
	model := req.Model
	if model == "" {
		model = s.model
	}
	if model != "" {
		opts = append(opts, llm.WithModel(model))
	}
	if req.MaxTokens > 0 {
		opts = append(opts, llm.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llm.WithTemperature(req.Temperature))
	}

	result, err := s.provider.Chat(ctx, history, opts...)
	if err != nil {
		return nil, fmt.Errorf("provider call failed: %w", err)
	}
	if strings.TrimSpace(result.Text) == "" {
		return nil, fmt.Errorf("provider returned empty response")
	}

	usage := result.Usage
	if usage.TotalTokens == 0 {
		// Backend did not report usage; estimate from text length
		usage = llm.Usage{
			PromptTokens:     EstimateTokens(req.System + req.User),
			CompletionTokens: EstimateTokens(result.Text),
		}
		usage.TotalTokens = usage.PromptTokens + usage.CompletionTokens
	}

	modelName := result.Model
	if modelName == "" {
		modelName = model
	}

	return &Output{
		Text:  result.Text,
		Model: modelName,
		Usage: usage,
	}, nil
}

// Now exposes the synthesizer clock for fallback timestamping.
func (s *Synthesizer) Now() time.Time {
	return s.now()
}
