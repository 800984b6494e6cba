package synthesis

import (
	"context"
	"errors"
	"testing"
	"time"

	"interview-content-be/pkg/llm"
)

type fakeProvider struct {
	result  *llm.Result
	err     error
	history []llm.Message
	calls   int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (*llm.Result, error) {
	f.calls++
	f.history = history
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func (f *fakeProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (*llm.Result, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestSynthesizeSuccess(t *testing.T) {
	provider := &fakeProvider{
		result: &llm.Result{
			Text:  "Generated summary.",
			Model: "llama3",
			Usage: llm.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
		},
	}
	s := NewSynthesizer(provider, "llama3")

	out, err := s.Synthesize(context.Background(), &Request{
		System: "You summarize.",
		User:   "Summarize this.",
	}, FallbackOnError)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}

	if out.UsedFallback {
		t.Error("expected live response, got fallback")
	}
	if out.Text != "Generated summary." {
		t.Errorf("Text = %q", out.Text)
	}
	if out.Usage.TotalTokens != 15 {
		t.Errorf("TotalTokens = %d, want 15", out.Usage.TotalTokens)
	}
	if len(provider.history) != 2 || provider.history[0].Role != "system" {
		t.Errorf("unexpected history sent to provider: %+v", provider.history)
	}
}

func TestSynthesizeFallbackOnProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	s := NewSynthesizer(provider, "llama3")

	out, err := s.Synthesize(context.Background(), &Request{
		User:     "Summarize this.",
		Fallback: "raw answers here",
	}, FallbackOnError)
	if err != nil {
		t.Fatalf("expected fallback, got error: %v", err)
	}

	if !out.UsedFallback {
		t.Error("expected UsedFallback to be set")
	}
	if out.Text != "raw answers here" {
		t.Errorf("Text = %q, want the fallback text", out.Text)
	}
	if out.Model != FallbackModelName {
		t.Errorf("Model = %q, want %q", out.Model, FallbackModelName)
	}
	if out.Usage.TotalTokens == 0 {
		t.Error("fallback usage should be estimated, not zero")
	}
}

func TestSynthesizeFailOnError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	s := NewSynthesizer(provider, "llama3")

	_, err := s.Synthesize(context.Background(), &Request{User: "x"}, FailOnError)
	if err == nil {
		t.Fatal("expected error to surface under FailOnError")
	}
}

func TestSynthesizeEmptyResponseIsFailure(t *testing.T) {
	provider := &fakeProvider{result: &llm.Result{Text: "   \n"}}
	s := NewSynthesizer(provider, "llama3")

	_, err := s.Synthesize(context.Background(), &Request{User: "x"}, FailOnError)
	if err == nil {
		t.Fatal("expected empty provider response to count as failure")
	}

	out, err := s.Synthesize(context.Background(), &Request{User: "x", Fallback: "fb"}, FallbackOnError)
	if err != nil {
		t.Fatalf("expected fallback for empty response, got %v", err)
	}
	if !out.UsedFallback || out.Text != "fb" {
		t.Errorf("expected fallback output, got %+v", out)
	}
}

func TestSynthesizeEstimatesMissingUsage(t *testing.T) {
	provider := &fakeProvider{result: &llm.Result{Text: "some generated output text"}}
	s := NewSynthesizer(provider, "llama3")

	out, err := s.Synthesize(context.Background(), &Request{User: "prompt text"}, FailOnError)
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if out.Usage.TotalTokens == 0 {
		t.Error("expected usage to be estimated when backend reports none")
	}
	if out.Model != "llama3" {
		t.Errorf("Model = %q, want synthesizer default", out.Model)
	}
}

func TestWithClock(t *testing.T) {
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s := NewSynthesizer(&fakeProvider{}, "m").WithClock(func() time.Time { return fixed })

	if !s.Now().Equal(fixed) {
		t.Errorf("Now() = %v, want %v", s.Now(), fixed)
	}
}
