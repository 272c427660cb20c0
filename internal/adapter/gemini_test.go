package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/go-job-tracker/internal/config"
	"github.com/MKhiriev/go-job-tracker/internal/logger"
)

// ─── Mock ────────────────────────────────────────────────────────────────────

type fakeModel struct {
	prompt  string
	content string
	err     error
}

func (f *fakeModel) GenerateContent(_ context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	if len(messages) > 0 && len(messages[0].Parts) > 0 {
		if text, ok := messages[0].Parts[0].(llms.TextContent); ok {
			f.prompt = text.Text
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{Choices: []*llms.ContentChoice{{Content: f.content}}}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, f, prompt, options...)
}

// ─── Tests ───────────────────────────────────────────────────────────────────

func TestNewGeminiGenerator_NoKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), config.Gemini{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeminiGenerate_Success(t *testing.T) {
	model := &fakeModel{content: "  Dear hiring manager,\n"}
	g := newGeminiGenerator(model, logger.Nop())

	text, err := g.Generate(context.Background(), "write a letter")

	require.NoError(t, err)
	assert.Equal(t, "Dear hiring manager,", text)
	assert.Equal(t, "write a letter", model.prompt)
}

func TestGeminiGenerate_EmptyCompletion(t *testing.T) {
	g := newGeminiGenerator(&fakeModel{content: "   "}, logger.Nop())

	_, err := g.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrDecodeResponse)
	assert.Equal(t, http.StatusOK, StatusCode(err))
}

func TestGeminiGenerate_QuotaError(t *testing.T) {
	g := newGeminiGenerator(&fakeModel{err: status.Error(codes.ResourceExhausted, "quota exceeded")}, logger.Nop())

	_, err := g.Generate(context.Background(), "prompt")

	require.Error(t, err)
	assert.Equal(t, http.StatusTooManyRequests, StatusCode(err))
}

func TestGeminiStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "deadline", err: fmt.Errorf("call: %w", context.DeadlineExceeded), want: 0},
		{name: "canceled", err: context.Canceled, want: 0},
		{name: "grpc exhausted", err: status.Error(codes.ResourceExhausted, "x"), want: 429},
		{name: "grpc invalid", err: status.Error(codes.InvalidArgument, "x"), want: 400},
		{name: "grpc unauthenticated", err: status.Error(codes.Unauthenticated, "x"), want: 401},
		{name: "grpc permission", err: status.Error(codes.PermissionDenied, "x"), want: 403},
		{name: "grpc not found", err: status.Error(codes.NotFound, "x"), want: 404},
		{name: "grpc unavailable", err: status.Error(codes.Unavailable, "x"), want: 503},
		{name: "grpc internal", err: status.Error(codes.Internal, "x"), want: 500},
		{name: "text quota", err: errors.New("googleapi: Error 429: quota"), want: 429},
		{name: "text bad key", err: errors.New("API key not valid. Please pass a valid API key."), want: 400},
		{name: "text unavailable", err: errors.New("rpc error: UNAVAILABLE"), want: 503},
		{name: "text internal", err: errors.New("Error 500: INTERNAL"), want: 500},
		{name: "unknown", err: errors.New("connection reset by peer"), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, geminiStatus(tt.err))
		})
	}
}
