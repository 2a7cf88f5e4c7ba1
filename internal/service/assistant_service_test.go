package service

import (
	"context"
	"testing"
	"time"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/memory"
	"campus-assistant-be/pkg/embedding"
	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/retrieval"
	"campus-assistant-be/pkg/workflow"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedProvider answers classification with a fixed label and every
// other call with a fixed reply.
type fixedProvider struct {
	classification string
	reply          string
	err            error
}

func (p *fixedProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	if p.classification != "" {
		cls := p.classification
		p.classification = ""
		return cls, nil
	}
	return p.reply, nil
}

func (p *fixedProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.reply, nil
}

type fixedEmbedder struct{}

func (fixedEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return []float32{1, 0, 0}, nil
}

func (fixedEmbedder) Dimensions() int { return 3 }

var _ embedding.Provider = fixedEmbedder{}

func newTestAssistant(provider llm.Provider) IAssistantService {
	log := logger.NewNopLogger()
	chunkRepo := memory.NewDocumentChunkRepository(memory.NewVectorIndex())
	retriever := retrieval.NewService(fixedEmbedder{}, chunkRepo, log)
	complaintSvc := NewComplaintService(memory.NewComplaintRepository(), log)

	engine := workflow.NewEngine(
		workflow.NewClassificationNode(provider, log),
		workflow.NewDocumentSearchNode(retriever, 5, 0.7, log),
		workflow.NewComplaintIntakeNode(complaintSvc, log),
		workflow.NewGeneralResponseNode(provider, log),
		workflow.NewResponseFormattingNode(provider, log),
		log,
	)

	return NewAssistantService(
		engine,
		memory.NewSessionRepository(),
		memory.NewChatMessageRepository(),
		chunkRepo,
		fixedEmbedder{},
		provider,
		30*time.Second,
		log,
	)
}

func TestProcessQueryAssignsSessionId(t *testing.T) {
	provider := &fixedProvider{
		classification: `{"query_type": "general_info", "confidence": 0.9}`,
		reply:          "Hello! How can I help you today?",
	}
	svc := newTestAssistant(provider)

	res, err := svc.ProcessQuery(context.Background(), &dto.ChatQueryRequest{
		UserId:  "user-1",
		Message: "hello",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.SessionId)
	assert.Equal(t, "general_info", res.QueryType)
	assert.Equal(t, "Hello! How can I help you today?", res.Response)
	assert.Contains(t, res.Trace, "classification")
	assert.False(t, res.Degraded)
}

func TestProcessQueryNeverFailsTheCaller(t *testing.T) {
	provider := &fixedProvider{err: llm.ErrUnavailable}
	svc := newTestAssistant(provider)

	res, err := svc.ProcessQuery(context.Background(), &dto.ChatQueryRequest{
		UserId:    "user-1",
		SessionId: "session-1",
		Message:   "When is the enrollment deadline?",
	})
	require.NoError(t, err)

	assert.Equal(t, workflow.FallbackResponse, res.Response)
	assert.Equal(t, 0.1, res.Confidence)
	assert.True(t, res.Degraded)
}

func TestProcessQueryPersistsHistory(t *testing.T) {
	provider := &fixedProvider{
		classification: `{"query_type": "general_info", "confidence": 0.9}`,
		reply:          "Sure, happy to help.",
	}
	svc := newTestAssistant(provider)

	_, err := svc.ProcessQuery(context.Background(), &dto.ChatQueryRequest{
		UserId:    "user-1",
		SessionId: "session-hist",
		Message:   "hello there",
	})
	require.NoError(t, err)

	history, err := svc.GetChatHistory(context.Background(), "session-hist")
	require.NoError(t, err)

	require.Len(t, history.Messages, 2)
	assert.Equal(t, "user", history.Messages[0].Role)
	assert.Equal(t, "hello there", history.Messages[0].Content)
	assert.Equal(t, "assistant", history.Messages[1].Role)
	assert.Equal(t, "Sure, happy to help.", history.Messages[1].Content)
}

func TestHealthCheckReportsComponents(t *testing.T) {
	provider := &fixedProvider{reply: "ok"}
	svc := newTestAssistant(provider)

	res := svc.HealthCheck(context.Background())

	assert.Equal(t, "ok", res.Status)
	assert.Equal(t, "ok", res.Components["document_index"])
	assert.Equal(t, "ok", res.Components["sessions"])
	assert.Equal(t, "ok", res.Components["embedding_provider"])
	assert.Equal(t, "ok", res.Components["llm_provider"])
}

func TestHealthCheckDegradesWhenGeneratorIsDown(t *testing.T) {
	provider := &fixedProvider{err: llm.ErrUnavailable}
	svc := newTestAssistant(provider)

	res := svc.HealthCheck(context.Background())

	assert.Equal(t, "degraded", res.Status)
	assert.Equal(t, "unavailable", res.Components["llm_provider"])
	assert.Equal(t, "ok", res.Components["embedding_provider"])
	assert.Equal(t, "ok", res.Components["document_index"])
}
