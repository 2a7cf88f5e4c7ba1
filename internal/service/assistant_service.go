package service

import (
	"context"
	"time"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/internal/repository/memory"
	"campus-assistant-be/pkg/embedding"
	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/store"
	"campus-assistant-be/pkg/workflow"

	"github.com/google/uuid"
)

const historyLimit = 20

type IAssistantService interface {
	ProcessQuery(ctx context.Context, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error)
	GetChatHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error)
	HealthCheck(ctx context.Context) *dto.HealthResponse
}

// assistantService coordinates one conversation turn: load history, run
// the workflow, persist the exchange. ProcessQuery never fails the
// caller; whatever happens inside the pipeline, a response comes back.
type assistantService struct {
	engine                *workflow.Engine
	sessionRepository     *memory.SessionRepository
	chatMessageRepository contract.ChatMessageRepository
	chunkRepository       contract.DocumentChunkRepository
	embedder              embedding.Provider
	generator             llm.Provider
	requestTimeout        time.Duration
	logger                logger.ILogger
}

func NewAssistantService(
	engine *workflow.Engine,
	sessionRepository *memory.SessionRepository,
	chatMessageRepository contract.ChatMessageRepository,
	chunkRepository contract.DocumentChunkRepository,
	embedder embedding.Provider,
	generator llm.Provider,
	requestTimeout time.Duration,
	log logger.ILogger,
) IAssistantService {
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	return &assistantService{
		engine:                engine,
		sessionRepository:     sessionRepository,
		chatMessageRepository: chatMessageRepository,
		chunkRepository:       chunkRepository,
		embedder:              embedder,
		generator:             generator,
		requestTimeout:        requestTimeout,
		logger:                log,
	}
}

func (s *assistantService) ProcessQuery(ctx context.Context, req *dto.ChatQueryRequest) (*dto.ChatQueryResponse, error) {
	sessionId := req.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	history := s.loadHistory(ctx, sessionId)

	runCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	st := workflow.NewState(req.UserId, sessionId, req.Message, history)
	st.Metadata = req.Metadata
	if err := s.engine.Run(runCtx, st); err != nil {
		// Cancellation only; the state already carries the timed-out reply
		s.logger.Warn("assistant", "Workflow cancelled", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
	}

	s.persistTurn(ctx, sessionId, req.UserId, st)

	sources := make([]dto.SourceDTO, 0, len(st.Sources))
	for _, p := range st.Sources {
		sources = append(sources, dto.SourceDTO{
			DocumentId:    p.DocumentId,
			DocumentTitle: p.DocumentTitle,
			Excerpt:       p.Excerpt,
			Locator:       p.Locator,
			Similarity:    p.Similarity,
		})
	}

	return &dto.ChatQueryResponse{
		SessionId:        sessionId,
		Response:         st.ResponseText,
		QueryType:        string(st.QueryType),
		Confidence:       st.ResponseConfidence,
		Sources:          sources,
		SuggestedActions: st.SuggestedActions,
		Trace:            st.Trace,
		Degraded:         st.Degraded(),
	}, nil
}

// loadHistory prefers the in-memory session cache and falls back to the
// persisted message log when the cache has expired.
func (s *assistantService) loadHistory(ctx context.Context, sessionId string) []llm.Message {
	if session, found := s.sessionRepository.Get(sessionId); found {
		history := make([]llm.Message, 0, len(session.History))
		for _, turn := range session.History {
			history = append(history, llm.Message{Role: turn.Role, Content: turn.Content})
		}
		return history
	}

	messages, err := s.chatMessageRepository.FindBySessionId(ctx, sessionId, historyLimit)
	if err != nil {
		s.logger.Warn("assistant", "Failed to load persisted history", map[string]interface{}{
			"session_id": sessionId,
			"error":      err.Error(),
		})
		return nil
	}

	history := make([]llm.Message, 0, len(messages))
	for _, msg := range messages {
		history = append(history, llm.Message{Role: msg.Role, Content: msg.Content})
	}
	return history
}

// persistTurn records the exchange in the session cache and the message
// log. Persistence failure never fails the request.
func (s *assistantService) persistTurn(ctx context.Context, sessionId, userId string, st *workflow.State) {
	session := s.sessionRepository.AppendTurns(sessionId, userId,
		store.Turn{Role: "user", Content: st.Message},
		store.Turn{Role: "assistant", Content: st.ResponseText},
	)
	session.LastQueryType = string(st.QueryType)
	session.LastQuery = st.Message
	s.sessionRepository.Save(session)

	now := time.Now()
	records := []*entity.ChatMessage{
		{Id: uuid.New(), SessionId: sessionId, UserId: userId, Role: "user", Content: st.Message, CreatedAt: now},
		{Id: uuid.New(), SessionId: sessionId, UserId: userId, Role: "assistant", Content: st.ResponseText, CreatedAt: now.Add(time.Millisecond)},
	}
	for _, record := range records {
		if err := s.chatMessageRepository.Create(ctx, record); err != nil {
			s.logger.Warn("assistant", "Failed to persist chat message", map[string]interface{}{
				"session_id": sessionId,
				"role":       record.Role,
				"error":      err.Error(),
			})
		}
	}
}

func (s *assistantService) GetChatHistory(ctx context.Context, sessionId string) (*dto.ChatHistoryResponse, error) {
	messages, err := s.chatMessageRepository.FindBySessionId(ctx, sessionId, historyLimit)
	if err != nil {
		return nil, err
	}

	history := make([]dto.ChatHistoryMessage, 0, len(messages))
	for _, msg := range messages {
		history = append(history, dto.ChatHistoryMessage{
			Role:      msg.Role,
			Content:   msg.Content,
			CreatedAt: msg.CreatedAt,
		})
	}

	return &dto.ChatHistoryResponse{
		SessionId: sessionId,
		Messages:  history,
	}, nil
}

// HealthCheck reports per-component status. A broken component marks
// the service degraded, not down: fallback replies still work without
// the document index.
func (s *assistantService) HealthCheck(ctx context.Context) *dto.HealthResponse {
	components := map[string]string{
		"sessions": "ok",
	}
	status := "ok"

	if _, err := s.chunkRepository.Count(ctx); err != nil {
		components["document_index"] = "unavailable"
		status = "degraded"
	} else {
		components["document_index"] = "ok"
	}

	probeCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if _, err := s.embedder.Embed(probeCtx, "ping"); err != nil {
		components["embedding_provider"] = "unavailable"
		status = "degraded"
	} else {
		components["embedding_provider"] = "ok"
	}

	llmCtx, cancelLLM := context.WithTimeout(ctx, 2*time.Second)
	defer cancelLLM()
	if _, err := s.generator.Generate(llmCtx, "ping", llm.WithMaxTokens(1)); err != nil {
		components["llm_provider"] = "unavailable"
		status = "degraded"
	} else {
		components["llm_provider"] = "ok"
	}

	return &dto.HealthResponse{
		Status:     status,
		Components: components,
	}
}
