package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/entity"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/pkg/embedding"
	"campus-assistant-be/pkg/utils"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const chunkOverlap = 100

// IIndexerService consumes ingest messages and turns documents into
// embedded, searchable chunks. IndexDocument is also callable directly
// for synchronous seeding.
type IIndexerService interface {
	Consume(ctx context.Context) error
	IndexDocument(ctx context.Context, msg dto.IngestDocumentMessage) error
}

type indexerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	chunkRepository   contract.DocumentChunkRepository
	embeddingProvider embedding.Provider
	chunkSize         int
	logger            logger.ILogger
}

func NewIndexerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	chunkRepository contract.DocumentChunkRepository,
	embeddingProvider embedding.Provider,
	chunkSize int,
	log logger.ILogger,
) IIndexerService {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	return &indexerService{
		pubSub:            pubSub,
		topicName:         topicName,
		chunkRepository:   chunkRepository,
		embeddingProvider: embeddingProvider,
		chunkSize:         chunkSize,
		logger:            log,
	}
}

func (s *indexerService) Consume(ctx context.Context) error {
	messages, err := s.pubSub.Subscribe(ctx, s.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			s.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (s *indexerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.IngestDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		s.logger.Error("indexer", "Failed to unmarshal ingest message", map[string]interface{}{
			"error": err.Error(),
		})
		// Malformed payloads would loop forever on redelivery
		msg.Ack()
		return
	}

	if err := s.IndexDocument(ctx, payload); err != nil {
		s.logger.Error("indexer", "Failed to index document", map[string]interface{}{
			"document_id": payload.DocumentId,
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}

func (s *indexerService) IndexDocument(ctx context.Context, payload dto.IngestDocumentMessage) error {
	// Re-ingesting a document replaces its chunks
	if err := s.chunkRepository.DeleteByDocumentId(ctx, payload.DocumentId); err != nil {
		return fmt.Errorf("clear previous chunks: %w", err)
	}

	parts := utils.SplitText(payload.Content, s.chunkSize, chunkOverlap)
	if len(parts) == 0 {
		return fmt.Errorf("document %s has no content", payload.DocumentId)
	}

	chunks := make([]*entity.DocumentChunk, 0, len(parts))
	for i, part := range parts {
		vector, err := s.embeddingProvider.Embed(ctx, part)
		if err != nil {
			return fmt.Errorf("embed chunk %d: %w", i, err)
		}
		chunks = append(chunks, &entity.DocumentChunk{
			Id:            uuid.New(),
			DocumentId:    payload.DocumentId,
			DocumentTitle: payload.Title,
			Content:       part,
			ChunkIndex:    i,
			Locator:       fmt.Sprintf("section %d", i+1),
			DocumentType:  payload.DocumentType,
			Faculty:       payload.Faculty,
			AcademicYear:  payload.AcademicYear,
			Embedding:     vector,
			CreatedAt:     time.Now(),
		})
	}

	if err := s.chunkRepository.CreateBulk(ctx, chunks); err != nil {
		return fmt.Errorf("store chunks: %w", err)
	}

	s.logger.Info("indexer", "Document indexed", map[string]interface{}{
		"document_id": payload.DocumentId,
		"title":       payload.Title,
		"chunks":      len(chunks),
	})
	return nil
}
