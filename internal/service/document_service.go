package service

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"campus-assistant-be/internal/dto"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"

	"github.com/google/uuid"
)

type IDocumentService interface {
	Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error)
	InitializeDocuments(ctx context.Context, paths []string) error
	Delete(ctx context.Context, documentId uuid.UUID) error
	Stats(ctx context.Context) (*dto.DocumentStatsResponse, error)
}

type documentService struct {
	publisherService IPublisherService
	indexerService   IIndexerService
	chunkRepository  contract.DocumentChunkRepository
	logger           logger.ILogger
}

func NewDocumentService(
	publisherService IPublisherService,
	indexerService IIndexerService,
	chunkRepository contract.DocumentChunkRepository,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		publisherService: publisherService,
		indexerService:   indexerService,
		chunkRepository:  chunkRepository,
		logger:           log,
	}
}

// Ingest queues a document for asynchronous indexing and returns the
// assigned document id immediately.
func (s *documentService) Ingest(ctx context.Context, req *dto.IngestDocumentRequest) (*dto.IngestDocumentResponse, error) {
	msg := dto.IngestDocumentMessage{
		DocumentId:   uuid.New(),
		Title:        req.Title,
		Content:      req.Content,
		DocumentType: req.DocumentType,
		Faculty:      req.Faculty,
		AcademicYear: req.AcademicYear,
	}

	payload, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, fmt.Errorf("queue document for indexing: %w", err)
	}

	s.logger.Info("document", "Document queued for indexing", map[string]interface{}{
		"document_id": msg.DocumentId,
		"title":       msg.Title,
	})

	return &dto.IngestDocumentResponse{
		DocumentId: msg.DocumentId,
		Status:     "queued",
	}, nil
}

// InitializeDocuments indexes a set of local text files synchronously.
// Used at startup seeding; the file name becomes the document title.
func (s *documentService) InitializeDocuments(ctx context.Context, paths []string) error {
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		msg := dto.IngestDocumentMessage{
			DocumentId: uuid.New(),
			Title:      title,
			Content:    string(content),
		}
		if err := s.indexerService.IndexDocument(ctx, msg); err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}
	}
	return nil
}

func (s *documentService) Delete(ctx context.Context, documentId uuid.UUID) error {
	return s.chunkRepository.DeleteByDocumentId(ctx, documentId)
}

func (s *documentService) Stats(ctx context.Context) (*dto.DocumentStatsResponse, error) {
	count, err := s.chunkRepository.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.DocumentStatsResponse{ChunkCount: count}, nil
}
