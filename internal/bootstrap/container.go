package bootstrap

import (
	"log"
	"time"

	"campus-assistant-be/internal/config"
	"campus-assistant-be/internal/controller"
	"campus-assistant-be/internal/pkg/logger"
	"campus-assistant-be/internal/repository/contract"
	"campus-assistant-be/internal/repository/implementation"
	"campus-assistant-be/internal/repository/memory"
	"campus-assistant-be/internal/service"
	"campus-assistant-be/pkg/embedding"
	"campus-assistant-be/pkg/llm"
	"campus-assistant-be/pkg/llm/factory"
	"campus-assistant-be/pkg/retrieval"
	"campus-assistant-be/pkg/workflow"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AssistantController controller.IAssistantController
	DocumentController  controller.IDocumentController
	ComplaintController controller.IComplaintController

	// Background services (main.go runs these)
	IndexerService  service.IIndexerService
	DocumentService service.IDocumentService

	Logger logger.ILogger
}

// NewContainer wires the whole dependency graph. A nil db selects the
// in-memory repositories; everything else is identical between modes.
func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ingestLogger := logger.NewIsolatedLogger(cfg.App.IngestLogFilePath)

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Providers
	embeddingProvider := embedding.NewOllamaProvider(
		cfg.Ai.EmbeddingBaseURL,
		cfg.Ai.EmbeddingModel,
		cfg.Ai.EmbeddingDimension,
	)
	log.Printf("[INFO] Using Embedding Provider: %s (%s)", cfg.Ai.EmbeddingProvider, cfg.Ai.EmbeddingModel)

	baseProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.LLMBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	llmProvider := llm.NewRetryProvider(baseProvider, uint(cfg.Ai.LLMMaxRetries))
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Repositories
	var (
		chunkRepo     contract.DocumentChunkRepository
		complaintRepo contract.ComplaintRepository
		messageRepo   contract.ChatMessageRepository
	)
	if db != nil {
		chunkRepo = implementation.NewDocumentChunkRepository(db)
		complaintRepo = implementation.NewComplaintRepository(db)
		messageRepo = implementation.NewChatMessageRepository(db)
	} else {
		log.Println("[INFO] No database configured, using in-memory stores")
		chunkRepo = memory.NewDocumentChunkRepository(memory.NewVectorIndex())
		complaintRepo = memory.NewComplaintRepository()
		messageRepo = memory.NewChatMessageRepository()
	}
	sessionRepo := memory.NewSessionRepository()

	// Retrieval
	retrievalService := retrieval.NewService(embeddingProvider, chunkRepo, sysLogger)

	// Complaint intake collaborator
	complaintService := service.NewComplaintService(complaintRepo, sysLogger)

	// Workflow
	engine := workflow.NewEngine(
		workflow.NewClassificationNode(llmProvider, sysLogger),
		workflow.NewDocumentSearchNode(retrievalService, cfg.Retrieval.Limit, cfg.Retrieval.MinSimilarity, sysLogger),
		workflow.NewComplaintIntakeNode(complaintService, sysLogger),
		workflow.NewGeneralResponseNode(llmProvider, sysLogger),
		workflow.NewResponseFormattingNode(llmProvider, sysLogger),
		sysLogger,
	)

	// Services
	assistantService := service.NewAssistantService(
		engine,
		sessionRepo,
		messageRepo,
		chunkRepo,
		embeddingProvider,
		llmProvider,
		time.Duration(cfg.App.RequestTimeoutSec)*time.Second,
		sysLogger,
	)

	publisherService := service.NewPublisherService(pubSub, cfg.Ingestion.TopicName)
	indexerService := service.NewIndexerService(
		pubSub,
		cfg.Ingestion.TopicName,
		chunkRepo,
		embeddingProvider,
		cfg.Ingestion.ChunkSize,
		ingestLogger,
	)
	documentService := service.NewDocumentService(publisherService, indexerService, chunkRepo, sysLogger)

	return &Container{
		AssistantController: controller.NewAssistantController(assistantService),
		DocumentController:  controller.NewDocumentController(documentService),
		ComplaintController: controller.NewComplaintController(complaintService),
		IndexerService:      indexerService,
		DocumentService:     documentService,
		Logger:              sysLogger,
	}
}
