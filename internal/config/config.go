package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Ai        AIConfig
	Retrieval RetrievalConfig
	Ingestion IngestionConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	IngestLogFilePath  string
	CorsAllowedOrigins string
	RequestTimeoutSec  int
}

type DatabaseConfig struct {
	// Connection is a postgres DSN. Empty means in-memory mode: the
	// vector index and all stores live in process memory.
	Connection string
}

type AIConfig struct {
	LLMProvider        string // "ollama" or "huggingface"
	LLMModel           string
	LLMBaseURL         string
	HuggingFaceAPIKey  string
	LLMMaxRetries      int
	EmbeddingProvider  string // "ollama"
	EmbeddingBaseURL   string
	EmbeddingModel     string
	EmbeddingDimension int
}

type RetrievalConfig struct {
	Limit         int
	MinSimilarity float64
}

type IngestionConfig struct {
	TopicName string
	ChunkSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			IngestLogFilePath:  getEnv("INGEST_LOG_FILE_PATH", "logs/ingest.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RequestTimeoutSec:  getEnvAsInt("REQUEST_TIMEOUT_SECONDS", 60),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:        getEnv("LLM_PROVIDER", "ollama"),
			LLMModel:           getEnv("LLM_MODEL", "llama3"),
			LLMBaseURL:         getEnv("LLM_BASE_URL", "http://localhost:11434"),
			HuggingFaceAPIKey:  getEnv("HUGGINGFACE_API_KEY", ""),
			LLMMaxRetries:      getEnvAsInt("LLM_MAX_RETRIES", 3),
			EmbeddingProvider:  getEnv("EMBEDDING_PROVIDER", "ollama"),
			EmbeddingBaseURL:   getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			EmbeddingModel:     getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			EmbeddingDimension: getEnvAsInt("EMBEDDING_DIMENSION", 1536),
		},
		Retrieval: RetrievalConfig{
			Limit:         getEnvAsInt("RETRIEVAL_LIMIT", 5),
			MinSimilarity: getEnvAsFloat("RETRIEVAL_MIN_SIMILARITY", 0.7),
		},
		Ingestion: IngestionConfig{
			TopicName: getEnv("INGEST_DOCUMENT_TOPIC_NAME", "INGEST_DOCUMENT"),
			ChunkSize: getEnvAsInt("INGEST_CHUNK_SIZE", 1000),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
