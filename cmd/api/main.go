package main

import (
	"log"
	"log/slog"
	"os"

	"geolens/db"
	"geolens/internal/agent"
	"geolens/internal/handler"
	"geolens/internal/logging"
	"geolens/internal/repository"
	"geolens/internal/session"
	"geolens/pkg/geo"
	"geolens/pkg/llm"
	"geolens/pkg/news"
	"geolens/pkg/official"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()
	logging.Init()

	var archive handler.RunArchive
	if os.Getenv("DATABASE_URL") != "" {
		if err := db.Connect(); err != nil {
			log.Fatalf("error connecting to DB: %v", err)
		}
		defer db.Close()
		archive = repository.NewRunRepository(db.DB)
	} else {
		slog.Info("DATABASE_URL not set, run archive disabled")
	}

	var sessions session.Store
	if os.Getenv("REDIS_URL") != "" {
		if err := db.ConnectRedis(); err != nil {
			log.Fatalf("error connecting to redis: %v", err)
		}
		defer db.CloseRedis()
		sessions = session.NewRedisStore(db.Redis)
	} else {
		slog.Info("REDIS_URL not set, using in-memory sessions")
		sessions = session.NewMemoryStore()
	}

	openaiClient := llm.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))

	var enricher llm.Enricher = openaiClient
	if os.Getenv("LLM_PROVIDER") == "anthropic" {
		enricher = llm.NewAnthropicClient(os.Getenv("ANTHROPIC_API_KEY"))
	}

	geocoder := geo.NewClient()
	collector := news.NewCollector(os.Getenv("NEWS_LANG"), os.Getenv("NEWS_COUNTRY"))
	provider := official.NewProvider()

	newsAgent := agent.NewNewsAgent(collector, enricher)
	uploadAgent := agent.NewUploadAgent(enricher, openaiClient)
	officialAgent := agent.NewOfficialAgent(geocoder, provider)
	contrastAgent := agent.NewContrastAgent(enricher)

	agentHandler := handler.NewAgentHandler(newsAgent, uploadAgent, officialAgent, contrastAgent, sessions, archive)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "X-Session-ID"},
	}))

	r.POST("/agents/news", agentHandler.RunNews)
	r.POST("/agents/uploads", agentHandler.RunUploads)
	r.POST("/agents/official", agentHandler.RunOfficial)
	r.POST("/contrast", agentHandler.RunContrast)
	r.GET("/runs", agentHandler.GetRuns)
	r.GET("/health", agentHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err := r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
