package bootstrap

import (
	"log"

	"interview-content-be/internal/config"
	"interview-content-be/internal/constant"
	"interview-content-be/internal/controller"
	"interview-content-be/internal/pkg/logger"
	"interview-content-be/internal/repository/unitofwork"
	"interview-content-be/internal/service"
	"interview-content-be/pkg/llm/factory"
	"interview-content-be/pkg/sanitizer"
	"interview-content-be/pkg/synthesis"

	pktNats "interview-content-be/pkg/nats"

	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	InterviewController  controller.IInterviewController
	GenerationController controller.IGenerationController
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	contentSynthesizer := synthesis.NewSynthesizer(llmProvider, cfg.Ai.Model)
	answerSanitizer := sanitizer.New(constant.MaskToken)

	// 3. Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// 4. Services
	interviewService := service.NewInterviewService(
		uowFactory,
		answerSanitizer,
		contentSynthesizer,
		sysLogger,
		natsPub,
	)
	generationService := service.NewGenerationService(
		uowFactory,
		contentSynthesizer,
		sysLogger,
		natsPub,
	)

	// 5. Controllers
	return &Container{
		InterviewController:  controller.NewInterviewController(interviewService),
		GenerationController: controller.NewGenerationController(generationService),
	}
}
