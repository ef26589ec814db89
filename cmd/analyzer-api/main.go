package main

import (
	"log"

	"findoc-analyzer/internal/agent"
	"findoc-analyzer/internal/api"
	"findoc-analyzer/internal/api/handler"
	"findoc-analyzer/internal/config"
	"findoc-analyzer/internal/extract"
	"findoc-analyzer/internal/llm"
	"findoc-analyzer/internal/pipeline"
	"findoc-analyzer/internal/store"
	"findoc-analyzer/pkg/router"
	"findoc-analyzer/pkg/utils"
)

// @title Financial Document Analyzer API
// @version 1.0
// @description Multi-agent analysis pipeline for financial PDF documents
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Init DB
	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatalf("failed to init database: %v", err)
	}

	// Capability tools
	extractor := extract.NewPDFExtractor()
	readTool := agent.NewReadDocumentTool(extractor)
	investmentTool := agent.NewInvestmentAnalysisTool()
	riskTool := agent.NewRiskAssessmentTool()

	// Agents
	analyst := agent.NewFinancialAnalyst(readTool, investmentTool)
	riskAssessor := agent.NewRiskAssessor(riskTool)
	verifier := agent.NewVerifier(readTool)

	// Pipeline
	client := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAIAPIKey)
	stages := pipeline.DefaultStages(analyst, riskAssessor, verifier, readTool, investmentTool, riskTool)
	orchestrator, err := pipeline.NewOrchestrator(client, stages, cfg.StageTimeout)
	if err != nil {
		log.Fatalf("failed to build pipeline: %v", err)
	}

	// HTTP surface
	uploads := utils.NewUploadManager(cfg.UploadDir)
	h := handler.NewAnalyzeHandler(orchestrator, uploads, client.Model())

	r := router.New()
	api.RegisterRoutes(r, h)
	r.Start(cfg.Addr)
}
