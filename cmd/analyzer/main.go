// Command analyzer runs the analysis pipeline against a local PDF and prints
// the summary, without the HTTP server or the result store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"findoc-analyzer/internal/agent"
	"findoc-analyzer/internal/config"
	"findoc-analyzer/internal/extract"
	"findoc-analyzer/internal/llm"
	"findoc-analyzer/internal/model"
	"findoc-analyzer/internal/pipeline"
)

func main() {
	query := flag.String("query", "Analyze this financial document", "analysis query")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: analyzer [-query <text>] <document.pdf>")
		os.Exit(2)
	}
	filePath := flag.Arg(0)

	cfg := config.Load()

	extractor := extract.NewPDFExtractor()
	readTool := agent.NewReadDocumentTool(extractor)
	investmentTool := agent.NewInvestmentAnalysisTool()
	riskTool := agent.NewRiskAssessmentTool()

	analyst := agent.NewFinancialAnalyst(readTool, investmentTool)
	riskAssessor := agent.NewRiskAssessor(riskTool)
	verifier := agent.NewVerifier(readTool)

	client := llm.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.OpenAIAPIKey)
	stages := pipeline.DefaultStages(analyst, riskAssessor, verifier, readTool, investmentTool, riskTool)
	orchestrator, err := pipeline.NewOrchestrator(client, stages, cfg.StageTimeout)
	if err != nil {
		log.Fatalf("failed to build pipeline: %v", err)
	}

	summary, err := orchestrator.Run(context.Background(), model.Context{
		Query:    *query,
		FilePath: filePath,
	})
	if err != nil {
		log.Fatalf("analysis failed: %v", err)
	}

	fmt.Println(summary)
}
