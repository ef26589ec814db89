// Package agent defines the capability holders and tools used by the
// analysis pipeline.
package agent

import "context"

// InputKind tells the orchestrator what to feed a tool.
type InputKind int

const (
	// InputFilePath tools receive the path of the uploaded document.
	InputFilePath InputKind = iota
	// InputDocumentText tools receive the text accumulated by prior stages.
	InputDocumentText
)

// Tool is one stateless capability: text in, text out. The read tool takes a
// file path as input; the analysis tools take extracted document text.
type Tool interface {
	Name() string
	Description() string
	Input() InputKind
	Run(ctx context.Context, input string) (string, error)
}

// DocumentReader extracts text from a document on disk.
type DocumentReader interface {
	Read(path string) (string, error)
}

// ReadDocumentTool reads a financial PDF document and returns cleaned text.
type ReadDocumentTool struct {
	reader DocumentReader
}

// NewReadDocumentTool wraps a document reader as a pipeline tool.
func NewReadDocumentTool(reader DocumentReader) *ReadDocumentTool {
	return &ReadDocumentTool{reader: reader}
}

func (t *ReadDocumentTool) Name() string { return "Read Financial Document" }

func (t *ReadDocumentTool) Input() InputKind { return InputFilePath }

func (t *ReadDocumentTool) Description() string {
	return "Reads a financial PDF document and returns cleaned text."
}

func (t *ReadDocumentTool) Run(ctx context.Context, input string) (string, error) {
	return t.reader.Read(input)
}

// InvestmentAnalysisTool provides high-level investment insights.
//
// The output is a fixed template and does not depend on the input; the
// LLM call layered on top is where document-specific analysis happens.
type InvestmentAnalysisTool struct{}

func NewInvestmentAnalysisTool() *InvestmentAnalysisTool { return &InvestmentAnalysisTool{} }

func (t *InvestmentAnalysisTool) Name() string { return "Investment Analysis" }

func (t *InvestmentAnalysisTool) Input() InputKind { return InputDocumentText }

func (t *InvestmentAnalysisTool) Description() string {
	return "Provides high-level investment insights from financial data."
}

func (t *InvestmentAnalysisTool) Run(ctx context.Context, input string) (string, error) {
	return "Investment Analysis:\n" +
		"- Revenue growth appears positive.\n" +
		"- Company shows strong market positioning.\n" +
		"- Long-term investment outlook seems favorable.\n", nil
}

// RiskAssessmentTool identifies financial and market risks. Like the
// investment tool, its output is a fixed template.
type RiskAssessmentTool struct{}

func NewRiskAssessmentTool() *RiskAssessmentTool { return &RiskAssessmentTool{} }

func (t *RiskAssessmentTool) Name() string { return "Risk Assessment" }

func (t *RiskAssessmentTool) Input() InputKind { return InputDocumentText }

func (t *RiskAssessmentTool) Description() string {
	return "Identifies financial and market risks."
}

func (t *RiskAssessmentTool) Run(ctx context.Context, input string) (string, error) {
	return "Risk Assessment:\n" +
		"- Market volatility risk present.\n" +
		"- Regulatory and macroeconomic risks should be monitored.\n" +
		"- No immediate liquidity risk detected.\n", nil
}
