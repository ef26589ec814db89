package agent

import (
	"context"
	"strings"
	"testing"
)

// fakeReader implements DocumentReader for testing
type fakeReader struct {
	text    string
	lastArg string
}

func (f *fakeReader) Read(path string) (string, error) {
	f.lastArg = path
	return f.text, nil
}

func TestReadDocumentTool_DelegatesToReader(t *testing.T) {
	reader := &fakeReader{text: "extracted report text"}
	tool := NewReadDocumentTool(reader)

	got, err := tool.Run(context.Background(), "/tmp/report.pdf")
	if err != nil {
		t.Fatalf("read tool failed: %v", err)
	}
	if got != "extracted report text" {
		t.Errorf("unexpected tool output: %q", got)
	}
	if reader.lastArg != "/tmp/report.pdf" {
		t.Errorf("reader called with %q", reader.lastArg)
	}
	if tool.Input() != InputFilePath {
		t.Error("read tool should take a file path input")
	}
}

func TestStubTools_InputIndependent(t *testing.T) {
	ctx := context.Background()
	tools := []Tool{
		NewInvestmentAnalysisTool(),
		NewRiskAssessmentTool(),
	}

	for _, tool := range tools {
		t.Run(tool.Name(), func(t *testing.T) {
			a, err := tool.Run(ctx, "Revenue: $10B, strong quarter")
			if err != nil {
				t.Fatalf("tool failed: %v", err)
			}
			b, err := tool.Run(ctx, "completely different input")
			if err != nil {
				t.Fatalf("tool failed: %v", err)
			}
			if a != b {
				t.Errorf("output should not depend on input:\n%q\nvs\n%q", a, b)
			}
			if a == "" {
				t.Error("stub output should not be empty")
			}
			if tool.Input() != InputDocumentText {
				t.Error("analysis tools should take document text input")
			}
		})
	}
}

func TestAgentToolsets(t *testing.T) {
	readTool := NewReadDocumentTool(&fakeReader{})
	investmentTool := NewInvestmentAnalysisTool()
	riskTool := NewRiskAssessmentTool()

	analyst := NewFinancialAnalyst(readTool, investmentTool)
	if !analyst.HasTool(readTool.Name()) || !analyst.HasTool(investmentTool.Name()) {
		t.Error("analyst should hold the read and investment tools")
	}
	if analyst.HasTool(riskTool.Name()) {
		t.Error("analyst should not hold the risk tool")
	}

	riskAssessor := NewRiskAssessor(riskTool)
	if !riskAssessor.HasTool(riskTool.Name()) {
		t.Error("risk assessor should hold the risk tool")
	}

	verifier := NewVerifier(readTool)
	if !verifier.HasTool(readTool.Name()) {
		t.Error("verifier should hold the read tool")
	}
}

func TestAgentSystemPrompt(t *testing.T) {
	analyst := NewFinancialAnalyst(NewReadDocumentTool(&fakeReader{}), NewInvestmentAnalysisTool())

	prompt := analyst.SystemPrompt()
	for _, want := range []string{analyst.Role, analyst.Goal, analyst.Backstory} {
		if !strings.Contains(prompt, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}
}
