package pipeline

import (
	"fmt"
	"strings"

	"findoc-analyzer/internal/agent"
	"findoc-analyzer/internal/model"
)

// Stage is one step of the analysis pipeline: an instruction for an agent,
// the tools the agent may use while carrying it out, and an advisory contract
// for what the output should look like. Stages are built once at startup and
// never mutated.
type Stage struct {
	Name           string
	Description    string // instruction template, may reference {query} and {file_path}
	ExpectedOutput string
	Agent          *agent.Agent
	Tools          []agent.Tool
}

// Render substitutes the pipeline context into the stage instruction.
func (s *Stage) Render(pc model.Context) string {
	return strings.NewReplacer(
		"{query}", pc.Query,
		"{file_path}", pc.FilePath,
	).Replace(s.Description)
}

// Validate checks that every tool the stage declares is part of its agent's
// toolset.
func (s *Stage) Validate() error {
	for _, t := range s.Tools {
		if !s.Agent.HasTool(t.Name()) {
			return fmt.Errorf("stage %q uses tool %q not held by agent %q", s.Name, t.Name(), s.Agent.Role)
		}
	}
	return nil
}

// DefaultStages builds the fixed four-stage analysis sequence:
// read → investment analysis → risk assessment → verification.
// The order is authoritative; there is no reordering or branching.
func DefaultStages(
	analyst, riskAssessor, verifier *agent.Agent,
	readTool, investmentTool, riskTool agent.Tool,
) []Stage {
	return []Stage{
		{
			Name: "analyze_financial_document",
			Description: `You are given a financial PDF document stored at the following path:

{file_path}

Steps:
1. Read the financial document using the Read Financial Document tool.
2. Identify key financial metrics such as revenue, profit, and guidance.
3. Summarize the company's financial performance.

IMPORTANT:
- Keep the final response concise.
- Limit the summary to **5-7 bullet points**.
- Do NOT exceed **200 words**.

User Query:
{query}`,
			ExpectedOutput: `A concise financial summary containing:
- Company overview (1-2 lines)
- Key financial highlights (5-7 bullet points)`,
			Agent: analyst,
			Tools: []agent.Tool{readTool},
		},
		{
			Name: "investment_analysis",
			Description: `Based on the extracted financial data, provide high-level investment insights.

Steps:
1. Interpret financial performance.
2. Highlight potential growth opportunities.
3. Avoid speculative or unethical investment advice.`,
			ExpectedOutput: `Investment insights including:
- Growth outlook
- Strengths and weaknesses
- Long-term perspective`,
			Agent: analyst,
			Tools: []agent.Tool{investmentTool},
		},
		{
			Name: "risk_assessment",
			Description: `Assess potential risks based on the financial document.

Steps:
1. Identify market, operational, and regulatory risks.
2. Provide a balanced and realistic risk assessment.`,
			ExpectedOutput: `Risk assessment including:
- Key risk factors
- Risk severity (Low / Medium / High)
- Mitigation considerations`,
			Agent: riskAssessor,
			Tools: []agent.Tool{riskTool},
		},
		{
			Name: "verification",
			Description: `Verify whether the uploaded document at {file_path} is a valid financial document.

Steps:
1. Check document structure and content.
2. Confirm relevance to financial reporting.`,
			ExpectedOutput: `Verification result:
- Document type
- Confirmation of financial relevance`,
			Agent: verifier,
			Tools: []agent.Tool{readTool},
		},
	}
}
