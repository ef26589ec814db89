package agent

import "strings"

// Agent is a capability holder: an LLM-backed role with a fixed set of tools.
// Agents are built once at startup and shared read-only across requests.
type Agent struct {
	Role      string
	Goal      string
	Backstory string
	Tools     []Tool
}

// HasTool reports whether the agent's toolset includes the named tool. Stages
// may only invoke tools their agent holds.
func (a *Agent) HasTool(name string) bool {
	for _, t := range a.Tools {
		if t.Name() == name {
			return true
		}
	}
	return false
}

// SystemPrompt renders the agent's role, goal and backstory as the system
// message for its LLM calls.
func (a *Agent) SystemPrompt() string {
	var sb strings.Builder
	sb.WriteString("You are a ")
	sb.WriteString(a.Role)
	sb.WriteString(".\n")
	sb.WriteString(a.Backstory)
	sb.WriteString("\nYour goal: ")
	sb.WriteString(a.Goal)
	return sb.String()
}

// NewFinancialAnalyst builds the senior financial analyst agent.
func NewFinancialAnalyst(readTool, investmentTool Tool) *Agent {
	return &Agent{
		Role: "Senior Financial Analyst",
		Goal: "Analyze financial documents and provide concise, structured insights. " +
			"Always keep responses brief, focused, and suitable for executive summaries.",
		Backstory: "You are an experienced financial analyst with deep knowledge of corporate " +
			"financial statements, market trends, and investment fundamentals.",
		Tools: []Tool{readTool, investmentTool},
	}
}

// NewRiskAssessor builds the risk assessment specialist agent.
func NewRiskAssessor(riskTool Tool) *Agent {
	return &Agent{
		Role: "Risk Assessment Specialist",
		Goal: "Identify and explain financial and market risks based on company data.",
		Backstory: "You specialize in identifying market, operational, and regulatory risks " +
			"from financial disclosures.",
		Tools: []Tool{riskTool},
	}
}

// NewVerifier builds the document verification agent.
func NewVerifier(readTool Tool) *Agent {
	return &Agent{
		Role: "Financial Document Verifier",
		Goal: "Verify whether a document is a valid financial report.",
		Backstory: "You ensure documents are relevant financial disclosures " +
			"such as earnings reports, annual reports, or filings.",
		Tools: []Tool{readTool},
	}
}
