// Package pipeline runs the fixed sequence of analysis stages over one
// uploaded document.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"findoc-analyzer/internal/agent"
	"findoc-analyzer/internal/model"
)

// Completer is the LLM capability the orchestrator drives. It is injected at
// construction; the orchestrator never reaches for a shared client.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// DefaultStageTimeout bounds each stage's LLM call when no timeout is
// configured. A hung provider call fails the stage instead of hanging the
// request forever.
const DefaultStageTimeout = 2 * time.Minute

// Orchestrator runs the analysis stages strictly in order, once per
// invocation. No stage is retried, skipped, or parallelized; each stage sees
// the textual output of every stage before it and nothing else.
type Orchestrator struct {
	llm          Completer
	stages       []Stage
	stageTimeout time.Duration
}

// NewOrchestrator validates the stage definitions and builds an orchestrator.
func NewOrchestrator(llm Completer, stages []Stage, stageTimeout time.Duration) (*Orchestrator, error) {
	if llm == nil {
		return nil, fmt.Errorf("pipeline: nil completer")
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("pipeline: no stages defined")
	}
	for i := range stages {
		if err := stages[i].Validate(); err != nil {
			return nil, err
		}
	}
	if stageTimeout <= 0 {
		stageTimeout = DefaultStageTimeout
	}
	return &Orchestrator{llm: llm, stages: stages, stageTimeout: stageTimeout}, nil
}

// Run executes every stage in order and returns the final stage's text.
// Any stage failure aborts the run; there is no partial-result recovery.
func (o *Orchestrator) Run(ctx context.Context, pc model.Context) (string, error) {
	start := time.Now()
	log.Printf("🚀 Starting analysis pipeline for %s", pc.FilePath)

	var results []model.StageResult
	for _, st := range o.stages {
		stageStart := time.Now()
		log.Printf("➡️ Stage %q starting", st.Name)

		stageCtx, cancel := context.WithTimeout(ctx, o.stageTimeout)
		text, err := o.runStage(stageCtx, st, pc, results)
		cancel()
		if err != nil {
			log.Printf("❌ Stage %q failed: %v", st.Name, err)
			return "", fmt.Errorf("stage %q: %w", st.Name, err)
		}

		results = append(results, model.StageResult{StageName: st.Name, Text: text})
		log.Printf("✅ Stage %q completed in %v", st.Name, time.Since(stageStart))
	}

	log.Printf("🏁 Pipeline completed in %v", time.Since(start))
	return results[len(results)-1].Text, nil
}

// runStage renders the stage instruction, collects its tool outputs, and
// makes one LLM call grounded on the prior stages' text.
func (o *Orchestrator) runStage(ctx context.Context, st Stage, pc model.Context, prior []model.StageResult) (string, error) {
	var prompt strings.Builder
	prompt.WriteString(st.Render(pc))

	priorText := joinResults(prior)
	for _, tool := range st.Tools {
		input := pc.FilePath
		if tool.Input() == agent.InputDocumentText {
			input = priorText
		}
		out, err := tool.Run(ctx, input)
		if err != nil {
			return "", fmt.Errorf("tool %q: %w", tool.Name(), err)
		}
		prompt.WriteString("\n\n[")
		prompt.WriteString(tool.Name())
		prompt.WriteString(" output]\n")
		prompt.WriteString(out)
	}

	if priorText != "" {
		prompt.WriteString("\n\nContext from previous steps:\n")
		prompt.WriteString(priorText)
	}

	prompt.WriteString("\n\nExpected output:\n")
	prompt.WriteString(st.ExpectedOutput)

	return o.llm.Complete(ctx, st.Agent.SystemPrompt(), prompt.String())
}

// joinResults concatenates prior stage outputs as grounding text.
func joinResults(results []model.StageResult) string {
	if len(results) == 0 {
		return ""
	}
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = fmt.Sprintf("[%s]\n%s", r.StageName, r.Text)
	}
	return strings.Join(parts, "\n\n")
}
