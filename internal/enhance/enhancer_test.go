package enhance

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubGenerator struct {
	responses []string
	err       error
	prompts   []string
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	next := s.responses[0]
	s.responses = s.responses[1:]
	return next, nil
}

func TestImproveResumeSendsRoleAndResume(t *testing.T) {
	stub := &stubGenerator{responses: []string{"improved text"}}
	enhancer := New(stub, zap.NewNop())

	improved, err := enhancer.ImproveResume(context.Background(), "my resume", "Machine Learning Engineer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if improved != "improved text" {
		t.Fatalf("unexpected result: %q", improved)
	}

	prompt := stub.prompts[0]
	if !strings.Contains(prompt, "Machine Learning Engineer") {
		t.Fatalf("prompt is missing the target role: %s", prompt)
	}
	if !strings.Contains(prompt, "my resume") {
		t.Fatalf("prompt is missing the resume text: %s", prompt)
	}
}

func TestImproveResumeRejectsEmptyResume(t *testing.T) {
	enhancer := New(&stubGenerator{}, zap.NewNop())

	if _, err := enhancer.ImproveResume(context.Background(), "  ", "role"); err == nil {
		t.Fatal("expected error for empty resume")
	}
}

func TestDetectGapsSplitsLines(t *testing.T) {
	stub := &stubGenerator{responses: []string{"- Kubernetes\n\n  - Terraform  \n"}}
	enhancer := New(stub, zap.NewNop())

	gaps, raw, err := enhancer.DetectGaps(context.Background(), "resume", "job description")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %d: %v", len(gaps), gaps)
	}
	if gaps[0] != "- Kubernetes" || gaps[1] != "- Terraform" {
		t.Fatalf("unexpected gaps: %v", gaps)
	}
	if raw == "" {
		t.Fatal("expected raw response to be returned")
	}
}

func TestSuggestSubfieldsSkipsEmptyGaps(t *testing.T) {
	stub := &stubGenerator{}
	enhancer := New(stub, zap.NewNop())

	plan, err := enhancer.SuggestSubfields(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if plan != "" {
		t.Fatalf("expected empty plan, got %q", plan)
	}
	if len(stub.prompts) != 0 {
		t.Fatal("expected no generator call for empty gaps")
	}
}

func TestEnhanceRunsAllSteps(t *testing.T) {
	stub := &stubGenerator{responses: []string{
		"improved resume",
		"gap one\ngap two",
		"learning plan",
	}}
	enhancer := New(stub, zap.NewNop())

	result, err := enhancer.Enhance(context.Background(), "resume", "job description", "role")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.ImprovedResume != "improved resume" {
		t.Fatalf("unexpected improved resume: %q", result.ImprovedResume)
	}
	if len(result.Gaps) != 2 {
		t.Fatalf("expected 2 gaps, got %v", result.Gaps)
	}
	if result.UpskillPlan != "learning plan" {
		t.Fatalf("unexpected plan: %q", result.UpskillPlan)
	}

	// Gap detection must run against the improved resume, not the original.
	if !strings.Contains(stub.prompts[1], "improved resume") {
		t.Fatalf("gap prompt should contain the improved resume: %s", stub.prompts[1])
	}
	if !strings.Contains(stub.prompts[2], "gap one, gap two") {
		t.Fatalf("subfield prompt should join the gaps: %s", stub.prompts[2])
	}
}

func TestEnhancePropagatesGeneratorError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("quota exceeded")}
	enhancer := New(stub, zap.NewNop())

	if _, err := enhancer.Enhance(context.Background(), "resume", "jd", "role"); err == nil {
		t.Fatal("expected error from generator")
	}
}
