// Package enhance implements the llm-backed resume improvement steps:
// rewriting for a target role, detecting skill gaps against a job
// description, and suggesting upskilling subfields for those gaps.
package enhance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jobhunter-ai/jobhunter/internal/ai"

	"go.uber.org/zap"
)

// Enhancement is the combined outcome of a full enhancement pass.
type Enhancement struct {
	ImprovedResume string
	Gaps           []string
	GapsRaw        string
	UpskillPlan    string
}

type Enhancer struct {
	generator ai.Generator
	logger    *zap.Logger
}

func New(generator ai.Generator, logger *zap.Logger) *Enhancer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Enhancer{generator: generator, logger: logger}
}

// ImproveResume rewrites the resume for the target role.
func (e *Enhancer) ImproveResume(ctx context.Context, resumeText, targetRole string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", errors.New("resume text must not be empty")
	}

	prompt := fmt.Sprintf(improveResumeTemplate, targetRole, resumeText)
	improved, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("improve resume: %w", err)
	}

	return improved, nil
}

// DetectGaps compares the resume to the job description and returns the
// model's gap list: one entry per non-blank response line, plus the raw
// response for reporting.
func (e *Enhancer) DetectGaps(ctx context.Context, resumeText, jobDescription string) ([]string, string, error) {
	prompt := fmt.Sprintf(detectGapsTemplate, resumeText, jobDescription)
	raw, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, "", fmt.Errorf("detect gaps: %w", err)
	}

	gaps := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		gaps = append(gaps, line)
	}

	return gaps, raw, nil
}

// SuggestSubfields asks for learning subtopics for the given missing skills.
func (e *Enhancer) SuggestSubfields(ctx context.Context, gaps []string) (string, error) {
	if len(gaps) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf(suggestSubfieldsTemplate, strings.Join(gaps, ", "))
	plan, err := e.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("suggest subfields: %w", err)
	}

	return plan, nil
}

// Enhance runs the full pass: improve the resume, detect gaps on the
// improved text, then suggest subfields for the gaps.
func (e *Enhancer) Enhance(ctx context.Context, resumeText, jobDescription, targetRole string) (*Enhancement, error) {
	improved, err := e.ImproveResume(ctx, resumeText, targetRole)
	if err != nil {
		return nil, err
	}

	e.logger.Info("resume improved", zap.Int("length", len(improved)))

	gaps, gapsRaw, err := e.DetectGaps(ctx, improved, jobDescription)
	if err != nil {
		return nil, err
	}

	e.logger.Info("gaps detected", zap.Int("count", len(gaps)))

	plan, err := e.SuggestSubfields(ctx, gaps)
	if err != nil {
		return nil, err
	}

	return &Enhancement{
		ImprovedResume: improved,
		Gaps:           gaps,
		GapsRaw:        gapsRaw,
		UpskillPlan:    plan,
	}, nil
}
