// Package interview generates tailored interview questions for a cluster of
// similar job postings.
package interview

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jobhunter-ai/jobhunter/internal/ai"
	"github.com/jobhunter-ai/jobhunter/internal/cluster"
	"github.com/jobhunter-ai/jobhunter/internal/jobs"

	"go.uber.org/zap"
)

const questionsTemplate = `You are an interview coach. For companies: %s, hiring for role: %s,
generate 5 tailored technical interview questions.`

type Coach struct {
	generator ai.Generator
	logger    *zap.Logger
}

func New(generator ai.Generator, logger *zap.Logger) *Coach {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Coach{generator: generator, logger: logger}
}

// Questions produces interview questions for one group of postings. The
// prompt names the distinct companies in the group and the role of its first
// posting as the representative one.
func (c *Coach) Questions(ctx context.Context, group *cluster.Group) ([]string, error) {
	if group == nil || len(group.Postings) == 0 {
		return nil, errors.New("group has no postings")
	}

	companies := (&jobs.Postings{Items: group.Postings}).Companies()
	role := group.Postings[0].DisplayRole()

	prompt := fmt.Sprintf(questionsTemplate, strings.Join(companies, ", "), role)

	raw, err := c.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generate interview questions: %w", err)
	}

	questions := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}

	c.logger.Debug("generated interview questions",
		zap.Int("group", group.ID),
		zap.Int("count", len(questions)),
	)

	return questions, nil
}
