package match

import (
	"github.com/jobhunter-ai/jobhunter/internal/jobs"

	"go.uber.org/zap"
)

// ResumeSource yields the resume free text from some backing store.
type ResumeSource interface {
	Load() (string, error)
}

// JobSource yields an ordered collection of postings.
type JobSource interface {
	Load() (*jobs.Postings, error)
}

// Finder composes a resume source and a job source with the ranker. Failures
// of either collaborator degrade to an empty result instead of propagating:
// a broken input must not take the whole pipeline down.
type Finder struct {
	resumes ResumeSource
	jobs    JobSource
	logger  *zap.Logger
}

func NewFinder(resumes ResumeSource, source JobSource, logger *zap.Logger) *Finder {
	return &Finder{
		resumes: resumes,
		jobs:    source,
		logger:  logger,
	}
}

// Find loads the resume and the postings, then delegates to Rank.
func (f *Finder) Find(maxResults int) *jobs.Postings {
	resumeText, err := f.resumes.Load()
	if err != nil {
		f.logger.Error("failed to read resume", zap.Error(err))
		return &jobs.Postings{}
	}

	if resumeText == "" {
		f.logger.Error("resume is empty", zap.String("hint", "check the resume file"))
		return &jobs.Postings{}
	}

	postings, err := f.jobs.Load()
	if err != nil {
		f.logger.Error("failed to load job postings", zap.Error(err))
		return &jobs.Postings{}
	}

	if postings.Len() == 0 {
		f.logger.Warn("no job postings loaded")
		return &jobs.Postings{}
	}

	ranked := Rank(postings, resumeText, maxResults)

	f.logger.Info("ranked job postings",
		zap.Int("candidates", postings.Len()),
		zap.Int("returned", ranked.Len()),
	)

	return ranked
}
