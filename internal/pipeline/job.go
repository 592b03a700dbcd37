package pipeline

import (
	"github.com/google/uuid"

	"github.com/nao1215/versioncompare/internal/model"
)

// Job carries one comparison through the pipeline.
type Job struct {
	// ID identifies the job in log output.
	ID string

	// URLs are the base API URLs of the first and second wiki, indexed by
	// model.Side.
	URLs [2]string

	// Options controls filtering in the compare step.
	Options model.CompareOptions

	// Sites are set by the fetch steps, indexed by model.Side.
	Sites [2]*model.SiteInfo

	// Comparison is set by the compare step.
	Comparison *model.Comparison

	// Err is the error of the step that stopped the pipeline.
	Err error

	// PerformedSteps lists the names of the steps that completed.
	PerformedSteps []string
}

// NewJob creates a job comparing url1 with url2.
func NewJob(url1, url2 string, opts model.CompareOptions) *Job {
	return &Job{
		ID:      uuid.New().String(),
		URLs:    [2]string{url1, url2},
		Options: opts,
	}
}

// URL returns the URL of one side.
func (j *Job) URL(side model.Side) string {
	return j.URLs[side]
}

// Site returns the fetched record of one side, or nil.
func (j *Job) Site(side model.Side) *model.SiteInfo {
	return j.Sites[side]
}
