package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/nao1215/versioncompare/internal/compare"
	"github.com/nao1215/versioncompare/internal/model"
	"github.com/nao1215/versioncompare/internal/report"
	"github.com/nao1215/versioncompare/internal/siteinfo"
)

// ErrNotReady is returned by a step whose input was not produced by an
// earlier step.
var ErrNotReady = errors.New("pipeline step input missing")

// SiteFetcher retrieves and normalizes one wiki's siteinfo.
// *siteinfo.Fetcher implements it.
type SiteFetcher interface {
	Fetch(ctx context.Context, baseURL string) (*model.SiteInfo, error)
}

// FetchStep fetches the wiki on one side of the job.
type FetchStep struct {
	fetcher SiteFetcher
	side    model.Side
}

// NewFetchStep creates a step fetching the given side.
func NewFetchStep(fetcher SiteFetcher, side model.Side) *FetchStep {
	return &FetchStep{fetcher: fetcher, side: side}
}

// Name returns "fetch_left" or "fetch_right".
func (s *FetchStep) Name() string {
	return "fetch_" + s.side.String()
}

// Do fetches the side's URL. Failures are returned as *siteinfo.FetchError
// naming the URL.
func (s *FetchStep) Do(ctx context.Context, job *Job) error {
	url := job.URL(s.side)
	info, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return &siteinfo.FetchError{URL: url, Err: err}
	}
	job.Sites[s.side] = info
	return nil
}

// CompareStep compares the two fetched wikis.
type CompareStep struct{}

// NewCompareStep creates a compare step.
func NewCompareStep() *CompareStep {
	return &CompareStep{}
}

// Name returns the step name.
func (s *CompareStep) Name() string {
	return "compare"
}

// Do sets job.Comparison.
func (s *CompareStep) Do(_ context.Context, job *Job) error {
	left, right := job.Site(model.SideLeft), job.Site(model.SideRight)
	if left == nil || right == nil {
		return fmt.Errorf("%w: both sites must be fetched before comparing", ErrNotReady)
	}
	job.Comparison = compare.Compare(left, right, job.Options)
	return nil
}

// RenderStep writes the comparison with a report writer.
type RenderStep struct {
	writer report.Writer
}

// NewRenderStep creates a step writing to w.
func NewRenderStep(w report.Writer) *RenderStep {
	return &RenderStep{writer: w}
}

// Name returns the step name.
func (s *RenderStep) Name() string {
	return "render"
}

// Do writes job.Comparison.
func (s *RenderStep) Do(_ context.Context, job *Job) error {
	if job.Comparison == nil {
		return fmt.Errorf("%w: nothing to render", ErrNotReady)
	}
	if _, err := s.writer.Write(job.Comparison); err != nil {
		return fmt.Errorf("render comparison: %w", err)
	}
	return nil
}

// DefaultPipeline creates the fetch, fetch, compare, render pipeline.
// A nil writer leaves out the render step.
func DefaultPipeline(fetcher SiteFetcher, w report.Writer, opts ...Option) *Pipeline {
	p := New(opts...)
	p.AddSteps(
		NewFetchStep(fetcher, model.SideLeft),
		NewFetchStep(fetcher, model.SideRight),
		NewCompareStep(),
	)
	if w != nil {
		p.AddStep(NewRenderStep(w))
	}
	return p
}
