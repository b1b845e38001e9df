package portal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"internhub/internal/model"
)

// ProgressInput is the body for creating or updating a progress log.
type ProgressInput struct {
	ProjectID            model.ID   `json:"projectId" binding:"required"`
	LogDate              model.Date `json:"logDate"`
	CompletionPercentage int        `json:"completionPercentage" binding:"min=0,max=100"`
	Description          string     `json:"description" binding:"required"`
	Achievements         string     `json:"achievements"`
	Challenges           string     `json:"challenges"`
	NextSteps            string     `json:"nextSteps"`
}

// Pools are the course and project catalogues interns pick from.
type Pools struct {
	Courses  []model.Course  `json:"courses"`
	Projects []model.Project `json:"projects"`
}

func (s *Service) MyLearning(ctx context.Context) (model.LearningOverview, error) {
	var out model.LearningOverview
	err := s.api.Get(ctx, "/my-learning", &out)
	return out, err
}

func (s *Service) CreateProgress(ctx context.Context, in ProgressInput) (model.ProgressLog, error) {
	var out model.ProgressLog
	err := s.api.Post(ctx, "/progress", in, &out)
	return out, err
}

func (s *Service) UpdateProgress(ctx context.Context, id string, in ProgressInput) (model.ProgressLog, error) {
	var out model.ProgressLog
	err := s.api.Put(ctx, "/progress/"+seg(id), in, &out)
	return out, err
}

// CommentProgress attaches an admin comment to a progress log.
func (s *Service) CommentProgress(ctx context.Context, id, comment string) (model.ProgressLog, error) {
	var out model.ProgressLog
	err := s.api.Patch(ctx, "/progress/"+seg(id)+"/comment", map[string]string{"adminComment": comment}, &out)
	return out, err
}

// Pools fetches courses and projects together; if either fails the whole
// call fails.
func (s *Service) Pools(ctx context.Context) (Pools, error) {
	var p Pools
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.api.Get(gctx, "/courses", &p.Courses)
	})
	g.Go(func() error {
		return s.api.Get(gctx, "/projects", &p.Projects)
	})
	if err := g.Wait(); err != nil {
		return Pools{}, err
	}
	return p, nil
}
