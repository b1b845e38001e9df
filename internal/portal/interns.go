package portal

import (
	"context"

	"golang.org/x/sync/errgroup"

	"internhub/internal/model"
	"internhub/internal/roster"
)

func (s *Service) ListInterns(ctx context.Context) ([]model.Intern, error) {
	var out []model.Intern
	if err := s.api.Get(ctx, "/interns", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) GetIntern(ctx context.Context, id string) (model.Intern, error) {
	var out model.Intern
	err := s.api.Get(ctx, "/interns/"+seg(id), &out)
	return out, err
}

func (s *Service) CreateIntern(ctx context.Context, in model.Intern) (model.Intern, error) {
	var out model.Intern
	err := s.api.Post(ctx, "/interns", in, &out)
	return out, err
}

func (s *Service) UpdateIntern(ctx context.Context, id string, in model.Intern) (model.Intern, error) {
	var out model.Intern
	err := s.api.Put(ctx, "/interns/"+seg(id), in, &out)
	return out, err
}

func (s *Service) DeleteIntern(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/interns/"+seg(id), nil)
}

func (s *Service) ListCandidates(ctx context.Context) ([]model.Candidate, error) {
	var out []model.Candidate
	if err := s.api.Get(ctx, "/candidates", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Roster fetches candidates and interns together and merges them by email.
// Either fetch failing fails the whole roster.
func (s *Service) Roster(ctx context.Context) ([]roster.Entry, error) {
	var (
		candidates []model.Candidate
		interns    []model.Intern
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		candidates, err = s.ListCandidates(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		interns, err = s.ListInterns(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return roster.Merge(candidates, interns), nil
}
