package portal

import (
	"context"

	"internhub/internal/model"
)

func (s *Service) ListColleges(ctx context.Context) ([]model.College, error) {
	var out []model.College
	if err := s.api.Get(ctx, "/colleges", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateCollege(ctx context.Context, c model.College) (model.College, error) {
	var out model.College
	err := s.api.Post(ctx, "/colleges", c, &out)
	return out, err
}

func (s *Service) UpdateCollege(ctx context.Context, id string, c model.College) (model.College, error) {
	var out model.College
	err := s.api.Put(ctx, "/colleges/"+seg(id), c, &out)
	return out, err
}

func (s *Service) DeleteCollege(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/colleges/"+seg(id), nil)
}
