package portal

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"internhub/internal/apiclient"
	"internhub/internal/model"
)

const documentFanOut = 8

// DocumentUpload is the metadata sent with an uploaded file.
type DocumentUpload struct {
	InternID string `form:"internId" binding:"required"`
	Name     string `form:"name" binding:"required"`
	Type     string `form:"type" binding:"required"`
}

func (s *Service) DocumentsForIntern(ctx context.Context, internID string) ([]model.Document, error) {
	var out []model.Document
	if err := s.api.Get(ctx, "/documents/intern/"+seg(internID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InternDocuments pairs an intern with their documents.
type InternDocuments struct {
	Intern    model.Intern     `json:"intern"`
	Documents []model.Document `json:"documents"`
}

// AllDocuments fetches documents for every intern concurrently. A failed
// fetch leaves that intern with an empty list; only an expired session
// aborts the whole listing.
func (s *Service) AllDocuments(ctx context.Context, interns []model.Intern) ([]InternDocuments, error) {
	out := make([]InternDocuments, len(interns))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(documentFanOut)
	for i, in := range interns {
		i, in := i, in
		out[i] = InternDocuments{Intern: in, Documents: []model.Document{}}
		g.Go(func() error {
			docs, err := s.DocumentsForIntern(gctx, string(in.ID))
			if errors.Is(err, apiclient.ErrSessionExpired) {
				return err
			}
			if err != nil {
				s.logger.Warn("documents fetch failed", zap.String("intern", string(in.ID)), zap.Error(err))
				return nil
			}
			if docs != nil {
				out[i].Documents = docs
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) UploadDocument(ctx context.Context, meta DocumentUpload, filename string, content io.Reader) (model.Document, error) {
	var out model.Document
	err := s.api.Upload(ctx, "/documents/upload",
		map[string]string{"internId": meta.InternID, "name": meta.Name, "type": meta.Type},
		apiclient.FilePart{Field: "file", Filename: filename, Content: content},
		&out)
	return out, err
}

func (s *Service) VerifyDocument(ctx context.Context, id string) (model.Document, error) {
	var out model.Document
	err := s.api.Patch(ctx, "/documents/"+seg(id)+"/verify", nil, &out)
	return out, err
}

func (s *Service) RejectDocument(ctx context.Context, id, reason string) (model.Document, error) {
	var out model.Document
	err := s.api.Patch(ctx, "/documents/"+seg(id)+"/reject", map[string]string{"reason": reason}, &out)
	return out, err
}
