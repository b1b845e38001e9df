package portal

import (
	"context"
	"fmt"

	"internhub/internal/model"
)

// OfferAction is a status transition the backend performs on an offer.
type OfferAction string

const (
	OfferSend   OfferAction = "send"
	OfferAccept OfferAction = "accept"
	OfferReject OfferAction = "reject"
)

func (a OfferAction) Valid() bool {
	switch a {
	case OfferSend, OfferAccept, OfferReject:
		return true
	}
	return false
}

func (s *Service) ListOffers(ctx context.Context) ([]model.Offer, error) {
	var out []model.Offer
	if err := s.api.Get(ctx, "/offers", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Service) CreateOffer(ctx context.Context, o model.Offer) (model.Offer, error) {
	var out model.Offer
	err := s.api.Post(ctx, "/offers", o, &out)
	return out, err
}

func (s *Service) ApplyOfferAction(ctx context.Context, id string, action OfferAction) (model.Offer, error) {
	if !action.Valid() {
		return model.Offer{}, fmt.Errorf("unknown offer action %q", action)
	}
	var out model.Offer
	err := s.api.Patch(ctx, "/offers/"+seg(id)+"/"+string(action), nil, &out)
	return out, err
}

// PreviewOffer returns the rendered offer letter HTML.
func (s *Service) PreviewOffer(ctx context.Context, id string) (string, error) {
	return s.api.Text(ctx, "/offers/"+seg(id)+"/preview")
}
