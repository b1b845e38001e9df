// Package portal exposes the backend's REST operations as typed calls, one
// file per business area.
package portal

import (
	"net/url"

	"go.uber.org/zap"

	"internhub/internal/apiclient"
)

// Service issues backend calls for one session.
type Service struct {
	api    *apiclient.Client
	logger *zap.Logger
}

func New(api *apiclient.Client, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{api: api, logger: logger}
}

func seg(id string) string {
	return url.PathEscape(id)
}
