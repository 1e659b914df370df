package ordering

import (
	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/mytime"
)

type service struct {
	orderStore docstore.Collection[Order]
	nower      mytime.Nower
	logger     mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(orderStore docstore.Collection[Order], nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		orderStore: orderStore,
		nower:      nower,
		logger:     logger,
	}
}
