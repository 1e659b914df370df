package auth

import (
	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/myhashing"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/mytime"
)

type service struct {
	userStore docstore.Collection[User]
	hasher    myhashing.Hasher
	nower     mytime.Nower
	logger    mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(userStore docstore.Collection[User], hasher myhashing.Hasher, nower mytime.Nower, logger mylog.Logger) *service {
	return &service{
		userStore: userStore,
		hasher:    hasher,
		nower:     nower,
		logger:    logger,
	}
}
