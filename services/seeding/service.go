package seeding

import (
	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/myhashing"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/mytime"
	"github.com/amazons/backend/services/auth"
	"github.com/amazons/backend/services/catalog"
)

type service struct {
	categoryStore docstore.Collection[catalog.Category]
	productStore  docstore.Collection[catalog.Product]
	userStore     docstore.Collection[auth.User]
	hasher        myhashing.Hasher
	nower         mytime.Nower
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(
	categoryStore docstore.Collection[catalog.Category],
	productStore docstore.Collection[catalog.Product],
	userStore docstore.Collection[auth.User],
	hasher myhashing.Hasher,
	nower mytime.Nower,
	logger mylog.Logger,
) *service {
	return &service{
		categoryStore: categoryStore,
		productStore:  productStore,
		userStore:     userStore,
		hasher:        hasher,
		nower:         nower,
		logger:        logger,
	}
}
