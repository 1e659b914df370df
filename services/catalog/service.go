package catalog

import (
	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mylog"
)

type service struct {
	categoryStore docstore.Collection[Category]
	productStore  docstore.Collection[Product]
	logger        mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func newService(categoryStore docstore.Collection[Category], productStore docstore.Collection[Product], logger mylog.Logger) *service {
	return &service{
		categoryStore: categoryStore,
		productStore:  productStore,
		logger:        logger,
	}
}
