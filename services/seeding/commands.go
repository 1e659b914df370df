package seeding

import (
	"context"

	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/services/auth"
)

// seed populates the demo fixtures. It is idempotent: every fixture is
// inserted only when no equivalent record exists yet, so repeated calls
// never duplicate or overwrite anything.
func (s *service) seed(c context.Context) error {
	for _, category := range seedCategories {
		_, exists, err := s.categoryStore.FindOne(c, categoryBySlugQuery(category.Slug))
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if exists {
			continue
		}

		_, err = s.categoryStore.Insert(c, category)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}

	for _, product := range seedProducts {
		_, exists, err := s.productStore.FindOne(c, productByTitleQuery(product.Title))
		if err != nil {
			return myerrors.NewInternalError(err)
		}
		if exists {
			continue
		}

		_, err = s.productStore.Insert(c, product)
		if err != nil {
			return myerrors.NewInternalError(err)
		}
	}

	err := s.seedDemoUser(c)
	if err != nil {
		return err
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Seeded demo categories, products and user")

	return nil
}

func (s *service) seedDemoUser(c context.Context) error {
	_, exists, err := s.userStore.FindOne(c, userByUsernameQuery(demoUsername))
	if err != nil {
		return myerrors.NewInternalError(err)
	}
	if exists {
		return nil
	}

	passwordHash, err := s.hasher.Hash(demoPassword)
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	_, err = s.userStore.Insert(c, auth.User{
		Username:     demoUsername,
		Email:        demoEmail,
		PasswordHash: passwordHash,
		Name:         demoName,
		IsActive:     true,
		IsAdmin:      false,
		CreatedAt:    s.nower.Now(),
	})
	if err != nil {
		return myerrors.NewInternalError(err)
	}

	return nil
}
