package seeding

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/myhashing"
	"github.com/amazons/backend/lib/mytime"
	"github.com/amazons/backend/services/auth"
	"github.com/amazons/backend/services/catalog"
)

func TestSeed(t *testing.T) {

	t.Run("Seed populates fixtures", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, stores := setup(t, ctrl)

		// when
		response := doSeed(router)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"status":"seeded"}`, response.Body.String())

		categories, err := stores.categories.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, categories, 4)

		products, err := stores.products.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 5)

		users, err := stores.users.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "demo", users[0].Data.Username)
		assert.True(t, users[0].Data.IsActive)
	})

	t.Run("Seed twice is idempotent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, stores := setup(t, ctrl)

		// when
		first := doSeed(router)
		second := doSeed(router)

		// then
		assert.Equal(t, 200, first.Code)
		assert.Equal(t, 200, second.Code)

		categories, err := stores.categories.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, categories, 4)

		products, err := stores.products.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, products, 5)

		users, err := stores.users.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, users, 1)
	})

	t.Run("Seed does not overwrite an existing record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, stores := setup(t, ctrl)

		// given: a category with a seeded slug but different name
		existingID, err := stores.categories.Insert(c, catalog.Category{Name: "Gadgets", Slug: "electronics"})
		assert.NoError(t, err)

		// when
		response := doSeed(router)

		// then
		assert.Equal(t, 200, response.Code)
		doc, found, err := stores.categories.FindOne(c, categoryBySlugQuery("electronics"))
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, existingID, doc.ID)
		assert.Equal(t, "Gadgets", doc.Data.Name)
	})

	t.Run("Seeded demo user can log in with the demo password", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// setup
		c, router, stores := setup(t, ctrl)

		// when
		response := doSeed(router)
		assert.Equal(t, 200, response.Code)

		// then
		hasher := myhashing.NewBcryptHasher()
		doc, found, err := stores.users.FindOne(c, userByUsernameQuery("demo"))
		assert.NoError(t, err)
		assert.True(t, found)
		assert.True(t, hasher.Verify("demo123", doc.Data.PasswordHash))
	})
}

type testStores struct {
	categories docstore.Collection[catalog.Category]
	products   docstore.Collection[catalog.Product]
	users      docstore.Collection[auth.User]
}

func setup(t *testing.T, ctrl *gomock.Controller) (context.Context, *mux.Router, testStores) {
	c := context.TODO()

	db := docstore.NewInMemoryDB()
	stores := testStores{
		categories: docstore.NewCollection[catalog.Category](db, "category"),
		products:   docstore.NewCollection[catalog.Product](db, "product"),
		users:      docstore.NewCollection[auth.User](db, "user"),
	}

	nower := mytime.NewMockNower(ctrl)
	nower.EXPECT().Now().Return(mytime.ExampleTime).AnyTimes()

	router := mux.NewRouter()
	NewService(stores.categories, stores.products, stores.users, myhashing.NewBcryptHasher(), nower).RegisterEndpoints(c, router)

	return c, router, stores
}

func doSeed(router *mux.Router) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, "/seed", nil)
	response := httptest.NewRecorder()
	router.ServeHTTP(response, request)
	return response
}
