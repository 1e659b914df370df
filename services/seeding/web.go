package seeding

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mycontext"
	"github.com/amazons/backend/lib/myhashing"
	"github.com/amazons/backend/lib/myhttp"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/mytime"
	"github.com/amazons/backend/services/auth"
	"github.com/amazons/backend/services/catalog"
)

type SeedResponse struct {
	Status string `json:"status"`
}

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(
	categoryStore docstore.Collection[catalog.Category],
	productStore docstore.Collection[catalog.Product],
	userStore docstore.Collection[auth.User],
	hasher myhashing.Hasher,
	nower mytime.Nower,
) *webService {
	logger := mylog.New("seeding")

	return &webService{
		service: newService(categoryStore, productStore, userStore, hasher, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/seed", s.seed()).Methods("POST")
}

func (s webService) seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		err := s.service.seed(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, SeedResponse{Status: "seeded"})
	}
}
