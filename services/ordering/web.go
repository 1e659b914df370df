package ordering

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mycontext"
	"github.com/amazons/backend/lib/myhttp"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/mytime"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(orderStore docstore.Collection[Order], nower mytime.Nower) *webService {
	logger := mylog.New("ordering")

	return &webService{
		service: newService(orderStore, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/orders/checkout", s.checkout()).Methods("POST")
}

func (s webService) checkout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := CheckoutRequest{}
		err := myhttp.ParseRequest(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.checkout(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
