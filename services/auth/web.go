package auth

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
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(userStore docstore.Collection[User], hasher myhashing.Hasher, nower mytime.Nower) *webService {
	logger := mylog.New("auth")

	return &webService{
		service: newService(userStore, hasher, nower, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/auth/signup", s.signup()).Methods("POST")
	router.HandleFunc("/auth/login", s.login()).Methods("POST")
}

func (s webService) signup() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := SignupRequest{}
		err := myhttp.ParseRequest(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.signup(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s webService) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := LoginRequest{}
		err := myhttp.ParseRequest(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.login(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
