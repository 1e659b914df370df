package status

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mycontext"
	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/myhttp"
	"github.com/amazons/backend/lib/mylog"
)

type RootResponse struct {
	Message string `json:"message"`
}

type DiagnosticsResponse struct {
	Backend     string   `json:"backend"`
	Database    string   `json:"database"`
	Collections []string `json:"collections"`
}

type webService struct {
	db     docstore.DB
	logger mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(db docstore.DB) *webService {
	return &webService{
		db:     db,
		logger: mylog.New("status"),
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/", s.root()).Methods("GET")
	router.HandleFunc("/test", s.diagnostics()).Methods("GET")
}

func (s webService) root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		errorWriter.Write(c, w, http.StatusOK, RootResponse{Message: "Amazons backend running"})
	}
}

func (s webService) diagnostics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		collections, err := s.db.CollectionNames(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewUnavailableError(err))
			return
		}

		errorWriter.Write(c, w, http.StatusOK, DiagnosticsResponse{
			Backend:     "running",
			Database:    s.db.Kind(),
			Collections: collections,
		})
	}
}
