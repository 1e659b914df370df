package catalog

import (
	"context"
	"net/http"

	formcodec "github.com/go-playground/form/v4"
	"github.com/gorilla/mux"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/mycontext"
	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/myhttp"
	"github.com/amazons/backend/lib/mylog"
)

type webService struct {
	service *service
	logger  mylog.Logger
}

// Use dependency injection to isolate the infrastructure and easy testing
func NewService(categoryStore docstore.Collection[Category], productStore docstore.Collection[Product]) *webService {
	logger := mylog.New("catalog")

	return &webService{
		service: newService(categoryStore, productStore, logger),
		logger:  logger,
	}
}

func (s webService) RegisterEndpoints(c context.Context, router *mux.Router) {
	router.HandleFunc("/categories", s.listCategories()).Methods("GET")
	router.HandleFunc("/categories", s.createCategory()).Methods("POST")

	router.HandleFunc("/products", s.listProducts()).Methods("GET")
	router.HandleFunc("/products", s.createProduct()).Methods("POST")
	router.HandleFunc("/products/{productID}", s.getProduct()).Methods("GET")
}

func (s webService) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		categories, err := s.service.listCategories(c)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, categories)
	}
}

func (s webService) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := CreateCategoryRequest{}
		err := myhttp.ParseRequest(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.createCategory(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}

func (s webService) listProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := ListProductsRequest{Limit: defaultListLimit}
		err := formcodec.NewDecoder().Decode(&req, r.URL.Query())
		if err != nil {
			errorWriter.WriteError(c, w, 1, myerrors.NewInvalidInputError(err))
			return
		}

		products, err := s.service.listProducts(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, products)
	}
}

func (s webService) getProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		productID := mux.Vars(r)["productID"]

		product, err := s.service.getProduct(c, productID)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, product)
	}
}

func (s webService) createProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := mycontext.ContextFromHTTPRequest(r)
		errorWriter := myhttp.NewWriter(s.logger)

		req := CreateProductRequest{}
		err := myhttp.ParseRequest(r, &req)
		if err != nil {
			errorWriter.WriteError(c, w, 1, err)
			return
		}

		resp, err := s.service.createProduct(c, req)
		if err != nil {
			errorWriter.WriteError(c, w, 2, err)
			return
		}

		errorWriter.Write(c, w, http.StatusOK, resp)
	}
}
