package catalog

import (
	"context"
	"fmt"

	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/myerrors"
	"github.com/amazons/backend/lib/mylog"
	"github.com/amazons/backend/lib/myvalidation"
)

func (s *service) listCategories(c context.Context) ([]CategoryResponse, error) {
	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch all categories")

	docs, err := s.categoryStore.Find(c, nil, 0, 0)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	categories := make([]CategoryResponse, 0, len(docs))
	for _, doc := range docs {
		categories = append(categories, CategoryResponse{ID: doc.ID, Category: doc.Data})
	}

	return categories, nil
}

func (s *service) createCategory(c context.Context, req CreateCategoryRequest) (CreatedResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return CreatedResponse{}, myerrors.NewInvalidInputError(err)
	}

	_, exists, err := s.categoryStore.FindOne(c, categoryBySlugQuery(req.Slug))
	if err != nil {
		return CreatedResponse{}, myerrors.NewInternalError(err)
	}
	if exists {
		return CreatedResponse{}, myerrors.NewConflictError(fmt.Errorf("category with slug %s already exists", req.Slug))
	}

	id, err := s.categoryStore.Insert(c, Category{Name: req.Name, Slug: req.Slug})
	if err != nil {
		return CreatedResponse{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, req.Slug, mylog.SeverityInfo, "Created category %s with uid %s", req.Slug, id)

	return CreatedResponse{ID: id}, nil
}

func (s *service) listProducts(c context.Context, req ListProductsRequest) ([]ProductResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return nil, myerrors.NewInvalidInputError(err)
	}

	s.logger.Log(c, "", mylog.SeverityInfo, "Fetch products (q=%q, category=%q, limit=%d, skip=%d)",
		req.Query, req.Category, req.Limit, req.Skip)

	docs, err := s.productStore.Find(c, productListQuery(req), req.Limit, req.Skip)
	if err != nil {
		return nil, myerrors.NewInternalError(err)
	}

	products := make([]ProductResponse, 0, len(docs))
	for _, doc := range docs {
		products = append(products, ProductResponse{ID: doc.ID, Product: doc.Data})
	}

	return products, nil
}

func (s *service) getProduct(c context.Context, id string) (ProductResponse, error) {
	err := docstore.CheckID(id)
	if err != nil {
		return ProductResponse{}, myerrors.NewInvalidInputErrorf("invalid product id %s", id)
	}

	product, found, err := s.productStore.GetByID(c, id)
	if err != nil {
		return ProductResponse{}, myerrors.NewInternalError(err)
	}
	if !found {
		return ProductResponse{}, myerrors.NewNotFoundError(fmt.Errorf("product with uid %s not found", id))
	}

	return ProductResponse{ID: id, Product: product}, nil
}

func (s *service) createProduct(c context.Context, req CreateProductRequest) (CreatedResponse, error) {
	err := myvalidation.Check(req)
	if err != nil {
		return CreatedResponse{}, myerrors.NewInvalidInputError(err)
	}

	// No uniqueness check: products with the same title may coexist
	id, err := s.productStore.Insert(c, newProduct(req))
	if err != nil {
		return CreatedResponse{}, myerrors.NewInternalError(err)
	}

	s.logger.Log(c, id, mylog.SeverityInfo, "Created product %q with uid %s", req.Title, id)

	return CreatedResponse{ID: id}, nil
}
