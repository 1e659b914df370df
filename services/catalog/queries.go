package catalog

import "github.com/amazons/backend/lib/docstore"

func categoryBySlugQuery(slug string) docstore.Query {
	return docstore.Query{{docstore.Eq("slug", slug)}}
}

// productListQuery ANDs the text search and the category filter when both
// are present. The text clause matches title or description as a
// case-insensitive substring.
func productListQuery(req ListProductsRequest) docstore.Query {
	q := docstore.Query{}
	if req.Query != "" {
		q = append(q, docstore.Clause{
			docstore.ContainsFold("title", req.Query),
			docstore.ContainsFold("description", req.Query),
		})
	}
	if req.Category != "" {
		q = append(q, docstore.Clause{docstore.Eq("category", req.Category)})
	}

	return q
}
