package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amazons/backend/lib/docstore"
)

func TestProductListQuery(t *testing.T) {
	testCases := []struct {
		name string
		in   ListProductsRequest
		want docstore.Query
	}{
		{
			name: "No filters",
			in:   ListProductsRequest{},
			want: docstore.Query{},
		},
		{
			name: "Text search matches title or description",
			in:   ListProductsRequest{Query: "headphones"},
			want: docstore.Query{
				{docstore.ContainsFold("title", "headphones"), docstore.ContainsFold("description", "headphones")},
			},
		},
		{
			name: "Category filter",
			in:   ListProductsRequest{Category: "Electronics"},
			want: docstore.Query{
				{docstore.Eq("category", "Electronics")},
			},
		},
		{
			name: "Both filters are anded",
			in:   ListProductsRequest{Query: "stand", Category: "Electronics"},
			want: docstore.Query{
				{docstore.ContainsFold("title", "stand"), docstore.ContainsFold("description", "stand")},
				{docstore.Eq("category", "Electronics")},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, productListQuery(tc.in))
		})
	}
}
