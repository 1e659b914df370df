package docstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

type book struct {
	Title  string  `bson:"title"`
	Author string  `bson:"author,omitempty"`
	Price  float64 `bson:"price"`
}

func TestInMemoryCollection(t *testing.T) {
	c := context.TODO()
	db := NewInMemoryDB()
	books := NewCollection[book](db, "book")

	t.Run("Find on empty collection", func(t *testing.T) {
		all, err := books.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, all)
	})

	var firstID string

	t.Run("Insert returns well-formed ids", func(t *testing.T) {
		var err error
		firstID, err = books.Insert(c, book{Title: "The Go Programming Language", Author: "Donovan", Price: 30})
		assert.NoError(t, err)
		assert.NoError(t, CheckID(firstID))

		secondID, err := books.Insert(c, book{Title: "Learning Go", Author: "Bodner", Price: 25})
		assert.NoError(t, err)
		assert.NotEqual(t, firstID, secondID)

		_, err = books.Insert(c, book{Title: "Go in Action", Price: 20})
		assert.NoError(t, err)
	})

	t.Run("GetByID found", func(t *testing.T) {
		got, found, err := books.GetByID(c, firstID)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "The Go Programming Language", got.Title)
	})

	t.Run("GetByID unknown id", func(t *testing.T) {
		_, found, err := books.GetByID(c, NewID())
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("GetByID malformed id", func(t *testing.T) {
		_, _, err := books.GetByID(c, "not-an-id")
		assert.Error(t, err)
	})

	t.Run("Find returns insertion order", func(t *testing.T) {
		all, err := books.Find(c, nil, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, all, 3)
		assert.Equal(t, "The Go Programming Language", all[0].Data.Title)
		assert.Equal(t, "Learning Go", all[1].Data.Title)
		assert.Equal(t, "Go in Action", all[2].Data.Title)
		assert.Equal(t, firstID, all[0].ID)
	})

	t.Run("Find with skip and limit", func(t *testing.T) {
		page, err := books.Find(c, nil, 1, 1)
		assert.NoError(t, err)
		assert.Len(t, page, 1)
		assert.Equal(t, "Learning Go", page[0].Data.Title)
	})

	t.Run("Find with equals clause", func(t *testing.T) {
		got, err := books.Find(c, Query{{Eq("author", "Bodner")}}, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Learning Go", got[0].Data.Title)
	})

	t.Run("Find with or clause", func(t *testing.T) {
		got, err := books.Find(c, Query{{Eq("author", "Bodner"), Eq("author", "Donovan")}}, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Find with contains clause is case-insensitive", func(t *testing.T) {
		got, err := books.Find(c, Query{{ContainsFold("title", "GO")}}, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("Anded clauses must all match", func(t *testing.T) {
		got, err := books.Find(c, Query{{ContainsFold("title", "go")}, {Eq("author", "Donovan")}}, 0, 0)
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "The Go Programming Language", got[0].Data.Title)
	})

	t.Run("Absent optional field never matches", func(t *testing.T) {
		got, err := books.Find(c, Query{{Eq("author", "")}}, 0, 0)
		assert.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("FindOne returns first match in storage order", func(t *testing.T) {
		doc, found, err := books.FindOne(c, Query{{ContainsFold("title", "go")}})
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, firstID, doc.ID)
	})

	t.Run("FindOne without match", func(t *testing.T) {
		_, found, err := books.FindOne(c, Query{{Eq("title", "no such book")}})
		assert.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("CollectionNames lists populated collections", func(t *testing.T) {
		names, err := db.CollectionNames(c)
		assert.NoError(t, err)
		assert.Equal(t, []string{"book"}, names)
	})

	t.Run("Kind", func(t *testing.T) {
		assert.Equal(t, "memory", db.Kind())
	})
}

func TestCheckID(t *testing.T) {
	assert.NoError(t, CheckID(NewID()))
	assert.Error(t, CheckID(""))
	assert.Error(t, CheckID("123"))
	assert.Error(t, CheckID("zzzzzzzzzzzzzzzzzzzzzzzz"))
}
