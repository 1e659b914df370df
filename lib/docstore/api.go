package docstore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document pairs a stored record with its string-typed public id.
type Document[T any] struct {
	ID   string
	Data T
}

//go:generate mockgen -source=api.go -package docstore -destination store_mock.go Collection
type Collection[T any] interface {
	Insert(c context.Context, doc T) (string, error)
	GetByID(c context.Context, id string) (T, bool, error)
	FindOne(c context.Context, q Query) (Document[T], bool, error)
	// Find returns matching documents in storage order. This order is
	// insertion/natural order and is unstable across concurrent writes.
	// A limit <= 0 means no limit.
	Find(c context.Context, q Query, limit int, skip int) ([]Document[T], error)
}

type DB interface {
	Kind() string
	CollectionNames(c context.Context) ([]string, error)
}

func Connect(c context.Context, uri string, dbName string) (DB, func(), error) {
	if uri != "" {
		return connectMongo(c, uri, dbName)
	}

	return NewInMemoryDB(), func() {}, nil
}

func NewCollection[T any](db DB, name string) Collection[T] {
	switch d := db.(type) {
	case *mongoDB:
		return mongoCollection[T]{coll: d.db.Collection(name)}
	case *InMemoryDB:
		return inMemoryCollection[T]{db: d, name: name}
	default:
		panic(fmt.Sprintf("docstore: unsupported database implementation %T", db))
	}
}

// NewID mints a fresh identifier in the canonical hex form.
func NewID() string {
	return primitive.NewObjectID().Hex()
}

// CheckID reports whether id is a well-formed identifier.
func CheckID(id string) error {
	_, err := primitive.ObjectIDFromHex(id)
	return err
}
