package docstore

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
)

// InMemoryDB keeps collections as ordered slices so listings come back in
// insertion order, like the natural order of a real collection.
type InMemoryDB struct {
	sync.Mutex
	collections map[string]*memCollection
}

type memCollection struct {
	docs []memDocument
}

type memDocument struct {
	id     string
	fields bson.M
}

func NewInMemoryDB() *InMemoryDB {
	return &InMemoryDB{
		collections: map[string]*memCollection{},
	}
}

func (d *InMemoryDB) Kind() string {
	return "memory"
}

func (d *InMemoryDB) CollectionNames(c context.Context) ([]string, error) {
	d.Lock()
	defer d.Unlock()

	names := make([]string, 0, len(d.collections))
	for name := range d.collections {
		names = append(names, name)
	}
	sort.Strings(names)

	return names, nil
}

func (d *InMemoryDB) collection(name string) *memCollection {
	coll, exists := d.collections[name]
	if !exists {
		coll = &memCollection{}
		d.collections[name] = coll
	}
	return coll
}

// lookup does not create the collection, so reads leave CollectionNames
// untouched.
func (d *InMemoryDB) lookup(name string) *memCollection {
	return d.collections[name]
}

type inMemoryCollection[T any] struct {
	db   *InMemoryDB
	name string
}

func (s inMemoryCollection[T]) Insert(c context.Context, doc T) (string, error) {
	fields, err := toFields(doc)
	if err != nil {
		return "", err
	}

	s.db.Lock()
	defer s.db.Unlock()

	id := NewID()
	coll := s.db.collection(s.name)
	coll.docs = append(coll.docs, memDocument{id: id, fields: fields})

	return id, nil
}

func (s inMemoryCollection[T]) GetByID(c context.Context, id string) (T, bool, error) {
	var doc T

	err := CheckID(id)
	if err != nil {
		return doc, false, err
	}

	s.db.Lock()
	defer s.db.Unlock()

	coll := s.db.lookup(s.name)
	if coll == nil {
		return doc, false, nil
	}

	for _, d := range coll.docs {
		if d.id == id {
			doc, err := fromFields[T](d.fields)
			return doc, err == nil, err
		}
	}

	return doc, false, nil
}

func (s inMemoryCollection[T]) FindOne(c context.Context, q Query) (Document[T], bool, error) {
	s.db.Lock()
	defer s.db.Unlock()

	coll := s.db.lookup(s.name)
	if coll == nil {
		return Document[T]{}, false, nil
	}

	for _, d := range coll.docs {
		if q.Matches(d.fields) {
			doc, err := fromFields[T](d.fields)
			if err != nil {
				return Document[T]{}, false, err
			}
			return Document[T]{ID: d.id, Data: doc}, true, nil
		}
	}

	return Document[T]{}, false, nil
}

func (s inMemoryCollection[T]) Find(c context.Context, q Query, limit int, skip int) ([]Document[T], error) {
	s.db.Lock()
	defer s.db.Unlock()

	docs := []Document[T]{}
	coll := s.db.lookup(s.name)
	if coll == nil {
		return docs, nil
	}

	remaining := skip
	for _, d := range coll.docs {
		if !q.Matches(d.fields) {
			continue
		}
		if remaining > 0 {
			remaining--
			continue
		}
		if limit > 0 && len(docs) == limit {
			break
		}

		doc, err := fromFields[T](d.fields)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document[T]{ID: d.id, Data: doc})
	}

	return docs, nil
}

func toFields[T any](doc T) (bson.M, error) {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return nil, err
	}

	fields := bson.M{}
	err = bson.Unmarshal(raw, &fields)

	return fields, err
}

func fromFields[T any](fields bson.M) (T, error) {
	var doc T

	raw, err := bson.Marshal(fields)
	if err != nil {
		return doc, err
	}
	err = bson.Unmarshal(raw, &doc)

	return doc, err
}
