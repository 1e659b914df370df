package docstore

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoDB struct {
	client *mongo.Client
	db     *mongo.Database
}

func connectMongo(c context.Context, uri string, dbName string) (*mongoDB, func(), error) {
	client, err := mongo.Connect(c, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("error connecting to mongodb: %s", err)
	}

	cleanup := func() {
		_ = client.Disconnect(context.Background())
	}

	return &mongoDB{
		client: client,
		db:     client.Database(dbName),
	}, cleanup, nil
}

func (d *mongoDB) Kind() string {
	return "mongodb"
}

func (d *mongoDB) CollectionNames(c context.Context) ([]string, error) {
	return d.db.ListCollectionNames(c, bson.M{})
}

// envelope adds the database-generated identifier to the stored record.
type envelope[T any] struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Data T                  `bson:",inline"`
}

type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func (s mongoCollection[T]) Insert(c context.Context, doc T) (string, error) {
	result, err := s.coll.InsertOne(c, envelope[T]{Data: doc})
	if err != nil {
		return "", err
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected id type %T", result.InsertedID)
	}

	return oid.Hex(), nil
}

func (s mongoCollection[T]) GetByID(c context.Context, id string) (T, bool, error) {
	var doc T

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return doc, false, err
	}

	var env envelope[T]
	err = s.coll.FindOne(c, bson.M{"_id": oid}).Decode(&env)
	if err == mongo.ErrNoDocuments {
		return doc, false, nil
	}
	if err != nil {
		return doc, false, err
	}

	return env.Data, true, nil
}

func (s mongoCollection[T]) FindOne(c context.Context, q Query) (Document[T], bool, error) {
	var env envelope[T]

	err := s.coll.FindOne(c, mongoFilter(q)).Decode(&env)
	if err == mongo.ErrNoDocuments {
		return Document[T]{}, false, nil
	}
	if err != nil {
		return Document[T]{}, false, err
	}

	return Document[T]{ID: env.ID.Hex(), Data: env.Data}, true, nil
}

func (s mongoCollection[T]) Find(c context.Context, q Query, limit int, skip int) ([]Document[T], error) {
	opts := options.Find().SetSkip(int64(skip))
	if limit > 0 {
		opts = opts.SetLimit(int64(limit))
	}

	cursor, err := s.coll.Find(c, mongoFilter(q), opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(c)

	docs := []Document[T]{}
	for cursor.Next(c) {
		var env envelope[T]
		err := cursor.Decode(&env)
		if err != nil {
			return nil, err
		}
		docs = append(docs, Document[T]{ID: env.ID.Hex(), Data: env.Data})
	}

	return docs, cursor.Err()
}

func mongoFilter(q Query) bson.M {
	conditions := []bson.M{}
	for _, clause := range q {
		alternatives := []bson.M{}
		for _, p := range clause {
			alternatives = append(alternatives, mongoPredicate(p))
		}

		switch len(alternatives) {
		case 0:
			// an empty clause matches everything
		case 1:
			conditions = append(conditions, alternatives[0])
		default:
			conditions = append(conditions, bson.M{"$or": alternatives})
		}
	}

	switch len(conditions) {
	case 0:
		return bson.M{}
	case 1:
		return conditions[0]
	default:
		return bson.M{"$and": conditions}
	}
}

func mongoPredicate(p Predicate) bson.M {
	switch p.Op {
	case OpContainsFold:
		// literal substring, not a user-supplied regex
		pattern := regexp.QuoteMeta(fmt.Sprintf("%v", p.Value))
		return bson.M{p.Field: bson.M{"$regex": pattern, "$options": "i"}}
	default:
		return bson.M{p.Field: p.Value}
	}
}
