package docstore

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

type Op string

const (
	// OpEquals matches on exact field equality.
	OpEquals Op = "eq"
	// OpContainsFold matches when the field contains the value as a
	// case-insensitive literal substring.
	OpContainsFold Op = "containsfold"
)

type Predicate struct {
	Field string
	Op    Op
	Value any
}

// Clause matches when at least one of its predicates matches.
type Clause []Predicate

// Query matches when all of its clauses match. An empty query matches
// every document.
type Query []Clause

func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Op: OpEquals, Value: value}
}

func ContainsFold(field string, substr string) Predicate {
	return Predicate{Field: field, Op: OpContainsFold, Value: substr}
}

func (q Query) Matches(doc bson.M) bool {
	for _, clause := range q {
		if !clause.matches(doc) {
			return false
		}
	}
	return true
}

func (cl Clause) matches(doc bson.M) bool {
	if len(cl) == 0 {
		return true
	}
	for _, p := range cl {
		if p.matches(doc) {
			return true
		}
	}
	return false
}

func (p Predicate) matches(doc bson.M) bool {
	raw, found := doc[p.Field]
	if !found {
		return false
	}

	switch p.Op {
	case OpContainsFold:
		value, ok := raw.(string)
		if !ok {
			return false
		}
		substr := fmt.Sprintf("%v", p.Value)
		return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
	default:
		return raw == p.Value
	}
}
