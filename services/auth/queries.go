package auth

import "github.com/amazons/backend/lib/docstore"

// existingAccountQuery matches any account claiming one of the identifying
// fields of the signup request: same username, or same phone or email when
// those were supplied. Identifiers that were not supplied do not widen the
// match.
func existingAccountQuery(req SignupRequest) docstore.Query {
	clause := docstore.Clause{docstore.Eq("username", req.Username)}
	if req.Phone != "" {
		clause = append(clause, docstore.Eq("phone", req.Phone))
	}
	if req.Email != "" {
		clause = append(clause, docstore.Eq("email", req.Email))
	}

	return docstore.Query{clause}
}

// loginQuery applies every supplied identifier as a filter. When both
// username and phone are given the account must match both; they are not
// treated as alternatives.
func loginQuery(req LoginRequest) docstore.Query {
	q := docstore.Query{}
	if req.Username != "" {
		q = append(q, docstore.Clause{docstore.Eq("username", req.Username)})
	}
	if req.Phone != "" {
		q = append(q, docstore.Clause{docstore.Eq("phone", req.Phone)})
	}

	return q
}
