package seeding

import "github.com/amazons/backend/lib/docstore"

func categoryBySlugQuery(slug string) docstore.Query {
	return docstore.Query{{docstore.Eq("slug", slug)}}
}

func productByTitleQuery(title string) docstore.Query {
	return docstore.Query{{docstore.Eq("title", title)}}
}

func userByUsernameQuery(username string) docstore.Query {
	return docstore.Query{{docstore.Eq("username", username)}}
}
