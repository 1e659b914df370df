package status

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/amazons/backend/lib/docstore"
)

type note struct {
	Text string `bson:"text"`
}

func TestStatus(t *testing.T) {

	t.Run("Liveness message", func(t *testing.T) {
		// setup
		_, router, _ := setup(t)

		// when
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		assert.JSONEq(t, `{"message":"Amazons backend running"}`, response.Body.String())
	})

	t.Run("Diagnostics lists collections", func(t *testing.T) {
		// setup
		c, router, db := setup(t)

		// given
		notes := docstore.NewCollection[note](db, "note")
		_, err := notes.Insert(c, note{Text: "hello"})
		assert.NoError(t, err)

		// when
		request := httptest.NewRequest(http.MethodGet, "/test", nil)
		response := httptest.NewRecorder()
		router.ServeHTTP(response, request)

		// then
		assert.Equal(t, 200, response.Code)
		got := DiagnosticsResponse{}
		assert.NoError(t, json.Unmarshal(response.Body.Bytes(), &got))
		assert.Equal(t, "running", got.Backend)
		assert.Equal(t, "memory", got.Database)
		assert.Equal(t, []string{"note"}, got.Collections)
	})
}

func setup(t *testing.T) (context.Context, *mux.Router, docstore.DB) {
	c := context.TODO()

	db := docstore.NewInMemoryDB()

	router := mux.NewRouter()
	NewService(db).RegisterEndpoints(c, router)

	return c, router, db
}
