package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/amazons/backend/config"
	"github.com/amazons/backend/lib/docstore"
	"github.com/amazons/backend/lib/myhashing"
	"github.com/amazons/backend/lib/mytime"
	"github.com/amazons/backend/services/auth"
	"github.com/amazons/backend/services/catalog"
	"github.com/amazons/backend/services/ordering"
	"github.com/amazons/backend/services/seeding"
	"github.com/amazons/backend/services/status"
)

func main() {
	c := context.Background()

	cfg := config.Load()

	db, cleanup, err := docstore.Connect(c, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("Error connecting to datastore: %s", err)
	}
	defer cleanup()

	userStore := docstore.NewCollection[auth.User](db, "user")
	categoryStore := docstore.NewCollection[catalog.Category](db, "category")
	productStore := docstore.NewCollection[catalog.Product](db, "product")
	orderStore := docstore.NewCollection[ordering.Order](db, "order")

	hasher := myhashing.NewBcryptHasher()
	nower := mytime.RealNower{}

	router := mux.NewRouter()

	authService := auth.NewService(userStore, hasher, nower)
	authService.RegisterEndpoints(c, router)

	catalogService := catalog.NewService(categoryStore, productStore)
	catalogService.RegisterEndpoints(c, router)

	orderService := ordering.NewService(orderStore, nower)
	orderService.RegisterEndpoints(c, router)

	seedService := seeding.NewService(categoryStore, productStore, userStore, hasher, nower)
	seedService.RegisterEndpoints(c, router)

	statusService := status.NewService(db)
	statusService.RegisterEndpoints(c, router)

	startWebServerBlocking(router, cfg.ServerPort)
}

func startWebServerBlocking(router *mux.Router, port string) {
	// Open CORS policy: acceptable for a demo system only
	corsRouter := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type", "Authorization", "X-Request-ID"}),
	)(router)

	log.Printf("Starting webserver on port %s (try http://localhost:%s)", port, port)
	err := http.ListenAndServe(fmt.Sprintf(":%s", port), corsRouter)
	if err != nil {
		log.Fatalf("Error starting webserver on port %s: %s", port, err)
	}
}
