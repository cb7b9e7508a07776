package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"shoplite_back_end/internal/catalog"
	"shoplite_back_end/internal/config"
	"shoplite_back_end/internal/database"
	"shoplite_back_end/internal/handlers/product"
	"shoplite_back_end/internal/routes"
	"shoplite_back_end/internal/services"
)

func main() {
	config.Load()

	client := catalog.NewClient(config.Get("CATALOG_BASE_URL", "https://fakestoreapi.com"))

	var cache catalog.Cache = catalog.NewMemoryCache()
	if rdb := database.ConnectRedis(context.Background()); rdb != nil {
		cache = catalog.NewRedisCache(rdb)
	}

	var search *services.ProductSearch
	var indexer catalog.Indexer
	if es := database.ConnectElastic(); es != nil {
		search = services.NewProductSearch(es)
		indexer = search
	}

	h := product.NewHandler(catalog.NewService(client, cache, indexer), search)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterProductRoutes(r, h)

	port := config.Get("PORT", "8084")
	log.Println("🚀 product-service listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}
