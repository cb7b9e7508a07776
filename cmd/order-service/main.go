package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"shoplite_back_end/internal/config"
	"shoplite_back_end/internal/database"
	"shoplite_back_end/internal/handlers/order"
	"shoplite_back_end/internal/routes"
	"shoplite_back_end/internal/store"
	"shoplite_back_end/internal/utils"
)

func main() {
	config.Load()

	session, err := database.ConnectScylla(config.Get("SCYLLA_KEYSPACE", "shoplite_orders"))
	if err != nil {
		log.Fatal("❌ ScyllaDB initialization failed:", err)
	}

	h := order.NewHandler(orderStore(session), order.NewStaticPriceSource(), utils.NewMailerFromEnv())

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterOrderRoutes(r, h)

	port := config.Get("PORT", "8082")
	log.Println("🚀 order-service listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func orderStore(session *gocql.Session) store.OrderStore {
	if session == nil {
		return store.NewMemoryOrderStore()
	}
	return store.NewScyllaOrderStore(session)
}
