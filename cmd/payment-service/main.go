package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"shoplite_back_end/internal/config"
	"shoplite_back_end/internal/database"
	"shoplite_back_end/internal/handlers/payment"
	"shoplite_back_end/internal/routes"
	"shoplite_back_end/internal/store"
)

func main() {
	config.Load()

	session, err := database.ConnectScylla(config.Get("SCYLLA_KEYSPACE", "shoplite_payments"))
	if err != nil {
		log.Fatal("❌ ScyllaDB initialization failed:", err)
	}

	h := payment.NewHandler(paymentStore(session), payment.CoinFlip)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterPaymentRoutes(r, h)

	port := config.Get("PORT", "8083")
	log.Println("🚀 payment-service listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func paymentStore(session *gocql.Session) store.PaymentStore {
	if session == nil {
		return store.NewMemoryPaymentStore()
	}
	return store.NewScyllaPaymentStore(session)
}
