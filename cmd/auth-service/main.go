package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"shoplite_back_end/internal/config"
	"shoplite_back_end/internal/database"
	"shoplite_back_end/internal/handlers/auth"
	"shoplite_back_end/internal/routes"
	"shoplite_back_end/internal/store"
	"shoplite_back_end/internal/token"
)

func main() {
	config.Load()

	session, err := database.ConnectScylla(config.Get("SCYLLA_KEYSPACE", "shoplite_users"))
	if err != nil {
		log.Fatal("❌ ScyllaDB initialization failed:", err)
	}

	users := userStore(session)
	rdb := database.ConnectRedis(context.Background())
	signer := token.NewSigner(config.Get("JWT_SECRET", ""))

	auth.SetupOAuth()

	h := auth.NewHandler(users, signer)

	r := gin.Default()
	r.Use(cors.Default())
	routes.RegisterAuthRoutes(r, h, signer, rdb)

	port := config.Get("PORT", "8081")
	log.Println("🚀 auth-service listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func userStore(session *gocql.Session) store.UserStore {
	if session == nil {
		return store.NewMemoryUserStore()
	}
	return store.NewScyllaUserStore(session)
}
