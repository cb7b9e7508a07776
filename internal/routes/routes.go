package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"shoplite_back_end/internal/handlers/auth"
	"shoplite_back_end/internal/handlers/order"
	"shoplite_back_end/internal/handlers/payment"
	"shoplite_back_end/internal/handlers/product"
	"shoplite_back_end/internal/middleware"
	"shoplite_back_end/internal/token"
)

func RegisterAuthRoutes(r *gin.Engine, h *auth.Handler, signer *token.Signer, rdb *redis.Client) {
	g := r.Group("/auth")
	g.POST("/register", middleware.RegisterRateLimit(rdb), h.Register)
	g.POST("/login", middleware.LoginRateLimit(rdb), h.Login)
	g.GET("/me", middleware.AuthRequired(signer), h.Me)

	// Social login (no-ops unless providers are configured).
	g.GET("/:provider", h.BeginOAuth)
	g.GET("/:provider/callback", h.OAuthCallback)
}

func RegisterOrderRoutes(r *gin.Engine, h *order.Handler) {
	r.POST("/orders", h.Create)
	r.GET("/orders/:id", h.GetByID)
}

func RegisterPaymentRoutes(r *gin.Engine, h *payment.Handler) {
	r.POST("/payments", h.Process)
	r.GET("/payments/:orderId", h.GetByOrderID)
}

func RegisterProductRoutes(r *gin.Engine, h *product.Handler) {
	g := r.Group("/products")
	g.GET("", h.GetAll)
	g.GET("/search", h.Search)
	g.GET("/categories", h.GetCategories)
	g.GET("/category/:category", h.GetByCategory)
	g.GET("/:id", h.GetByID)
}
