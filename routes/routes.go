package routes

import (
	"github.com/OmarZED/Delivery-System/configs"
	"github.com/OmarZED/Delivery-System/controllers"
	"github.com/OmarZED/Delivery-System/middlewares"
	"github.com/OmarZED/Delivery-System/repository"
	"github.com/OmarZED/Delivery-System/services"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewTokenRepository(db)
	dishRepo := repository.NewDishRepository(db)
	basketRepo := repository.NewBasketRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, cfg.JWTTTL)
	dishSvc := services.NewDishService(dishRepo, ratingRepo)
	ratingSvc := services.NewRatingService(ratingRepo, dishRepo)
	basketSvc := services.NewBasketService(db, basketRepo, dishRepo)
	orderSvc := services.NewOrderService(db, orderRepo, basketRepo)

	// Controllers
	userCtrl := controllers.NewUserController(authSvc)
	dishCtrl := controllers.NewDishController(dishSvc, ratingSvc)
	basketCtrl := controllers.NewBasketController(basketSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.AuthMiddleware(cfg, tokenRepo)

	api := r.Group("/api")

	// User (register/login public, rest protected)
	user := api.Group("/user")
	{
		user.POST("/register", userCtrl.Register)
		user.POST("/login", userCtrl.Login)
		user.POST("/logout", auth, userCtrl.Logout)
		user.GET("/profile", auth, userCtrl.Profile)
		user.PUT("/profile", auth, userCtrl.UpdateProfile)
	}

	// Dish browsing is public; rating requires auth
	dish := api.Group("/dish")
	{
		dish.GET("", dishCtrl.List)
		dish.GET("/:id", dishCtrl.Get)
		dish.GET("/:id/rating", dishCtrl.Rating)
		dish.GET("/:id/rating/check", auth, dishCtrl.CanRate)
		dish.POST("/:id/rating/:score", auth, dishCtrl.Rate)
	}

	// Basket (protected)
	basket := api.Group("/basket", auth)
	{
		basket.GET("", basketCtrl.Get)
		basket.POST("/dish/:dishId", basketCtrl.Add)
		basket.DELETE("/dish/:dishId", basketCtrl.Remove)
		basket.DELETE("", basketCtrl.Clear)
	}

	// Orders (protected)
	order := api.Group("/order", auth)
	{
		order.POST("", orderCtrl.Create)
		order.GET("/user", orderCtrl.ListForMe)
		order.GET("/:orderId", orderCtrl.Detail)
		order.PUT("/:orderId/delivered", orderCtrl.ConfirmDelivery)
	}
}
