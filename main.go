package main

import (
	"fmt"

	"github.com/OmarZED/Delivery-System/configs"
	"github.com/OmarZED/Delivery-System/middlewares"
	"github.com/OmarZED/Delivery-System/routes"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	if cfg.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	gin.SetMode(cfg.GinMode)

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate + seed catalog
	configs.SetupDatabase()
	if err := configs.SeedDishes(); err != nil {
		logrus.WithError(err).Fatal("seed dishes failed")
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.MetricsMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
