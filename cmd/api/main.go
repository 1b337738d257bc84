package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/edog39/FindMyFade-sub000/internal/config"
	"github.com/edog39/FindMyFade-sub000/internal/db"
	walletdomain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/infra/cache"
	"github.com/edog39/FindMyFade-sub000/internal/infra/payments"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	"github.com/edog39/FindMyFade-sub000/internal/routes"
)

func main() {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := config.Load()

	database := db.NewDB(cfg)

	redisClient := cache.NewRedisClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cache.Ping(ctx, redisClient); err != nil {
		log.Printf("redis unavailable at startup: %v", err)
	}

	var provider walletdomain.PaymentProvider
	if cfg.MercadoPagoToken != "" {
		p, err := payments.NewMercadoPagoProvider(cfg.MercadoPagoToken)
		if err != nil {
			log.Fatalf("mercadopago init: %v", err)
		}
		provider = p
	} else {
		log.Println("MERCADOPAGO_ACCESS_TOKEN not set, wallet top-ups disabled")
		provider = payments.DisabledProvider{}
	}

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.Setup(r, database, cfg, redisClient, provider)

	log.Printf("listening on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
