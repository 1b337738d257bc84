package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/edog39/FindMyFade-sub000/internal/audit"
	"github.com/edog39/FindMyFade-sub000/internal/config"
	walletdomain "github.com/edog39/FindMyFade-sub000/internal/domain/wallet"
	"github.com/edog39/FindMyFade-sub000/internal/handlers"
	"github.com/edog39/FindMyFade-sub000/internal/infra/cache"
	"github.com/edog39/FindMyFade-sub000/internal/infra/repository"
	"github.com/edog39/FindMyFade-sub000/internal/middleware"
	"github.com/edog39/FindMyFade-sub000/internal/models"
	bookinguc "github.com/edog39/FindMyFade-sub000/internal/usecase/booking"
	walletuc "github.com/edog39/FindMyFade-sub000/internal/usecase/wallet"
)

func Setup(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	redisClient *redis.Client,
	provider walletdomain.PaymentProvider,
) {
	// ------------------------------------------------------
	// Infra
	// ------------------------------------------------------
	bookingRepo := repository.NewBookingGormRepository(db)
	walletRepo := repository.NewWalletGormRepository(db)

	mirror := cache.NewWalletMirror(redisClient)
	idemStore := cache.NewIdempotencyStore(redisClient)

	auditDispatcher := audit.NewDispatcher(audit.New(db))

	// ------------------------------------------------------
	// Use cases
	// ------------------------------------------------------
	createUC := bookinguc.NewCreateBooking(bookingRepo, auditDispatcher)
	cancelUC := bookinguc.NewCancelBooking(bookingRepo, auditDispatcher)
	settleUC := bookinguc.NewSettleBooking(bookingRepo, auditDispatcher)
	listUC := bookinguc.NewListClientBookings(bookingRepo)
	scheduleUC := bookinguc.NewListBarberSchedule(bookingRepo)

	topUpUC := walletuc.NewTopUpWallet(walletRepo, provider, auditDispatcher)
	redeemUC := walletuc.NewRedeemReward(walletRepo, auditDispatcher)
	referralUC := walletuc.NewClaimReferral(walletRepo, cfg.ReferralBonusAmount, auditDispatcher)

	// ------------------------------------------------------
	// Handlers
	// ------------------------------------------------------
	refresh := handlers.NewMirrorRefresher(bookingRepo, walletRepo, mirror)

	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	bookingHandler := handlers.NewBookingHandler(createUC, cancelUC, settleUC, listUC, scheduleUC, idemStore, refresh)
	walletHandler := handlers.NewWalletHandler(walletRepo, topUpUC, referralUC, refresh)
	rewardHandler := handlers.NewRewardHandler(walletRepo, redeemUC, refresh)
	serviceHandler := handlers.NewServiceHandler(db)
	profileHandler := handlers.NewProfileHandler(db)
	publicHandler := handlers.NewPublicHandler(db)
	auditHandler := handlers.NewAuditLogsHandler(db)

	// ------------------------------------------------------
	// Middleware
	// ------------------------------------------------------
	timeout := middleware.TimeoutMiddleware(
		time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	)
	auth := middleware.AuthMiddleware(cfg)
	clientOnly := middleware.RequireRole(models.RoleClient)
	barberOnly := middleware.RequireRole(models.RoleBarber)

	// ------------------------------------------------------
	// Routes
	// ------------------------------------------------------
	api := r.Group("/api/v1", timeout)

	// públicas
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)

	public := api.Group("/public")
	{
		public.GET("/barbershops", publicHandler.ListBarbershops)
		public.GET("/barbershops/:slug", publicHandler.GetBarbershop)
	}

	// autenticadas
	authed := api.Group("", auth)
	{
		authed.GET("/me", meHandler.GetMe)
		authed.GET("/audit-logs", auditHandler.List)

		// carteira (qualquer papel)
		authed.GET("/wallet", walletHandler.GetWallet)
		authed.GET("/wallet/transactions", walletHandler.ListTransactions)
		authed.POST("/wallet/topup", walletHandler.TopUp)
		authed.POST("/wallet/referral", walletHandler.ClaimReferral)

		// recompensas
		authed.GET("/rewards", rewardHandler.ListCatalog)
		authed.GET("/rewards/mine", rewardHandler.ListRedeemed)
		authed.POST("/rewards/:id/redeem", rewardHandler.Redeem)
	}

	// cliente
	client := api.Group("", auth, clientOnly)
	{
		client.POST("/appointments", bookingHandler.Create)
		client.GET("/appointments", bookingHandler.ListMine)
		client.POST("/appointments/:id/cancel", bookingHandler.Cancel)
	}

	// barbeiro
	barber := api.Group("/barber", auth, barberOnly)
	{
		barber.GET("/schedule", bookingHandler.Schedule)
		barber.POST("/appointments/:id/settle", bookingHandler.Settle)

		barber.GET("/profile", profileHandler.Get)
		barber.PATCH("/profile", profileHandler.Update)

		barber.GET("/services", serviceHandler.List)
		barber.POST("/services", serviceHandler.Create)
		barber.PATCH("/services/:id", serviceHandler.Update)
	}
}
