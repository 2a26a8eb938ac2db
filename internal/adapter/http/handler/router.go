package handler

import (
	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	WalletSvc      ports.WalletService
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
	Mode           string // gin mode: debug, release, test
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	if deps.Mode != "" {
		gin.SetMode(deps.Mode)
	}
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	walletHandler := NewWalletHandler(deps.WalletSvc)

	v1 := r.Group("/api/v1")
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.CreateWallet)
		wallets.POST("/transfer", walletHandler.Transfer)
		wallets.GET("/:userId", walletHandler.GetWallet)
		wallets.POST("/:userId/deposit", walletHandler.Deposit)
		wallets.POST("/:userId/withdraw", walletHandler.Withdraw)
		wallets.GET("/:userId/balance", walletHandler.GetBalance)
		wallets.GET("/:userId/balance/historical", walletHandler.GetHistoricalBalance)
	}

	return r
}
