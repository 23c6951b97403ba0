package api

import (
	"net/http"

	"github.com/AlexZinkM/walletd/internal/handler"
	"github.com/AlexZinkM/walletd/internal/lock"
	"github.com/AlexZinkM/walletd/internal/notify"
	"github.com/AlexZinkM/walletd/internal/wallet"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// Deps are the collaborators the router wires into handlers
type Deps struct {
	Wallet   *wallet.Service
	Engine   *lock.Engine
	Notifier *notify.Notifier
	Logger   *zap.Logger
}

// SetupRouter sets up router with handlers
func SetupRouter(d Deps) http.Handler {
	walletHandler := handler.NewWalletHandler(d.Wallet, d.Logger)
	securityHandler := handler.NewSecurityHandler(d.Engine, d.Logger)
	notificationHandler := handler.NewNotificationHandler(d.Notifier)

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Wallet endpoints
	mux.HandleFunc("/wallet", walletHandler.Wallet)
	mux.HandleFunc("/wallet/create", walletHandler.Create)
	mux.HandleFunc("/wallet/import/seed", walletHandler.ImportSeed)
	mux.HandleFunc("/wallet/import/mnemonic", walletHandler.ImportMnemonic)
	mux.HandleFunc("/wallet/import/private-key", walletHandler.ImportPrivateKey)
	mux.HandleFunc("/wallet/secrets", walletHandler.Secrets)
	mux.HandleFunc("/wallet/balance", walletHandler.GetBalance)
	mux.HandleFunc("/wallet/receive", walletHandler.Receive)
	mux.HandleFunc("/wallet/transfer", walletHandler.Transfer)
	mux.HandleFunc("/wallet/token", walletHandler.CreateToken)

	// Security endpoints
	mux.HandleFunc("/security/status", securityHandler.Status)
	mux.HandleFunc("/security/password", securityHandler.Password)
	mux.HandleFunc("/security/unlock", securityHandler.Unlock)
	mux.HandleFunc("/security/lock", securityHandler.Lock)
	mux.HandleFunc("/security/auto-lock", securityHandler.AutoLock)

	mux.HandleFunc("/notifications", notificationHandler.Drain)
	mux.HandleFunc("/notifications/stream", notificationHandler.Stream)

	return requestLogger(d.Logger, mux)
}
