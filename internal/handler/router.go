package handler

import (
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/Dan9191/finance-sage/internal/middleware"
	"github.com/Dan9191/finance-sage/internal/service"
)

// Services groups what the router serves
type Services struct {
	Finance *service.FinanceService
	Booking *service.BookingService
	Auth    *service.AuthService
	KeyRate KeyRateSource
}

// NewRouter wires every route of the API
func NewRouter(svcs Services, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestLogger(logger))

	// Public auth routes: /auth/signup, /auth/signin
	authRouter := router.PathPrefix("/auth").Subrouter()
	NewAuthHandler(svcs.Auth, logger).RegisterRoutes(authRouter)

	apiRouter := router.PathPrefix("/api").Subrouter()
	NewFinanceHandler(svcs.Finance, logger).RegisterRoutes(apiRouter)
	NewKeyRateHandler(svcs.KeyRate, logger).RegisterRoutes(apiRouter)
	NewBookingHandler(svcs.Booking, logger).RegisterRoutes(apiRouter, middleware.AuthMiddleware(svcs.Auth, logger))

	return router
}
