package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/OmarZuritaEC/vitalgym/internal/auth"
	"github.com/OmarZuritaEC/vitalgym/internal/config"
	"github.com/OmarZuritaEC/vitalgym/internal/customer"
	"github.com/OmarZuritaEC/vitalgym/internal/email"
	"github.com/OmarZuritaEC/vitalgym/internal/membership"
	"github.com/OmarZuritaEC/vitalgym/internal/payment"
	"github.com/OmarZuritaEC/vitalgym/internal/user"
)

type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	db         *sqlx.DB
	config     *config.Config
	email      *email.Service
}

func New(database *sqlx.DB, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())
	router.Use(RateLimitMiddleware(20, 40))

	userRepo := user.NewRepository(database)
	customerRepo := customer.NewRepository(database)
	membershipRepo := membership.NewRepository(database)
	paymentRepo := payment.NewRepository(database)

	userHandler := user.NewHandler(user.NewService(userRepo, cfg.JWTSecret))
	customerHandler := customer.NewHandler(customerRepo, userRepo)
	paymentHandler := payment.NewHandler(paymentRepo, customerRepo)

	orderValidator := membership.NewOrderValidator(membershipRepo, customerRepo, time.Now)
	orderService := membership.NewService(membershipRepo, customerRepo, emailService)
	membershipHandler := membership.NewHandler(orderService, orderValidator, membershipRepo, userRepo)

	public := router.Group("/auth")
	{
		public.POST("/register", userHandler.Register)
		public.POST("/login", userHandler.Login)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
	}

	// Back-office routes. Every staff member can sell memberships and
	// manage customers.
	admin := router.Group("/admin")
	admin.Use(authMiddleware, auth.RequireRole("admin", "staff"))
	{
		admin.POST("/memberships", membershipHandler.CreateOrder)
		admin.GET("/membership-types", membershipHandler.ListTypes)
		admin.POST("/membership-types", membershipHandler.CreateType)
		admin.DELETE("/membership-types/:typeID", membershipHandler.DeleteType)

		admin.POST("/customers", customerHandler.Create)
		admin.GET("/customers", customerHandler.List)
		admin.GET("/customers/:customerID", customerHandler.Get)
		admin.GET("/customers/:customerID/payments", paymentHandler.ListByCustomer)

		admin.GET("/payments", paymentHandler.ListRecent)
		admin.GET("/users", userHandler.List)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))

	return &Server{
		router: router,
		db:     database,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.httpServer = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
