package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/onlypets/go-petstore-api/internal/config"
	"github.com/onlypets/go-petstore-api/internal/handler"
	"github.com/onlypets/go-petstore-api/internal/middleware"
	"github.com/onlypets/go-petstore-api/internal/repository"
	"github.com/onlypets/go-petstore-api/internal/store"
	"github.com/onlypets/go-petstore-api/internal/worker"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Error("load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// State store
	userRepo := repository.NewUserRepository(cfg.Data.UsersPath())
	bus := EventBus.New()
	st := store.New(userRepo, bus, log)
	if cfg.Data.SeedDemoBooking {
		st.SeedDemoBooking()
	}
	st.OnChange(func() {
		log.Debug("state changed")
	})
	if user := st.CurrentUser(); user != nil {
		log.Info("restored session", "email", user.Email)
	}

	// Handlers
	authH := handler.NewAuthHandler(st, cfg.Session.JWTSecret, cfg.Session.JWTExpiry)
	catalogH := handler.NewCatalogHandler(st)
	cartH := handler.NewCartHandler(st)
	wishlistH := handler.NewWishlistHandler(st)
	bookingH := handler.NewBookingHandler(st)
	wizardH := handler.NewWizardHandler(st)
	toastH := handler.NewToastHandler(st)
	healthH := handler.NewHealthHandler(cfg.Data.Dir)

	// Worker
	toastWorker := worker.NewToastWorker(st, cfg.Toast.TTL, cfg.Toast.SweepInterval, log)

	// Router
	router := gin.Default()
	router.Use(middleware.RequestID())
	router.GET("/healthz", healthH.Healthz)
	router.GET("/readyz", healthH.Readyz)

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/signup", authH.Signup)
		auth.POST("/login", authH.Login)
		auth.POST("/social", authH.SocialLogin)
		auth.GET("/me", authH.Me)

		session := middleware.SessionMiddleware(cfg.Session.JWTSecret, st)
		auth.POST("/logout", session, authH.Logout)
		auth.PUT("/profile", session, authH.UpdateProfile)

		v1.GET("/pets", catalogH.ListPets)
		v1.GET("/pets/:id", catalogH.GetPet)
		v1.GET("/services", catalogH.ListServices)
		v1.GET("/services/:id", catalogH.GetService)
		v1.GET("/services/:id/slots", bookingH.SlotAvailability)
		v1.GET("/products", catalogH.ListProducts)

		cart := v1.Group("/cart")
		cart.GET("", cartH.GetCart)
		cart.POST("/items", cartH.AddItem)
		cart.PUT("/items/:id", cartH.UpdateItem)
		cart.DELETE("/items/:id", cartH.DeleteItem)
		cart.DELETE("", cartH.ClearCart)

		v1.GET("/wishlist", wishlistH.GetWishlist)
		v1.POST("/wishlist/toggle", wishlistH.Toggle)

		bookings := v1.Group("/bookings")
		bookings.GET("", session, bookingH.ListMine)
		bookings.POST("/:id/cancel", bookingH.Cancel)

		wizards := v1.Group("/wizards")
		wizards.POST("", wizardH.Start)
		wizards.GET("/:id", wizardH.Get)
		wizards.PUT("/:id/fields", wizardH.ApplyFields)
		wizards.POST("/:id/next", wizardH.Next)
		wizards.POST("/:id/back", wizardH.Back)
		wizards.POST("/:id/date", wizardH.SelectDate)
		wizards.POST("/:id/slot", wizardH.SelectSlot)
		wizards.POST("/:id/month/next", wizardH.NextMonth)
		wizards.POST("/:id/month/prev", wizardH.PrevMonth)

		v1.GET("/toasts", toastH.List)
		v1.DELETE("/toasts/:id", toastH.Dismiss)
	}

	toastWorker.Start(ctx)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting HTTP server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", "error", err)
	}

	toastWorker.Stop()
	cancel()
	log.Info("server stopped")
}
