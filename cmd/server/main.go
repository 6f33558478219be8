package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shubham06102003/home-inventory-api/internal/auth"
	"github.com/Shubham06102003/home-inventory-api/internal/config"
	"github.com/Shubham06102003/home-inventory-api/internal/database"
	"github.com/Shubham06102003/home-inventory-api/internal/handlers"
	"github.com/Shubham06102003/home-inventory-api/internal/logging"
	"github.com/Shubham06102003/home-inventory-api/internal/middleware"
	"github.com/Shubham06102003/home-inventory-api/internal/objectstore"
	"github.com/Shubham06102003/home-inventory-api/internal/repository"
	"github.com/Shubham06102003/home-inventory-api/internal/services"
)

const tokenDuration = 24 * time.Hour

func main() {
	logging.Setup()

	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Repositories
	familyRepo := repository.NewFamilyRepository(db)
	invitationRepo := repository.NewInvitationRepository(db)
	itemRepo := repository.NewItemRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	familyService := services.NewFamilyService(familyRepo)
	invitationService := services.NewInvitationService(familyRepo, invitationRepo)
	itemService := services.NewItemService(itemRepo, familyRepo)
	userService := services.NewUserService(userRepo)
	uploadService := services.NewUploadService(objectstore.New(cfg))

	// Handlers
	familyHandler := handlers.NewFamilyHandler(familyService)
	invitationHandler := handlers.NewInvitationHandler(invitationService)
	itemHandler := handlers.NewItemHandler(itemService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, tokenDuration)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Metrics())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Home Inventory API"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(jwtManager), middleware.SyncIdentity(userService))
	{
		family := api.Group("/family")
		{
			family.POST("/create", familyHandler.CreateFamily)
			family.POST("/join", invitationHandler.RequestJoin)
			family.GET("/invitations", invitationHandler.ListPending)
			family.GET("/invitations/status", invitationHandler.GetStatus)
			family.POST("/invitations/accept", invitationHandler.Accept)
			family.POST("/invitations/reject", invitationHandler.Reject)
			family.GET("/user", familyHandler.GetUserFamily)
			family.POST("/members/remove", familyHandler.RemoveMember)
			family.POST("/members/leave", familyHandler.Leave)
			family.POST("/members/transfer-admin-and-leave", familyHandler.TransferAdminAndLeave)
			family.POST("/delete-and-leave", familyHandler.DeleteAndLeave)
		}

		api.GET("/family-with-items", itemHandler.FamilyWithItems)

		items := api.Group("/items")
		{
			items.POST("/add", itemHandler.AddItem)
			items.PUT("/edit/:id", itemHandler.EditItem)
			items.DELETE("/delete/:id", itemHandler.DeleteItem)
			items.GET("/family/:familyId", itemHandler.ListFamilyItems)
			items.GET("/family/:familyId/latest", itemHandler.ListLatestFamilyItems)
			items.GET("/search", itemHandler.SearchItems)
			items.GET("/by-id", itemHandler.GetItem)
		}

		api.POST("/uploads/image-url", uploadHandler.CreateImageUploadURL)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
