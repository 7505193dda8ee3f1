package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"wander/cmd/fx/account_fx"
	"wander/cmd/fx/analytics_fx"
	"wander/cmd/fx/controllers_fx"
	"wander/cmd/fx/db_fx"
	"wander/cmd/fx/enrichment_fx"
	"wander/cmd/fx/llm_fx"
	"wander/cmd/fx/media_fx"
	"wander/cmd/fx/trip_fx"
	"wander/internal/api/controllers"
	"wander/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	app := fx.New(
		db_fx.Module,
		llm_fx.Module,
		analytics_fx.Module,
		enrichment_fx.Module,
		media_fx.Module,
		trip_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	tripsController *controllers.TripsController,
	mediaController *controllers.MediaController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, tripsController, mediaController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripsController *controllers.TripsController,
	mediaController *controllers.MediaController,
	accountController *controllers.AccountController) {

	tripsGroup := r.Group("/trips")
	tripsGroup.Use(middleware.OptionalJWTMiddleware())
	tripsGroup.POST("/generate-itinerary", tripsController.GenerateItinerary)
	tripsGroup.POST("/refine-itinerary", tripsController.RefineItinerary)
	tripsGroup.POST("/restore-version", tripsController.RestoreVersion)
	tripsGroup.GET("/:tripId", tripsController.GetTripById)
	tripsGroup.GET("/:tripId/versions", tripsController.ListVersions)

	mediaGroup := r.Group("/media")
	mediaGroup.POST("/fetch-unsplash-image", mediaController.FetchUnsplashImage)
	mediaGroup.POST("/generate-static-map", mediaController.GenerateStaticMap)

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", accountController.Register)
	accountsGroup.POST("/login", accountController.Login)
	accountsGroup.POST("/request-password-reset", accountController.RequestPasswordReset)
	accountsGroup.POST("/reset-password", accountController.ResetPassword)
	accountsGroup.GET("/trips", middleware.JWTAuthMiddleware(), accountController.ListMyTrips)
}
