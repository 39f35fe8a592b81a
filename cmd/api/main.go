package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/mikiasgoitom/Vidora/internal/domain/contract"
	handlerHttp "github.com/mikiasgoitom/Vidora/internal/handler/http"
	redisclient "github.com/mikiasgoitom/Vidora/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Vidora/internal/infrastructure/database"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/external_services"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/store"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Vidora/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Vidora/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Get MongoDB URI and DB name from environment
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI environment variable not set")
	}
	dbName := os.Getenv("MONGODB_DB_NAME")
	if dbName == "" {
		log.Fatal("MONGODB_DB_NAME environment variable not set")
	}

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(mongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoClient.Disconnect()

	// Initialize Gin router
	router := gin.Default()

	// Dependency Injection: Repositories
	db := mongoClient.Client.Database(dbName)
	reactionRepo := mongodb.NewReactionRepository(db)
	playlistRepo := mongodb.NewPlaylistRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)

	// The unique triple index backs the race-free toggle; refuse to start
	// without it.
	if err := reactionRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create reaction indexes: %v", err)
	}

	// Dependency Injection: Services
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable not set")
	}
	jwtManager := jwt.NewJWTManager(jwtSecret)
	appLogger := logger.NewStdLogger()
	appValidator := validator.NewValidator()
	uuidGenerator := uuidgen.NewGenerator()
	appConfig := config.NewConfig()

	// Optional Dependency Injection: object storage for media uploads
	var mediaStorage *external_services.MinioMediaStorage
	if endpoint := os.Getenv("MINIO_ENDPOINT"); endpoint != "" {
		mediaStorage, err = external_services.NewMinioMediaStorage(
			endpoint,
			os.Getenv("MINIO_ACCESS_KEY"),
			os.Getenv("MINIO_SECRET_KEY"),
			os.Getenv("MINIO_BUCKET"),
			os.Getenv("MINIO_PUBLIC_URL"),
			os.Getenv("MINIO_USE_SSL") == "true",
		)
		if err != nil {
			log.Fatalf("Failed to initialize media storage: %v", err)
		}
	} else {
		log.Println("MINIO_ENDPOINT not set, video publishing is disabled")
	}

	// Dependency Injection: Usecases
	reactionUsecase := usecase.NewReactionUsecase(reactionRepo, videoRepo, uuidGenerator)
	playlistUsecase := usecase.NewPlaylistUsecase(playlistRepo, videoRepo, uuidGenerator, appValidator, appLogger)
	commentUsecase := usecase.NewCommentUseCase(commentRepo, videoRepo, uuidGenerator, appValidator)

	var storageDep contract.IMediaStorage
	if mediaStorage != nil {
		storageDep = mediaStorage
	}
	videoUsecase := usecase.NewVideoUseCase(videoRepo, reactionRepo, storageDep, uuidGenerator, appValidator, appLogger)

	// Optional Dependency Injection: Redis cache
	var videoCache usecasecontract.IVideoCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		rdb := redisclient.NewRedisFromURL(context.Background(), redisURL)
		defer redisclient.Close(rdb)
		videoCache = store.NewVideoCacheStore(rdb)
		videoUsecase.SetVideoCache(videoCache)
	}

	dashboardUsecase := usecase.NewDashboardUseCase(videoRepo, reactionRepo, videoCache)

	// Setup API routes
	appRouter := handlerHttp.NewRouter(
		reactionUsecase, playlistUsecase, commentUsecase,
		videoUsecase, dashboardUsecase, jwtManager, appConfig,
	)
	appRouter.SetupRoutes(router)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
