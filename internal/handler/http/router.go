package http

import (
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/Vidora/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Vidora/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Vidora/internal/usecase/contract"
)

type Router struct {
	reactionHandler  *ReactionHandler
	playlistHandler  *PlaylistHandler
	commentHandler   *CommentHandler
	videoHandler     *VideoHandler
	dashboardHandler *DashboardHandler
	jwtService       usecase.JWTService
}

func NewRouter(reactionUsecase usecasecontract.IReactionUseCase, playlistUsecase usecasecontract.IPlaylistUseCase, commentUsecase usecasecontract.ICommentUseCase, videoUsecase usecasecontract.IVideoUseCase, dashboardUsecase usecasecontract.IDashboardUseCase, jwtService usecase.JWTService, config usecasecontract.IConfigProvider) *Router {
	return &Router{
		reactionHandler:  NewReactionHandler(reactionUsecase),
		playlistHandler:  NewPlaylistHandler(playlistUsecase),
		commentHandler:   NewCommentHandler(commentUsecase, config),
		videoHandler:     NewVideoHandler(videoUsecase, config),
		dashboardHandler: NewDashboardHandler(dashboardUsecase, config),
		jwtService:       jwtService,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	lmt := tollbooth.NewLimiter(10, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")
	router.Use(middleware.RateLimiter(lmt))
	router.Use(middleware.Metrics())

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")

	// Public routes (no authentication required)
	v1.GET("/videos", r.videoHandler.ListVideos)
	v1.GET("/videos/:videoID", r.videoHandler.GetVideo)
	v1.GET("/videos/:videoID/comments", r.commentHandler.GetVideoComments)
	v1.GET("/playlists/:playlistID", r.playlistHandler.GetPlaylist)
	v1.GET("/users/:userID/playlists", r.playlistHandler.ListUserPlaylists)
	v1.GET("/likes/:targetKind/:targetID/count", r.reactionHandler.GetReactionCount)
	v1.GET("/channels/:channelID/stats", r.dashboardHandler.GetChannelStats)
	v1.GET("/channels/:channelID/videos", r.dashboardHandler.GetChannelVideos)

	// Protected routes (authentication required)
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleWare(r.jwtService))
	{
		// Reaction routes
		protected.POST("/likes/:targetKind/:targetID/toggle", r.reactionHandler.ToggleReaction)
		protected.GET("/likes/videos", r.reactionHandler.ListLikedVideos)

		// Playlist routes
		protected.POST("/playlists", r.playlistHandler.CreatePlaylist)
		protected.POST("/playlists/:playlistID/videos/:videoID", r.playlistHandler.AddVideo)
		protected.DELETE("/playlists/:playlistID/videos/:videoID", r.playlistHandler.RemoveVideo)
		protected.PATCH("/playlists/:playlistID", r.playlistHandler.UpdatePlaylist)
		protected.DELETE("/playlists/:playlistID", r.playlistHandler.DeletePlaylist)

		// Video routes
		protected.POST("/videos", r.videoHandler.PublishVideo)
		protected.PUT("/videos/:videoID", r.videoHandler.UpdateVideo)
		protected.DELETE("/videos/:videoID", r.videoHandler.DeleteVideo)
		protected.PATCH("/videos/:videoID/publish", r.videoHandler.TogglePublishStatus)

		// Comment CRUD routes
		protected.POST("/videos/:videoID/comments", r.commentHandler.CreateComment)
		protected.PUT("/comments/:commentID", r.commentHandler.UpdateComment)
		protected.DELETE("/comments/:commentID", r.commentHandler.DeleteComment)
	}
}
