package http

import (
	"net/http"

	"github.com/blogapp/blog-server/internal/api/http/dto"
	"github.com/blogapp/blog-server/internal/api/http/handler"
	"github.com/blogapp/blog-server/internal/api/http/middleware"
	"github.com/blogapp/blog-server/internal/auth"
	"github.com/blogapp/blog-server/internal/comments"
	"github.com/blogapp/blog-server/internal/posts"
	"github.com/blogapp/blog-server/internal/storage"
	"github.com/blogapp/blog-server/internal/users"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Config         Config
	Tokens         *auth.TokenCodec
	UserService    *users.Service
	PostService    *posts.Service
	CommentService *comments.Service
	ImageStore     storage.ImageStore
	// DB backs the health check; nil when running on the in-memory store.
	DB handler.Pinger
	// Cache is the post cache, checked by /health; nil when caching is off.
	Cache handler.Pinger
}

func SetupRoute(engine *gin.Engine, srvs *Services) {
	engine.Use(middleware.RequestLogger())

	healthHandler := handler.NewHealthHandler(srvs.DB, srvs.Cache)
	engine.GET("/health", healthHandler.Check)

	if local, ok := srvs.ImageStore.(*storage.LocalStore); ok {
		engine.Static(local.PublicPath(), local.Dir())
	}

	authn := middleware.JWTAuth(srvs.Tokens)
	admin := middleware.RequireRole(auth.RoleAdministrador)
	writers := middleware.RequireRole(auth.RoleAdministrador, auth.RoleAutor)

	authHandler := handler.NewAuthHandler(srvs.UserService)
	userHandler := handler.NewUserHandler(srvs.UserService)
	app := engine.Group("/app")
	{
		app.POST("/registro", authHandler.Register)
		app.POST("/login", authHandler.Login)
		app.PUT("/usuario/:id", authn, userHandler.UpdateProfile)
		app.DELETE("/usuario/:id", authn, admin, userHandler.Delete)
		app.GET("/adm/dashboard", authn, admin, userHandler.Dashboard)
		app.PATCH("/adm/:id/papel", authn, admin, userHandler.UpdateRole)
	}

	postHandler := handler.NewPostHandler(srvs.PostService, srvs.Config.BaseURL)
	uploadHandler := handler.NewUploadHandler(srvs.PostService, srvs.ImageStore, srvs.Config.MaxUploadBytes())
	commentHandler := handler.NewCommentHandler(srvs.CommentService)
	postagens := engine.Group("/postagens", authn)
	{
		postagens.GET("", postHandler.List)
		postagens.POST("", writers, postHandler.Create)
		postagens.GET("/:id", postHandler.Get)
		postagens.PUT("/:id", writers, postHandler.Update)
		postagens.DELETE("/:id", writers, postHandler.Delete)
		postagens.POST("/:id/imagem", writers, uploadHandler.UploadImage)
		postagens.GET("/:id/comentarios", commentHandler.ListForPost)
		postagens.POST("/:id/comentarios", commentHandler.Create)
	}

	comentarios := engine.Group("/comentarios", authn)
	{
		comentarios.PUT("/:id", commentHandler.Update)
		comentarios.DELETE("/:id", commentHandler.Delete)
	}

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "Rota não existe."})
	})
}
