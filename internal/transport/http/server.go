package http

import (
	"github.com/gin-gonic/gin"

	appsvc "blogapi/internal/app"
	"blogapi/internal/bootstrap"
	"blogapi/internal/platform/rabbitmq"
	"blogapi/internal/repository"
	"blogapi/internal/transport/http/handler"
	"blogapi/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(middleware.RequestID(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/", healthHandler.Index)
	router.GET("/health", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	postRepo := repository.NewPostRepository(app.MySQL)

	var events appsvc.EventPublisher
	if app.MQConn != nil {
		events = rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.EventQueue)
	}

	userService := appsvc.NewUserService(userRepo, events)
	postService := appsvc.NewPostService(postRepo, userRepo, events)
	userHandler := handler.NewUserHandler(userService)
	postHandler := handler.NewPostHandler(postService)

	router.GET("/users", userHandler.List)
	router.POST("/users", userHandler.Create)
	router.GET("/users/:id", userHandler.Get)
	router.PUT("/users/:id", userHandler.Update)
	router.DELETE("/users/:id", userHandler.Delete)

	router.GET("/posts", postHandler.List)
	router.POST("/posts", postHandler.Create)
	router.GET("/posts/:id", postHandler.Get)
	router.PUT("/posts/:id", postHandler.Update)
	router.DELETE("/posts/:id", postHandler.Delete)

	return router
}
