package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/middleware"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/store"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/token"
)

type Handler struct {
	store  store.Store
	signer *token.Signer
}

func New(store store.Store, signer *token.Signer) *Handler {
	return &Handler{store: store, signer: signer}
}

// Routes builds the full API router. Everything under /api/todos sits behind
// the auth middleware.
func (h *Handler) Routes() *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	api := router.Group("/api")
	api.GET("/health", h.Health)

	auth := api.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	todos := api.Group("/todos", middleware.Auth(h.signer))
	todos.GET("", h.GetTodos)
	todos.POST("", h.CreateTodo)
	todos.PUT("/:id", h.UpdateTodo)
	todos.DELETE("/:id", h.DeleteTodo)

	return router
}

func parseId(id string) (uuid.UUID, error) {
	return uuid.Parse(id)
}
