package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/middleware"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/store"
)

func (h *Handler) GetTodos(c *gin.Context) {
	userID := middleware.UserID(c)

	tasks, err := h.store.ListTasks(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

func (h *Handler) CreateTodo(c *gin.Context) {
	request := &models.CreateTodoRequest{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	text := strings.TrimSpace(request.Text)
	if text == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "text is required"})
		return
	}

	task, err := h.store.CreateTask(c.Request.Context(), middleware.UserID(c), text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTodo(c *gin.Context) {
	taskId, err := parseId(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	request := &models.UpdateTodoRequest{}
	err = c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	// Empty or absent text keeps the stored text; only an explicitly
	// provided completed flag overwrites.
	upd := store.TaskUpdate{Completed: request.Completed}
	if request.Text != nil {
		upd.Text = strings.TrimSpace(*request.Text)
	}

	task, err := h.store.UpdateTask(c.Request.Context(), middleware.UserID(c), taskId, upd)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "todo not found or unauthorized"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTodo(c *gin.Context) {
	taskId, err := parseId(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return
	}

	err = h.store.DeleteTask(c.Request.Context(), middleware.UserID(c), taskId)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "todo not found or unauthorized"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Todo deleted"})
}
