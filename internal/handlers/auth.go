package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/models"
	"github.com/AbelAliasAbraham/ToDo-List-Using-React-and-Node.js/internal/store"
)

// dummyHash is compared against when the username is unknown, so both login
// failure paths cost one bcrypt verification and stay indistinguishable.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func (h *Handler) Register(c *gin.Context) {
	request := &models.Credentials{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	username := strings.TrimSpace(request.Username)
	if username == "" || request.Password == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username and password are required"})
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(request.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	_, err = h.store.CreateUser(c.Request.Context(), username, string(hashed))
	if errors.Is(err, store.ErrDuplicateUsername) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "username already exists"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "database error"})
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "User registered"})
}

func (h *Handler) Login(c *gin.Context) {
	request := &models.Credentials{}
	err := c.ShouldBindBodyWithJSON(request)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body"})
		return
	}

	user, err := h.store.UserByUsername(c.Request.Context(), strings.TrimSpace(request.Username))
	if errors.Is(err, store.ErrNotFound) {
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(request.Password))
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid credentials"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid credentials"})
		return
	}

	tokenString, err := h.signer.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "internal error"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: tokenString})
}
