// Package auth implements registration, credential login and current-user
// resolution. Identity is carried end to end by a signed bearer token.
package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/middleware"
	"shoplite_back_end/internal/models"
	"shoplite_back_end/internal/store"
	"shoplite_back_end/internal/token"
	"shoplite_back_end/internal/utils"
	"shoplite_back_end/internal/validators"
)

type Handler struct {
	users  store.UserStore
	tokens *token.Signer
}

func NewHandler(users store.UserStore, tokens *token.Signer) *Handler {
	return &Handler{users: users, tokens: tokens}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var input credentialsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Abort(c, httperr.BadRequest("Invalid JSON body"))
		return
	}

	v := validators.Violations{}
	validators.Required(v, "email", input.Email)
	if _, ok := v["email"]; !ok {
		validators.Email(v, "email", input.Email)
	}
	validators.Required(v, "password", input.Password)
	if _, ok := v["password"]; !ok {
		validators.MinRunes(v, "password", input.Password, 6)
	}
	if !v.Empty() {
		httperr.Abort(c, httperr.Validation(v))
		return
	}

	hashed, err := utils.HashPassword(input.Password)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Password:  hashed,
		Role:      models.RoleUser,
		Provider:  "local",
		CreatedAt: time.Now().UTC(),
	}

	if err := h.users.Insert(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			httperr.Abort(c, httperr.Conflict("Email already registered"))
			return
		}
		httperr.Abort(c, err)
		return
	}

	t, err := h.tokens.Mint(user)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": t})
}

func (h *Handler) Login(c *gin.Context) {
	var input credentialsRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		httperr.Abort(c, httperr.BadRequest("Invalid JSON body"))
		return
	}

	// Same answer for unknown email and wrong password: no account probing.
	user, err := h.users.GetByEmail(c.Request.Context(), input.Email)
	if err != nil || !utils.VerifyPassword(input.Password, user.Password) {
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			httperr.Abort(c, err)
			return
		}
		httperr.Abort(c, httperr.Unauthorized("Invalid email or password"))
		return
	}

	t, err := h.tokens.Mint(user)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": t})
}

// Me resolves the caller from the verified token claims, re-reading the user
// row so a deleted account stops authenticating even with a live token.
func (h *Handler) Me(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		httperr.Abort(c, httperr.Unauthorized("Missing Authorization header"))
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			httperr.Abort(c, httperr.Unauthorized("User not found"))
			return
		}
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}
