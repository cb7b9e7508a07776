package auth

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/facebook"
	"github.com/markbates/goth/providers/google"

	"shoplite_back_end/internal/httperr"
	"shoplite_back_end/internal/models"
	"shoplite_back_end/internal/store"
)

// ================== SOCIAL LOGIN ==================
// Optional: enabled per provider when its client id/secret env vars are set.
// A completed OAuth flow upserts the user and issues the same bearer token
// as password login.

// SetupOAuth configures the gothic session store and registered providers.
func SetupOAuth() {
	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Println("⚠️  SESSION_SECRET not set — social login disabled")
		return
	}

	cookieStore := sessions.NewCookieStore([]byte(sessionSecret))
	cookieStore.MaxAge(3600)
	cookieStore.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   3600,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	gothic.Store = cookieStore

	gothic.GetProviderName = func(req *http.Request) (string, error) {
		if provider := req.URL.Query().Get("provider"); provider != "" {
			return provider, nil
		}
		return "", errors.New("provider not found")
	}

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	var providers []goth.Provider
	if id, secret := os.Getenv("GOOGLE_CLIENT_ID"), os.Getenv("GOOGLE_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, google.New(id, secret, baseURL+"/auth/google/callback"))
		log.Println("✅ Google OAuth enabled")
	}
	if id, secret := os.Getenv("FACEBOOK_CLIENT_ID"), os.Getenv("FACEBOOK_CLIENT_SECRET"); id != "" && secret != "" {
		providers = append(providers, facebook.New(id, secret, baseURL+"/auth/facebook/callback"))
		log.Println("✅ Facebook OAuth enabled")
	}

	if len(providers) == 0 {
		log.Println("⚠️  No OAuth provider configured")
		return
	}
	goth.UseProviders(providers...)
}

func (h *Handler) BeginOAuth(c *gin.Context) {
	provider := c.Param("provider")
	if provider == "" {
		httperr.Abort(c, httperr.BadRequest("No provider specified"))
		return
	}

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()
	gothic.BeginAuthHandler(c.Writer, c.Request)
}

func (h *Handler) OAuthCallback(c *gin.Context) {
	provider := c.Param("provider")

	q := c.Request.URL.Query()
	q.Set("provider", provider)
	c.Request.URL.RawQuery = q.Encode()

	gothUser, err := gothic.CompleteUserAuth(c.Writer, c.Request)
	if err != nil {
		log.Println("❌ OAuth completion failed:", err)
		httperr.Abort(c, httperr.Unauthorized("OAuth authentication failed"))
		return
	}
	if gothUser.Email == "" {
		httperr.Abort(c, httperr.Unauthorized("OAuth provider returned no email"))
		return
	}

	ctx := c.Request.Context()
	user, err := h.users.GetByEmail(ctx, gothUser.Email)
	if errors.Is(err, store.ErrNotFound) {
		user = models.User{
			ID:        uuid.NewString(),
			Email:     gothUser.Email,
			Role:      models.RoleUser,
			Provider:  provider,
			CreatedAt: time.Now().UTC(),
		}
		if insertErr := h.users.Insert(ctx, user); insertErr != nil && !errors.Is(insertErr, store.ErrDuplicate) {
			httperr.Abort(c, insertErr)
			return
		}
	} else if err != nil {
		httperr.Abort(c, err)
		return
	}

	t, err := h.tokens.Mint(user)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": t, "email": user.Email})
}
