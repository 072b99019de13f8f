// Package gateway implements the authentication endpoints: the Google
// OAuth handshake, the session cookie, and the per-user profile that is
// handed to clients after login.
package gateway

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/config"
	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/models"
	"github.com/pocketledger/backend/internal/users"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Session keys. sessionKeyState only lives for the duration of the
// OAuth handshake.
const (
	sessionKeyUserID = "user-id"
	sessionKeyState  = "oauth-state"
)

const userinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// Gateway serves the authentication endpoints.
//
// When oauth is nil the Google handshake endpoints respond with
// 501 Not Implemented. Session handling and the profile endpoints
// work either way.
type Gateway struct {
	users          users.Store
	oauth          *oauth2.Config
	frontendOrigin string
	welcomeURL     string
}

// New creates a Gateway over the given user store. The OAuth handshake
// is only enabled when the configuration carries Google credentials.
func New(userStore users.Store, cfg config.Config) *Gateway {
	g := &Gateway{
		users:          userStore,
		frontendOrigin: cfg.FrontendOrigin,
		welcomeURL:     welcomeURL(cfg.FrontendOrigin),
	}

	if cfg.OAuthConfigured() {
		g.oauth = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleCallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		}
	}

	return g
}

// welcomeURL is where failed logins land. The client serves its
// sign-in page there.
func welcomeURL(origin string) string {
	if origin == "" || origin == "/" {
		return "/welcome"
	}

	return strings.TrimSuffix(origin, "/") + "/welcome"
}

// RegisterRoutes registers the authentication endpoints. The OAuth
// callback is registered separately since its path comes from the URL
// registered with the provider, which need not live under this group.
func (g *Gateway) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/google", g.Login)
	r.GET("/user", g.CurrentUser)
	r.GET("/logout", g.Logout)
	r.POST("/sync-profile", g.SyncProfile)
	r.POST("/update-profile", g.UpdateProfile)
}

// Login starts the OAuth handshake by redirecting to the provider's
// consent page.
//
//	@Summary		Start login
//	@Description	Redirects to the Google consent page
//	@Tags			Authentication
//	@Success		307
//	@Failure		501	{object}	ErrorResponse
//	@Router			/auth/google [get]
func (g *Gateway) Login(c *gin.Context) {
	if g.oauth == nil {
		s := "authentication is not configured on this server"
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: s})
		return
	}

	state, err := newState()
	if err != nil {
		s := "could not generate a login state token"
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: s})
		return
	}

	session := sessions.Default(c)
	session.Set(sessionKeyState, state)
	if err := session.Save(); err != nil {
		s := "could not save your session"
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: s})
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, g.oauth.AuthCodeURL(state))
}

// Callback finishes the OAuth handshake. On success the user is looked
// up or created and the session is bound to them; every failure
// redirects to the welcome page so the client can offer a retry.
//
//	@Summary		Finish login
//	@Description	Handles the OAuth provider redirect
//	@Tags			Authentication
//	@Success		307
//	@Router			/auth/google/callback [get]
func (g *Gateway) Callback(c *gin.Context) {
	if g.oauth == nil {
		c.Redirect(http.StatusTemporaryRedirect, g.welcomeURL)
		return
	}

	session := sessions.Default(c)
	state, _ := session.Get(sessionKeyState).(string)
	session.Delete(sessionKeyState)

	if state == "" || c.Query("state") != state {
		g.failLogin(c, "state mismatch", nil)
		return
	}

	token, err := g.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		g.failLogin(c, "code exchange failed", err)
		return
	}

	identity, err := g.fetchIdentity(c, token)
	if err != nil {
		g.failLogin(c, "fetching the user profile failed", err)
		return
	}

	user, err := g.resolveUser(c, identity)
	if err != nil {
		g.failLogin(c, "resolving the user failed", err)
		return
	}

	session.Set(sessionKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		g.failLogin(c, "saving the session failed", err)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, g.frontendOrigin)
}

func (g *Gateway) failLogin(c *gin.Context, reason string, err error) {
	log.Warn().Str("request-id", requestid.Get(c)).Err(err).Msgf("login failed: %s", reason)
	c.Redirect(http.StatusTemporaryRedirect, g.welcomeURL)
}

// identity is the subset of the provider's userinfo response we use.
type identity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (g *Gateway) fetchIdentity(c *gin.Context, token *oauth2.Token) (identity, error) {
	client := g.oauth.Client(c.Request.Context(), token)

	resp, err := client.Get(userinfoURL)
	if err != nil {
		return identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return identity{}, fmt.Errorf("userinfo endpoint returned status %d", resp.StatusCode)
	}

	var id identity
	if err := json.NewDecoder(resp.Body).Decode(&id); err != nil {
		return identity{}, err
	}

	if id.ID == "" {
		return identity{}, errors.New("userinfo response carries no ID")
	}

	return id, nil
}

// resolveUser maps a provider identity to a user record. Lookup order:
// by provider ID first, then by display name so that pre-provisioned
// accounts get linked on first login, then a fresh record.
func (g *Gateway) resolveUser(c *gin.Context, id identity) (users.User, error) {
	ctx := c.Request.Context()
	providerID := "google:" + id.ID

	user, err := g.users.UserByProviderID(ctx, providerID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, users.ErrNotFound) {
		return users.User{}, err
	}

	user, err = g.users.UserByUsername(ctx, id.Name)
	if err == nil {
		return g.users.Update(ctx, user.ID, users.Update{
			Username:   &id.Name,
			ProviderID: &providerID,
		})
	}
	if !errors.Is(err, users.ErrNotFound) {
		return users.User{}, err
	}

	return g.users.Create(ctx, users.User{
		Username:   id.Name,
		ProviderID: providerID,
	})
}

// UserResponse wraps the current user. User is null for anonymous
// sessions.
type UserResponse struct {
	User *users.User `json:"user"`
}

// ProfileResponse wraps the profile handed to clients after login.
type ProfileResponse struct {
	Profile models.Profile `json:"profile"`
}

// ErrorResponse carries a human readable error message.
type ErrorResponse struct {
	Error string `json:"error" example:"you are not logged in"`
}

// CurrentUser returns the user bound to the session. Anonymous sessions
// get a null user, not an error, so clients can probe without handling
// a 401.
//
//	@Summary		Current user
//	@Description	Returns the user for the current session
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	UserResponse
//	@Router			/auth/user [get]
func (g *Gateway) CurrentUser(c *gin.Context) {
	user, ok := g.sessionUser(c)
	if !ok {
		c.JSON(http.StatusOK, UserResponse{User: nil})
		return
	}

	c.JSON(http.StatusOK, UserResponse{User: &user})
}

// SyncProfile returns the profile for the logged-in user.
//
//	@Summary		Sync profile
//	@Description	Returns the profile for the current session
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	ProfileResponse
//	@Failure		401	{object}	ErrorResponse
//	@Router			/auth/sync-profile [post]
func (g *Gateway) SyncProfile(c *gin.Context) {
	user, ok := g.sessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "you are not logged in"})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Profile: models.Profile{
		Name:     user.Username,
		Currency: models.DefaultCurrency(),
	}})
}

// UpdateProfileEditable are the fields of the gateway profile a client
// can change.
type UpdateProfileEditable struct {
	Name string `json:"name" example:"John Doe"`
}

// UpdateProfile renames the logged-in user and returns the refreshed
// profile.
//
//	@Summary		Update profile
//	@Description	Renames the user for the current session
//	@Tags			Authentication
//	@Accept			json
//	@Produce		json
//	@Param			profile	body		UpdateProfileEditable	true	"Profile"
//	@Success		200		{object}	ProfileResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		401		{object}	ErrorResponse
//	@Failure		404		{object}	ErrorResponse
//	@Router			/auth/update-profile [post]
func (g *Gateway) UpdateProfile(c *gin.Context) {
	user, ok := g.sessionUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "you are not logged in"})
		return
	}

	var editable UpdateProfileEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	name := strings.TrimSpace(editable.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "the name must not be empty"})
		return
	}

	updated, err := g.users.Update(c.Request.Context(), user.ID, users.Update{Username: &name})
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}

		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, ProfileResponse{Profile: models.Profile{
		Name:     updated.Username,
		Currency: models.DefaultCurrency(),
	}})
}

// Logout clears the session.
//
//	@Summary		Logout
//	@Description	Clears the current session
//	@Tags			Authentication
//	@Produce		json
//	@Success		200	{object}	map[string]bool
//	@Router			/auth/logout [get]
func (g *Gateway) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{MaxAge: -1, Path: "/"})

	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not clear your session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// sessionUser loads the user bound to the session, if any. A session
// pointing at a deleted user counts as anonymous.
func (g *Gateway) sessionUser(c *gin.Context) (users.User, bool) {
	session := sessions.Default(c)

	id, ok := session.Get(sessionKeyUserID).(string)
	if !ok || id == "" {
		return users.User{}, false
	}

	user, err := g.users.User(c.Request.Context(), id)
	if err != nil {
		return users.User{}, false
	}

	return user, true
}

func newState() (string, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
