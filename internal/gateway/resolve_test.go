package gateway

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pocketledger/backend/internal/config"
	"github.com/pocketledger/backend/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveContext(t *testing.T) *gin.Context {
	t.Helper()

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/auth/google/callback", nil)

	return c
}

func TestResolveUserLinked(t *testing.T) {
	store := users.NewMemory()
	existing, err := store.Create(context.Background(), users.User{
		Username:   "Jane Doe",
		ProviderID: "google:12345",
	})
	require.Nil(t, err)

	g := New(store, config.Load())
	user, err := g.resolveUser(resolveContext(t), identity{ID: "12345", Name: "Jane D."})

	require.Nil(t, err)
	assert.Equal(t, existing.ID, user.ID)
	// A linked record keeps its stored name.
	assert.Equal(t, "Jane Doe", user.Username)
}

func TestResolveUserLinksByUsername(t *testing.T) {
	store := users.NewMemory()
	existing, err := store.Create(context.Background(), users.User{Username: "Jane Doe"})
	require.Nil(t, err)

	g := New(store, config.Load())
	user, err := g.resolveUser(resolveContext(t), identity{ID: "12345", Name: "Jane Doe"})

	require.Nil(t, err)
	assert.Equal(t, existing.ID, user.ID)
	assert.Equal(t, "google:12345", user.ProviderID)

	// Subsequent logins find the record by provider ID.
	again, err := g.resolveUser(resolveContext(t), identity{ID: "12345", Name: "Jane Doe"})
	require.Nil(t, err)
	assert.Equal(t, existing.ID, again.ID)
}

func TestResolveUserCreates(t *testing.T) {
	store := users.NewMemory()

	g := New(store, config.Load())
	user, err := g.resolveUser(resolveContext(t), identity{ID: "12345", Name: "Jane Doe"})

	require.Nil(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "Jane Doe", user.Username)
	assert.Equal(t, "google:12345", user.ProviderID)
}

func TestWelcomeURL(t *testing.T) {
	tests := []struct {
		origin string
		want   string
	}{
		{"/", "/welcome"},
		{"", "/welcome"},
		{"https://ledger.example.com", "https://ledger.example.com/welcome"},
		{"https://ledger.example.com/", "https://ledger.example.com/welcome"},
	}

	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			assert.Equal(t, tt.want, welcomeURL(tt.origin))
		})
	}
}
