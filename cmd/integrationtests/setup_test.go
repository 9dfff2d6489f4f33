package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	auction "auction-house/internal/auctionService"
	bidding "auction-house/internal/biddingService"
	"auction-house/internal/config"
	history "auction-house/internal/historyService"
	"auction-house/internal/repository"
	"auction-house/internal/server"
	user "auction-house/internal/userService"
	"auction-house/services/auction/helpers"
)

// TestEnv bundles the router with the raw repositories so tests can seed
// state that the public API cannot produce, like already-expired auctions.
type TestEnv struct {
	Router      *gin.Engine
	AuctionRepo *repository.MemoryRepo
	UserRepo    *repository.MemoryUserRepo
}

// SetupTestEnv wires the full stack against in-memory repositories.
func SetupTestEnv() *TestEnv {
	gin.SetMode(gin.TestMode)

	auctionCfg := config.AuctionConfig{MaxBid: 10000, MaxAuctionTime: 365}
	authCfg := config.AuthConfig{TokenSecret: "integration-secret", TokenTTL: time.Hour}

	auctionRepo := repository.NewMemoryRepo()
	userRepo := repository.NewMemoryUserRepo()

	router := server.SetupRouter(
		auction.NewAuctionService(auctionRepo, auctionCfg),
		bidding.NewBiddingService(auctionRepo, auctionCfg),
		history.NewHistoryService(auctionRepo),
		user.NewUserService(userRepo, authCfg),
	)

	return &TestEnv{Router: router, AuctionRepo: auctionRepo, UserRepo: userRepo}
}

// ExecuteRequest performs an HTTP request against the test router. An empty
// token leaves the auth-token header unset.
func (env *TestEnv) ExecuteRequest(t *testing.T, method, url, token string, body any) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		require.NoError(t, err, "failed to marshal body")
	}

	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("auth-token", token)
	}

	w := httptest.NewRecorder()
	env.Router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to unmarshal response")
	}
	return resp, w
}

// RegisterAndLogin creates an account through the public API and returns its
// user id together with a valid auth token.
func (env *TestEnv) RegisterAndLogin(t *testing.T, name, email, password string) (string, string) {
	t.Helper()

	resp, w := env.ExecuteRequest(t, http.MethodPost, "/api/auth/register", "", helpers.RegisterRequest{
		Name: name, Surname: "Tester", Email: email, Password: password,
	})
	require.Equal(t, http.StatusCreated, w.Code, "register failed: %s", w.Body.String())
	userID := resp["data"].(map[string]any)["user_id"].(string)

	resp, w = env.ExecuteRequest(t, http.MethodPost, "/api/auth/login", "", helpers.LoginRequest{
		Email: email, Password: password,
	})
	require.Equal(t, http.StatusOK, w.Code, "login failed: %s", w.Body.String())
	token := resp["data"].(map[string]any)["auth-token"].(string)
	require.NotEmpty(t, token)

	return userID, token
}

// AddAuction lists an item through the public API and returns the auction id.
func (env *TestEnv) AddAuction(t *testing.T, token string, req helpers.AddAuctionRequest) string {
	t.Helper()

	resp, w := env.ExecuteRequest(t, http.MethodPost, "/api/auction/add", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "add auction failed: %s", w.Body.String())
	return resp["data"].(map[string]any)["auction_id"].(string)
}
