package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/serenus-health/wellness-admin-go/internal/domain/auth"
	"github.com/serenus-health/wellness-admin-go/internal/fixtures"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/jwt"
	"github.com/serenus-health/wellness-admin-go/internal/pkg/kvstore"
	"github.com/serenus-health/wellness-admin-go/internal/repository/kv"
	"github.com/serenus-health/wellness-admin-go/internal/repository/memory"
	serviceAuth "github.com/serenus-health/wellness-admin-go/internal/service/auth"
	serviceCompany "github.com/serenus-health/wellness-admin-go/internal/service/company"
	servicePlan "github.com/serenus-health/wellness-admin-go/internal/service/plan"
	serviceUser "github.com/serenus-health/wellness-admin-go/internal/service/user"
)

const (
	handlerTestSecret     = "test-secret-key-for-jwt"
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	db, err := kvstore.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	adapter := kv.NewAdapter(db, logger)
	store := memory.NewStore(adapter, logger)
	userRepo := memory.NewUserRepository(store)
	companyRepo := memory.NewCompanyRepository(store)
	planRepo := memory.NewPlanRepository(store)

	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	authSvc := serviceAuth.NewAuthService(userRepo, companyRepo, auth.NewFixedVerifier(), adapter, jwtSvc, logger)
	companySvc := serviceCompany.NewCompanyService(companyRepo, userRepo, logger)
	planSvc := servicePlan.NewPlanService(planRepo, logger)
	userSvc := serviceUser.NewUserService(userRepo, companyRepo, logger)

	router := NewRouter(
		jwtSvc,
		NewAuthHandler(jwtSvc, authSvc),
		NewCompanyHandler(companySvc),
		NewPlanHandler(planSvc),
		NewUserHandler(userSvc),
	)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func postJSON(t *testing.T, url string, body interface{}, token string) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var envelope map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func loginAsAdmin(t *testing.T, server *httptest.Server) string {
	t.Helper()

	resp := postJSON(t, server.URL+"/api/v1/auth/login", auth.LoginRequest{
		Email:    fixtures.SuperAdminEmail,
		Password: auth.DemoAdminPassword,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	envelope := decodeEnvelope(t, resp)
	data, ok := envelope["data"].(map[string]interface{})
	require.True(t, ok)
	token, ok := data["access_token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

func TestAuthHandler_Login_Success(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/login", auth.LoginRequest{
		Email:    fixtures.SuperAdminEmail,
		Password: auth.DemoAdminPassword,
	}, "")

	require.Equal(t, http.StatusCreated, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, true, envelope["success"])

	data := envelope["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	userData := data["user"].(map[string]interface{})
	assert.Equal(t, fixtures.SuperAdminEmail, userData["email"])
	assert.Equal(t, "super_admin", userData["role"])
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/login", auth.LoginRequest{
		Email:    fixtures.SuperAdminEmail,
		Password: "wrong-password",
	}, "")

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	assert.Equal(t, false, envelope["success"])

	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "UNAUTHORIZED", errDetail["code"])
}

func TestAuthHandler_Login_ValidationError(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/login", auth.LoginRequest{}, "")

	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)

	errDetail := envelope["error"].(map[string]interface{})
	assert.Equal(t, "VALIDATION_ERROR", errDetail["code"])
	details := errDetail["details"].(map[string]interface{})
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "password")
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	server := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/companies/", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_CompaniesListWithToken(t *testing.T) {
	server := newTestServer(t)
	token := loginAsAdmin(t, server)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/companies/", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	companies := envelope["data"].([]interface{})
	assert.Len(t, companies, 2)
}

func TestRouter_ColaboradorCannotManagePlans(t *testing.T) {
	server := newTestServer(t)

	resp := postJSON(t, server.URL+"/api/v1/auth/login", auth.LoginRequest{
		Email:    "pedro.santos@techcorp.com.br",
		Password: auth.DemoDefaultPassword,
	}, "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	envelope := decodeEnvelope(t, resp)
	token := envelope["data"].(map[string]interface{})["access_token"].(string)

	toggle := postJSON(t, fmt.Sprintf("%s/api/v1/plans/%s/toggle", server.URL, "plan-basico"), nil, token)
	defer toggle.Body.Close()

	assert.Equal(t, http.StatusForbidden, toggle.StatusCode)
}
