package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/pkg/apperrors"
	"github.com/yigit/alumniconnect/internal/pkg/auth"
)

const goodToken = "header.payload.signature"

type fakeAuthenticator struct {
	err error
}

func (f fakeAuthenticator) Authenticate(_ context.Context, token string) (*auth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	if token != goodToken {
		return nil, apperrors.ErrTokenInvalid
	}
	return &auth.Claims{UserID: "u1", Email: "a@b.co", Role: models.RoleStudent}, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func protectedRouter(a Authenticator, roles ...models.Role) *gin.Engine {
	m := NewAuthMiddleware(a)
	r := gin.New()
	handlers := []gin.HandlerFunc{m.JWTAuth()}
	if len(roles) > 0 {
		handlers = append(handlers, m.RolesAllowed(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		role, _ := CurrentRole(c)
		c.String(http.StatusOK, "%s/%s/%s", CurrentUserID(c), role, CurrentToken(c))
	})
	r.GET("/me", handlers...)
	return r
}

func TestJWTAuth(t *testing.T) {
	r := protectedRouter(fakeAuthenticator{})

	tests := []struct {
		name     string
		header   string
		query    string
		wantCode int
		wantErr  dto.ErrorCode
	}{
		{name: "missing", wantCode: http.StatusUnauthorized, wantErr: dto.ErrorCodeUnauthorized},
		{name: "malformed", header: "Bearer nodots", wantCode: http.StatusUnauthorized, wantErr: dto.ErrorCodeUnauthorized},
		{name: "rejected", header: "Bearer a.b.c", wantCode: http.StatusUnauthorized, wantErr: dto.ErrorCodeInvalidToken},
		{name: "header", header: "Bearer " + goodToken, wantCode: http.StatusOK},
		{name: "query", query: "?token=" + goodToken, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me"+tt.query, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, decodeError(t, w).Error.Code)
				return
			}
			assert.Equal(t, "u1/student/"+goodToken, w.Body.String())
		})
	}
}

func TestJWTAuthExpired(t *testing.T) {
	r := protectedRouter(fakeAuthenticator{err: apperrors.ErrTokenExpired})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+goodToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, decodeError(t, w).Error.Code)
}

func TestRolesAllowed(t *testing.T) {
	req := func() *http.Request {
		r := httptest.NewRequest(http.MethodGet, "/me", nil)
		r.Header.Set("Authorization", "Bearer "+goodToken)
		return r
	}

	w := httptest.NewRecorder()
	protectedRouter(fakeAuthenticator{}, models.RoleAlumni, models.RoleAdmin).ServeHTTP(w, req())
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decodeError(t, w).Error.Code)

	w = httptest.NewRecorder()
	protectedRouter(fakeAuthenticator{}, models.RoleStudent, models.RoleAlumni).ServeHTTP(w, req())
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		err      error
		wantCode int
		wantErr  dto.ErrorCode
	}{
		{apperrors.ErrEventNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.NewResourceNotFoundError("alumni not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{apperrors.ErrAlreadyRegistered, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{apperrors.ErrEventFull, http.StatusConflict, dto.ErrorCodeResourceFull},
		{fmt.Errorf("%w: pending to completed", apperrors.ErrIllegalTransition), http.StatusConflict, dto.ErrorCodeResourceInvalid},
		{apperrors.ErrNotParticipant, http.StatusForbidden, dto.ErrorCodeForbidden},
		{apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{apperrors.ErrInvalidAmount, http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{fmt.Errorf("disk on fire"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.wantCode, w.Code)
			resp := decodeError(t, w)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.wantErr, resp.Error.Code)
		})
	}
}

func TestHandleAPIErrorKeepsFieldDetails(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", nil)

	HandleAPIError(c, apperrors.NewValidationError("Course is required", map[string]string{"course": "Course is required"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, "Course is required", resp.Message)
	assert.Equal(t, map[string]any{"course": "Course is required"}, resp.Error.Details)
}

func TestBindJSON(t *testing.T) {
	RegisterValidation()

	r := gin.New()
	r.POST("/login", func(c *gin.Context) {
		var req dto.LoginRequest
		if !BindJSON(c, &req) {
			return
		}
		c.String(http.StatusOK, req.Email)
	})

	post := func(body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		return w
	}

	w := post(`{"email":"a@b.co","password":"x"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	w = post(`{"email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, dto.ErrorCodeValidationFailed, resp.Error.Code)
	details, ok := resp.Error.Details.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "email must be a valid email address", details["email"])
	assert.Equal(t, "password is required", details["password"])

	w = post(`{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request format", decodeError(t, w).Message)
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	r := gin.New()
	r.Use(RequestLogger(zerolog.New(&buf)))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
	assert.Equal(t, "/missing", entry["path"])
}
