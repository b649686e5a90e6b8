package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/app/models"
	"github.com/yigit/alumniconnect/internal/app/models/dto"
	"github.com/yigit/alumniconnect/internal/config"
	"github.com/yigit/alumniconnect/internal/pkg/activity"
	"github.com/yigit/alumniconnect/internal/pkg/email"
	"github.com/yigit/alumniconnect/internal/seed"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	cfg.JWT.Issuer = "alumniconnect.test"
	cfg.Security.BcryptCost = bcrypt.MinCost
	cfg.Logging.Level = "error"
	cfg.Logging.Format = "json"
	cfg.Gateway.Latency.Disabled = true
	cfg.Session.Driver = config.SessionDriverMemory
	cfg.Dashboard.FundraisingTarget = 50000
	cfg.Mentorship.StrictTransitions = true
	return cfg
}

type apiHarness struct {
	t      *testing.T
	router *gin.Engine
	deps   *Dependencies
}

func newHarness(t *testing.T) *apiHarness {
	t.Helper()
	cfg := testConfig()
	deps, err := BuildDependencies(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = deps.Close() })
	return &apiHarness{t: t, router: SetupRouter(cfg, deps, zerolog.Nop()), deps: deps}
}

func (h *apiHarness) do(method, path, token string, body any) *httptest.ResponseRecorder {
	h.t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(h.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func (h *apiHarness) login(addr, password string) string {
	h.t.Helper()
	w := h.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: addr, Password: password})
	require.Equal(h.t, http.StatusOK, w.Code, w.Body.String())
	res := decode[dto.AuthPayload](h.t, w)
	require.NotEmpty(h.t, res.Data.Token)
	return res.Data.Token
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) dto.Result[T] {
	t.Helper()
	var res dto.Result[T]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	return res
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorCode {
	t.Helper()
	var res dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), w.Body.String())
	require.NotNil(t, res.Error)
	assert.False(t, res.Success)
	return res.Error.Code
}

func TestHealth(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/api/v1/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", decode[map[string]string](t, w).Data["status"])
}

func TestLoginAndLogout(t *testing.T) {
	h := newHarness(t)

	w := h.do(http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeInvalidCredentials, errorCode(t, w))

	w = h.do(http.MethodPost, "/api/v1/auth/login", "", map[string]string{"email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, errorCode(t, w))

	token := h.login("alice@example.com", seed.DefaultPassword)

	w = h.do(http.MethodGet, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, seed.AliceID, decode[models.User](t, w).Data.ID)

	w = h.do(http.MethodPost, "/api/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = h.do(http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	h := newHarness(t)
	body := dto.RegisterRequest{
		Email:           "newgrad@example.com",
		Password:        "Password123",
		ConfirmPassword: "Password123",
		FirstName:       "New",
		LastName:        "Grad",
		Role:            models.RoleAlumni,
		GraduationYear:  models.Ptr(2024),
	}

	w := h.do(http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "newgrad@example.com", decode[dto.AuthPayload](t, w).Data.User.Email)

	w = h.do(http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, errorCode(t, w))
}

func TestProtectedRoutesNeedToken(t *testing.T) {
	h := newHarness(t)
	w := h.do(http.MethodGet, "/api/v1/alumni", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, errorCode(t, w))
}

func TestAlumniSearch(t *testing.T) {
	h := newHarness(t)
	token := h.login("jane@example.com", seed.DefaultPassword)

	w := h.do(http.MethodGet, "/api/v1/alumni?search=microsoft", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	page := decode[dto.Page[models.User]](t, w).Data
	require.Equal(t, 1, page.Total)
	assert.Equal(t, seed.AliceID, page.Items[0].ID)
	assert.Equal(t, 1, page.TotalPages)

	w = h.do(http.MethodGet, "/api/v1/alumni?year=1800", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/v1/alumni?page=9223372036854775807", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/v1/alumni?page=5000", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, decode[dto.Page[models.User]](t, w).Data.Items)

	w = h.do(http.MethodGet, "/api/v1/alumni/nobody", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, errorCode(t, w))
}

func TestEventRegistration(t *testing.T) {
	h := newHarness(t)
	token := h.login("bob@example.com", seed.DefaultPassword)

	w := h.do(http.MethodPost, "/api/v1/events/event-2/register", token, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	ev := decode[models.Event](t, w).Data
	assert.Equal(t, 46, ev.CurrentAttendees)
	assert.Contains(t, ev.RegisteredUsers, seed.BobID)

	w = h.do(http.MethodPost, "/api/v1/events/event-2/register", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = h.do(http.MethodPost, "/api/v1/events/event-404/register", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMentorshipWorkflow(t *testing.T) {
	h := newHarness(t)
	student := h.login("jane@example.com", seed.DefaultPassword)
	mentor := h.login("alice@example.com", seed.DefaultPassword)
	admin := h.login("admin@example.com", seed.AdminPassword)

	t.Run("admins are not part of the workflow", func(t *testing.T) {
		w := h.do(http.MethodGet, "/api/v1/mentorship", admin, nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, dto.ErrorCodeForbidden, errorCode(t, w))
	})

	t.Run("only students create requests", func(t *testing.T) {
		body := dto.CreateMentorshipRequest{MentorID: seed.AliceID, Subject: "Career advice", Message: "Could we talk?"}
		w := h.do(http.MethodPost, "/api/v1/mentorship", mentor, body)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = h.do(http.MethodPost, "/api/v1/mentorship", student, body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		created := decode[models.MentorshipRequest](t, w).Data
		assert.Equal(t, models.MentorshipPending, created.Status)
		assert.Equal(t, seed.StudentID, created.StudentID)
	})

	t.Run("students cannot approve", func(t *testing.T) {
		w := h.do(http.MethodPatch, "/api/v1/mentorship/mentorship-1", student,
			dto.UpdateMentorshipRequest{Status: models.MentorshipApproved})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("mentor walks the request forward", func(t *testing.T) {
		w := h.do(http.MethodPatch, "/api/v1/mentorship/mentorship-1", mentor,
			dto.UpdateMentorshipRequest{Status: models.MentorshipApproved})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, models.MentorshipApproved, decode[models.MentorshipRequest](t, w).Data.Status)

		w = h.do(http.MethodPatch, "/api/v1/mentorship/mentorship-1", mentor,
			dto.UpdateMentorshipRequest{Status: models.MentorshipPending})
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, dto.ErrorCodeResourceInvalid, errorCode(t, w))
	})

	t.Run("unknown status fails validation", func(t *testing.T) {
		w := h.do(http.MethodPatch, "/api/v1/mentorship/mentorship-1", mentor, map[string]string{"status": "paused"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDonations(t *testing.T) {
	h := newHarness(t)
	alice := h.login("alice@example.com", seed.DefaultPassword)
	student := h.login("jane@example.com", seed.DefaultPassword)

	w := h.do(http.MethodPost, "/api/v1/donations", student, map[string]any{"amount": 10, "purpose": "Scholarship Fund"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = h.do(http.MethodPost, "/api/v1/donations", alice, map[string]any{"amount": "25.50", "purpose": "Scholarship Fund"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	res := decode[models.Donation](t, w)
	assert.Equal(t, models.Amount(2550), res.Data.Amount)
	assert.Equal(t, "Thank you for your donation!", res.Message)

	w = h.do(http.MethodPost, "/api/v1/donations", alice, map[string]any{"amount": 0, "purpose": "Scholarship Fund"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(http.MethodGet, "/api/v1/donations", alice, nil)
	require.Equal(t, http.StatusOK, w.Code)
	for _, d := range decode[[]models.Donation](t, w).Data {
		assert.Equal(t, seed.AliceID, d.DonorID)
	}

	w = h.do(http.MethodGet, "/api/v1/donations/summary", alice, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	summary := decode[dashboard.DonationsSummary](t, w).Data
	assert.Equal(t, models.AmountFromUnits(500)+2550, summary.MyContributions)
	assert.Equal(t, models.AmountFromUnits(600)+2550, summary.TotalRaised)
	assert.Equal(t, 2, summary.UniqueDonors)
}

func TestChatbotAndConversations(t *testing.T) {
	h := newHarness(t)
	token := h.login("jane@example.com", seed.DefaultPassword)

	w := h.do(http.MethodGet, "/api/v1/chatbot", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[dto.ChatbotResponse](t, w).Data.QuickReplies)

	w = h.do(http.MethodPost, "/api/v1/chatbot", token, dto.ChatbotRequest{Message: "How do I find a mentor?"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decode[dto.ChatbotResponse](t, w).Data.Reply)

	w = h.do(http.MethodPost, "/api/v1/conversations/conversation-1/messages", token, dto.SendMessageRequest{Text: "Thanks!"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = h.do(http.MethodGet, "/api/v1/conversations/conversation-2/messages", token, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestNewPublisher(t *testing.T) {
	cfg := testConfig()
	assert.IsType(t, activity.Noop{}, NewPublisher(cfg, nil, zerolog.Nop()))

	cfg.Email.Enabled = true
	assert.IsType(t, &email.Notifier{}, NewPublisher(cfg, nil, zerolog.Nop()))

	cfg.Kafka.Enabled = true
	cfg.Kafka.Brokers = "localhost:9092"
	cfg.Kafka.Topic = "alumni-activity"
	pub := NewPublisher(cfg, nil, zerolog.Nop())
	require.IsType(t, activity.Fanout{}, pub)
	assert.Len(t, pub.(activity.Fanout), 2)
	_ = pub.Close()
}
