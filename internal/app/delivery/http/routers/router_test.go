package routers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dentora-service/internal/app/config"
	"dentora-service/internal/app/contracts"
	"dentora-service/internal/app/delivery/http/middlewares"
	"dentora-service/internal/app/services/core/appointments"
	"dentora-service/internal/app/services/core/auth"
	"dentora-service/internal/app/services/core/dentists"
	"dentora-service/internal/app/services/core/patients"
	"dentora-service/internal/app/services/core/tenants"
	"dentora-service/internal/app/services/core/usage"
	"dentora-service/internal/app/services/core/users"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/dto/responses"
	"dentora-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	args := m.Called(ctx, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.LoginUser), args.Error(1)
}

func (m *mockAuthUsecase) LogoutUser(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *mockAuthUsecase) ResolveSession(ctx context.Context, sessionID string) (*contracts.SessionData, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*contracts.SessionData), args.Error(1)
}

type stubTenantUsecase struct{ contracts.TenantUsecase }

type stubUserUsecase struct{ contracts.UserUsecase }

type stubDentistUsecase struct{ contracts.DentistUsecase }

type stubPatientUsecase struct{ contracts.PatientUsecase }

type stubDocumentUsecase struct{ contracts.DocumentUsecase }

type stubAppointmentUsecase struct{ contracts.AppointmentUsecase }

type stubUsageUsecase struct {
	lastTenantID string
}

func (u *stubUsageUsecase) GetTenantUsage(ctx context.Context, tenantID string) (*responses.TenantUsage, error) {
	u.lastTenantID = tenantID
	return &responses.TenantUsage{ActiveUsers: 2, PatientCount: 14, AppointmentsThisMonth: 3}, nil
}

func (u *stubUsageUsecase) EnsureWithinPlanLimits(ctx context.Context, tenantID, resource string) error {
	return nil
}

type stubCoordinator struct{ contracts.UpdateCoordinator }

func newTestRouter(t *testing.T, authUsecase contracts.AuthUsecase, usageUsecase contracts.UsageUsecase) *chi.Mux {
	t.Helper()

	internalConfig := &config.InternalConfig{}
	internalConfig.App.EndpointPrefix = "api"
	internalConfig.App.Version = "v1"
	internalConfig.App.MaxRequests = 1000
	internalConfig.JWT.Secret = testJWTSecret

	logger := zap.NewNop()
	mws := middlewares.NewMiddlewares(logger, internalConfig, authUsecase, nil)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		mws,
		auth.NewAuthController(logger, authUsecase, testJWTSecret),
		tenants.NewTenantController(logger, &stubTenantUsecase{}, &stubCoordinator{}),
		usage.NewUsageController(logger, usageUsecase),
		users.NewUserController(logger, &stubUserUsecase{}),
		dentists.NewDentistController(logger, &stubDentistUsecase{}),
		patients.NewPatientController(logger, &stubPatientUsecase{}, &stubDocumentUsecase{}),
		appointments.NewAppointmentController(logger, &stubAppointmentUsecase{}),
	)
	return router
}

func TestLoginRouteIsPublic(t *testing.T) {
	authUsecase := &mockAuthUsecase{}
	authUsecase.On("LoginUser", mock.Anything, mock.Anything).
		Return(&responses.LoginUser{Token: "signed-token"}, nil)

	router := newTestRouter(t, authUsecase, &stubUsageUsecase{})

	body := `{"tenant_slug":"sunrise-dental","email":"dewi@sunrise.test","password":"Sup3rSecret!"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	responseBody, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(responseBody), "signed-token")
	authUsecase.AssertExpectations(t)
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	router := newTestRouter(t, &mockAuthUsecase{}, &stubUsageUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/patients/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsageRouteScopesToSessionTenant(t *testing.T) {
	authUsecase := &mockAuthUsecase{}
	authUsecase.On("ResolveSession", mock.Anything, "session-1").
		Return(&contracts.SessionData{UserID: "user-1", TenantID: "tenant-1", Role: "staff"}, nil)

	usageUsecase := &stubUsageUsecase{}
	router := newTestRouter(t, authUsecase, usageUsecase)

	token, err := utils.GenerateSessionJWT("session-1", testJWTSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/tenants/me/usage", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "tenant-1", usageUsecase.lastTenantID, "tenant comes from the session, not client input")
}

func TestUserRoutesRequireAdminRole(t *testing.T) {
	authUsecase := &mockAuthUsecase{}
	authUsecase.On("ResolveSession", mock.Anything, "session-2").
		Return(&contracts.SessionData{UserID: "user-2", TenantID: "tenant-1", Role: "staff"}, nil)

	router := newTestRouter(t, authUsecase, &stubUsageUsecase{})

	token, err := utils.GenerateSessionJWT("session-2", testJWTSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestTenantRegistrationRouteIsPublicButValidated(t *testing.T) {
	router := newTestRouter(t, &mockAuthUsecase{}, &stubUsageUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/tenants/", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// Reaches the handler without auth and fails struct validation.
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
