package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	AuthUsecase contracts.AuthUsecase
	JWTSecret   string
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, jwtSecret string) *AuthController {
	return &AuthController{
		Log:         logger,
		AuthUsecase: authUsecase,
		JWTSecret:   jwtSecret,
	}
}

func (ctrl *AuthController) LoginUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.LoginUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.AuthUsecase.LoginUser(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, response)
}

func (ctrl *AuthController) LogoutUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	authHeader := r.Header.Get(constvars.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, constvars.AuthBearerPrefix) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	sessionID, err := utils.ParseSessionJWT(strings.TrimPrefix(authHeader, constvars.AuthBearerPrefix), ctrl.JWTSecret)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.LogoutUser(ctx, sessionID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}
