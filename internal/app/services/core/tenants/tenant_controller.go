package tenants

import (
	"context"
	"net/http"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TenantController struct {
	Log           *zap.Logger
	TenantUsecase contracts.TenantUsecase
	Coordinator   contracts.UpdateCoordinator
}

func NewTenantController(logger *zap.Logger, tenantUsecase contracts.TenantUsecase, coordinator contracts.UpdateCoordinator) *TenantController {
	return &TenantController{
		Log:           logger,
		TenantUsecase: tenantUsecase,
		Coordinator:   coordinator,
	}
}

func (ctrl *TenantController) RegisterTenant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.RegisterTenant)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TenantUsecase.RegisterTenant(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.TenantRegisteredSuccess, response)
}

func (ctrl *TenantController) GetTenant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.TenantUsecase.GetTenantByID(ctx, utils.GetTenantID(ctx))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TenantGetSuccess, response)
}

func (ctrl *TenantController) UpdateTenant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.UpdateTenant)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.TenantUsecase.UpdateTenant(ctx, utils.GetTenantID(ctx), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TenantUpdatedSuccess, response)
}

// RecountTenant forces a synchronous recompute of every dentist counter in
// the caller's tenant. Recounts run within the request deadline so a large
// tenant gets a longer budget than regular handlers.
func (ctrl *TenantController) RecountTenant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	if err := ctrl.Coordinator.RecomputeAllForTenant(ctx, utils.GetTenantID(ctx)); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TenantRecountSuccess, nil)
}
