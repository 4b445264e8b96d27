package dentists

import (
	"context"
	"net/http"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/dto/requests"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DentistController struct {
	Log            *zap.Logger
	DentistUsecase contracts.DentistUsecase
}

func NewDentistController(logger *zap.Logger, dentistUsecase contracts.DentistUsecase) *DentistController {
	return &DentistController{
		Log:            logger,
		DentistUsecase: dentistUsecase,
	}
}

func (ctrl *DentistController) CreateDentist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	request := new(requests.CreateDentist)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.DentistUsecase.CreateDentist(ctx, utils.GetTenantID(ctx), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.DentistCreatedSuccess, response)
}

func (ctrl *DentistController) GetDentistByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dentistID := chi.URLParam(r, constvars.URLParamDentistID)

	response, err := ctrl.DentistUsecase.GetDentistByID(ctx, utils.GetTenantID(ctx), dentistID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DentistGetSuccess, response)
}

func (ctrl *DentistController) FindDentistsByTenant(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, pageSize := utils.ParsePagination(r)

	response, total, err := ctrl.DentistUsecase.FindDentistsByTenant(ctx, utils.GetTenantID(ctx), page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.DentistGetSuccess, pagination, response)
}

func (ctrl *DentistController) UpdateDentist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dentistID := chi.URLParam(r, constvars.URLParamDentistID)

	request := new(requests.UpdateDentist)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.DentistUsecase.UpdateDentist(ctx, utils.GetTenantID(ctx), dentistID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DentistUpdatedSuccess, response)
}

func (ctrl *DentistController) DeleteDentist(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dentistID := chi.URLParam(r, constvars.URLParamDentistID)

	if err := ctrl.DentistUsecase.DeleteDentist(ctx, utils.GetTenantID(ctx), dentistID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DentistDeletedSuccess, nil)
}
