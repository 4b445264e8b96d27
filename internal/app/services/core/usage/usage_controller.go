package usage

import (
	"context"
	"net/http"
	"time"

	"dentora-service/internal/app/contracts"
	"dentora-service/internal/pkg/constvars"
	"dentora-service/internal/pkg/exceptions"
	"dentora-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type UsageController struct {
	Log          *zap.Logger
	UsageUsecase contracts.UsageUsecase
}

func NewUsageController(logger *zap.Logger, usageUsecase contracts.UsageUsecase) *UsageController {
	return &UsageController{
		Log:          logger,
		UsageUsecase: usageUsecase,
	}
}

func (ctrl *UsageController) GetTenantUsage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	tenantID := utils.GetTenantID(ctx)

	response, err := ctrl.UsageUsecase.GetTenantUsage(ctx, tenantID)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.TenantUsageGetSuccess, response)
}
