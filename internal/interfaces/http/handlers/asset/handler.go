package asset

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/opsdesk-inc/opsdesk/internal/application/asset/usecases"
	"github.com/opsdesk-inc/opsdesk/internal/interfaces/http/handlers/common"
	"github.com/opsdesk-inc/opsdesk/internal/shared/logger"
	"github.com/opsdesk-inc/opsdesk/internal/shared/utils"
)

// UseCases bundles the executors behind the asset endpoints.
type UseCases struct {
	Create        usecases.CreateAssetExecutor
	Update        usecases.UpdateAssetExecutor
	Delete        usecases.DeleteAssetExecutor
	List          usecases.ListAssetsExecutor
	Get           usecases.GetAssetExecutor
	ListHistory   usecases.ListHistoryExecutor
	AddHistory    usecases.AddHistoryExecutor
	UpdateHistory usecases.UpdateHistoryExecutor
	DeleteHistory usecases.DeleteHistoryExecutor
}

type AssetHandler struct {
	uc     UseCases
	logger logger.Interface
}

func NewAssetHandler(uc UseCases, logger logger.Interface) *AssetHandler {
	return &AssetHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAssets handles GET /assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.List.Execute(c.Request.Context(), usecases.ListAssetsQuery{Principal: principal})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetAsset handles GET /assets/:id
func (h *AssetHandler) GetAsset(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.Get.Execute(c.Request.Context(), usecases.GetAssetQuery{Principal: principal, AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// CreateAsset handles POST /assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create asset", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.Create.Execute(c.Request.Context(), req.ToCommand(principal))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Asset created successfully")
}

// UpdateAsset handles PUT /assets/:id
func (h *AssetHandler) UpdateAsset(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		h.logger.Warnw("invalid request body for update asset", "asset_id", assetID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	var keys map[string]json.RawMessage
	if err := c.ShouldBindBodyWith(&keys, binding.JSON); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	_, assignedToSet := keys["assigned_to"]

	result, err := h.uc.Update.Execute(c.Request.Context(), req.ToCommand(assetID, principal, assignedToSet))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset updated successfully", result)
}

// DeleteAsset handles DELETE /assets/:id
func (h *AssetHandler) DeleteAsset(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), usecases.DeleteAssetCommand{Principal: principal, AssetID: assetID}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Asset deleted successfully", nil)
}

// ListHistory handles GET /assets/:id/history
func (h *AssetHandler) ListHistory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.uc.ListHistory.Execute(c.Request.Context(), usecases.ListHistoryQuery{Principal: principal, AssetID: assetID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// AddHistory handles POST /assets/:id/history
func (h *AssetHandler) AddHistory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add asset history", "asset_id", assetID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.AddHistory.Execute(c.Request.Context(), usecases.AddHistoryCommand{
		Principal:   principal,
		AssetID:     assetID,
		Date:        req.Date,
		ActionType:  req.ActionType,
		Description: req.Description,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "History entry added successfully")
}

// UpdateHistory handles PUT /assets/history/:history_id
func (h *AssetHandler) UpdateHistory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	historyID, err := utils.ParseIDParam(c, "history_id", "history")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update asset history", "history_id", historyID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	result, err := h.uc.UpdateHistory.Execute(c.Request.Context(), usecases.UpdateHistoryCommand{
		Principal:   principal,
		HistoryID:   historyID,
		Date:        req.Date,
		ActionType:  req.ActionType,
		Description: req.Description,
		PerformedBy: req.PerformedBy,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "History entry updated successfully", result)
}

// DeleteHistory handles DELETE /assets/history/:history_id
func (h *AssetHandler) DeleteHistory(c *gin.Context) {
	principal, err := common.CurrentPrincipal(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	historyID, err := utils.ParseIDParam(c, "history_id", "history")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.uc.DeleteHistory.Execute(c.Request.Context(), usecases.DeleteHistoryCommand{
		Principal: principal,
		HistoryID: historyID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "History entry deleted successfully", nil)
}
