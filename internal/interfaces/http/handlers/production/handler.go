// Package production exposes the production work-order API over HTTP.
package production

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"provisio/internal/application/production/usecases"
	"provisio/internal/shared/authorization"
	"provisio/internal/shared/logger"
	"provisio/internal/shared/utils"
)

type ProductionHandler struct {
	createProductionUC *usecases.CreateProductionUseCase
	getProductionUC    *usecases.GetProductionUseCase
	listProductionsUC  *usecases.ListProductionsUseCase
	updateProductionUC *usecases.UpdateProductionUseCase
	deleteProductionUC *usecases.DeleteProductionUseCase
	logger             logger.Interface
}

func NewProductionHandler(
	createProductionUC *usecases.CreateProductionUseCase,
	getProductionUC *usecases.GetProductionUseCase,
	listProductionsUC *usecases.ListProductionsUseCase,
	updateProductionUC *usecases.UpdateProductionUseCase,
	deleteProductionUC *usecases.DeleteProductionUseCase,
) *ProductionHandler {
	return &ProductionHandler{
		createProductionUC: createProductionUC,
		getProductionUC:    getProductionUC,
		listProductionsUC:  listProductionsUC,
		updateProductionUC: updateProductionUC,
		deleteProductionUC: deleteProductionUC,
		logger:             logger.NewLogger(),
	}
}

// CreateProduction handles POST /api/productions
func (h *ProductionHandler) CreateProduction(c *gin.Context) {
	var req CreateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create production", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := authorization.ActorFromContext(c)
	result, err := h.createProductionUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// GetProduction handles GET /api/productions/:id
func (h *ProductionHandler) GetProduction(c *gin.Context) {
	productionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProductionUC.Execute(c.Request.Context(), usecases.GetProductionQuery{
		ProductionID: productionID,
		Actor:        authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListProductions handles GET /api/productions
func (h *ProductionHandler) ListProductions(c *gin.Context) {
	req := parseListProductionsRequest(c)

	result, err := h.listProductionsUC.Execute(c.Request.Context(), req.ToQuery(authorization.ActorFromContext(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Productions, result.Total, req.Page, req.PageSize)
}

// UpdateProduction handles PUT /api/productions/:id
func (h *ProductionHandler) UpdateProduction(c *gin.Context) {
	productionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := authorization.ActorFromContext(c)
	result, err := h.updateProductionUC.Execute(c.Request.Context(), req.ToCommand(productionID, actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// DeleteProduction handles DELETE /api/productions/:id
func (h *ProductionHandler) DeleteProduction(c *gin.Context) {
	productionID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.deleteProductionUC.Execute(c.Request.Context(), usecases.DeleteProductionCommand{
		ProductionID: productionID,
		Actor:        authorization.ActorFromContext(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
