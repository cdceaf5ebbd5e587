package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/LancemDev/greenconnect-test/internal/domain/entities"
	domainerrors "github.com/LancemDev/greenconnect-test/internal/domain/errors"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/middleware"
	"github.com/LancemDev/greenconnect-test/internal/interfaces/http/response"
	"github.com/LancemDev/greenconnect-test/internal/usecases"
	"github.com/LancemDev/greenconnect-test/pkg/utils"
)

// MarketplaceHandler handles marketplace endpoints
type MarketplaceHandler struct {
	marketplaceUsecase *usecases.MarketplaceUsecase
	exchangeUsecase    *usecases.ExchangeUsecase
	creditUsecase      *usecases.CreditUsecase
}

// NewMarketplaceHandler creates a new marketplace handler
func NewMarketplaceHandler(
	marketplaceUsecase *usecases.MarketplaceUsecase,
	exchangeUsecase *usecases.ExchangeUsecase,
	creditUsecase *usecases.CreditUsecase,
) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUsecase: marketplaceUsecase,
		exchangeUsecase:    exchangeUsecase,
		creditUsecase:      creditUsecase,
	}
}

// ListCredits returns available credit listings
// GET /api/v1/marketplace/credits
func (h *MarketplaceHandler) ListCredits(c *gin.Context) {
	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params = utils.GetPaginationParams(params.Page, params.Limit)

	listings, total, err := h.marketplaceUsecase.ListAvailable(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, listings, utils.CalculateMeta(int64(total), params.Page, params.Limit))
}

// GetCredit returns a single credit lot
// GET /api/v1/marketplace/credits/:id
func (h *MarketplaceHandler) GetCredit(c *gin.Context) {
	creditID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid credit ID"))
		return
	}

	lot, err := h.creditUsecase.Get(c.Request.Context(), creditID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, lot)
}

// Purchase buys credits from a lot
// POST /api/v1/marketplace/credits/:id/purchase
func (h *MarketplaceHandler) Purchase(c *gin.Context) {
	buyerID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	creditID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid credit ID"))
		return
	}

	var input entities.PurchaseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.exchangeUsecase.Purchase(c.Request.Context(), buyerID, creditID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, result)
}

// Transactions returns the authenticated user's trade history
// GET /api/v1/marketplace/transactions
func (h *MarketplaceHandler) Transactions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Authentication required"))
		return
	}

	var params utils.PaginationParams
	if err := c.ShouldBindQuery(&params); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	params = utils.GetPaginationParams(params.Page, params.Limit)

	txs, total, err := h.exchangeUsecase.History(c.Request.Context(), userID, params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Paginated(c, http.StatusOK, txs, utils.CalculateMeta(int64(total), params.Page, params.Limit))
}
