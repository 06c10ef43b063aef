package handlers

import (
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

type searchHandler struct {
	queryService portssvc.QuerySvcFacade
}

// RegisterSearchRoutes registers free-text search and the stay-year options.
func RegisterSearchRoutes(rg *gin.RouterGroup, queryService portssvc.QuerySvcFacade) {
	h := &searchHandler{queryService: queryService}
	rg.GET("/search", h.search)
	rg.GET("/stay-years", h.listStayYears)
}

// search godoc
// @Summary Search invoices
// @Description An exact invoice number returns exactMatchID and that invoice. Otherwise q matches invoice numbers and client names, VOID invoices included.
// @Tags search
// @Produce json
// @Param q query string false "Invoice number or client name fragment"
// @Param company query string false "Exact company"
// @Param year query int false "Stay year"
// @Param month query int false "Stay month (requires year)"
// @Success 200 {object} dto.SearchResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid filter or month without year"
// @Security BearerAuth
// @Router /search [get]
func (h *searchHandler) search(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.SearchParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.queryService.Search(c.Request.Context(), scope, domain.SearchInput{
		Query:   params.Q,
		Company: params.Company,
		Year:    params.Year,
		Month:   params.Month,
	})
	if err != nil {
		respondError(c, err, "Failed to search invoices")
		return
	}
	c.JSON(http.StatusOK, dto.SearchResponse{
		ExactMatchID: result.ExactMatchID,
		Invoices:     dto.ToListInvoiceViewResponse(result.Invoices),
	})
}

// listStayYears godoc
// @Summary Stay years
// @Description Distinct years of invoice stays (issue date when no check-in), newest first.
// @Tags search
// @Produce json
// @Success 200 {array} int
// @Security BearerAuth
// @Router /stay-years [get]
func (h *searchHandler) listStayYears(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	years, err := h.queryService.ListDistinctStayYears(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err, "Failed to list stay years")
		return
	}
	if years == nil {
		years = []int{}
	}
	c.JSON(http.StatusOK, years)
}
