package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/ar_payment_tracker/internal/core/domain"
	portssvc "github.com/SscSPs/ar_payment_tracker/internal/core/ports/services"
	"github.com/SscSPs/ar_payment_tracker/internal/dto"
	"github.com/SscSPs/ar_payment_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// clientHandler handles HTTP requests related to clients.
type clientHandler struct {
	clientService portssvc.ClientSvcFacade
	queryService  portssvc.QuerySvcFacade
}

// RegisterClientRoutes registers routes related to clients. They must run behind ScopeMiddleware.
func RegisterClientRoutes(rg *gin.RouterGroup, clientService portssvc.ClientSvcFacade, queryService portssvc.QuerySvcFacade) {
	h := &clientHandler{clientService: clientService, queryService: queryService}

	clients := rg.Group("/clients")
	{
		clients.POST("", h.createClient)
		clients.GET("", h.listClients)
		clients.GET("/:clientID", h.getClient)
		clients.GET("/:clientID/invoices", h.listClientInvoices)
	}
	rg.GET("/companies", h.listCompanies)
}

// createClient godoc
// @Summary Create a client
// @Description Creates a client in the selected A/R entity. Names are unique per entity.
// @Tags clients
// @Accept json
// @Produce json
// @Param client body dto.CreateClientRequest true "Client details"
// @Success 201 {object} dto.ClientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Name already used in this entity"
// @Security BearerAuth
// @Router /clients [post]
func (h *clientHandler) createClient(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var req dto.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), scope, req.ToDomain())
	if err != nil {
		respondError(c, err, "Failed to create client")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Client created", slog.Int64("client_id", client.ClientID))
	c.JSON(http.StatusCreated, dto.ToClientResponse(client))
}

// listClients godoc
// @Summary List clients
// @Description Lists clients of the selected A/R entity ordered by name.
// @Tags clients
// @Produce json
// @Param name query string false "Case-insensitive name filter"
// @Success 200 {array} dto.ClientResponse
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	var params dto.ListClientsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	clients, err := h.clientService.ListClients(c.Request.Context(), scope, params.Name)
	if err != nil {
		respondError(c, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, dto.ToListClientResponse(clients))
}

// getClient godoc
// @Summary Get a client
// @Tags clients
// @Produce json
// @Param clientID path int true "Client ID"
// @Success 200 {object} dto.ClientResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID} [get]
func (h *clientHandler) getClient(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), scope, clientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}
	c.JSON(http.StatusOK, dto.ToClientResponse(client))
}

// listClientInvoices godoc
// @Summary List a client's invoices
// @Description Lists the client's non-void invoices, optionally only those with a balance.
// @Tags clients
// @Produce json
// @Param clientID path int true "Client ID"
// @Param outstanding query bool false "Only invoices with a positive balance"
// @Success 200 {array} dto.InvoiceViewResponse
// @Failure 404 {object} dto.ErrorResponse
// @Security BearerAuth
// @Router /clients/{clientID}/invoices [get]
func (h *clientHandler) listClientInvoices(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientID")
	if !ok {
		return
	}
	var params dto.ListInvoicesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	ctx := c.Request.Context()

	if _, err := h.clientService.GetClient(ctx, scope, clientID); err != nil {
		respondError(c, err, "Failed to retrieve client")
		return
	}
	invoices, err := h.queryService.ListInvoices(ctx, scope, domain.InvoiceFilter{
		ClientID:    &clientID,
		Outstanding: params.Outstanding,
	})
	if err != nil {
		respondError(c, err, "Failed to list invoices")
		return
	}
	c.JSON(http.StatusOK, dto.ToListInvoiceViewResponse(invoices))
}

// listCompanies godoc
// @Summary List companies
// @Description Distinct non-blank client companies of the selected A/R entity.
// @Tags clients
// @Produce json
// @Success 200 {array} string
// @Security BearerAuth
// @Router /companies [get]
func (h *clientHandler) listCompanies(c *gin.Context) {
	scope, ok := requireScope(c)
	if !ok {
		return
	}
	companies, err := h.clientService.ListCompanies(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err, "Failed to list companies")
		return
	}
	if companies == nil {
		companies = []string{}
	}
	c.JSON(http.StatusOK, companies)
}
