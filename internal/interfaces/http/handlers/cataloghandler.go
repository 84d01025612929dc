package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/catalog"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type CatalogHandler struct {
	service *catalog.Service
	logger  logger.Interface
}

func NewCatalogHandler(service *catalog.Service, logger logger.Interface) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

func (h *CatalogHandler) ListTicketTypes(c *gin.Context) {
	ticketTypes, err := h.service.ListTicketTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", ticketTypes)
}

func (h *CatalogHandler) ListUserTypes(c *gin.Context) {
	userTypes, err := h.service.ListUserTypes(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", userTypes)
}
