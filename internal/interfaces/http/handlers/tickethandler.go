package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createUseCase usecases.CreateTicketExecutor
	getUseCase    usecases.GetTicketExecutor
	listUseCase   usecases.ListTicketsExecutor
	listMyUseCase usecases.ListMyTicketsExecutor
	updateUseCase usecases.UpdateTicketExecutor
	deleteUseCase usecases.DeleteTicketExecutor
	statsUseCase  usecases.GetTicketStatsExecutor
	logger        logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	listMyUC usecases.ListMyTicketsExecutor,
	updateUC usecases.UpdateTicketExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	statsUC usecases.GetTicketStatsExecutor,
	logger logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUseCase: createUC,
		getUseCase:    getUC,
		listUseCase:   listUC,
		listMyUseCase: listMyUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		statsUseCase:  statsUC,
		logger:        logger,
	}
}

// Create accepts the multipart ticket form: nome, descricao, tipoChamadoId,
// optional UsuarioId and repeated formFiles. Non-admins always open tickets
// as themselves regardless of the UsuarioId field.
func (h *TicketHandler) Create(c *gin.Context) {
	nome := c.PostForm("nome")
	descricao := c.PostForm("descricao")
	if nome == "" || descricao == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "nome e descrição são obrigatórios")
		return
	}

	tipoID, err := strconv.ParseUint(c.PostForm("tipoChamadoId"), 10, 32)
	if err != nil || tipoID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "tipo de chamado inválido")
		return
	}

	usuarioID := c.GetUint(constants.ContextKeyUserID)
	if isAdmin(c) {
		if raw := c.PostForm("UsuarioId"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 32)
			if err != nil || parsed == 0 {
				utils.ErrorResponse(c, http.StatusBadRequest, "usuário inválido")
				return
			}
			usuarioID = uint(parsed)
		}
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "formulário multipart inválido")
		return
	}

	var uploads []usecases.FileUpload
	for _, fileHeader := range form.File["formFiles"] {
		f, err := fileHeader.Open()
		if err != nil {
			h.logger.Errorw("failed to open uploaded file", "error", err, "file", fileHeader.Filename)
			utils.ErrorResponse(c, http.StatusBadRequest, "falha ao ler arquivo enviado")
			return
		}
		defer f.Close()

		uploads = append(uploads, usecases.FileUpload{
			FileName: fileHeader.Filename,
			Size:     fileHeader.Size,
			Reader:   f,
		})
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateTicketCommand{
		Nome:          nome,
		Descricao:     descricao,
		TipoChamadoID: uint(tipoID),
		UsuarioID:     usuarioID,
		Files:         uploads,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created, "chamado aberto com sucesso")
}

func (h *TicketHandler) Get(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "chamado")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUseCase.Execute(c.Request.Context(), usecases.GetTicketQuery{
		TicketID: ticketID,
		ViewerID: c.GetUint(constants.ContextKeyUserID),
		IsAdmin:  isAdmin(c),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *TicketHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status:        c.Query("status"),
		TipoChamadoID: queryUint(c, "tipoChamadoId"),
		UsuarioID:     queryUint(c, "usuarioId"),
		ResponsavelID: queryUint(c, "responsavelId"),
		Busca:         c.Query("busca"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total)
}

func (h *TicketHandler) ListMine(c *gin.Context) {
	result, err := h.listMyUseCase.Execute(c.Request.Context(), usecases.ListMyTicketsQuery{
		UsuarioID:     c.GetUint(constants.ContextKeyUserID),
		Status:        c.Query("status"),
		TipoChamadoID: queryUint(c, "tipoChamadoId"),
		Busca:         c.Query("busca"),
		SortBy:        c.Query("sortBy"),
		SortOrder:     c.Query("sortOrder"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total)
}

type UpdateTicketRequest struct {
	Status        *string    `json:"status"`
	ResponsavelID *uint      `json:"responsavelId"`
	Prazo         *time.Time `json:"prazo"`
	ClearPrazo    bool       `json:"clearPrazo"`
	Observacao    *string    `json:"observacao"`
}

func (h *TicketHandler) Update(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "chamado")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dados do chamado inválidos")
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateTicketCommand{
		TicketID:      ticketID,
		Status:        req.Status,
		ResponsavelID: req.ResponsavelID,
		Prazo:         req.Prazo,
		ClearPrazo:    req.ClearPrazo,
		Observacao:    req.Observacao,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "chamado atualizado com sucesso", updated)
}

func (h *TicketHandler) Delete(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "chamado")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteTicketCommand{
		TicketID: ticketID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "chamado excluído com sucesso", nil)
}

func (h *TicketHandler) Stats(c *gin.Context) {
	stats, err := h.statsUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}

func isAdmin(c *gin.Context) bool {
	return c.GetString(constants.ContextKeyUserRole) == string(authorization.RoleAdmin)
}

func queryUint(c *gin.Context, name string) uint {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(parsed)
}
