package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type UserHandler struct {
	createUseCase usecases.CreateUserExecutor
	updateUseCase usecases.UpdateUserExecutor
	deleteUseCase usecases.DeleteUserExecutor
	listUseCase   usecases.ListUsersExecutor
	logger        logger.Interface
}

func NewUserHandler(
	createUC usecases.CreateUserExecutor,
	updateUC usecases.UpdateUserExecutor,
	deleteUC usecases.DeleteUserExecutor,
	listUC usecases.ListUsersExecutor,
	logger logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUseCase: createUC,
		updateUseCase: updateUC,
		deleteUseCase: deleteUC,
		listUseCase:   listUC,
		logger:        logger,
	}
}

type CreateUserRequest struct {
	Nome   string `json:"nome" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Senha  string `json:"senha" binding:"required,senha"`
	TipoID uint   `json:"tipoId" binding:"required"`
	Role   string `json:"role"`
}

type UpdateUserRequest struct {
	ID    uint   `json:"id" binding:"required"`
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	// Senha left blank keeps the current password.
	Senha  string `json:"senha" binding:"omitempty,senha"`
	TipoID uint   `json:"tipoId" binding:"required"`
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dados do usuário inválidos")
		return
	}

	created, err := h.createUseCase.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		TipoID: req.TipoID,
		Role:   req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, created, "usuário criado com sucesso")
}

func (h *UserHandler) Update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "dados do usuário inválidos")
		return
	}

	updated, err := h.updateUseCase.Execute(c.Request.Context(), usecases.UpdateUserCommand{
		UserID: req.ID,
		Nome:   req.Nome,
		Email:  req.Email,
		Senha:  req.Senha,
		TipoID: req.TipoID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "usuário atualizado com sucesso", updated)
}

func (h *UserHandler) Delete(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "usuario")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  userID,
		ActorID: c.GetUint(constants.ContextKeyUserID),
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "usuário excluído com sucesso", nil)
}

func (h *UserHandler) List(c *gin.Context) {
	result, err := h.listUseCase.Execute(c.Request.Context(), usecases.ListUsersQuery{
		Nome:  c.Query("nome"),
		Email: c.Query("email"),
		Tipo:  c.Query("tipo"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Users, result.Total)
}
