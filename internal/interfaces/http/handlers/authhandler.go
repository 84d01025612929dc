package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/user/usecases"
	"helpdesk/internal/shared/constants"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	loginUseCase  usecases.LoginExecutor
	logoutUseCase usecases.LogoutExecutor
	logger        logger.Interface
}

func NewAuthHandler(
	loginUC usecases.LoginExecutor,
	logoutUC usecases.LogoutExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUseCase:  loginUC,
		logoutUseCase: logoutUC,
		logger:        logger,
	}
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}

// LoginResponse is the session object clients persist; rotaInicial is the
// landing route for the user's role.
type LoginResponse struct {
	ID          uint   `json:"id"`
	UUID        string `json:"uuid"`
	Nome        string `json:"nome"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Tipo        string `json:"tipo"`
	Token       string `json:"token"`
	ExpiresIn   int64  `json:"expiresIn"`
	RotaInicial string `json:"rotaInicial"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email e senha são obrigatórios")
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), usecases.LoginCommand{
		Email: req.Email,
		Senha: req.Senha,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "login realizado com sucesso", LoginResponse{
		ID:          result.ID,
		UUID:        result.UUID,
		Nome:        result.Nome,
		Email:       result.Email,
		Role:        result.Role,
		Tipo:        result.Tipo,
		Token:       result.Token,
		ExpiresIn:   result.ExpiresIn,
		RotaInicial: result.HomeRoute,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString(constants.ContextKeySessionID)

	if err := h.logoutUseCase.Execute(c.Request.Context(), usecases.LogoutCommand{
		SessionID: sessionID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "logout realizado com sucesso", nil)
}
