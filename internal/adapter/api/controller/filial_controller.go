package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hugohenrick/filial-service/internal/adapter/api/dto"
	"github.com/hugohenrick/filial-service/internal/domain/filial"
	"github.com/hugohenrick/filial-service/internal/domain/user"
	"github.com/hugohenrick/filial-service/pkg/logger"
)

// FilialController gerencia as requisições relacionadas a filiais
type FilialController struct {
	registry *filial.Registry
	logger   logger.Logger
}

// NewFilialController cria uma nova instância de FilialController
func NewFilialController(registry *filial.Registry, logger logger.Logger) *FilialController {
	return &FilialController{
		registry: registry,
		logger:   logger,
	}
}

// Create cria uma nova filial
// @Summary Cria uma nova filial
// @Description Cria uma nova filial vinculada ao usuário identificado pelo telefone e atribui a ele o papel "filial"
// @Tags filiais
// @Accept json
// @Produce json
// @Param filial body dto.FilialRequest true "Dados da filial"
// @Success 201 {object} dto.FilialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais [post]
func (c *FilialController) Create(ctx *gin.Context) {
	var request dto.FilialRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Requisição inválida", err.Error()))
		return
	}

	f, err := c.registry.Create(ctx, request.FilialID, request.Name, request.UserPhone, request.Address)
	if err != nil {
		switch {
		case errors.Is(err, filial.ErrOwnerNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário com o telefone informado não encontrado", ""))
		case errors.Is(err, filial.ErrOwnerIsAdmin):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Não é possível criar filial para usuário com papel de administrador", ""))
		case errors.Is(err, filial.ErrOwnerHasFilial):
			ctx.JSON(http.StatusConflict, dto.NewErrorResponse(http.StatusConflict, "O usuário já possui uma filial", ""))
		default:
			c.logger.Error("erro ao criar filial", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao criar filial", ""))
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFilialResponse(f))
}

// List lista as filiais com seus usuários donos
// @Summary Lista as filiais
// @Description Lista todas as filiais ordenadas pela data de criação, cada uma com o usuário dono (nulo quando o telefone não corresponde mais a nenhum usuário)
// @Tags filiais
// @Produce json
// @Success 200 {object} dto.FilialListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais [get]
func (c *FilialController) List(ctx *gin.Context) {
	listings, err := c.registry.ListAll(ctx)
	if err != nil {
		c.logger.Error("erro ao listar filiais", "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar filiais", ""))
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFilialListResponse(listings))
}

// Delete remove uma filial
// @Summary Remove uma filial
// @Description Remove a filial e devolve o papel "client" ao usuário dono
// @Tags filiais
// @Produce json
// @Param id path string true "ID da filial"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais/{id} [delete]
func (c *FilialController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "ID não fornecido", ""))
		return
	}

	err := c.registry.Delete(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, filial.ErrFilialNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
		case errors.Is(err, filial.ErrOwnerMissing):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Usuário vinculado à filial não encontrado", ""))
		default:
			c.logger.Error("erro ao remover filial", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao remover filial", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse("Filial removida com sucesso", nil))
}

// GetByUserPhone busca a filial pelo telefone do usuário dono
// @Summary Busca a filial pelo telefone do usuário
// @Description Busca a filial pelo telefone copiado do usuário dono na criação
// @Tags filiais
// @Produce json
// @Param user_phone query string true "Telefone do usuário"
// @Success 200 {object} dto.FilialResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais/by-phone [get]
func (c *FilialController) GetByUserPhone(ctx *gin.Context) {
	phone := ctx.Query("user_phone")

	f, err := c.registry.FindByUserPhone(ctx, phone)
	if err != nil {
		switch {
		case errors.Is(err, filial.ErrPhoneRequired):
			ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(http.StatusBadRequest, "Telefone não informado", ""))
		case errors.Is(err, filial.ErrFilialNotFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Filial não encontrada", ""))
		default:
			c.logger.Error("erro ao buscar filial por telefone", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao buscar filial", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFilialResponse(f))
}

// GetUsersByFilial lista os usuários que selecionaram a filial informada
// @Summary Lista usuários por filial
// @Description Lista os usuários cuja filial selecionada corresponde ao nome informado
// @Tags filiais
// @Produce json
// @Param filial_text query string true "Nome da filial"
// @Success 200 {object} dto.UserListResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /filiais/users [get]
func (c *FilialController) GetUsersByFilial(ctx *gin.Context) {
	filialText := ctx.Query("filial_text")

	users, err := c.registry.FindUsersByFilial(ctx, filialText)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNoUsersFound):
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(http.StatusNotFound, "Nenhum usuário encontrado", ""))
		default:
			c.logger.Error("erro ao listar usuários por filial", "error", err)
			ctx.JSON(http.StatusInternalServerError, dto.NewErrorResponse(http.StatusInternalServerError, "Erro ao listar usuários", ""))
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserListResponse(users))
}
