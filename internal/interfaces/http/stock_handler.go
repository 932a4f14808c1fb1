package http

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/froesalexandre94-DC/zws/internal/application/dto"
	"github.com/froesalexandre94-DC/zws/internal/application/usecase"
	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/pkg/logger"
)

// StockHandler maneja las peticiones HTTP del CRUD de estoque.
type StockHandler struct {
	uc  *usecase.StockUseCase
	log *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase, log *logger.Logger) *StockHandler {
	return &StockHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar estoque
// @Tags         estoque
// @Produce      json
// @Param        filtro  query  string  false  "Busca por código, produto o GTIN/EAN"
// @Success      200     {object}  dto.StockListResponse
// @Router       /api/estoque [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context(), c.Query("filtro"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// GetByCode godoc
// @Summary      Obtener fila de estoque por código
// @Tags         estoque
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Success      200     {object}  dto.StockItemResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/estoque/{codigo} [get]
func (h *StockHandler) GetByCode(c *fiber.Ctx) error {
	out, err := h.uc.GetByCode(c.Context(), codeParam(c))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Agregar producto al estoque
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockItemRequest  true  "Datos del producto"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar producto del estoque
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Param        codigo  path  string  true  "Código del producto"
// @Param        body    body  dto.UpdateStockItemRequest  true  "Campos a actualizar"
// @Success      200     {object}  dto.StockItemResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/estoque/{codigo} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), codeParam(c), in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Excluir producto del estoque
// @Tags         estoque
// @Param        codigo  path  string  true  "Código del producto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/estoque/{codigo} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), codeParam(c)); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// fail traduce errores de dominio a respuestas HTTP.
func (h *StockHandler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "código já existe no estoque"})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("estoque")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}

// codeParam devuelve :codigo decodificado (los códigos pueden llevar espacios o barras).
func codeParam(c *fiber.Ctx) string {
	raw := c.Params("codigo")
	if code, err := url.PathUnescape(raw); err == nil {
		return code
	}
	return raw
}
