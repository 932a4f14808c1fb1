package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/froesalexandre94-DC/zws/internal/application/analytics"
	"github.com/froesalexandre94-DC/zws/internal/application/dto"
	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/pkg/logger"
)

// Mensaje fijo de la respuesta 500 de /api/vendas (lo muestra el frontend).
const salesFetchErrorMessage = "Erro ao buscar dados no Supabase"

// DashboardHandler maneja los endpoints del Dashboard de vendas.
type DashboardHandler struct {
	uc  *appanalytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// GetSales godoc
// @Summary      Top vendidos, baixo estoque y productos con datos de venta
// @Tags         vendas
// @Produce      json
// @Success      200  {object}  dto.SalesDashboardDTO
// @Failure      500  {object}  dto.SalesDashboardErrorDTO
// @Router       /api/vendas [get]
//
// En caso de error responde 500 pero con los tres arrays presentes y vacíos.
func (h *DashboardHandler) GetSales(c *fiber.Ctx) error {
	out, err := h.uc.GetSales(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("erro ao buscar dados de vendas/estoque")

		body := dto.SalesDashboardErrorDTO{
			Error:   salesFetchErrorMessage,
			Details: errorDetails(err),
			SalesDashboardDTO: dto.SalesDashboardDTO{
				Top10Sold:        []dto.ProductSummaryDTO{},
				BaixoEstoque:     []dto.ProductSummaryDTO{},
				ProdutosComDados: []dto.ProductSummaryDTO{},
			},
		}
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
	return c.JSON(out)
}

// GetSummary godoc
// @Summary      KPIs del dashboard (total vendido, baixo estoque, más vendido)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/resumo [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.uc.GetSummary(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("dashboard: resumo")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "DATA_STORE", Message: errorDetails(err),
		})
	}
	return c.JSON(out)
}

// errorDetails mensaje de la causa: la del DataStoreError si existe, si no el error completo.
func errorDetails(err error) string {
	var dsErr *domain.DataStoreError
	if errors.As(err, &dsErr) {
		return dsErr.Cause()
	}
	return err.Error()
}
