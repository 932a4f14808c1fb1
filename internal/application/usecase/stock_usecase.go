package usecase

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/froesalexandre94-DC/zws/internal/application/dto"
	"github.com/froesalexandre94-DC/zws/internal/domain"
	"github.com/froesalexandre94-DC/zws/internal/domain/entity"
	"github.com/froesalexandre94-DC/zws/internal/domain/repository"
)

// StockUseCase casos de uso CRUD sobre la tabla de estoque. Todo se delega al repositorio.
type StockUseCase struct {
	repo repository.StockRepository
}

// NewStockUseCase construye el caso de uso.
func NewStockUseCase(repo repository.StockRepository) *StockUseCase {
	return &StockUseCase{repo: repo}
}

// Create crea una fila. El código es obligatorio y único.
func (uc *StockUseCase) Create(ctx context.Context, in dto.CreateStockItemRequest) (*dto.StockItemResponse, error) {
	code := strings.TrimSpace(in.Codigo)
	if code == "" {
		return nil, fmt.Errorf("codigo es obligatorio: %w", domain.ErrInvalidInput)
	}
	if in.Quantidade != nil && *in.Quantidade < 0 {
		return nil, fmt.Errorf("quantidade negativa: %w", domain.ErrInvalidInput)
	}
	item := &entity.StockItem{
		Code:     code,
		Product:  in.Produto,
		GTIN:     in.GTIN,
		Location: in.Localizacao,
		Unit:     in.Unidade,
		Quantity: in.Quantidade,
	}
	if item.Quantity == nil {
		zero := 0
		item.Quantity = &zero
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// GetByCode obtiene una fila por código. Devuelve domain.ErrNotFound si no existe.
func (uc *StockUseCase) GetByCode(ctx context.Context, code string) (*dto.StockItemResponse, error) {
	item, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toStockItemResponse(item), nil
}

// Update aplica una actualización parcial. El código no se puede modificar.
func (uc *StockUseCase) Update(ctx context.Context, code string, in dto.UpdateStockItemRequest) (*dto.StockItemResponse, error) {
	if in.Quantidade != nil && *in.Quantidade < 0 {
		return nil, fmt.Errorf("quantidade negativa: %w", domain.ErrInvalidInput)
	}
	item, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if in.Produto != nil {
		item.Product = *in.Produto
	}
	if in.GTIN != nil {
		item.GTIN = *in.GTIN
	}
	if in.Localizacao != nil {
		item.Location = *in.Localizacao
	}
	if in.Unidade != nil {
		item.Unit = *in.Unidade
	}
	if in.Quantidade != nil {
		q := *in.Quantidade
		item.Quantity = &q
	}
	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return toStockItemResponse(item), nil
}

// Delete elimina una fila por código.
func (uc *StockUseCase) Delete(ctx context.Context, code string) error {
	return uc.repo.Delete(ctx, code)
}

// List devuelve el estoque ordenado por código, filtrado por término.
//
// El filtro busca el término (sin distinguir mayúsculas, con case folding Unicode)
// dentro de codigo, produto o GTIN/EAN. Los totales se calculan sobre el estoque completo.
func (uc *StockUseCase) List(ctx context.Context, filter string) (*dto.StockListResponse, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	term := fold.String(strings.TrimSpace(filter))

	out := &dto.StockListResponse{
		Items:         make([]dto.StockItemResponse, 0, len(all)),
		TotalProdutos: len(all),
	}
	for i := range all {
		it := &all[i]
		out.TotalPecas += it.QuantityOrZero()
		if term != "" && !matches(fold, term, it.Code, it.Product, it.GTIN) {
			continue
		}
		out.Items = append(out.Items, *toStockItemResponse(it))
	}
	return out, nil
}

func matches(fold cases.Caser, term string, fields ...string) bool {
	for _, f := range fields {
		if f != "" && strings.Contains(fold.String(f), term) {
			return true
		}
	}
	return false
}

func toStockItemResponse(it *entity.StockItem) *dto.StockItemResponse {
	return &dto.StockItemResponse{
		Codigo:      it.Code,
		Produto:     it.Product,
		GTIN:        it.GTIN,
		Localizacao: it.Location,
		Unidade:     it.Unit,
		Quantidade:  it.QuantityOrZero(),
	}
}
