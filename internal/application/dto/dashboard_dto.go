package dto

// ProductSummaryDTO un producto del estoque con su total vendido.
// Las claves JSON son las que consume el frontend del dashboard.
type ProductSummaryDTO struct {
	Codigo       string `json:"codigo"`
	Produto      string `json:"produto"`
	Quantidade   int    `json:"quantidade"`
	TotalVendido int    `json:"totalVendido"`
}

// SalesDashboardDTO respuesta de GET /api/vendas.
// Los tres arrays siempre están presentes, incluso vacíos.
type SalesDashboardDTO struct {
	Top10Sold        []ProductSummaryDTO `json:"top10Sold"`
	BaixoEstoque     []ProductSummaryDTO `json:"baixoEstoque"`
	ProdutosComDados []ProductSummaryDTO `json:"produtosComDados"`
}

// SalesDashboardErrorDTO respuesta 500 de GET /api/vendas: mensaje, causa y arrays vacíos.
type SalesDashboardErrorDTO struct {
	Error   string `json:"error"`
	Details string `json:"details"`
	SalesDashboardDTO
}

// ProductLevelDTO producto con su clasificación de nivel de estoque (critico|baixo|ok).
type ProductLevelDTO struct {
	ProductSummaryDTO
	Nivel string `json:"nivel"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/resumo.
// KPIs de la cabecera del dashboard más las listas con nivel de estoque.
type DashboardSummaryDTO struct {
	TotalVendido       int               `json:"totalVendido"` // suma del top de vendidos
	TotalBaixoEstoque  int               `json:"totalBaixoEstoque"`
	ProdutoMaisVendido string            `json:"produtoMaisVendido"` // "—" si no hay datos
	Top10Sold          []ProductLevelDTO `json:"top10Sold"`
	BaixoEstoque       []ProductLevelDTO `json:"baixoEstoque"`
}
