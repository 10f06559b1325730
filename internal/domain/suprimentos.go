package domain

type PatrimonioResponse struct {
	ValorTotalBens           float64          `json:"valor_total_bens"`
	ValorDepreciacaoAcumulada float64         `json:"valor_depreciacao_acumulada"`
	BensPorOrgao             []CategoriaValor `json:"bens_por_orgao"`
	BensPorNaturezaOuGrupo   []CategoriaValor `json:"bens_por_natureza_ou_grupo"`
}

type ConsumoResumo struct {
	Item  string  `json:"item"`
	Valor float64 `json:"valor"`
}

type EstoqueProduto struct {
	Produto    string  `json:"produto"`
	Quantidade float64 `json:"quantidade"`
}

type AlmoxarifadoResponse struct {
	Mes                    int              `json:"mes"`
	Ano                    int              `json:"ano"`
	ConsumoPorOrgaoNoMes   []ConsumoResumo  `json:"consumo_por_orgao_no_mes"`
	ConsumoPorProduto      []ConsumoResumo  `json:"consumo_por_produto"`
	EstoqueAtualPorProduto []EstoqueProduto `json:"estoque_atual_por_produto"`
}
