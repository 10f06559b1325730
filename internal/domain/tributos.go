package domain

type BairroArrecadacao struct {
	Bairro           string  `json:"bairro"`
	ValorArrecadado  float64 `json:"valor_arrecadado"`
}

type AtividadeResumo struct {
	Atividade string  `json:"atividade"`
	Valor     float64 `json:"valor"`
}

type ContribuinteResumo struct {
	Contribuinte string  `json:"contribuinte"`
	Valor        float64 `json:"valor"`
}

type IPTUResponse struct {
	Ano                          int                 `json:"ano"`
	IPTULancadoAno               float64             `json:"iptu_lancado_ano"`
	IPTUArrecadadoAno            float64             `json:"iptu_arrecadado_ano"`
	TaxaInadimplencia            float64             `json:"taxa_inadimplencia"`
	RankingBairrosPorArrecadacao []BairroArrecadacao `json:"ranking_bairros_por_arrecadacao"`
}

type ISSResponse struct {
	Ano                 int                  `json:"ano"`
	ISSDeclaradoAno     float64              `json:"iss_declarado_ano"`
	ISSPagoAno          float64              `json:"iss_pago_ano"`
	NotasPorAtividade   []AtividadeResumo    `json:"notas_por_atividade"`
	TopContribuintesISS []ContribuinteResumo `json:"top_contribuintes_iss"`
}

type EstoqueDividaAtiva struct {
	Tributo string  `json:"tributo"`
	Valor   float64 `json:"valor"`
}

type DividaAtivaResponse struct {
	Ano                              int                  `json:"ano"`
	EstoqueDividaAtivaTotal          float64              `json:"estoque_divida_ativa_total"`
	EstoquePorTributo                []EstoqueDividaAtiva `json:"estoque_por_tributo"`
	ValorRecuperadoAno               float64              `json:"valor_recuperado_ano"`
	QuantidadeAcordosParcelamentoAno int                  `json:"quantidade_acordos_parcelamento_ano"`
}
