package domain

// CategoriaValor é um valor agregado por uma dimensão categórica
type CategoriaValor struct {
	Categoria string  `json:"categoria"`
	Valor     float64 `json:"valor"`
}

type ReceitaMensal struct {
	Mes                   int     `json:"mes"`
	ReceitaRealizadaMes   float64 `json:"receita_realizada_mes"`
	ReceitaMesAnoAnterior float64 `json:"receita_mes_ano_anterior"`
}

type ReceitaResumoResponse struct {
	Ano               int              `json:"ano"`
	ReceitaPrevista   float64          `json:"receita_prevista"`
	ReceitaRealizada  float64          `json:"receita_realizada"`
	SerieMensal       []ReceitaMensal  `json:"serie_mensal"`
	ReceitaPorOrigem  []CategoriaValor `json:"receita_por_origem"`
	ReceitaPorNatureza []CategoriaValor `json:"receita_por_natureza"`
	ReceitaPorFonte   []CategoriaValor `json:"receita_por_fonte"`
}

type DespesaMensal struct {
	Mes       int     `json:"mes"`
	Empenhado float64 `json:"empenhado"`
	Liquidado float64 `json:"liquidado"`
	Pago      float64 `json:"pago"`
}

type DespesaResumoResponse struct {
	Ano                int              `json:"ano"`
	DotacaoInicial     float64          `json:"dotacao_inicial"`
	DotacaoAtualizada  float64          `json:"dotacao_atualizada"`
	Empenhado          float64          `json:"empenhado"`
	Liquidado          float64          `json:"liquidado"`
	Pago               float64          `json:"pago"`
	SerieMensal        []DespesaMensal  `json:"serie_mensal"`
	DespesaPorOrgao    []CategoriaValor `json:"despesa_por_orgao"`
	DespesaPorFuncao   []CategoriaValor `json:"despesa_por_funcao"`
	DespesaPorPrograma []CategoriaValor `json:"despesa_por_programa"`
}
