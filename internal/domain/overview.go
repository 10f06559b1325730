package domain

// OverviewCards agrupa os totais anuais exibidos na visão geral
type OverviewCards struct {
	ReceitaPrevistaAno            float64 `json:"receita_prevista_ano"`
	ReceitaRealizadaAno           float64 `json:"receita_realizada_ano"`
	DespesaDotacaoAtualizadaAno   float64 `json:"despesa_dotacao_atualizada_ano"`
	DespesaEmpenhadaAno           float64 `json:"despesa_empenhada_ano"`
	DespesaLiquidadaAno           float64 `json:"despesa_liquidada_ano"`
	DespesaPagaAno                float64 `json:"despesa_paga_ano"`
	ResultadoPrimarioSimplificado float64 `json:"resultado_primario_simplificado"`
	CaixaDisponivel               float64 `json:"caixa_disponivel"`
	EstoqueDividaAtivaTotal       float64 `json:"estoque_divida_ativa_total"`
	RecuperacaoDividaAtivaAno     float64 `json:"recuperacao_divida_ativa_ano"`
	QtdeLicitacoesEmAndamento     int     `json:"qtde_licitacoes_em_andamento"`
	QtdeLicitacoesHomologadasAno  int     `json:"qtde_licitacoes_homologadas_ano"`
	QtdeObrasEmExecucao           int     `json:"qtde_obras_em_execucao"`
	QtdeObrasParalisadas          int     `json:"qtde_obras_paralisadas"`
}

type OverviewResponse struct {
	Ano   int           `json:"ano"`
	Cards OverviewCards `json:"cards"`
}
