package domain

type ObrasPorSituacao struct {
	Situacao   string  `json:"situacao"`
	Quantidade int     `json:"quantidade"`
	ValorTotal float64 `json:"valor_total"`
}

type ObraAtrasada struct {
	ID              int64  `json:"id"`
	Descricao       string `json:"descricao"`
	DataFimPrevista string `json:"data_fim_prevista"`
	Situacao        string `json:"situacao"`
}

type ObrasResumoResponse struct {
	QtdeObrasPorSituacao []ObrasPorSituacao `json:"qtde_obras_por_situacao"`
	ExecucaoFisicaMedia  float64            `json:"execucao_fisica_media"`
	ObrasAtrasadas       []ObraAtrasada     `json:"obras_atrasadas"`
}

type ConvenioPorOrgao struct {
	OrgaoRepassador string  `json:"orgao_repassador"`
	Quantidade      int     `json:"quantidade"`
	ValorGlobal     float64 `json:"valor_global"`
}

// ExecucaoFinanceiraConvenio carrega o percentual executado e o rótulo de risco
type ExecucaoFinanceiraConvenio struct {
	ConvenioID                   int64   `json:"convenio_id"`
	Descricao                    string  `json:"descricao"`
	PercentualExecucaoFinanceira float64 `json:"percentual_execucao_financeira"`
	Risco                        string  `json:"risco"`
}

type ConveniosResumoResponse struct {
	QtdeConveniosPorOrgaoRepassador          []ConvenioPorOrgao           `json:"qtde_convenios_por_orgao_repassador"`
	PercentualExecucaoFinanceiraPorConvenio  []ExecucaoFinanceiraConvenio `json:"percentual_execucao_financeira_por_convenio"`
	ConveniosEmRisco                         []ExecucaoFinanceiraConvenio `json:"convenios_em_risco"`
}
