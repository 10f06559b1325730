package domain

type SerieMensal struct {
	Mes   int     `json:"mes"`
	Valor float64 `json:"valor"`
}

type HeadcountResumo struct {
	Categoria  string `json:"categoria"`
	Quantidade int    `json:"quantidade"`
}

type RHResumoResponse struct {
	Ano                              int               `json:"ano"`
	GastoPessoalAno                  float64           `json:"gasto_pessoal_ano"`
	GastoPessoalMensal               []SerieMensal     `json:"gasto_pessoal_mensal"`
	PercentualDespesaPessoalSobreRCL *float64          `json:"percentual_despesa_pessoal_sobre_rcl"`
	HeadcountPorTipoVinculo          []HeadcountResumo `json:"headcount_por_tipo_vinculo"`
	HeadcountPorOrgao                []HeadcountResumo `json:"headcount_por_orgao"`
	QtdeFeriasNoPeriodo              int               `json:"qtde_ferias_no_periodo"`
	QtdeLicencas                     int               `json:"qtde_licencas"`
	QtdeRescisoes                    int               `json:"qtde_rescisoes"`
}
