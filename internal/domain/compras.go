package domain

type LicitacaoStatusResumo struct {
	Status     string `json:"status"`
	Quantidade int    `json:"quantidade"`
}

type LicitacaoModalidadeResumo struct {
	Modalidade string `json:"modalidade"`
	Quantidade int    `json:"quantidade"`
}

type LicitacoesResumoResponse struct {
	Ano                                  int                         `json:"ano"`
	QuantidadeProcessosPorStatus         []LicitacaoStatusResumo     `json:"quantidade_processos_por_status"`
	QuantidadePorModalidade              []LicitacaoModalidadeResumo `json:"quantidade_por_modalidade"`
	ValorTotalLicitadoAno                float64                     `json:"valor_total_licitado_ano"`
	ValorTotalContratadoAno              float64                     `json:"valor_total_contratado_ano"`
	TempoMedioEntreAberturaEHomologacao  float64                     `json:"tempo_medio_entre_abertura_e_homologacao"`
}

// ContratoProximoVencimento é um contrato com término dentro da janela consultada
type ContratoProximoVencimento struct {
	ID         int64   `json:"id"`
	Numero     string  `json:"numero"`
	Fornecedor string  `json:"fornecedor"`
	Valor      float64 `json:"valor"`
	DataFim    string  `json:"data_fim"`
	Status     string  `json:"status"`
}

type ContratosProximosVencimentosResponse struct {
	Dias      int                         `json:"dias"`
	Contratos []ContratoProximoVencimento `json:"contratos"`
}
