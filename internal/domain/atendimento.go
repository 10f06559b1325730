package domain

type CategoriaQuantidade struct {
	Categoria  string `json:"categoria"`
	Quantidade int    `json:"quantidade"`
}

type ProtocoloResumoResponse struct {
	Ano                   int                   `json:"ano"`
	TotalProtocolosAno    int                   `json:"total_protocolos_ano"`
	ProtocolosPorSituacao []CategoriaQuantidade `json:"protocolos_por_situacao"`
	TempoMedioTramitacao  float64               `json:"tempo_medio_tramitacao"`
	TopAssuntos           []CategoriaQuantidade `json:"top_assuntos"`
}

type EsicResumoResponse struct {
	Ano                        int `json:"ano"`
	PedidosInformacaoRecebidos int `json:"pedidos_informacao_recebidos"`
	RespondidosNoPrazo         int `json:"respondidos_no_prazo"`
	RespondidosForaDoPrazo     int `json:"respondidos_fora_do_prazo"`
	EmAndamento                int `json:"em_andamento"`
}
