package domain

type VeiculoValor struct {
	Veiculo string  `json:"veiculo"`
	Valor   float64 `json:"valor"`
}

// LicenciamentoStatus classifica o vencimento do licenciamento de um veículo
type LicenciamentoStatus struct {
	Veiculo        string  `json:"veiculo"`
	DataVencimento *string `json:"data_vencimento"`
	Status         string  `json:"status"`
}

type FrotasResumoResponse struct {
	Mes                              int                   `json:"mes"`
	Ano                              int                   `json:"ano"`
	ConsumoCombustivelPorVeiculo     []VeiculoValor        `json:"consumo_combustivel_por_veiculo"`
	CustoPorKmPorVeiculo             []VeiculoValor        `json:"custo_por_km_por_veiculo"`
	ViagensPorVeiculo                []VeiculoValor        `json:"viagens_por_veiculo"`
	VeiculosComLicenciamentoVencidoOuAVencer []LicenciamentoStatus `json:"veiculos_com_licenciamento_vencido_ou_a_vencer"`
}

type RotaValor struct {
	Rota  string  `json:"rota"`
	Valor float64 `json:"valor"`
}

type TransporteEscolarResponse struct {
	Ano                    int         `json:"ano"`
	ViagensPorRota         []RotaValor `json:"viagens_por_rota"`
	AlunosAtendidosPorRota []RotaValor `json:"alunos_atendidos_por_rota"`
}
