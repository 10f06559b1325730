package frotas

import (
	"context"
	"testing"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/infrastructure/repository/mocks"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_statusLicenciamento(t *testing.T) {
	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{janelas: Janelas{AVencerDias: 60}}

	ontem := hoje.AddDate(0, 0, -1)
	em60Dias := hoje.AddDate(0, 0, 60)
	em61Dias := hoje.AddDate(0, 0, 61)

	tests := []struct {
		name       string
		vencimento *time.Time
		expected   string
	}{
		{
			name:       "Sem data de vencimento segue vigente",
			vencimento: nil,
			expected:   StatusVigente,
		},
		{
			name:       "Vencimento anterior a hoje",
			vencimento: &ontem,
			expected:   StatusVencido,
		},
		{
			name:       "Vencimento exatamente hoje",
			vencimento: &hoje,
			expected:   StatusAVencer,
		},
		{
			name:       "Último dia da janela de alerta",
			vencimento: &em60Dias,
			expected:   StatusAVencer,
		},
		{
			name:       "Um dia além da janela de alerta",
			vencimento: &em61Dias,
			expected:   StatusVigente,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, service.statusLicenciamento(tt.vencimento, hoje))
		})
	}
}

func TestService_FrotasResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFrotaRepo := mocks.NewMockFrotaRepository(ctrl)

	hoje := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	service := &Service{
		frotaRepository: mockFrotaRepo,
		janelas:         Janelas{RetroDias: 30, JanelaDias: 120, AVencerDias: 60},
		agora:           func() time.Time { return hoje },
	}

	consumo := []domain.VeiculoValor{{Veiculo: "ONIBUS 012", Valor: 820.5}}
	custoKm := []domain.VeiculoValor{{Veiculo: "ONIBUS 012", Valor: 2.35}}
	viagens := []domain.VeiculoValor{{Veiculo: "ONIBUS 012", Valor: 44}}

	mockFrotaRepo.EXPECT().ConsumoCombustivelPorVeiculo(gomock.Any(), 2025, 6).Return(consumo, nil)
	mockFrotaRepo.EXPECT().CustoPorKmPorVeiculo(gomock.Any(), 2025, 6).Return(custoKm, nil)
	mockFrotaRepo.EXPECT().ViagensPorVeiculo(gomock.Any(), 2025, 6).Return(viagens, nil)

	// A consulta cobre [hoje-RetroDias, hoje+JanelaDias]
	inicio := time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)
	fim := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

	vencido := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	mockFrotaRepo.EXPECT().
		Licenciamentos(gomock.Any(), inicio, fim).
		Return([]repository.LicenciamentoRow{
			{Veiculo: "ONIBUS 012", DataVencimento: &vencido},
			{Veiculo: "CAMINHAO 003", DataVencimento: nil},
		}, nil)

	resumo, err := service.FrotasResumo(context.Background(), 2025, 6)

	assert.NoError(t, err)
	assert.Equal(t, 2025, resumo.Ano)
	assert.Equal(t, 6, resumo.Mes)
	assert.Equal(t, consumo, resumo.ConsumoCombustivelPorVeiculo)
	assert.Equal(t, custoKm, resumo.CustoPorKmPorVeiculo)
	assert.Equal(t, viagens, resumo.ViagensPorVeiculo)

	assert.Len(t, resumo.VeiculosComLicenciamentoVencidoOuAVencer, 2)
	assert.Equal(t, StatusVencido, resumo.VeiculosComLicenciamentoVencidoOuAVencer[0].Status)
	assert.NotNil(t, resumo.VeiculosComLicenciamentoVencidoOuAVencer[0].DataVencimento)
	assert.Equal(t, "2025-06-01", *resumo.VeiculosComLicenciamentoVencidoOuAVencer[0].DataVencimento)
	assert.Equal(t, StatusVigente, resumo.VeiculosComLicenciamentoVencidoOuAVencer[1].Status)
	assert.Nil(t, resumo.VeiculosComLicenciamentoVencidoOuAVencer[1].DataVencimento)
}

func TestService_TransporteEscolarResumo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFrotaRepo := mocks.NewMockFrotaRepository(ctrl)
	service := NewService(mockFrotaRepo, Janelas{RetroDias: 30, JanelaDias: 120, AVencerDias: 60})

	viagens := []domain.RotaValor{{Rota: "ZONA RURAL NORTE", Valor: 180}}
	alunos := []domain.RotaValor{{Rota: "ZONA RURAL NORTE", Valor: 65}}

	mockFrotaRepo.EXPECT().ViagensPorRota(gomock.Any(), 2025).Return(viagens, nil)
	mockFrotaRepo.EXPECT().AlunosAtendidosPorRota(gomock.Any(), 2025).Return(alunos, nil)

	resumo, err := service.TransporteEscolarResumo(context.Background(), 2025)

	assert.NoError(t, err)
	assert.Equal(t, 2025, resumo.Ano)
	assert.Equal(t, viagens, resumo.ViagensPorRota)
	assert.Equal(t, alunos, resumo.AlunosAtendidosPorRota)
}

func TestService_TransporteEscolarResumo_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockFrotaRepo := mocks.NewMockFrotaRepository(ctrl)
	service := NewService(mockFrotaRepo, Janelas{})

	mockFrotaRepo.EXPECT().
		ViagensPorRota(gomock.Any(), 2025).
		Return(nil, errors.New("conexão recusada"))

	resumo, err := service.TransporteEscolarResumo(context.Background(), 2025)

	assert.Error(t, err)
	assert.Nil(t, resumo)
	assert.Contains(t, err.Error(), "viagens por rota")
}
