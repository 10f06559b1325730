package frotas

import (
	"context"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
)

const (
	StatusVencido = "vencido"
	StatusAVencer = "a vencer"
	StatusVigente = "vigente"
)

// Janelas reúne os parâmetros, em dias, da consulta de licenciamentos
type Janelas struct {
	RetroDias   int
	JanelaDias  int
	AVencerDias int
}

// Reporter monta o resumo operacional da frota e do transporte escolar
type Reporter interface {
	FrotasResumo(ctx context.Context, ano, mes int) (*domain.FrotasResumoResponse, error)
	TransporteEscolarResumo(ctx context.Context, ano int) (*domain.TransporteEscolarResponse, error)
}

type Service struct {
	frotaRepository repository.FrotaRepository
	janelas         Janelas
	agora           func() time.Time
}

func NewService(frotaRepo repository.FrotaRepository, janelas Janelas) Reporter {
	return &Service{
		frotaRepository: frotaRepo,
		janelas:         janelas,
		agora:           time.Now,
	}
}

func (s *Service) FrotasResumo(ctx context.Context, ano, mes int) (*domain.FrotasResumoResponse, error) {
	resumo := &domain.FrotasResumoResponse{Ano: ano, Mes: mes}

	var err error
	if resumo.ConsumoCombustivelPorVeiculo, err = s.frotaRepository.ConsumoCombustivelPorVeiculo(ctx, ano, mes); err != nil {
		return nil, errors.Wrap(err, "consumo de combustível")
	}
	if resumo.CustoPorKmPorVeiculo, err = s.frotaRepository.CustoPorKmPorVeiculo(ctx, ano, mes); err != nil {
		return nil, errors.Wrap(err, "custo por km")
	}
	if resumo.ViagensPorVeiculo, err = s.frotaRepository.ViagensPorVeiculo(ctx, ano, mes); err != nil {
		return nil, errors.Wrap(err, "viagens por veículo")
	}

	hoje := s.agora().Truncate(24 * time.Hour)
	inicio := hoje.AddDate(0, 0, -s.janelas.RetroDias)
	fim := hoje.AddDate(0, 0, s.janelas.JanelaDias)

	licenciamentos, err := s.frotaRepository.Licenciamentos(ctx, inicio, fim)
	if err != nil {
		return nil, errors.Wrap(err, "licenciamentos")
	}

	resumo.VeiculosComLicenciamentoVencidoOuAVencer = make([]domain.LicenciamentoStatus, 0, len(licenciamentos))
	for _, row := range licenciamentos {
		item := domain.LicenciamentoStatus{
			Veiculo: row.Veiculo,
			Status:  s.statusLicenciamento(row.DataVencimento, hoje),
		}
		if row.DataVencimento != nil {
			d := row.DataVencimento.Format(time.DateOnly)
			item.DataVencimento = &d
		}
		resumo.VeiculosComLicenciamentoVencidoOuAVencer = append(resumo.VeiculosComLicenciamentoVencidoOuAVencer, item)
	}

	return resumo, nil
}

// statusLicenciamento classifica o vencimento: anterior a hoje é vencido,
// até hoje+AVencerDias (inclusive) é a vencer, o restante segue vigente.
func (s *Service) statusLicenciamento(vencimento *time.Time, hoje time.Time) string {
	if vencimento == nil {
		return StatusVigente
	}
	if vencimento.Before(hoje) {
		return StatusVencido
	}
	limite := hoje.AddDate(0, 0, s.janelas.AVencerDias)
	if !vencimento.After(limite) {
		return StatusAVencer
	}
	return StatusVigente
}

func (s *Service) TransporteEscolarResumo(ctx context.Context, ano int) (*domain.TransporteEscolarResponse, error) {
	resumo := &domain.TransporteEscolarResponse{Ano: ano}

	var err error
	if resumo.ViagensPorRota, err = s.frotaRepository.ViagensPorRota(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "viagens por rota")
	}
	if resumo.AlunosAtendidosPorRota, err = s.frotaRepository.AlunosAtendidosPorRota(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "alunos por rota")
	}

	return resumo, nil
}
