package suprimentos

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
)

// Reporter monta os resumos de patrimônio e almoxarifado
type Reporter interface {
	PatrimonioResumo(ctx context.Context) (*domain.PatrimonioResponse, error)
	AlmoxarifadoResumo(ctx context.Context, ano, mes int) (*domain.AlmoxarifadoResponse, error)
}

type Service struct {
	patrimonioRepository   repository.PatrimonioRepository
	almoxarifadoRepository repository.AlmoxarifadoRepository
}

func NewService(patrimonioRepo repository.PatrimonioRepository, almoxarifadoRepo repository.AlmoxarifadoRepository) Reporter {
	return &Service{
		patrimonioRepository:   patrimonioRepo,
		almoxarifadoRepository: almoxarifadoRepo,
	}
}

func (s *Service) PatrimonioResumo(ctx context.Context) (*domain.PatrimonioResponse, error) {
	resumo := &domain.PatrimonioResponse{}

	var err error
	if resumo.ValorTotalBens, err = s.patrimonioRepository.ValorTotalBens(ctx); err != nil {
		return nil, errors.Wrap(err, "valor total de bens")
	}
	if resumo.ValorDepreciacaoAcumulada, err = s.patrimonioRepository.DepreciacaoAcumulada(ctx); err != nil {
		return nil, errors.Wrap(err, "depreciação acumulada")
	}
	if resumo.BensPorOrgao, err = s.patrimonioRepository.BensPorOrgao(ctx); err != nil {
		return nil, errors.Wrap(err, "bens por órgão")
	}
	if resumo.BensPorNaturezaOuGrupo, err = s.patrimonioRepository.BensPorNatureza(ctx); err != nil {
		return nil, errors.Wrap(err, "bens por natureza")
	}

	return resumo, nil
}

func (s *Service) AlmoxarifadoResumo(ctx context.Context, ano, mes int) (*domain.AlmoxarifadoResponse, error) {
	resumo := &domain.AlmoxarifadoResponse{Ano: ano, Mes: mes}

	var err error
	if resumo.ConsumoPorOrgaoNoMes, err = s.almoxarifadoRepository.ConsumoPorOrgao(ctx, ano, mes); err != nil {
		return nil, errors.Wrap(err, "consumo por órgão")
	}
	if resumo.ConsumoPorProduto, err = s.almoxarifadoRepository.ConsumoPorProduto(ctx, ano, mes); err != nil {
		return nil, errors.Wrap(err, "consumo por produto")
	}
	if resumo.EstoqueAtualPorProduto, err = s.almoxarifadoRepository.EstoqueAtualPorProduto(ctx); err != nil {
		return nil, errors.Wrap(err, "estoque atual")
	}

	return resumo, nil
}
