package financas

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
)

// Reporter monta os resumos de receita e despesa do exercício
type Reporter interface {
	ReceitaResumo(ctx context.Context, ano int) (*domain.ReceitaResumoResponse, error)
	DespesaResumo(ctx context.Context, ano int) (*domain.DespesaResumoResponse, error)
}

type Service struct {
	receitaRepository repository.ReceitaRepository
	despesaRepository repository.DespesaRepository
}

func NewService(receitaRepo repository.ReceitaRepository, despesaRepo repository.DespesaRepository) Reporter {
	return &Service{
		receitaRepository: receitaRepo,
		despesaRepository: despesaRepo,
	}
}

func (s *Service) ReceitaResumo(ctx context.Context, ano int) (*domain.ReceitaResumoResponse, error) {
	resumo := &domain.ReceitaResumoResponse{Ano: ano}

	var err error
	if resumo.ReceitaPrevista, err = s.receitaRepository.Prevista(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita prevista")
	}
	if resumo.ReceitaRealizada, err = s.receitaRepository.Realizada(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita realizada")
	}
	if resumo.SerieMensal, err = s.receitaRepository.SerieMensal(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "série mensal de receita")
	}
	if resumo.ReceitaPorOrigem, err = s.receitaRepository.PorOrigem(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita por origem")
	}
	if resumo.ReceitaPorNatureza, err = s.receitaRepository.PorNatureza(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita por natureza")
	}
	if resumo.ReceitaPorFonte, err = s.receitaRepository.PorFonte(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita por fonte")
	}

	return resumo, nil
}

func (s *Service) DespesaResumo(ctx context.Context, ano int) (*domain.DespesaResumoResponse, error) {
	resumo := &domain.DespesaResumoResponse{Ano: ano}

	var err error
	if resumo.DotacaoInicial, err = s.despesaRepository.DotacaoInicial(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "dotação inicial")
	}
	if resumo.DotacaoAtualizada, err = s.despesaRepository.DotacaoAtualizada(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "dotação atualizada")
	}
	if resumo.Empenhado, err = s.despesaRepository.Empenhado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa empenhada")
	}
	if resumo.Liquidado, err = s.despesaRepository.Liquidado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa liquidada")
	}
	if resumo.Pago, err = s.despesaRepository.Pago(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa paga")
	}
	if resumo.SerieMensal, err = s.despesaRepository.SerieMensal(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "série mensal de despesa")
	}
	if resumo.DespesaPorOrgao, err = s.despesaRepository.PorOrgao(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa por órgão")
	}
	if resumo.DespesaPorFuncao, err = s.despesaRepository.PorFuncao(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa por função")
	}
	if resumo.DespesaPorPrograma, err = s.despesaRepository.PorPrograma(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa por programa")
	}

	return resumo, nil
}
