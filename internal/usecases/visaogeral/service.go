package visaogeral

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
)

// Summarizer monta os cards anuais da visão geral do município
type Summarizer interface {
	Overview(ctx context.Context, ano int) (*domain.OverviewResponse, error)
}

type Service struct {
	overviewRepository repository.OverviewRepository
}

func NewService(overviewRepo repository.OverviewRepository) Summarizer {
	return &Service{overviewRepository: overviewRepo}
}

func (s *Service) Overview(ctx context.Context, ano int) (*domain.OverviewResponse, error) {
	cards := domain.OverviewCards{}

	var err error
	if cards.ReceitaPrevistaAno, err = s.overviewRepository.ReceitaPrevistaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita prevista")
	}
	if cards.ReceitaRealizadaAno, err = s.overviewRepository.ReceitaRealizadaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "receita realizada")
	}
	if cards.DespesaDotacaoAtualizadaAno, err = s.overviewRepository.DotacaoAtualizadaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "dotação atualizada")
	}
	if cards.DespesaEmpenhadaAno, err = s.overviewRepository.DespesaEmpenhadaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa empenhada")
	}
	if cards.DespesaLiquidadaAno, err = s.overviewRepository.DespesaLiquidadaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa liquidada")
	}
	if cards.DespesaPagaAno, err = s.overviewRepository.DespesaPagaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "despesa paga")
	}
	if cards.CaixaDisponivel, err = s.overviewRepository.CaixaDisponivel(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "caixa disponível")
	}
	if cards.EstoqueDividaAtivaTotal, err = s.overviewRepository.EstoqueDividaAtivaTotal(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "estoque de dívida ativa")
	}
	if cards.RecuperacaoDividaAtivaAno, err = s.overviewRepository.RecuperacaoDividaAtivaAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "recuperação de dívida ativa")
	}
	if cards.QtdeLicitacoesEmAndamento, err = s.overviewRepository.LicitacoesEmAndamento(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "licitações em andamento")
	}
	if cards.QtdeLicitacoesHomologadasAno, err = s.overviewRepository.LicitacoesHomologadasAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "licitações homologadas")
	}
	if cards.QtdeObrasEmExecucao, err = s.overviewRepository.ObrasEmExecucao(ctx); err != nil {
		return nil, errors.Wrap(err, "obras em execução")
	}
	if cards.QtdeObrasParalisadas, err = s.overviewRepository.ObrasParalisadas(ctx); err != nil {
		return nil, errors.Wrap(err, "obras paralisadas")
	}

	// Visão simplificada: receita realizada menos despesa empenhada
	cards.ResultadoPrimarioSimplificado = cards.ReceitaRealizadaAno - cards.DespesaEmpenhadaAno

	return &domain.OverviewResponse{Ano: ano, Cards: cards}, nil
}
