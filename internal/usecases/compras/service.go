package compras

import (
	"context"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/pkg/errors"
)

// Reporter monta os resumos de licitações e a lista de contratos a vencer
type Reporter interface {
	LicitacoesResumo(ctx context.Context, ano int) (*domain.LicitacoesResumoResponse, error)
	ContratosProximosVencimentos(ctx context.Context, dias int) (*domain.ContratosProximosVencimentosResponse, error)
}

type Service struct {
	licitacaoRepository repository.LicitacaoRepository
	contratoRepository  repository.ContratoRepository
	agora               func() time.Time
}

func NewService(licitacaoRepo repository.LicitacaoRepository, contratoRepo repository.ContratoRepository) Reporter {
	return &Service{
		licitacaoRepository: licitacaoRepo,
		contratoRepository:  contratoRepo,
		agora:               time.Now,
	}
}

func (s *Service) LicitacoesResumo(ctx context.Context, ano int) (*domain.LicitacoesResumoResponse, error) {
	resumo := &domain.LicitacoesResumoResponse{Ano: ano}

	var err error
	if resumo.QuantidadeProcessosPorStatus, err = s.licitacaoRepository.QuantidadePorStatus(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "processos por status")
	}
	if resumo.QuantidadePorModalidade, err = s.licitacaoRepository.QuantidadePorModalidade(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "processos por modalidade")
	}
	if resumo.ValorTotalLicitadoAno, err = s.licitacaoRepository.ValorTotalLicitado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "valor total licitado")
	}
	if resumo.ValorTotalContratadoAno, err = s.licitacaoRepository.ValorTotalContratado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "valor total contratado")
	}
	if resumo.TempoMedioEntreAberturaEHomologacao, err = s.licitacaoRepository.TempoMedioAberturaHomologacao(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "tempo médio de homologação")
	}

	return resumo, nil
}

// ContratosProximosVencimentos lista contratos com término na janela
// [hoje, hoje+dias], inclusiva nas duas pontas.
func (s *Service) ContratosProximosVencimentos(ctx context.Context, dias int) (*domain.ContratosProximosVencimentosResponse, error) {
	hoje := s.agora().Truncate(24 * time.Hour)
	fim := hoje.AddDate(0, 0, dias)

	rows, err := s.contratoRepository.ProximosVencimentos(ctx, hoje, fim)
	if err != nil {
		return nil, errors.Wrap(err, "contratos a vencer")
	}

	contratos := make([]domain.ContratoProximoVencimento, 0, len(rows))
	for _, row := range rows {
		contratos = append(contratos, domain.ContratoProximoVencimento{
			ID:         row.ID,
			Numero:     row.Numero,
			Fornecedor: row.Fornecedor,
			Valor:      row.Valor,
			DataFim:    row.DataFim.Format(time.DateOnly),
			Status:     row.Status,
		})
	}

	return &domain.ContratosProximosVencimentosResponse{Dias: dias, Contratos: contratos}, nil
}
