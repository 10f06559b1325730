package atendimento

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/modulogestor/gestor-api/pkg/utils"
	"github.com/pkg/errors"
)

// Reporter monta os resumos de protocolo e do e-SIC
type Reporter interface {
	ProtocoloResumo(ctx context.Context, ano int) (*domain.ProtocoloResumoResponse, error)
	EsicResumo(ctx context.Context, ano int) (*domain.EsicResumoResponse, error)
}

type Service struct {
	protocoloRepository repository.ProtocoloRepository
}

func NewService(protocoloRepo repository.ProtocoloRepository) Reporter {
	return &Service{protocoloRepository: protocoloRepo}
}

func (s *Service) ProtocoloResumo(ctx context.Context, ano int) (*domain.ProtocoloResumoResponse, error) {
	resumo := &domain.ProtocoloResumoResponse{Ano: ano}

	var err error
	if resumo.TotalProtocolosAno, err = s.protocoloRepository.TotalProtocolos(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "total de protocolos")
	}
	if resumo.ProtocolosPorSituacao, err = s.protocoloRepository.PorSituacao(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "protocolos por situação")
	}

	tempoMedio, err := s.protocoloRepository.TempoMedioTramitacao(ctx, ano)
	if err != nil {
		return nil, errors.Wrap(err, "tempo médio de tramitação")
	}
	resumo.TempoMedioTramitacao = utils.RoundWithTwoDecimalPlace(tempoMedio)

	if resumo.TopAssuntos, err = s.protocoloRepository.TopAssuntos(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "top assuntos")
	}

	return resumo, nil
}

func (s *Service) EsicResumo(ctx context.Context, ano int) (*domain.EsicResumoResponse, error) {
	resumo := &domain.EsicResumoResponse{Ano: ano}

	var err error
	if resumo.PedidosInformacaoRecebidos, err = s.protocoloRepository.PedidosEsicRecebidos(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "pedidos recebidos")
	}
	if resumo.RespondidosNoPrazo, err = s.protocoloRepository.PedidosEsicRespondidosNoPrazo(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "respondidos no prazo")
	}
	if resumo.RespondidosForaDoPrazo, err = s.protocoloRepository.PedidosEsicRespondidosForaDoPrazo(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "respondidos fora do prazo")
	}
	if resumo.EmAndamento, err = s.protocoloRepository.PedidosEsicEmAndamento(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "pedidos em andamento")
	}

	return resumo, nil
}
