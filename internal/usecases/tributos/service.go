package tributos

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/modulogestor/gestor-api/pkg/utils"
	"github.com/pkg/errors"
)

// Reporter monta os relatórios de IPTU, ISS e dívida ativa
type Reporter interface {
	IPTU(ctx context.Context, ano int) (*domain.IPTUResponse, error)
	ISS(ctx context.Context, ano int) (*domain.ISSResponse, error)
	DividaAtiva(ctx context.Context, ano int) (*domain.DividaAtivaResponse, error)
}

type Service struct {
	tributoRepository repository.TributoRepository
}

func NewService(tributoRepo repository.TributoRepository) Reporter {
	return &Service{tributoRepository: tributoRepo}
}

func (s *Service) IPTU(ctx context.Context, ano int) (*domain.IPTUResponse, error) {
	resumo := &domain.IPTUResponse{Ano: ano}

	var err error
	if resumo.IPTULancadoAno, err = s.tributoRepository.IPTULancado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "IPTU lançado")
	}
	if resumo.IPTUArrecadadoAno, err = s.tributoRepository.IPTUArrecadado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "IPTU arrecadado")
	}
	if resumo.RankingBairrosPorArrecadacao, err = s.tributoRepository.RankingBairros(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "ranking de bairros")
	}

	resumo.TaxaInadimplencia = taxaInadimplencia(resumo.IPTULancadoAno, resumo.IPTUArrecadadoAno)

	return resumo, nil
}

func (s *Service) ISS(ctx context.Context, ano int) (*domain.ISSResponse, error) {
	resumo := &domain.ISSResponse{Ano: ano}

	var err error
	if resumo.ISSDeclaradoAno, err = s.tributoRepository.ISSDeclarado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "ISS declarado")
	}
	if resumo.ISSPagoAno, err = s.tributoRepository.ISSPago(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "ISS pago")
	}
	if resumo.NotasPorAtividade, err = s.tributoRepository.NotasPorAtividade(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "notas por atividade")
	}
	if resumo.TopContribuintesISS, err = s.tributoRepository.TopContribuintes(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "top contribuintes")
	}

	return resumo, nil
}

func (s *Service) DividaAtiva(ctx context.Context, ano int) (*domain.DividaAtivaResponse, error) {
	resumo := &domain.DividaAtivaResponse{Ano: ano}

	var err error
	if resumo.EstoqueDividaAtivaTotal, err = s.tributoRepository.EstoqueDividaAtiva(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "estoque de dívida ativa")
	}
	if resumo.EstoquePorTributo, err = s.tributoRepository.EstoquePorTributo(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "estoque por tributo")
	}
	if resumo.ValorRecuperadoAno, err = s.tributoRepository.ValorRecuperado(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "valor recuperado")
	}
	if resumo.QuantidadeAcordosParcelamentoAno, err = s.tributoRepository.QuantidadeAcordos(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "acordos de parcelamento")
	}

	return resumo, nil
}

// taxaInadimplencia devolve o percentual não arrecadado sobre o lançado,
// nunca negativo e 0 quando nada foi lançado.
func taxaInadimplencia(lancado, arrecadado float64) float64 {
	if lancado == 0 {
		return 0
	}
	taxa := (lancado - arrecadado) / lancado * 100
	if taxa < 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(taxa)
}
