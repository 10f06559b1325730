package pessoal

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/modulogestor/gestor-api/pkg/utils"
	"github.com/pkg/errors"
)

// Padrões de descrição dos eventos de folha contados no resumo
const (
	padraoFerias    = "%ferias%"
	padraoLicencas  = "%licenca%"
	padraoRescisoes = "%rescis%"
)

// Reporter monta o resumo de gastos e quadro de pessoal
type Reporter interface {
	RHResumo(ctx context.Context, ano int) (*domain.RHResumoResponse, error)
}

type Service struct {
	rhRepository repository.RHRepository
}

func NewService(rhRepo repository.RHRepository) Reporter {
	return &Service{rhRepository: rhRepo}
}

func (s *Service) RHResumo(ctx context.Context, ano int) (*domain.RHResumoResponse, error) {
	resumo := &domain.RHResumoResponse{Ano: ano}

	var err error
	if resumo.GastoPessoalAno, err = s.rhRepository.GastoPessoalAno(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "gasto de pessoal")
	}
	if resumo.GastoPessoalMensal, err = s.rhRepository.GastoPessoalMensal(ctx, ano); err != nil {
		return nil, errors.Wrap(err, "gasto mensal de pessoal")
	}

	rcl, err := s.rhRepository.ReceitaCorrenteLiquida(ctx, ano)
	if err != nil {
		return nil, errors.Wrap(err, "receita corrente líquida")
	}
	resumo.PercentualDespesaPessoalSobreRCL = percentualSobreRCL(resumo.GastoPessoalAno, rcl)

	if resumo.HeadcountPorTipoVinculo, err = s.rhRepository.HeadcountPorVinculo(ctx); err != nil {
		return nil, errors.Wrap(err, "headcount por vínculo")
	}
	if resumo.HeadcountPorOrgao, err = s.rhRepository.HeadcountPorOrgao(ctx); err != nil {
		return nil, errors.Wrap(err, "headcount por órgão")
	}
	if resumo.QtdeFeriasNoPeriodo, err = s.rhRepository.EventosPorDescricao(ctx, ano, padraoFerias); err != nil {
		return nil, errors.Wrap(err, "eventos de férias")
	}
	if resumo.QtdeLicencas, err = s.rhRepository.EventosPorDescricao(ctx, ano, padraoLicencas); err != nil {
		return nil, errors.Wrap(err, "eventos de licença")
	}
	if resumo.QtdeRescisoes, err = s.rhRepository.EventosPorDescricao(ctx, ano, padraoRescisoes); err != nil {
		return nil, errors.Wrap(err, "eventos de rescisão")
	}

	return resumo, nil
}

// percentualSobreRCL devolve nil quando não há RCL apurada no exercício,
// distinguindo "sem base de cálculo" de 0%.
func percentualSobreRCL(gasto, rcl float64) *float64 {
	if rcl == 0 {
		return nil
	}
	percentual := utils.RoundWithTwoDecimalPlace(gasto / rcl * 100)
	return &percentual
}
