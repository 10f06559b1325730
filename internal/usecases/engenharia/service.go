package engenharia

import (
	"context"
	"sort"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/repository"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/modulogestor/gestor-api/pkg/utils"
	"github.com/pkg/errors"
)

const (
	RiscoPrazoExpirado = "prazo expirada"
	RiscoBaixaExecucao = "baixa execucao"
	RiscoRegular       = "regular"
)

// Reporter monta os resumos de obras e convênios
type Reporter interface {
	ObrasResumo(ctx context.Context) (*domain.ObrasResumoResponse, error)
	ConveniosResumo(ctx context.Context) (*domain.ConveniosResumoResponse, error)
}

type Service struct {
	obraRepository     repository.ObraRepository
	convenioRepository repository.ConvenioRepository
	execucaoMinimaPct  float64
	agora              func() time.Time
}

func NewService(obraRepo repository.ObraRepository, convenioRepo repository.ConvenioRepository, execucaoMinimaPct float64) Reporter {
	return &Service{
		obraRepository:     obraRepo,
		convenioRepository: convenioRepo,
		execucaoMinimaPct:  execucaoMinimaPct,
		agora:              time.Now,
	}
}

func (s *Service) ObrasResumo(ctx context.Context) (*domain.ObrasResumoResponse, error) {
	resumo := &domain.ObrasResumoResponse{}

	var err error
	if resumo.QtdeObrasPorSituacao, err = s.obraRepository.PorSituacao(ctx); err != nil {
		return nil, errors.Wrap(err, "obras por situação")
	}

	media, err := s.obraRepository.ExecucaoFisicaMedia(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "execução física média")
	}
	resumo.ExecucaoFisicaMedia = utils.RoundWithTwoDecimalPlace(media)

	hoje := s.agora().Truncate(24 * time.Hour)
	atrasadas, err := s.obraRepository.Atrasadas(ctx, hoje)
	if err != nil {
		return nil, errors.Wrap(err, "obras atrasadas")
	}

	resumo.ObrasAtrasadas = make([]domain.ObraAtrasada, 0, len(atrasadas))
	for _, row := range atrasadas {
		resumo.ObrasAtrasadas = append(resumo.ObrasAtrasadas, domain.ObraAtrasada{
			ID:              row.ID,
			Descricao:       row.Descricao,
			DataFimPrevista: row.DataFimPrevista.Format(time.DateOnly),
			Situacao:        row.Situacao,
		})
	}

	return resumo, nil
}

func (s *Service) ConveniosResumo(ctx context.Context) (*domain.ConveniosResumoResponse, error) {
	resumo := &domain.ConveniosResumoResponse{}

	var err error
	if resumo.QtdeConveniosPorOrgaoRepassador, err = s.convenioRepository.PorOrgaoRepassador(ctx); err != nil {
		return nil, errors.Wrap(err, "convênios por órgão repassador")
	}

	rows, err := s.convenioRepository.ExecucaoFinanceira(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "execução financeira dos convênios")
	}

	hoje := s.agora().Truncate(24 * time.Hour)

	execucoes := make([]domain.ExecucaoFinanceiraConvenio, 0, len(rows))
	emRisco := make([]domain.ExecucaoFinanceiraConvenio, 0)
	for _, row := range rows {
		execucao := domain.ExecucaoFinanceiraConvenio{
			ConvenioID:                   row.ConvenioID,
			Descricao:                    row.Descricao,
			PercentualExecucaoFinanceira: percentualExecucao(row.TotalPago, row.ValorGlobal),
		}
		execucao.Risco = s.classificaRisco(execucao.PercentualExecucaoFinanceira, row.DataFimPrevista, hoje)

		execucoes = append(execucoes, execucao)
		if execucao.Risco != RiscoRegular {
			emRisco = append(emRisco, execucao)
		}
	}

	// Convênios menos executados primeiro; empate desfeito pelo id
	sort.SliceStable(execucoes, func(i, j int) bool {
		if execucoes[i].PercentualExecucaoFinanceira != execucoes[j].PercentualExecucaoFinanceira {
			return execucoes[i].PercentualExecucaoFinanceira < execucoes[j].PercentualExecucaoFinanceira
		}
		return execucoes[i].ConvenioID < execucoes[j].ConvenioID
	})
	sort.SliceStable(emRisco, func(i, j int) bool {
		if emRisco[i].PercentualExecucaoFinanceira != emRisco[j].PercentualExecucaoFinanceira {
			return emRisco[i].PercentualExecucaoFinanceira < emRisco[j].PercentualExecucaoFinanceira
		}
		return emRisco[i].ConvenioID < emRisco[j].ConvenioID
	})

	resumo.PercentualExecucaoFinanceiraPorConvenio = execucoes
	resumo.ConveniosEmRisco = emRisco

	return resumo, nil
}

// percentualExecucao devolve o pago sobre o valor global em pontos percentuais;
// valor global zerado resulta em 0.
func percentualExecucao(totalPago, valorGlobal float64) float64 {
	if valorGlobal == 0 {
		return 0
	}
	return utils.RoundWithTwoDecimalPlace(totalPago / valorGlobal * 100)
}

// classificaRisco segue a régua: prazo vencido prevalece sobre baixa execução;
// vencimento exatamente hoje ainda não conta como expirado.
func (s *Service) classificaRisco(percentual float64, dataFimPrevista *time.Time, hoje time.Time) string {
	if dataFimPrevista != nil && dataFimPrevista.Before(hoje) {
		return RiscoPrazoExpirado
	}
	if percentual < s.execucaoMinimaPct {
		return RiscoBaixaExecucao
	}
	return RiscoRegular
}
