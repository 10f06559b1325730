package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

// ConvenioExecucaoRow carrega os valores crus de execução financeira de um
// convênio; o percentual e o rótulo de risco são derivados na camada de serviço.
type ConvenioExecucaoRow struct {
	ConvenioID      int64
	Descricao       string
	ValorGlobal     float64
	TotalPago       float64
	DataFimPrevista *time.Time
}

type ConvenioRepository interface {
	PorOrgaoRepassador(ctx context.Context) ([]domain.ConvenioPorOrgao, error)
	ExecucaoFinanceira(ctx context.Context) ([]ConvenioExecucaoRow, error)
}

type convenioRepository struct {
	conn *postgres.Connection
}

func NewConvenioRepository(conn *postgres.Connection) ConvenioRepository {
	return &convenioRepository{conn: conn}
}

func (r *convenioRepository) PorOrgaoRepassador(ctx context.Context) ([]domain.ConvenioPorOrgao, error) {
	query, args, err := psql.
		Select("orgao_repassador", "COUNT(*) AS quantidade", "COALESCE(SUM(valor_global), 0) AS valor_global").
		From("cont_convenio").
		GroupBy("orgao_repassador").
		OrderBy("valor_global DESC", "orgao_repassador ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resumo := make([]domain.ConvenioPorOrgao, 0)
	for rows.Next() {
		var item domain.ConvenioPorOrgao
		if err := rows.Scan(&item.OrgaoRepassador, &item.Quantidade, &item.ValorGlobal); err != nil {
			return nil, fmt.Errorf("erro ao escanear convênio por órgão: %w", err)
		}
		resumo = append(resumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resumo, nil
}

func (r *convenioRepository) ExecucaoFinanceira(ctx context.Context) ([]ConvenioExecucaoRow, error) {
	query, args, err := psql.
		Select(
			"c.id AS convenio_id",
			"c.descricao",
			"COALESCE(c.valor_global, 0) AS valor_global",
			"COALESCE(SUM(mov.valor_pago), 0) AS total_pago",
			"c.data_fim_prevista",
		).
		From("cont_convenio c").
		LeftJoin("ct_conv_movimento mov ON mov.convenio_id = c.id").
		GroupBy("c.id", "c.descricao", "c.valor_global", "c.data_fim_prevista").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	convenios := make([]ConvenioExecucaoRow, 0)
	for rows.Next() {
		var c ConvenioExecucaoRow
		var dataFim sql.NullTime
		if err := rows.Scan(&c.ConvenioID, &c.Descricao, &c.ValorGlobal, &c.TotalPago, &dataFim); err != nil {
			return nil, fmt.Errorf("erro ao escanear execução de convênio: %w", err)
		}
		if dataFim.Valid {
			d := dataFim.Time
			c.DataFimPrevista = &d
		}
		convenios = append(convenios, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return convenios, nil
}
