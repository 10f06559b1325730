package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

// ObraAtrasadaRow é a linha crua de uma obra com término previsto vencido
type ObraAtrasadaRow struct {
	ID              int64
	Descricao       string
	DataFimPrevista time.Time
	Situacao        string
}

type ObraRepository interface {
	PorSituacao(ctx context.Context) ([]domain.ObrasPorSituacao, error)
	ExecucaoFisicaMedia(ctx context.Context) (float64, error)
	Atrasadas(ctx context.Context, hoje time.Time) ([]ObraAtrasadaRow, error)
}

type obraRepository struct {
	conn *postgres.Connection
}

func NewObraRepository(conn *postgres.Connection) ObraRepository {
	return &obraRepository{conn: conn}
}

func (r *obraRepository) PorSituacao(ctx context.Context) ([]domain.ObrasPorSituacao, error) {
	query, args, err := psql.
		Select("situacao", "COUNT(*) AS quantidade", "COALESCE(SUM(valor_total), 0) AS valor_total").
		From("obr_obra").
		GroupBy("situacao").
		OrderBy("quantidade DESC", "situacao ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resumo := make([]domain.ObrasPorSituacao, 0)
	for rows.Next() {
		var item domain.ObrasPorSituacao
		if err := rows.Scan(&item.Situacao, &item.Quantidade, &item.ValorTotal); err != nil {
			return nil, fmt.Errorf("erro ao escanear situação: %w", err)
		}
		resumo = append(resumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resumo, nil
}

func (r *obraRepository) ExecucaoFisicaMedia(ctx context.Context) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("AVG(percentual_execucao)").
		From("obr_medicao"))
}

func (r *obraRepository) Atrasadas(ctx context.Context, hoje time.Time) ([]ObraAtrasadaRow, error) {
	query, args, err := psql.
		Select("id", "descricao", "data_fim_prevista", "situacao").
		From("obr_obra").
		Where(squirrel.Lt{"data_fim_prevista": hoje.Format(time.DateOnly)}).
		Where(squirrel.NotEq{"situacao": []string{"concluida", "concluída"}}).
		OrderBy("data_fim_prevista ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	obras := make([]ObraAtrasadaRow, 0)
	for rows.Next() {
		var o ObraAtrasadaRow
		if err := rows.Scan(&o.ID, &o.Descricao, &o.DataFimPrevista, &o.Situacao); err != nil {
			return nil, fmt.Errorf("erro ao escanear obra: %w", err)
		}
		obras = append(obras, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return obras, nil
}
