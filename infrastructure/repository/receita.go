package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type ReceitaRepository interface {
	Prevista(ctx context.Context, ano int) (float64, error)
	Realizada(ctx context.Context, ano int) (float64, error)
	SerieMensal(ctx context.Context, ano int) ([]domain.ReceitaMensal, error)
	PorOrigem(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
	PorNatureza(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
	PorFonte(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
}

type receitaRepository struct {
	conn *postgres.Connection
}

func NewReceitaRepository(conn *postgres.Connection) ReceitaRepository {
	return &receitaRepository{conn: conn}
}

func (r *receitaRepository) Prevista(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_previsto), 0)").
		From("receita_loa").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *receitaRepository) Realizada(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_arrecadado), 0)").
		From("view_mov_rec").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *receitaRepository) SerieMensal(ctx context.Context, ano int) ([]domain.ReceitaMensal, error) {
	query, args, err := psql.
		Select(
			"mes",
			"COALESCE(SUM(valor_arrecadado), 0) AS receita_realizada_mes",
			"COALESCE(SUM(valor_arrecadado_ano_anterior), 0) AS receita_mes_ano_anterior",
		).
		From("view_mov_rec").
		Where(squirrel.Eq{"ano": ano}).
		GroupBy("mes").
		OrderBy("mes ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	serie := make([]domain.ReceitaMensal, 0)
	for rows.Next() {
		var ponto domain.ReceitaMensal
		if err := rows.Scan(&ponto.Mes, &ponto.ReceitaRealizadaMes, &ponto.ReceitaMesAnoAnterior); err != nil {
			return nil, fmt.Errorf("erro ao escanear série mensal: %w", err)
		}
		serie = append(serie, ponto)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return serie, nil
}

func (r *receitaRepository) PorOrigem(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "origem_receita d ON d.id = r.origem_id")
}

func (r *receitaRepository) PorNatureza(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "natureza d ON d.id = r.natureza_id")
}

func (r *receitaRepository) PorFonte(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "fonte d ON d.id = r.fonte_id")
}

func (r *receitaRepository) porDimensao(ctx context.Context, ano int, join string) ([]domain.CategoriaValor, error) {
	return queryCategoriaValor(ctx, r.conn, psql.
		Select("d.descricao AS categoria", "COALESCE(SUM(r.valor_arrecadado), 0) AS valor").
		From("view_mov_rec r").
		Join(join).
		Where(squirrel.Eq{"r.ano": ano}).
		GroupBy("d.descricao").
		OrderBy("valor DESC", "categoria ASC"))
}
