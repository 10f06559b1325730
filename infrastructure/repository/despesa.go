package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type DespesaRepository interface {
	DotacaoInicial(ctx context.Context, ano int) (float64, error)
	DotacaoAtualizada(ctx context.Context, ano int) (float64, error)
	Empenhado(ctx context.Context, ano int) (float64, error)
	Liquidado(ctx context.Context, ano int) (float64, error)
	Pago(ctx context.Context, ano int) (float64, error)
	SerieMensal(ctx context.Context, ano int) ([]domain.DespesaMensal, error)
	PorOrgao(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
	PorFuncao(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
	PorPrograma(ctx context.Context, ano int) ([]domain.CategoriaValor, error)
}

type despesaRepository struct {
	conn *postgres.Connection
}

func NewDespesaRepository(conn *postgres.Connection) DespesaRepository {
	return &despesaRepository{conn: conn}
}

func (r *despesaRepository) DotacaoInicial(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(dotacao_inicial), 0)").
		From("view_loa_desp").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *despesaRepository) DotacaoAtualizada(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(dotacao_atualizada), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *despesaRepository) Empenhado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(empenhado), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *despesaRepository) Liquidado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(liquidado), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *despesaRepository) Pago(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_pago), 0)").
		From("view_mov_pagamento").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *despesaRepository) SerieMensal(ctx context.Context, ano int) ([]domain.DespesaMensal, error) {
	query, args, err := psql.
		Select(
			"mes",
			"COALESCE(SUM(empenhado), 0) AS empenhado",
			"COALESCE(SUM(liquidado), 0) AS liquidado",
			"COALESCE(SUM(valor_pago), 0) AS pago",
		).
		From("view_desp_executada").
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

	serie := make([]domain.DespesaMensal, 0)
	for rows.Next() {
		var ponto domain.DespesaMensal
		if err := rows.Scan(&ponto.Mes, &ponto.Empenhado, &ponto.Liquidado, &ponto.Pago); err != nil {
			return nil, fmt.Errorf("erro ao escanear série mensal: %w", err)
		}
		serie = append(serie, ponto)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return serie, nil
}

func (r *despesaRepository) PorOrgao(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "orgao d ON d.id = vd.orgao_id")
}

func (r *despesaRepository) PorFuncao(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "funcao d ON d.id = vd.funcao_id")
}

func (r *despesaRepository) PorPrograma(ctx context.Context, ano int) ([]domain.CategoriaValor, error) {
	return r.porDimensao(ctx, ano, "programa d ON d.id = vd.programa_id")
}

func (r *despesaRepository) porDimensao(ctx context.Context, ano int, join string) ([]domain.CategoriaValor, error) {
	return queryCategoriaValor(ctx, r.conn, psql.
		Select("d.descricao AS categoria", "COALESCE(SUM(vd.empenhado), 0) AS valor").
		From("view_desp_executada vd").
		Join(join).
		Where(squirrel.Eq{"vd.ano": ano}).
		GroupBy("d.descricao").
		OrderBy("valor DESC", "categoria ASC"))
}
