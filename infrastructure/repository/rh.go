package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type RHRepository interface {
	GastoPessoalAno(ctx context.Context, ano int) (float64, error)
	GastoPessoalMensal(ctx context.Context, ano int) ([]domain.SerieMensal, error)
	ReceitaCorrenteLiquida(ctx context.Context, ano int) (float64, error)
	HeadcountPorVinculo(ctx context.Context) ([]domain.HeadcountResumo, error)
	HeadcountPorOrgao(ctx context.Context) ([]domain.HeadcountResumo, error)
	EventosPorDescricao(ctx context.Context, ano int, padrao string) (int, error)
}

type rhRepository struct {
	conn *postgres.Connection
}

func NewRHRepository(conn *postgres.Connection) RHRepository {
	return &rhRepository{conn: conn}
}

func (r *rhRepository) GastoPessoalAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_liquido), 0)").
		From("rh_calculo").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *rhRepository) GastoPessoalMensal(ctx context.Context, ano int) ([]domain.SerieMensal, error) {
	query, args, err := psql.
		Select("mes", "COALESCE(SUM(valor_liquido), 0) AS valor").
		From("rh_calculo").
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

	serie := make([]domain.SerieMensal, 0)
	for rows.Next() {
		var item domain.SerieMensal
		if err := rows.Scan(&item.Mes, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear mês: %w", err)
		}
		serie = append(serie, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return serie, nil
}

func (r *rhRepository) ReceitaCorrenteLiquida(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_rcl), 0)").
		From("dclrf").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *rhRepository) HeadcountPorVinculo(ctx context.Context) ([]domain.HeadcountResumo, error) {
	return r.headcount(ctx, psql.
		Select("COALESCE(v.descricao, 'Não informado') AS categoria", "COUNT(*) AS quantidade").
		From("rh_funcionario f").
		LeftJoin("rh_vinculo v ON v.id = f.vinculo_id").
		Where(squirrel.Eq{"f.ativo": true}).
		GroupBy("categoria").
		OrderBy("quantidade DESC", "categoria ASC"))
}

func (r *rhRepository) HeadcountPorOrgao(ctx context.Context) ([]domain.HeadcountResumo, error) {
	return r.headcount(ctx, psql.
		Select("COALESCE(o.nome, 'Não informado') AS categoria", "COUNT(*) AS quantidade").
		From("rh_funcionario f").
		LeftJoin("orgao o ON o.id = f.orgao_id").
		Where(squirrel.Eq{"f.ativo": true}).
		GroupBy("categoria").
		OrderBy("quantidade DESC", "categoria ASC"))
}

func (r *rhRepository) headcount(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.HeadcountResumo, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resumo := make([]domain.HeadcountResumo, 0)
	for rows.Next() {
		var item domain.HeadcountResumo
		if err := rows.Scan(&item.Categoria, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear headcount: %w", err)
		}
		resumo = append(resumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resumo, nil
}

// EventosPorDescricao conta funcionários distintos com eventos de folha cuja
// descrição do item casa com o padrão informado (ex.: %ferias%)
func (r *rhRepository) EventosPorDescricao(ctx context.Context, ano int, padrao string) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(DISTINCT ci.funcionario_id)").
		From("rh_calculo_item ci").
		Join("rh_calculo c ON c.id = ci.calculo_id").
		Where(squirrel.Eq{"c.ano": ano}).
		Where(squirrel.Expr("LOWER(ci.descricao) LIKE ?", padrao)))
}
