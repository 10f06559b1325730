package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type LicitacaoRepository interface {
	QuantidadePorStatus(ctx context.Context, ano int) ([]domain.LicitacaoStatusResumo, error)
	QuantidadePorModalidade(ctx context.Context, ano int) ([]domain.LicitacaoModalidadeResumo, error)
	ValorTotalLicitado(ctx context.Context, ano int) (float64, error)
	ValorTotalContratado(ctx context.Context, ano int) (float64, error)
	TempoMedioAberturaHomologacao(ctx context.Context, ano int) (float64, error)
}

type licitacaoRepository struct {
	conn *postgres.Connection
}

func NewLicitacaoRepository(conn *postgres.Connection) LicitacaoRepository {
	return &licitacaoRepository{conn: conn}
}

func (r *licitacaoRepository) QuantidadePorStatus(ctx context.Context, ano int) ([]domain.LicitacaoStatusResumo, error) {
	query, args, err := psql.
		Select("ls.descricao AS status", "COUNT(*) AS quantidade").
		From("licit_processo lp").
		Join("licit_status ls ON ls.id = lp.status_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)).
		GroupBy("ls.descricao").
		OrderBy("quantidade DESC", "status ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resumo := make([]domain.LicitacaoStatusResumo, 0)
	for rows.Next() {
		var item domain.LicitacaoStatusResumo
		if err := rows.Scan(&item.Status, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear status: %w", err)
		}
		resumo = append(resumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resumo, nil
}

func (r *licitacaoRepository) QuantidadePorModalidade(ctx context.Context, ano int) ([]domain.LicitacaoModalidadeResumo, error) {
	query, args, err := psql.
		Select("lm.descricao AS modalidade", "COUNT(*) AS quantidade").
		From("licit_processo lp").
		Join("licit_modalidade lm ON lm.id = lp.modalidade_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)).
		GroupBy("lm.descricao").
		OrderBy("quantidade DESC", "modalidade ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	resumo := make([]domain.LicitacaoModalidadeResumo, 0)
	for rows.Next() {
		var item domain.LicitacaoModalidadeResumo
		if err := rows.Scan(&item.Modalidade, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear modalidade: %w", err)
		}
		resumo = append(resumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return resumo, nil
}

func (r *licitacaoRepository) ValorTotalLicitado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(lp.valor_estimado), 0)").
		From("licit_processo lp").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)))
}

func (r *licitacaoRepository) ValorTotalContratado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_contratado), 0)").
		From("licit_contrato").
		Where(squirrel.Expr("EXTRACT(YEAR FROM data_inicio) = ?", ano)))
}

func (r *licitacaoRepository) TempoMedioAberturaHomologacao(ctx context.Context, ano int) (float64, error) {
	// Subtração de datas no PostgreSQL devolve o intervalo em dias
	return queryFloat(ctx, r.conn, psql.
		Select("AVG(lp.data_homologacao - lp.data_abertura)").
		From("licit_processo lp").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)).
		Where("lp.data_homologacao IS NOT NULL"))
}
