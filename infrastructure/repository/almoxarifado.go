package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type AlmoxarifadoRepository interface {
	ConsumoPorOrgao(ctx context.Context, ano, mes int) ([]domain.ConsumoResumo, error)
	ConsumoPorProduto(ctx context.Context, ano, mes int) ([]domain.ConsumoResumo, error)
	EstoqueAtualPorProduto(ctx context.Context) ([]domain.EstoqueProduto, error)
}

type almoxarifadoRepository struct {
	conn *postgres.Connection
}

func NewAlmoxarifadoRepository(conn *postgres.Connection) AlmoxarifadoRepository {
	return &almoxarifadoRepository{conn: conn}
}

func (r *almoxarifadoRepository) ConsumoPorOrgao(ctx context.Context, ano, mes int) ([]domain.ConsumoResumo, error) {
	return r.consumo(ctx, psql.
		Select("COALESCE(o.nome, 'Não informado') AS item", "COALESCE(SUM(si.valor_total), 0) AS valor").
		From("saida_item si").
		Join("saida_estoque se ON se.id = si.saida_id").
		LeftJoin("orgao o ON o.id = se.orgao_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM se.data_saida) = ?", ano)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM se.data_saida) = ?", mes)).
		GroupBy("item").
		OrderBy("valor DESC", "item ASC"))
}

func (r *almoxarifadoRepository) ConsumoPorProduto(ctx context.Context, ano, mes int) ([]domain.ConsumoResumo, error) {
	return r.consumo(ctx, psql.
		Select("COALESCE(p.descricao, 'Não informado') AS item", "COALESCE(SUM(si.valor_total), 0) AS valor").
		From("saida_item si").
		Join("saida_estoque se ON se.id = si.saida_id").
		LeftJoin("produto p ON p.id = si.produto_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM se.data_saida) = ?", ano)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM se.data_saida) = ?", mes)).
		GroupBy("item").
		OrderBy("valor DESC", "item ASC").
		Limit(rankingLimit))
}

func (r *almoxarifadoRepository) consumo(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.ConsumoResumo, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	consumo := make([]domain.ConsumoResumo, 0)
	for rows.Next() {
		var item domain.ConsumoResumo
		if err := rows.Scan(&item.Item, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear consumo: %w", err)
		}
		consumo = append(consumo, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return consumo, nil
}

// EstoqueAtualPorProduto calcula o saldo como entradas acumuladas menos saídas acumuladas
func (r *almoxarifadoRepository) EstoqueAtualPorProduto(ctx context.Context) ([]domain.EstoqueProduto, error) {
	query, args, err := psql.
		Select(
			"COALESCE(p.descricao, 'Não informado') AS produto",
			`COALESCE((SELECT SUM(ei.quantidade) FROM entrada_item ei WHERE ei.produto_id = p.id), 0)
			 - COALESCE((SELECT SUM(si.quantidade) FROM saida_item si WHERE si.produto_id = p.id), 0) AS saldo`,
		).
		From("produto p").
		OrderBy("saldo DESC", "produto ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	estoque := make([]domain.EstoqueProduto, 0)
	for rows.Next() {
		var item domain.EstoqueProduto
		if err := rows.Scan(&item.Produto, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear estoque: %w", err)
		}
		estoque = append(estoque, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return estoque, nil
}
