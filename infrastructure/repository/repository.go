package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

// psql é o builder padrão com placeholders $n do PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// queryFloat executa uma query de agregação escalar e devolve 0 quando não há linhas
func queryFloat(ctx context.Context, conn postgres.Queryer, builder squirrel.SelectBuilder) (float64, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value sql.NullFloat64
	if err := conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return value.Float64, nil
}

func queryInt(ctx context.Context, conn postgres.Queryer, builder squirrel.SelectBuilder) (int, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var value sql.NullInt64
	if err := conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return int(value.Int64), nil
}

// queryCategoriaValor escaneia pares (categoria, valor) de uma query de agrupamento
func queryCategoriaValor(ctx context.Context, conn postgres.Queryer, builder squirrel.SelectBuilder) ([]domain.CategoriaValor, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CategoriaValor, 0)
	for rows.Next() {
		var item domain.CategoriaValor
		if err := rows.Scan(&item.Categoria, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}

func queryCategoriaQuantidade(ctx context.Context, conn postgres.Queryer, builder squirrel.SelectBuilder) ([]domain.CategoriaQuantidade, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CategoriaQuantidade, 0)
	for rows.Next() {
		var item domain.CategoriaQuantidade
		if err := rows.Scan(&item.Categoria, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao escanear categoria: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return items, nil
}
