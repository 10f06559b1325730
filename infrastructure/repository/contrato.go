package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
)

// ContratoVencimentoRow é a linha crua de um contrato dentro da janela de vencimento
type ContratoVencimentoRow struct {
	ID         int64
	Numero     string
	Fornecedor string
	Valor      float64
	DataFim    time.Time
	Status     string
}

type ContratoRepository interface {
	ProximosVencimentos(ctx context.Context, inicio, fim time.Time) ([]ContratoVencimentoRow, error)
}

type contratoRepository struct {
	conn *postgres.Connection
}

func NewContratoRepository(conn *postgres.Connection) ContratoRepository {
	return &contratoRepository{conn: conn}
}

func (r *contratoRepository) ProximosVencimentos(ctx context.Context, inicio, fim time.Time) ([]ContratoVencimentoRow, error) {
	query, args, err := psql.
		Select(
			"lc.id",
			"lc.numero",
			"COALESCE(f.nome, '') AS fornecedor",
			"COALESCE(lc.valor_global, 0) AS valor",
			"lc.data_fim",
			"COALESCE(ls.descricao, 'vigente') AS status",
		).
		From("licit_contrato lc").
		LeftJoin("fornecedor f ON f.id = lc.fornecedor_id").
		LeftJoin("licit_status ls ON ls.id = lc.status_id").
		Where(squirrel.GtOrEq{"lc.data_fim": inicio.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"lc.data_fim": fim.Format(time.DateOnly)}).
		OrderBy("lc.data_fim ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	contratos := make([]ContratoVencimentoRow, 0)
	for rows.Next() {
		var c ContratoVencimentoRow
		if err := rows.Scan(&c.ID, &c.Numero, &c.Fornecedor, &c.Valor, &c.DataFim, &c.Status); err != nil {
			return nil, fmt.Errorf("erro ao escanear contrato: %w", err)
		}
		contratos = append(contratos, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contratos, nil
}
