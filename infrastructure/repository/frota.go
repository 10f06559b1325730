package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

// LicenciamentoRow é a linha crua de licenciamento; o status em relação à
// janela de vencimento é derivado na camada de serviço.
type LicenciamentoRow struct {
	Veiculo        string
	DataVencimento *time.Time
}

type FrotaRepository interface {
	ConsumoCombustivelPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error)
	CustoPorKmPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error)
	ViagensPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error)
	Licenciamentos(ctx context.Context, inicio, fim time.Time) ([]LicenciamentoRow, error)
	ViagensPorRota(ctx context.Context, ano int) ([]domain.RotaValor, error)
	AlunosAtendidosPorRota(ctx context.Context, ano int) ([]domain.RotaValor, error)
}

type frotaRepository struct {
	conn *postgres.Connection
}

func NewFrotaRepository(conn *postgres.Connection) FrotaRepository {
	return &frotaRepository{conn: conn}
}

func (r *frotaRepository) ConsumoCombustivelPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error) {
	return r.veiculoValor(ctx, psql.
		Select("COALESCE(v.placa, 'Não informado') AS veiculo", "COALESCE(SUM(cci.valor_total), 0) AS valor").
		From("ctrl_combustivel_item cci").
		Join("ctrl_combustivel cc ON cc.id = cci.controle_id").
		LeftJoin("veiculos v ON v.id = cc.veiculo_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM cc.data_abastecimento) = ?", ano)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM cc.data_abastecimento) = ?", mes)).
		GroupBy("veiculo").
		OrderBy("valor DESC", "veiculo ASC"))
}

// CustoPorKmPorVeiculo divide o gasto de combustível pelos quilômetros rodados
// no período; NULLIF evita divisão por zero quando não há quilometragem.
func (r *frotaRepository) CustoPorKmPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error) {
	return r.veiculoValor(ctx, psql.
		Select(
			"COALESCE(v.placa, 'Não informado') AS veiculo",
			"COALESCE(SUM(cci.valor_total) / NULLIF(MAX(cc.km_final) - MIN(cc.km_inicial), 0), 0) AS valor",
		).
		From("ctrl_combustivel_item cci").
		Join("ctrl_combustivel cc ON cc.id = cci.controle_id").
		LeftJoin("veiculos v ON v.id = cc.veiculo_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM cc.data_abastecimento) = ?", ano)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM cc.data_abastecimento) = ?", mes)).
		GroupBy("veiculo").
		OrderBy("valor DESC", "veiculo ASC"))
}

func (r *frotaRepository) ViagensPorVeiculo(ctx context.Context, ano, mes int) ([]domain.VeiculoValor, error) {
	return r.veiculoValor(ctx, psql.
		Select("COALESCE(v.placa, 'Não informado') AS veiculo", "COUNT(*) AS valor").
		From("ctrl_viagem cv").
		LeftJoin("veiculos v ON v.id = cv.veiculo_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM cv.data_saida) = ?", ano)).
		Where(squirrel.Expr("EXTRACT(MONTH FROM cv.data_saida) = ?", mes)).
		GroupBy("veiculo").
		OrderBy("valor DESC", "veiculo ASC"))
}

func (r *frotaRepository) veiculoValor(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.VeiculoValor, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	veiculos := make([]domain.VeiculoValor, 0)
	for rows.Next() {
		var item domain.VeiculoValor
		if err := rows.Scan(&item.Veiculo, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear veículo: %w", err)
		}
		veiculos = append(veiculos, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return veiculos, nil
}

func (r *frotaRepository) Licenciamentos(ctx context.Context, inicio, fim time.Time) ([]LicenciamentoRow, error) {
	query, args, err := psql.
		Select("COALESCE(v.placa, 'Não informado') AS veiculo", "cl.data_vencimento").
		From("ctrl_licenciamento cl").
		LeftJoin("veiculos v ON v.id = cl.veiculo_id").
		Where(squirrel.GtOrEq{"cl.data_vencimento": inicio.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"cl.data_vencimento": fim.Format(time.DateOnly)}).
		OrderBy("cl.data_vencimento ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	licenciamentos := make([]LicenciamentoRow, 0)
	for rows.Next() {
		var l LicenciamentoRow
		var vencimento sql.NullTime
		if err := rows.Scan(&l.Veiculo, &vencimento); err != nil {
			return nil, fmt.Errorf("erro ao escanear licenciamento: %w", err)
		}
		if vencimento.Valid {
			d := vencimento.Time
			l.DataVencimento = &d
		}
		licenciamentos = append(licenciamentos, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return licenciamentos, nil
}

func (r *frotaRepository) ViagensPorRota(ctx context.Context, ano int) ([]domain.RotaValor, error) {
	return r.rotaValor(ctx, psql.
		Select("COALESCE(rt.descricao, 'Não informado') AS rota", "COUNT(*) AS valor").
		From("transporte_escolar te").
		LeftJoin("rota rt ON rt.id = te.rota_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM te.data_viagem) = ?", ano)).
		GroupBy("rota").
		OrderBy("valor DESC", "rota ASC"))
}

func (r *frotaRepository) AlunosAtendidosPorRota(ctx context.Context, ano int) ([]domain.RotaValor, error) {
	return r.rotaValor(ctx, psql.
		Select("COALESCE(rt.descricao, 'Não informado') AS rota", "COALESCE(SUM(te.qtde_alunos), 0) AS valor").
		From("transporte_escolar te").
		LeftJoin("rota rt ON rt.id = te.rota_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM te.data_viagem) = ?", ano)).
		GroupBy("rota").
		OrderBy("valor DESC", "rota ASC"))
}

func (r *frotaRepository) rotaValor(ctx context.Context, builder squirrel.SelectBuilder) ([]domain.RotaValor, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	rotas := make([]domain.RotaValor, 0)
	for rows.Next() {
		var item domain.RotaValor
		if err := rows.Scan(&item.Rota, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear rota: %w", err)
		}
		rotas = append(rotas, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return rotas, nil
}
