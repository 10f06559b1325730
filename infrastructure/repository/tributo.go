package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

const rankingLimit = 10

type TributoRepository interface {
	IPTULancado(ctx context.Context, ano int) (float64, error)
	IPTUArrecadado(ctx context.Context, ano int) (float64, error)
	RankingBairros(ctx context.Context, ano int) ([]domain.BairroArrecadacao, error)
	ISSDeclarado(ctx context.Context, ano int) (float64, error)
	ISSPago(ctx context.Context, ano int) (float64, error)
	NotasPorAtividade(ctx context.Context, ano int) ([]domain.AtividadeResumo, error)
	TopContribuintes(ctx context.Context, ano int) ([]domain.ContribuinteResumo, error)
	EstoqueDividaAtiva(ctx context.Context, ano int) (float64, error)
	EstoquePorTributo(ctx context.Context, ano int) ([]domain.EstoqueDividaAtiva, error)
	ValorRecuperado(ctx context.Context, ano int) (float64, error)
	QuantidadeAcordos(ctx context.Context, ano int) (int, error)
}

type tributoRepository struct {
	conn *postgres.Connection
}

func NewTributoRepository(conn *postgres.Connection) TributoRepository {
	return &tributoRepository{conn: conn}
}

func (r *tributoRepository) IPTULancado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_lancado), 0)").
		From("calculo_iptu_ano").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *tributoRepository) IPTUArrecadado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_pago), 0)").
		From("view_bci_iptu").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *tributoRepository) RankingBairros(ctx context.Context, ano int) ([]domain.BairroArrecadacao, error) {
	query, args, err := psql.
		Select("COALESCE(b.nome, 'Não informado') AS bairro", "COALESCE(SUM(v.valor_pago), 0) AS valor").
		From("view_iptu v").
		LeftJoin("bairro b ON b.id = v.bairro_id").
		Where(squirrel.Eq{"v.ano": ano}).
		GroupBy("b.nome").
		OrderBy("valor DESC", "bairro ASC").
		Limit(rankingLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ranking := make([]domain.BairroArrecadacao, 0)
	for rows.Next() {
		var item domain.BairroArrecadacao
		if err := rows.Scan(&item.Bairro, &item.ValorArrecadado); err != nil {
			return nil, fmt.Errorf("erro ao escanear bairro: %w", err)
		}
		ranking = append(ranking, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ranking, nil
}

func (r *tributoRepository) ISSDeclarado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_declarado), 0)").
		From("iss_mensal").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *tributoRepository) ISSPago(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_pago), 0)").
		From("iss_mensal").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *tributoRepository) NotasPorAtividade(ctx context.Context, ano int) ([]domain.AtividadeResumo, error) {
	query, args, err := psql.
		Select("COALESCE(rp.descricao, 'Não informado') AS atividade", "COALESCE(SUM(ni.valor_total), 0) AS valor").
		From("nota_iss ni").
		LeftJoin("economico e ON e.id = ni.economico_id").
		LeftJoin("economico_atividades ea ON ea.economico_id = e.id").
		LeftJoin("ramopertinente rp ON rp.id = ea.ramo_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ni.data_emissao) = ?", ano)).
		GroupBy("atividade").
		OrderBy("valor DESC", "atividade ASC").
		Limit(rankingLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	atividades := make([]domain.AtividadeResumo, 0)
	for rows.Next() {
		var item domain.AtividadeResumo
		if err := rows.Scan(&item.Atividade, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear atividade: %w", err)
		}
		atividades = append(atividades, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return atividades, nil
}

func (r *tributoRepository) TopContribuintes(ctx context.Context, ano int) ([]domain.ContribuinteResumo, error) {
	query, args, err := psql.
		Select("COALESCE(e.nome_fantasia, 'Contribuinte') AS contribuinte", "COALESCE(SUM(ni.valor_total), 0) AS valor").
		From("nota_iss ni").
		LeftJoin("economico e ON e.id = ni.economico_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ni.data_emissao) = ?", ano)).
		GroupBy("contribuinte").
		OrderBy("valor DESC", "contribuinte ASC").
		Limit(rankingLimit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	contribuintes := make([]domain.ContribuinteResumo, 0)
	for rows.Next() {
		var item domain.ContribuinteResumo
		if err := rows.Scan(&item.Contribuinte, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear contribuinte: %w", err)
		}
		contribuintes = append(contribuintes, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return contribuintes, nil
}

func (r *tributoRepository) EstoqueDividaAtiva(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_atualizado), 0)").
		From("divida_ativa").
		Where(squirrel.Eq{"ano_referencia": ano}))
}

func (r *tributoRepository) EstoquePorTributo(ctx context.Context, ano int) ([]domain.EstoqueDividaAtiva, error) {
	query, args, err := psql.
		Select("COALESCE(da.tributo, 'Tributo') AS tributo", "COALESCE(SUM(da.valor_atualizado), 0) AS valor").
		From("divida_ativa da").
		Where(squirrel.Eq{"da.ano_referencia": ano}).
		GroupBy("tributo").
		OrderBy("valor DESC", "tributo ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	estoque := make([]domain.EstoqueDividaAtiva, 0)
	for rows.Next() {
		var item domain.EstoqueDividaAtiva
		if err := rows.Scan(&item.Tributo, &item.Valor); err != nil {
			return nil, fmt.Errorf("erro ao escanear tributo: %w", err)
		}
		estoque = append(estoque, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return estoque, nil
}

func (r *tributoRepository) ValorRecuperado(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(db.valor_pago), 0)").
		From("duam_baixa db").
		Where(squirrel.Expr("EXTRACT(YEAR FROM db.data_baixa) = ?", ano)))
}

func (r *tributoRepository) QuantidadeAcordos(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("acordo_parcelamento ap").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ap.data_acordo) = ?", ano)))
}
