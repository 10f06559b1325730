package repository

import (
	"context"

	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type PatrimonioRepository interface {
	ValorTotalBens(ctx context.Context) (float64, error)
	DepreciacaoAcumulada(ctx context.Context) (float64, error)
	BensPorOrgao(ctx context.Context) ([]domain.CategoriaValor, error)
	BensPorNatureza(ctx context.Context) ([]domain.CategoriaValor, error)
}

type patrimonioRepository struct {
	conn *postgres.Connection
}

func NewPatrimonioRepository(conn *postgres.Connection) PatrimonioRepository {
	return &patrimonioRepository{conn: conn}
}

func (r *patrimonioRepository) ValorTotalBens(ctx context.Context) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_aquisicao), 0)").
		From("patrimonio").
		Where("baixado IS NOT TRUE"))
}

func (r *patrimonioRepository) DepreciacaoAcumulada(ctx context.Context) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_depreciado), 0)").
		From("ptr_depreciacao"))
}

func (r *patrimonioRepository) BensPorOrgao(ctx context.Context) ([]domain.CategoriaValor, error) {
	return queryCategoriaValor(ctx, r.conn, psql.
		Select("COALESCE(o.nome, 'Não informado') AS categoria", "COALESCE(SUM(p.valor_aquisicao), 0) AS valor").
		From("patrimonio p").
		LeftJoin("orgao o ON o.id = p.orgao_id").
		Where("p.baixado IS NOT TRUE").
		GroupBy("categoria").
		OrderBy("valor DESC", "categoria ASC"))
}

func (r *patrimonioRepository) BensPorNatureza(ctx context.Context) ([]domain.CategoriaValor, error) {
	return queryCategoriaValor(ctx, r.conn, psql.
		Select("COALESCE(n.descricao, 'Não informado') AS categoria", "COALESCE(SUM(p.valor_aquisicao), 0) AS valor").
		From("patrimonio p").
		LeftJoin("ptr_natureza n ON n.id = p.natureza_id").
		Where("p.baixado IS NOT TRUE").
		GroupBy("categoria").
		OrderBy("valor DESC", "categoria ASC"))
}
