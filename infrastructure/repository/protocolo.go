package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
	"github.com/modulogestor/gestor-api/internal/domain"
)

type ProtocoloRepository interface {
	TotalProtocolos(ctx context.Context, ano int) (int, error)
	PorSituacao(ctx context.Context, ano int) ([]domain.CategoriaQuantidade, error)
	TempoMedioTramitacao(ctx context.Context, ano int) (float64, error)
	TopAssuntos(ctx context.Context, ano int) ([]domain.CategoriaQuantidade, error)
	PedidosEsicRecebidos(ctx context.Context, ano int) (int, error)
	PedidosEsicRespondidosNoPrazo(ctx context.Context, ano int) (int, error)
	PedidosEsicRespondidosForaDoPrazo(ctx context.Context, ano int) (int, error)
	PedidosEsicEmAndamento(ctx context.Context, ano int) (int, error)
}

type protocoloRepository struct {
	conn *postgres.Connection
}

func NewProtocoloRepository(conn *postgres.Connection) ProtocoloRepository {
	return &protocoloRepository{conn: conn}
}

func (r *protocoloRepository) TotalProtocolos(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("prot_protocolo pp").
		Where(squirrel.Expr("EXTRACT(YEAR FROM pp.data_criacao) = ?", ano)))
}

func (r *protocoloRepository) PorSituacao(ctx context.Context, ano int) ([]domain.CategoriaQuantidade, error) {
	return queryCategoriaQuantidade(ctx, r.conn, psql.
		Select("COALESCE(ps.descricao, 'Não informado') AS categoria", "COUNT(*) AS quantidade").
		From("prot_protocolo pp").
		LeftJoin("prot_status ps ON ps.id = pp.status_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM pp.data_criacao) = ?", ano)).
		GroupBy("categoria").
		OrderBy("quantidade DESC", "categoria ASC"))
}

// TempoMedioTramitacao mede os dias entre a criação e a conclusão; protocolos
// ainda abertos contam até a data corrente.
func (r *protocoloRepository) TempoMedioTramitacao(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("AVG(COALESCE(pp.data_conclusao, CURRENT_DATE) - pp.data_criacao)").
		From("prot_protocolo pp").
		Where(squirrel.Expr("EXTRACT(YEAR FROM pp.data_criacao) = ?", ano)))
}

func (r *protocoloRepository) TopAssuntos(ctx context.Context, ano int) ([]domain.CategoriaQuantidade, error) {
	return queryCategoriaQuantidade(ctx, r.conn, psql.
		Select("COALESCE(pa.descricao, 'Não informado') AS categoria", "COUNT(*) AS quantidade").
		From("prot_protocolo pp").
		LeftJoin("prot_assunto pa ON pa.id = pp.assunto_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM pp.data_criacao) = ?", ano)).
		GroupBy("categoria").
		OrderBy("quantidade DESC", "categoria ASC").
		Limit(rankingLimit))
}

func (r *protocoloRepository) PedidosEsicRecebidos(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("esic_registrar_pedidos ep").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ep.data_pedido) = ?", ano)))
}

func (r *protocoloRepository) PedidosEsicRespondidosNoPrazo(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("esic_registrar_pedidos ep").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ep.data_pedido) = ?", ano)).
		Where("ep.data_resposta IS NOT NULL").
		Where("ep.data_resposta - ep.data_pedido <= ep.prazo_dias"))
}

func (r *protocoloRepository) PedidosEsicRespondidosForaDoPrazo(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("esic_registrar_pedidos ep").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ep.data_pedido) = ?", ano)).
		Where("ep.data_resposta IS NOT NULL").
		Where("ep.data_resposta - ep.data_pedido > ep.prazo_dias"))
}

func (r *protocoloRepository) PedidosEsicEmAndamento(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("esic_registrar_pedidos ep").
		Where(squirrel.Expr("EXTRACT(YEAR FROM ep.data_pedido) = ?", ano)).
		Where("ep.data_resposta IS NULL"))
}
