package repository

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/modulogestor/gestor-api/infrastructure/database/postgres"
)

// OverviewRepository agrega os totais anuais da visão geral. As consultas
// repetem propositalmente as dos demais repositórios: cada relatório é
// independente e consulta as views do ERP por conta própria.
type OverviewRepository interface {
	ReceitaPrevistaAno(ctx context.Context, ano int) (float64, error)
	ReceitaRealizadaAno(ctx context.Context, ano int) (float64, error)
	DotacaoAtualizadaAno(ctx context.Context, ano int) (float64, error)
	DespesaEmpenhadaAno(ctx context.Context, ano int) (float64, error)
	DespesaLiquidadaAno(ctx context.Context, ano int) (float64, error)
	DespesaPagaAno(ctx context.Context, ano int) (float64, error)
	CaixaDisponivel(ctx context.Context, ano int) (float64, error)
	EstoqueDividaAtivaTotal(ctx context.Context, ano int) (float64, error)
	RecuperacaoDividaAtivaAno(ctx context.Context, ano int) (float64, error)
	LicitacoesEmAndamento(ctx context.Context, ano int) (int, error)
	LicitacoesHomologadasAno(ctx context.Context, ano int) (int, error)
	ObrasEmExecucao(ctx context.Context) (int, error)
	ObrasParalisadas(ctx context.Context) (int, error)
}

type overviewRepository struct {
	conn *postgres.Connection
}

func NewOverviewRepository(conn *postgres.Connection) OverviewRepository {
	return &overviewRepository{conn: conn}
}

func (r *overviewRepository) ReceitaPrevistaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_previsto), 0)").
		From("receita_loa").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) ReceitaRealizadaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_arrecadado), 0)").
		From("view_mov_rec").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) DotacaoAtualizadaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(dotacao_atualizada), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) DespesaEmpenhadaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(empenhado), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) DespesaLiquidadaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(liquidado), 0)").
		From("view_desp_executada").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) DespesaPagaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_pago), 0)").
		From("view_mov_pagamento").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) CaixaDisponivel(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(saldo_final), 0)").
		From("ts_conta_banc_saldo_ano").
		Where(squirrel.Eq{"ano": ano}))
}

func (r *overviewRepository) EstoqueDividaAtivaTotal(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_atualizado), 0)").
		From("divida_ativa").
		Where(squirrel.Eq{"ano_referencia": ano}))
}

func (r *overviewRepository) RecuperacaoDividaAtivaAno(ctx context.Context, ano int) (float64, error) {
	return queryFloat(ctx, r.conn, psql.
		Select("COALESCE(SUM(valor_pago), 0)").
		From("duam_baixa").
		Where(squirrel.Expr("EXTRACT(YEAR FROM data_baixa) = ?", ano)))
}

func (r *overviewRepository) LicitacoesEmAndamento(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("licit_processo lp").
		Join("licit_status ls ON ls.id = lp.status_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)).
		Where(squirrel.Eq{"ls.descricao": []string{"em andamento", "publicado", "disputa"}}))
}

func (r *overviewRepository) LicitacoesHomologadasAno(ctx context.Context, ano int) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("licit_processo lp").
		Join("licit_status ls ON ls.id = lp.status_id").
		Where(squirrel.Expr("EXTRACT(YEAR FROM lp.data_abertura) = ?", ano)).
		Where(squirrel.Eq{"ls.descricao": "homologado"}))
}

func (r *overviewRepository) ObrasEmExecucao(ctx context.Context) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("obr_obra").
		Where(squirrel.Eq{"situacao": []string{"em execucao", "execução"}}))
}

func (r *overviewRepository) ObrasParalisadas(ctx context.Context) (int, error) {
	return queryInt(ctx, r.conn, psql.
		Select("COUNT(*)").
		From("obr_obra").
		Where(squirrel.Expr("LOWER(situacao) LIKE ?", "%paralisada%")))
}
