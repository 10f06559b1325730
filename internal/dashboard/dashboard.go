package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
)

// Abas disponíveis no dashboard
const (
	AbaGeral       = "geral"
	AbaFinancas    = "financas"
	AbaCompras     = "compras"
	AbaEngenharia  = "engenharia"
	AbaTributos    = "tributos"
	AbaPessoal     = "pessoal"
	AbaSuprimentos = "suprimentos"
	AbaFrotas      = "frotas"
	AbaAtendimento = "atendimento"
	AbaTodas       = "todas"
)

// Options parametriza a renderização do dashboard
type Options struct {
	Ano  int
	Mes  int
	Dias int
	Aba  string
}

// Dashboard busca os relatórios na API e os renderiza no terminal
type Dashboard struct {
	client *Client
	opts   Options
}

func New(client *Client, opts Options) *Dashboard {
	return &Dashboard{client: client, opts: opts}
}

// Render desenha a aba selecionada; a falha de um widget não derruba os
// demais, cada um imprime o próprio painel de erro.
func (d *Dashboard) Render(ctx context.Context) error {
	d.cabecalho()

	switch d.opts.Aba {
	case AbaGeral:
		d.renderVisaoGeral(ctx)
	case AbaFinancas:
		d.renderFinancas(ctx)
	case AbaCompras:
		d.renderCompras(ctx)
	case AbaEngenharia:
		d.renderEngenharia(ctx)
	case AbaTributos:
		d.renderTributos(ctx)
	case AbaPessoal:
		d.renderPessoal(ctx)
	case AbaSuprimentos:
		d.renderSuprimentos(ctx)
	case AbaFrotas:
		d.renderFrotas(ctx)
	case AbaAtendimento:
		d.renderAtendimento(ctx)
	case AbaTodas:
		d.renderVisaoGeral(ctx)
		d.renderFinancas(ctx)
		d.renderCompras(ctx)
		d.renderEngenharia(ctx)
		d.renderTributos(ctx)
		d.renderPessoal(ctx)
		d.renderSuprimentos(ctx)
		d.renderFrotas(ctx)
		d.renderAtendimento(ctx)
	default:
		return fmt.Errorf("aba desconhecida: %q", d.opts.Aba)
	}

	return nil
}

func (d *Dashboard) cabecalho() {
	titulo := color.New(color.FgCyan, color.Bold)
	titulo.Printf("Módulo Gestor — exercício %d", d.opts.Ano)
	color.New(color.Faint).Printf("  (atualizado em %s)\n\n", time.Now().Format("02/01/2006 15:04:05"))
}

func (d *Dashboard) renderVisaoGeral(ctx context.Context) {
	renderSecao("Visão geral")

	overview, err := d.client.Overview(ctx, d.opts.Ano)
	if err != nil {
		renderErro("visão geral", err)
		return
	}

	cards := overview.Cards
	renderCards([][]string{
		{"Receita prevista", Moeda(cards.ReceitaPrevistaAno)},
		{"Receita realizada", Moeda(cards.ReceitaRealizadaAno)},
		{"Dotação atualizada", Moeda(cards.DespesaDotacaoAtualizadaAno)},
		{"Despesa empenhada", Moeda(cards.DespesaEmpenhadaAno)},
		{"Despesa liquidada", Moeda(cards.DespesaLiquidadaAno)},
		{"Despesa paga", Moeda(cards.DespesaPagaAno)},
		{"Resultado primário (simplificado)", Moeda(cards.ResultadoPrimarioSimplificado)},
		{"Caixa disponível", Moeda(cards.CaixaDisponivel)},
		{"Estoque de dívida ativa", Moeda(cards.EstoqueDividaAtivaTotal)},
		{"Dívida ativa recuperada", Moeda(cards.RecuperacaoDividaAtivaAno)},
		{"Licitações em andamento", Inteiro(cards.QtdeLicitacoesEmAndamento)},
		{"Licitações homologadas", Inteiro(cards.QtdeLicitacoesHomologadasAno)},
		{"Obras em execução", Inteiro(cards.QtdeObrasEmExecucao)},
		{"Obras paralisadas", Inteiro(cards.QtdeObrasParalisadas)},
	})
}

func (d *Dashboard) renderFinancas(ctx context.Context) {
	renderSecao("Finanças")

	receita, err := d.client.ReceitaResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("receita", err)
	} else {
		renderCards([][]string{
			{"Receita prevista", Moeda(receita.ReceitaPrevista)},
			{"Receita realizada", Moeda(receita.ReceitaRealizada)},
		})

		barras := make([]pterm.Bar, 0, len(receita.SerieMensal))
		for _, ponto := range receita.SerieMensal {
			barras = append(barras, barra(MesAbreviado(ponto.Mes), ponto.ReceitaRealizadaMes))
		}
		renderBarras("Receita realizada por mês", barras)

		barras = barras[:0]
		for _, item := range receita.ReceitaPorOrigem {
			barras = append(barras, barra(item.Categoria, item.Valor))
		}
		renderBarras("Receita por origem", barras)
	}

	despesa, err := d.client.DespesaResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("despesa", err)
		return
	}

	renderCards([][]string{
		{"Dotação inicial", Moeda(despesa.DotacaoInicial)},
		{"Dotação atualizada", Moeda(despesa.DotacaoAtualizada)},
		{"Empenhado", Moeda(despesa.Empenhado)},
		{"Liquidado", Moeda(despesa.Liquidado)},
		{"Pago", Moeda(despesa.Pago)},
	})

	barras := make([]pterm.Bar, 0, len(despesa.SerieMensal))
	for _, ponto := range despesa.SerieMensal {
		barras = append(barras, barra(MesAbreviado(ponto.Mes), ponto.Empenhado))
	}
	renderBarras("Despesa empenhada por mês", barras)

	barras = barras[:0]
	for _, item := range despesa.DespesaPorFuncao {
		barras = append(barras, barra(item.Categoria, item.Valor))
	}
	renderBarras("Despesa por função", barras)
}

func (d *Dashboard) renderCompras(ctx context.Context) {
	renderSecao("Licitações e contratos")

	licitacoes, err := d.client.LicitacoesResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("licitações", err)
	} else {
		renderCards([][]string{
			{"Valor total licitado", Moeda(licitacoes.ValorTotalLicitadoAno)},
			{"Valor total contratado", Moeda(licitacoes.ValorTotalContratadoAno)},
			{"Tempo médio abertura → homologação", Decimal(licitacoes.TempoMedioEntreAberturaEHomologacao) + " dias"},
		})

		linhas := make([][]string, 0, len(licitacoes.QuantidadeProcessosPorStatus))
		for _, item := range licitacoes.QuantidadeProcessosPorStatus {
			linhas = append(linhas, []string{item.Status, Inteiro(item.Quantidade)})
		}
		renderTabela("Processos por status", []string{"Status", "Quantidade"}, linhas)

		linhas = linhas[:0]
		for _, item := range licitacoes.QuantidadePorModalidade {
			linhas = append(linhas, []string{item.Modalidade, Inteiro(item.Quantidade)})
		}
		renderTabela("Processos por modalidade", []string{"Modalidade", "Quantidade"}, linhas)
	}

	contratos, err := d.client.ContratosProximosVencimentos(ctx, d.opts.Dias)
	if err != nil {
		renderErro("contratos a vencer", err)
		return
	}

	linhas := make([][]string, 0, len(contratos.Contratos))
	for _, contrato := range contratos.Contratos {
		linhas = append(linhas, []string{
			contrato.Numero,
			contrato.Fornecedor,
			Moeda(contrato.Valor),
			contrato.DataFim,
			contrato.Status,
		})
	}
	renderTabela(
		fmt.Sprintf("Contratos com vencimento em até %d dias", contratos.Dias),
		[]string{"Número", "Fornecedor", "Valor", "Término", "Status"},
		linhas,
	)
}

func (d *Dashboard) renderEngenharia(ctx context.Context) {
	renderSecao("Obras e convênios")

	obras, err := d.client.ObrasResumo(ctx)
	if err != nil {
		renderErro("obras", err)
	} else {
		renderCards([][]string{
			{"Execução física média", Percentual(obras.ExecucaoFisicaMedia)},
		})

		linhas := make([][]string, 0, len(obras.QtdeObrasPorSituacao))
		for _, item := range obras.QtdeObrasPorSituacao {
			linhas = append(linhas, []string{item.Situacao, Inteiro(item.Quantidade), Moeda(item.ValorTotal)})
		}
		renderTabela("Obras por situação", []string{"Situação", "Quantidade", "Valor total"}, linhas)

		linhas = linhas[:0]
		for _, obra := range obras.ObrasAtrasadas {
			linhas = append(linhas, []string{obra.Descricao, obra.DataFimPrevista, obra.Situacao})
		}
		renderTabela("Obras atrasadas", []string{"Descrição", "Término previsto", "Situação"}, linhas)
	}

	convenios, err := d.client.ConveniosResumo(ctx)
	if err != nil {
		renderErro("convênios", err)
		return
	}

	linhas := make([][]string, 0, len(convenios.QtdeConveniosPorOrgaoRepassador))
	for _, item := range convenios.QtdeConveniosPorOrgaoRepassador {
		linhas = append(linhas, []string{item.OrgaoRepassador, Inteiro(item.Quantidade), Moeda(item.ValorGlobal)})
	}
	renderTabela("Convênios por órgão repassador", []string{"Órgão", "Quantidade", "Valor global"}, linhas)

	linhas = linhas[:0]
	for _, convenio := range convenios.ConveniosEmRisco {
		linhas = append(linhas, []string{
			convenio.Descricao,
			Percentual(convenio.PercentualExecucaoFinanceira),
			convenio.Risco,
		})
	}
	renderTabela("Convênios em risco", []string{"Convênio", "Execução", "Risco"}, linhas)
}

func (d *Dashboard) renderTributos(ctx context.Context) {
	renderSecao("Tributos")

	iptu, err := d.client.IPTU(ctx, d.opts.Ano)
	if err != nil {
		renderErro("IPTU", err)
	} else {
		renderCards([][]string{
			{"IPTU lançado", Moeda(iptu.IPTULancadoAno)},
			{"IPTU arrecadado", Moeda(iptu.IPTUArrecadadoAno)},
			{"Taxa de inadimplência", Percentual(iptu.TaxaInadimplencia)},
		})

		barras := make([]pterm.Bar, 0, len(iptu.RankingBairrosPorArrecadacao))
		for _, item := range iptu.RankingBairrosPorArrecadacao {
			barras = append(barras, barra(item.Bairro, item.ValorArrecadado))
		}
		renderBarras("Arrecadação de IPTU por bairro", barras)
	}

	iss, err := d.client.ISS(ctx, d.opts.Ano)
	if err != nil {
		renderErro("ISS", err)
	} else {
		renderCards([][]string{
			{"ISS declarado", Moeda(iss.ISSDeclaradoAno)},
			{"ISS pago", Moeda(iss.ISSPagoAno)},
		})

		linhas := make([][]string, 0, len(iss.TopContribuintesISS))
		for _, item := range iss.TopContribuintesISS {
			linhas = append(linhas, []string{item.Contribuinte, Moeda(item.Valor)})
		}
		renderTabela("Maiores contribuintes de ISS", []string{"Contribuinte", "Valor"}, linhas)
	}

	divida, err := d.client.DividaAtiva(ctx, d.opts.Ano)
	if err != nil {
		renderErro("dívida ativa", err)
		return
	}

	renderCards([][]string{
		{"Estoque total", Moeda(divida.EstoqueDividaAtivaTotal)},
		{"Valor recuperado", Moeda(divida.ValorRecuperadoAno)},
		{"Acordos de parcelamento", Inteiro(divida.QuantidadeAcordosParcelamentoAno)},
	})

	barras := make([]pterm.Bar, 0, len(divida.EstoquePorTributo))
	for _, item := range divida.EstoquePorTributo {
		barras = append(barras, barra(item.Tributo, item.Valor))
	}
	renderBarras("Estoque de dívida ativa por tributo", barras)
}

func (d *Dashboard) renderPessoal(ctx context.Context) {
	renderSecao("Pessoal")

	rh, err := d.client.RHResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("RH", err)
		return
	}

	renderCards([][]string{
		{"Gasto de pessoal no ano", Moeda(rh.GastoPessoalAno)},
		{"% sobre a RCL", PercentualOuTraco(rh.PercentualDespesaPessoalSobreRCL)},
		{"Férias no período", Inteiro(rh.QtdeFeriasNoPeriodo)},
		{"Licenças", Inteiro(rh.QtdeLicencas)},
		{"Rescisões", Inteiro(rh.QtdeRescisoes)},
	})

	barras := make([]pterm.Bar, 0, len(rh.GastoPessoalMensal))
	for _, ponto := range rh.GastoPessoalMensal {
		barras = append(barras, barra(MesAbreviado(ponto.Mes), ponto.Valor))
	}
	renderBarras("Gasto de pessoal por mês", barras)

	linhas := make([][]string, 0, len(rh.HeadcountPorTipoVinculo))
	for _, item := range rh.HeadcountPorTipoVinculo {
		linhas = append(linhas, []string{item.Categoria, Inteiro(item.Quantidade)})
	}
	renderTabela("Headcount por tipo de vínculo", []string{"Vínculo", "Servidores"}, linhas)

	linhas = linhas[:0]
	for _, item := range rh.HeadcountPorOrgao {
		linhas = append(linhas, []string{item.Categoria, Inteiro(item.Quantidade)})
	}
	renderTabela("Headcount por órgão", []string{"Órgão", "Servidores"}, linhas)
}

func (d *Dashboard) renderSuprimentos(ctx context.Context) {
	renderSecao("Patrimônio e almoxarifado")

	patrimonio, err := d.client.PatrimonioResumo(ctx)
	if err != nil {
		renderErro("patrimônio", err)
	} else {
		renderCards([][]string{
			{"Valor total de bens", Moeda(patrimonio.ValorTotalBens)},
			{"Depreciação acumulada", Moeda(patrimonio.ValorDepreciacaoAcumulada)},
		})

		barras := make([]pterm.Bar, 0, len(patrimonio.BensPorOrgao))
		for _, item := range patrimonio.BensPorOrgao {
			barras = append(barras, barra(item.Categoria, item.Valor))
		}
		renderBarras("Bens por órgão", barras)
	}

	almoxarifado, err := d.client.AlmoxarifadoResumo(ctx, d.opts.Ano, d.opts.Mes)
	if err != nil {
		renderErro("almoxarifado", err)
		return
	}

	barras := make([]pterm.Bar, 0, len(almoxarifado.ConsumoPorOrgaoNoMes))
	for _, item := range almoxarifado.ConsumoPorOrgaoNoMes {
		barras = append(barras, barra(item.Item, item.Valor))
	}
	renderBarras(
		fmt.Sprintf("Consumo por órgão em %s/%d", MesAbreviado(almoxarifado.Mes), almoxarifado.Ano),
		barras,
	)

	linhas := make([][]string, 0, len(almoxarifado.EstoqueAtualPorProduto))
	for _, item := range almoxarifado.EstoqueAtualPorProduto {
		linhas = append(linhas, []string{item.Produto, Decimal(item.Quantidade)})
	}
	renderTabela("Estoque atual por produto", []string{"Produto", "Saldo"}, linhas)
}

func (d *Dashboard) renderFrotas(ctx context.Context) {
	renderSecao("Frotas e transporte escolar")

	frotas, err := d.client.FrotasResumo(ctx, d.opts.Ano, d.opts.Mes)
	if err != nil {
		renderErro("frotas", err)
	} else {
		barras := make([]pterm.Bar, 0, len(frotas.ConsumoCombustivelPorVeiculo))
		for _, item := range frotas.ConsumoCombustivelPorVeiculo {
			barras = append(barras, barra(item.Veiculo, item.Valor))
		}
		renderBarras(
			fmt.Sprintf("Consumo de combustível em %s/%d", MesAbreviado(frotas.Mes), frotas.Ano),
			barras,
		)

		linhas := make([][]string, 0, len(frotas.VeiculosComLicenciamentoVencidoOuAVencer))
		for _, item := range frotas.VeiculosComLicenciamentoVencidoOuAVencer {
			vencimento := "-"
			if item.DataVencimento != nil {
				vencimento = *item.DataVencimento
			}
			linhas = append(linhas, []string{item.Veiculo, vencimento, item.Status})
		}
		renderTabela("Licenciamentos vencidos ou a vencer", []string{"Veículo", "Vencimento", "Status"}, linhas)
	}

	transporte, err := d.client.TransporteEscolarResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("transporte escolar", err)
		return
	}

	barras := make([]pterm.Bar, 0, len(transporte.ViagensPorRota))
	for _, item := range transporte.ViagensPorRota {
		barras = append(barras, barra(item.Rota, item.Valor))
	}
	renderBarras("Viagens por rota", barras)

	barras = barras[:0]
	for _, item := range transporte.AlunosAtendidosPorRota {
		barras = append(barras, barra(item.Rota, item.Valor))
	}
	renderBarras("Alunos atendidos por rota", barras)
}

func (d *Dashboard) renderAtendimento(ctx context.Context) {
	renderSecao("Protocolo e e-SIC")

	protocolo, err := d.client.ProtocoloResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("protocolo", err)
	} else {
		renderCards([][]string{
			{"Protocolos no ano", Inteiro(protocolo.TotalProtocolosAno)},
			{"Tempo médio de tramitação", Decimal(protocolo.TempoMedioTramitacao) + " dias"},
		})

		linhas := make([][]string, 0, len(protocolo.ProtocolosPorSituacao))
		for _, item := range protocolo.ProtocolosPorSituacao {
			linhas = append(linhas, []string{item.Categoria, Inteiro(item.Quantidade)})
		}
		renderTabela("Protocolos por situação", []string{"Situação", "Quantidade"}, linhas)

		linhas = linhas[:0]
		for _, item := range protocolo.TopAssuntos {
			linhas = append(linhas, []string{item.Categoria, Inteiro(item.Quantidade)})
		}
		renderTabela("Assuntos mais demandados", []string{"Assunto", "Quantidade"}, linhas)
	}

	esic, err := d.client.EsicResumo(ctx, d.opts.Ano)
	if err != nil {
		renderErro("e-SIC", err)
		return
	}

	renderCards([][]string{
		{"Pedidos recebidos", Inteiro(esic.PedidosInformacaoRecebidos)},
		{"Respondidos no prazo", Inteiro(esic.RespondidosNoPrazo)},
		{"Respondidos fora do prazo", Inteiro(esic.RespondidosForaDoPrazo)},
		{"Em andamento", Inteiro(esic.EmAndamento)},
	})
}
