package handler

import (
	"net/http"

	"github.com/modulogestor/gestor-api/internal/api/handler/router"
	"github.com/modulogestor/gestor-api/internal/usecases/atendimento"
	"github.com/modulogestor/gestor-api/internal/usecases/compras"
	"github.com/modulogestor/gestor-api/internal/usecases/engenharia"
	"github.com/modulogestor/gestor-api/internal/usecases/financas"
	"github.com/modulogestor/gestor-api/internal/usecases/frotas"
	"github.com/modulogestor/gestor-api/internal/usecases/pessoal"
	"github.com/modulogestor/gestor-api/internal/usecases/suprimentos"
	"github.com/modulogestor/gestor-api/internal/usecases/tributos"
	"github.com/modulogestor/gestor-api/internal/usecases/visaogeral"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func VisaoGeral(service visaogeral.Summarizer) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/overview",
			Method:  http.MethodGet,
			Handler: GetOverview(service),
		},
	}
}

func Financas(service financas.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/receita/resumo",
			Method:  http.MethodGet,
			Handler: GetReceitaResumo(service),
		},
		{
			Path:    "/dashboard/despesa/resumo",
			Method:  http.MethodGet,
			Handler: GetDespesaResumo(service),
		},
	}
}

func Compras(service compras.Reporter, diasPadrao int) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/licitacoes/resumo",
			Method:  http.MethodGet,
			Handler: GetLicitacoesResumo(service),
		},
		{
			Path:    "/dashboard/contratos/proximos-vencimentos",
			Method:  http.MethodGet,
			Handler: GetContratosProximosVencimentos(service, diasPadrao),
		},
	}
}

func Engenharia(service engenharia.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/obras/resumo",
			Method:  http.MethodGet,
			Handler: GetObrasResumo(service),
		},
		{
			Path:    "/dashboard/convenios/resumo",
			Method:  http.MethodGet,
			Handler: GetConveniosResumo(service),
		},
	}
}

func Tributos(service tributos.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/tributos/iptu",
			Method:  http.MethodGet,
			Handler: GetIPTU(service),
		},
		{
			Path:    "/dashboard/tributos/iss",
			Method:  http.MethodGet,
			Handler: GetISS(service),
		},
		{
			Path:    "/dashboard/divida-ativa/resumo",
			Method:  http.MethodGet,
			Handler: GetDividaAtiva(service),
		},
	}
}

func Pessoal(service pessoal.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/rh/resumo",
			Method:  http.MethodGet,
			Handler: GetRHResumo(service),
		},
	}
}

func Suprimentos(service suprimentos.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/patrimonio/resumo",
			Method:  http.MethodGet,
			Handler: GetPatrimonioResumo(service),
		},
		{
			Path:    "/dashboard/almoxarifado/resumo",
			Method:  http.MethodGet,
			Handler: GetAlmoxarifadoResumo(service),
		},
	}
}

func Frotas(service frotas.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/frotas/resumo",
			Method:  http.MethodGet,
			Handler: GetFrotasResumo(service),
		},
		{
			Path:    "/dashboard/transporte-escolar/resumo",
			Method:  http.MethodGet,
			Handler: GetTransporteEscolarResumo(service),
		},
	}
}

func Atendimento(service atendimento.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/dashboard/protocolo/resumo",
			Method:  http.MethodGet,
			Handler: GetProtocoloResumo(service),
		},
		{
			Path:    "/dashboard/esic/resumo",
			Method:  http.MethodGet,
			Handler: GetEsicResumo(service),
		},
	}
}
