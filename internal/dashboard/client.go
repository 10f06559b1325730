package dashboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/modulogestor/gestor-api/internal/domain"
	"github.com/modulogestor/gestor-api/pkg/apiErrors"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client consome a API de relatórios do gestor
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return errors.Wrap(err, "erro ao montar requisição")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "erro ao chamar a API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var apiErr apiErrors.APIError
		if err := json.NewDecoder(resp.Body).Decode(&apiErr); err == nil && apiErr.Code != "" {
			return fmt.Errorf("API respondeu %d (%s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("API respondeu status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta")
	}

	return nil
}

func anoQuery(ano int) url.Values {
	return url.Values{"ano": []string{strconv.Itoa(ano)}}
}

func anoMesQuery(ano, mes int) url.Values {
	return url.Values{
		"ano": []string{strconv.Itoa(ano)},
		"mes": []string{strconv.Itoa(mes)},
	}
}

func (c *Client) Health(ctx context.Context) error {
	var status map[string]string
	return c.get(ctx, "/health", nil, &status)
}

func (c *Client) Overview(ctx context.Context, ano int) (*domain.OverviewResponse, error) {
	out := &domain.OverviewResponse{}
	return out, c.get(ctx, "/dashboard/overview", anoQuery(ano), out)
}

func (c *Client) ReceitaResumo(ctx context.Context, ano int) (*domain.ReceitaResumoResponse, error) {
	out := &domain.ReceitaResumoResponse{}
	return out, c.get(ctx, "/dashboard/receita/resumo", anoQuery(ano), out)
}

func (c *Client) DespesaResumo(ctx context.Context, ano int) (*domain.DespesaResumoResponse, error) {
	out := &domain.DespesaResumoResponse{}
	return out, c.get(ctx, "/dashboard/despesa/resumo", anoQuery(ano), out)
}

func (c *Client) LicitacoesResumo(ctx context.Context, ano int) (*domain.LicitacoesResumoResponse, error) {
	out := &domain.LicitacoesResumoResponse{}
	return out, c.get(ctx, "/dashboard/licitacoes/resumo", anoQuery(ano), out)
}

func (c *Client) ContratosProximosVencimentos(ctx context.Context, dias int) (*domain.ContratosProximosVencimentosResponse, error) {
	out := &domain.ContratosProximosVencimentosResponse{}
	query := url.Values{"dias": []string{strconv.Itoa(dias)}}
	return out, c.get(ctx, "/dashboard/contratos/proximos-vencimentos", query, out)
}

func (c *Client) ObrasResumo(ctx context.Context) (*domain.ObrasResumoResponse, error) {
	out := &domain.ObrasResumoResponse{}
	return out, c.get(ctx, "/dashboard/obras/resumo", nil, out)
}

func (c *Client) ConveniosResumo(ctx context.Context) (*domain.ConveniosResumoResponse, error) {
	out := &domain.ConveniosResumoResponse{}
	return out, c.get(ctx, "/dashboard/convenios/resumo", nil, out)
}

func (c *Client) IPTU(ctx context.Context, ano int) (*domain.IPTUResponse, error) {
	out := &domain.IPTUResponse{}
	return out, c.get(ctx, "/dashboard/tributos/iptu", anoQuery(ano), out)
}

func (c *Client) ISS(ctx context.Context, ano int) (*domain.ISSResponse, error) {
	out := &domain.ISSResponse{}
	return out, c.get(ctx, "/dashboard/tributos/iss", anoQuery(ano), out)
}

func (c *Client) DividaAtiva(ctx context.Context, ano int) (*domain.DividaAtivaResponse, error) {
	out := &domain.DividaAtivaResponse{}
	return out, c.get(ctx, "/dashboard/divida-ativa/resumo", anoQuery(ano), out)
}

func (c *Client) RHResumo(ctx context.Context, ano int) (*domain.RHResumoResponse, error) {
	out := &domain.RHResumoResponse{}
	return out, c.get(ctx, "/dashboard/rh/resumo", anoQuery(ano), out)
}

func (c *Client) PatrimonioResumo(ctx context.Context) (*domain.PatrimonioResponse, error) {
	out := &domain.PatrimonioResponse{}
	return out, c.get(ctx, "/dashboard/patrimonio/resumo", nil, out)
}

func (c *Client) AlmoxarifadoResumo(ctx context.Context, ano, mes int) (*domain.AlmoxarifadoResponse, error) {
	out := &domain.AlmoxarifadoResponse{}
	return out, c.get(ctx, "/dashboard/almoxarifado/resumo", anoMesQuery(ano, mes), out)
}

func (c *Client) FrotasResumo(ctx context.Context, ano, mes int) (*domain.FrotasResumoResponse, error) {
	out := &domain.FrotasResumoResponse{}
	return out, c.get(ctx, "/dashboard/frotas/resumo", anoMesQuery(ano, mes), out)
}

func (c *Client) TransporteEscolarResumo(ctx context.Context, ano int) (*domain.TransporteEscolarResponse, error) {
	out := &domain.TransporteEscolarResponse{}
	return out, c.get(ctx, "/dashboard/transporte-escolar/resumo", anoQuery(ano), out)
}

func (c *Client) ProtocoloResumo(ctx context.Context, ano int) (*domain.ProtocoloResumoResponse, error) {
	out := &domain.ProtocoloResumoResponse{}
	return out, c.get(ctx, "/dashboard/protocolo/resumo", anoQuery(ano), out)
}

func (c *Client) EsicResumo(ctx context.Context, ano int) (*domain.EsicResumoResponse, error) {
	out := &domain.EsicResumoResponse{}
	return out, c.get(ctx, "/dashboard/esic/resumo", anoQuery(ano), out)
}
