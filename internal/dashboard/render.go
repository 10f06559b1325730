package dashboard

import (
	"math"

	"github.com/pterm/pterm"
)

const semDados = "Sem dados para o período"

func renderSecao(titulo string) {
	pterm.DefaultSection.Println(titulo)
}

// renderCards imprime pares rótulo/valor em uma tabela de duas colunas
func renderCards(linhas [][]string) {
	data := make(pterm.TableData, 0, len(linhas))
	for _, linha := range linhas {
		data = append(data, linha)
	}

	if err := pterm.DefaultTable.WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

// renderBarras desenha um gráfico de barras horizontal; os valores são
// arredondados porque o pterm só aceita inteiros nas barras.
func renderBarras(titulo string, barras []pterm.Bar) {
	pterm.DefaultBasicText.Println(pterm.Bold.Sprint(titulo))

	if len(barras) == 0 {
		pterm.Info.Println(semDados)
		return
	}

	err := pterm.DefaultBarChart.
		WithHorizontal().
		WithShowValue().
		WithBars(barras).
		Render()
	if err != nil {
		pterm.Error.Println(err)
	}
}

// renderTabela imprime uma tabela com cabeçalho fixo
func renderTabela(titulo string, cabecalho []string, linhas [][]string) {
	pterm.DefaultBasicText.Println(pterm.Bold.Sprint(titulo))

	if len(linhas) == 0 {
		pterm.Info.Println(semDados)
		return
	}

	data := pterm.TableData{cabecalho}
	for _, linha := range linhas {
		data = append(data, linha)
	}

	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		pterm.Error.Println(err)
	}
}

// renderErro exibe a falha de um widget sem interromper os demais
func renderErro(widget string, err error) {
	pterm.Error.Printfln("%s: %v", widget, err)
}

func barra(rotulo string, valor float64) pterm.Bar {
	return pterm.Bar{
		Label: rotulo,
		Value: int(math.Round(valor)),
	}
}
