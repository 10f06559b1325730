package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var mesesAbreviados = [12]string{
	"Jan", "Fev", "Mar", "Abr", "Mai", "Jun",
	"Jul", "Ago", "Set", "Out", "Nov", "Dez",
}

// Moeda formata um valor em reais no padrão pt-BR (R$ 1.234.567,89)
func Moeda(valor float64) string {
	return printer.Sprintf("R$ %v", number.Decimal(valor,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Inteiro formata um número inteiro com separador de milhar pt-BR
func Inteiro(valor int) string {
	return printer.Sprintf("%v", number.Decimal(valor))
}

// Decimal formata um número com duas casas no padrão pt-BR
func Decimal(valor float64) string {
	return printer.Sprintf("%v", number.Decimal(valor,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// Percentual formata um percentual com duas casas e sufixo %
func Percentual(valor float64) string {
	return Decimal(valor) + "%"
}

// PercentualOuTraco devolve "-" quando o valor não foi apurado
func PercentualOuTraco(valor *float64) string {
	if valor == nil {
		return "-"
	}
	return Percentual(*valor)
}

// MesAbreviado devolve a abreviação pt-BR do mês (1 a 12)
func MesAbreviado(mes int) string {
	if mes < 1 || mes > 12 {
		return "-"
	}
	return mesesAbreviados[mes-1]
}
