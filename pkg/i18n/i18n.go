// Package i18n contiene el mapeo de los tags simbólicos del dominio a texto
// visible por usuario en pt/en/es. El dato persistido nunca lleva texto
// localizado; esta capa es exclusivamente de presentación (PDF, insights,
// valores por defecto de formularios).
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// Idiomas soportados. El portugués es el idioma por defecto de la aplicación
// original y se mantiene como fallback.
const (
	LangPT = "pt"
	LangEN = "en"
	LangES = "es"
)

var matcher = language.NewMatcher([]language.Tag{
	language.Portuguese, // primero: fallback del matcher
	language.English,
	language.Spanish,
})

// Match reduce un tag BCP 47 arbitrario ("pt-BR", "es-419", "en-US,en;q=0.9")
// al idioma soportado más cercano. Entradas vacías o irreconocibles caen en pt.
func Match(tag string) string {
	if tag == "" {
		return LangPT
	}
	tags, _, err := language.ParseAcceptLanguage(tag)
	if err != nil || len(tags) == 0 {
		return LangPT
	}
	_, index, _ := matcher.Match(tags...)
	switch index {
	case 1:
		return LangEN
	case 2:
		return LangES
	default:
		return LangPT
	}
}

// Label devuelve el texto localizado para una clave. Claves desconocidas
// devuelven la clave misma, para que el hueco sea visible en vez de vacío.
func Label(lang, key string) string {
	entry, ok := labels[key]
	if !ok {
		return key
	}
	if text, ok := entry[lang]; ok {
		return text
	}
	return entry[LangPT]
}

// MonthLabel devuelve "Octubre 2023" / "Outubro 2023" / "October 2023".
func MonthLabel(lang string, year, month int) string {
	if month < 1 || month > 12 {
		return fmt.Sprintf("%d", year)
	}
	names := monthNames[LangPT]
	if m, ok := monthNames[lang]; ok {
		names = m
	}
	return fmt.Sprintf("%s %d", names[month-1], year)
}

var monthNames = map[string][12]string{
	LangPT: {"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho", "Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"},
	LangEN: {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	LangES: {"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio", "Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre"},
}

// labels: clave → idioma → texto.
var labels = map[string]map[string]string{
	// Estados de stock
	"status.IN_STOCK":     {LangPT: "Em Estoque", LangEN: "In Stock", LangES: "En Stock"},
	"status.LOW_STOCK":    {LangPT: "Estoque Baixo", LangEN: "Low Stock", LangES: "Stock Bajo"},
	"status.OUT_OF_STOCK": {LangPT: "Sem Estoque", LangEN: "Out of Stock", LangES: "Sin Stock"},

	// Categorías de producto
	"category.ELECTRONICS": {LangPT: "Eletrônicos", LangEN: "Electronics", LangES: "Electrónica"},
	"category.FURNITURE":   {LangPT: "Móveis", LangEN: "Furniture", LangES: "Muebles"},
	"category.CLOTHING":    {LangPT: "Vestuário", LangEN: "Clothing", LangES: "Ropa"},
	"category.OFFICE":      {LangPT: "Escritório", LangEN: "Office", LangES: "Oficina"},
	"category.OTHER":       {LangPT: "Outros", LangEN: "Other", LangES: "Otros"},

	// Categorías de transacción
	"txcat.SALES":     {LangPT: "Vendas", LangEN: "Sales", LangES: "Ventas"},
	"txcat.STOCK":     {LangPT: "Compra / Estoque", LangEN: "Purchase / Stock", LangES: "Compra / Stock"},
	"txcat.SERVICES":  {LangPT: "Serviços", LangEN: "Services", LangES: "Servicios"},
	"txcat.RENT":      {LangPT: "Aluguel/Infra", LangEN: "Rent/Infra", LangES: "Alquiler/Infra"},
	"txcat.SALARY":    {LangPT: "Salários", LangEN: "Salaries", LangES: "Salarios"},
	"txcat.MARKETING": {LangPT: "Marketing", LangEN: "Marketing", LangES: "Marketing"},
	"txcat.EQUIPMENT": {LangPT: "Equipamentos", LangEN: "Equipment", LangES: "Equipos"},
	"txcat.SUPPLIES":  {LangPT: "Insumos", LangEN: "Supplies", LangES: "Insumos"},
	"txcat.OTHER":     {LangPT: "Outros", LangEN: "Other", LangES: "Otros"},

	// Tipos de transacción
	"type.income":  {LangPT: "Receita", LangEN: "Income", LangES: "Ingreso"},
	"type.expense": {LangPT: "Despesa", LangEN: "Expense", LangES: "Egreso"},

	// Sectores
	"sector.COMMERCIAL":       {LangPT: "Comercial", LangEN: "Commercial", LangES: "Comercial"},
	"sector.ADMIN":            {LangPT: "Administrativo", LangEN: "Administrative", LangES: "Administrativo"},
	"sector.GENERAL_SERVICES": {LangPT: "Serviços Gerais", LangEN: "General Services", LangES: "Servicios Generales"},

	// Extracto PDF
	"report.statement":    {LangPT: "Extrato Financeiro", LangEN: "Financial Statement", LangES: "Extracto Financiero"},
	"report.period":       {LangPT: "Período", LangEN: "Period", LangES: "Período"},
	"report.generatedAt":  {LangPT: "Gerado em", LangEN: "Generated at", LangES: "Generado el"},
	"report.income":       {LangPT: "Receitas", LangEN: "Income", LangES: "Ingresos"},
	"report.expense":      {LangPT: "Despesas", LangEN: "Expenses", LangES: "Egresos"},
	"report.balance":      {LangPT: "Saldo", LangEN: "Balance", LangES: "Saldo"},
	"report.date":         {LangPT: "Data", LangEN: "Date", LangES: "Fecha"},
	"report.description":  {LangPT: "Descrição", LangEN: "Description", LangES: "Descripción"},
	"report.category":     {LangPT: "Categoria", LangEN: "Category", LangES: "Categoría"},
	"report.linked":       {LangPT: "Vínculo", LangEN: "Linked to", LangES: "Vínculo"},
	"report.type":         {LangPT: "Tipo", LangEN: "Type", LangES: "Tipo"},
	"report.amount":       {LangPT: "Valor", LangEN: "Amount", LangES: "Valor"},
	"report.finalBalance": {LangPT: "SALDO FINAL", LangEN: "FINAL BALANCE", LangES: "SALDO FINAL"},

	// Insights: mensajes de degradación
	"insight.failTitle":   {LangPT: "Falha na Análise", LangEN: "Analysis Failed", LangES: "Fallo en el Análisis"},
	"insight.failMessage": {LangPT: "Não foi possível gerar insights no momento. Tente novamente mais tarde.", LangEN: "Could not generate insights right now. Please try again later.", LangES: "No fue posible generar insights en este momento. Inténtalo de nuevo más tarde."},
	"insight.noKeyTitle":  {LangPT: "Chave de API Ausente", LangEN: "API Key Missing", LangES: "Falta la Clave de API"},
	"insight.noKeyMessage": {
		LangPT: "Configure sua chave de API para receber insights inteligentes.",
		LangEN: "Configure your API key to receive smart insights.",
		LangES: "Configura tu clave de API para recibir insights inteligentes.",
	},
}
