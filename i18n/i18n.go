// Package i18n holds the user-facing labels of the application.
package i18n

import (
	"context"
	"strings"
)

// DefaultLang is used when no supported language is requested.
const DefaultLang = "pt"

type langKey struct{}

var translations = map[string]map[string]string{
	"pt": {
		"required":             "Obrigatório",
		"must_not_be_negative": "Não pode ser negativo",
		"invalid_date":         "Data inválida (use AAAA-MM-DD)",
		"invalid_choice":       "Opção inválida",

		"status.pendente":     "Pendente",
		"status.em_andamento": "Em Andamento",
		"status.concluido":    "Concluído",
		"status.cancelado":    "Cancelado",

		"doc.title":            "Ordem de Serviço",
		"doc.client":           "Cliente",
		"doc.name":             "Nome",
		"doc.phone":            "Telefone",
		"doc.address":          "Endereço",
		"doc.equipment":        "Equipamento",
		"doc.type":             "Tipo",
		"doc.brand":            "Marca",
		"doc.model":            "Modelo",
		"doc.serial":           "Série",
		"doc.no_equipment":     "Nenhuma informação de equipamento cadastrada",
		"doc.services":         "Serviços Realizados",
		"doc.description":      "Descrição",
		"doc.services_value":   "Valor dos Serviços",
		"doc.discount":         "Desconto",
		"doc.total":            "Valor Total",
		"doc.notes":            "Observações",
		"doc.warranty":         "Garantia de %d dias",
		"doc.status":           "Status",
		"doc.date":             "Data",
		"doc.not_informed":     "Não informado",
		"doc.no_address":       "Endereço não informado",
		"doc.generated_at":     "Documento gerado automaticamente em %s",
		"share.greeting":       "Olá %s! Tudo bem?",
		"share.no_phone":       "Número de telefone não informado",
		"stats.total":          "Total",
		"clients.none":         "Nenhum cliente cadastrado",
		"clients.none_found":   "Nenhum cliente encontrado",
		"orders.none":          "Nenhuma ordem de serviço cadastrada",
		"orders.none_found":    "Nenhuma ordem de serviço encontrada",
		"errors.not_found":     "Registro não encontrado",
		"errors.invalid_input": "Dados inválidos",
	},
	"en": {
		"required":             "Required",
		"must_not_be_negative": "Must not be negative",
		"invalid_date":         "Invalid date (use YYYY-MM-DD)",
		"invalid_choice":       "Invalid choice",

		"status.pendente":     "Pending",
		"status.em_andamento": "In Progress",
		"status.concluido":    "Completed",
		"status.cancelado":    "Cancelled",

		"doc.title":            "Service Order",
		"doc.client":           "Client",
		"doc.name":             "Name",
		"doc.phone":            "Phone",
		"doc.address":          "Address",
		"doc.equipment":        "Equipment",
		"doc.type":             "Type",
		"doc.brand":            "Brand",
		"doc.model":            "Model",
		"doc.serial":           "Serial",
		"doc.no_equipment":     "No equipment information recorded",
		"doc.services":         "Services Performed",
		"doc.description":      "Description",
		"doc.services_value":   "Services",
		"doc.discount":         "Discount",
		"doc.total":            "Total",
		"doc.notes":            "Notes",
		"doc.warranty":         "%d-day warranty",
		"doc.status":           "Status",
		"doc.date":             "Date",
		"doc.not_informed":     "Not provided",
		"doc.no_address":       "No address provided",
		"doc.generated_at":     "Generated automatically on %s",
		"share.greeting":       "Hi %s! How are you?",
		"share.no_phone":       "Phone number not provided",
		"stats.total":          "Total",
		"clients.none":         "No clients yet",
		"clients.none_found":   "No clients found",
		"orders.none":          "No service orders yet",
		"orders.none_found":    "No service orders found",
		"errors.not_found":     "Record not found",
		"errors.invalid_input": "Invalid input",
	},
}

// T translates code for lang. Unknown languages fall back to DefaultLang,
// unknown codes are returned unchanged.
func T(lang, code string) string {
	if m, ok := translations[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := translations[DefaultLang][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks a supported language from an Accept-Language style
// value or a locale such as "pt_BR.UTF-8".
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		tag = strings.ToLower(tag)
		if len(tag) < 2 {
			continue
		}
		if _, ok := translations[tag[:2]]; ok {
			return tag[:2]
		}
	}
	return DefaultLang
}

// WithLang stores the language in ctx.
func WithLang(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langKey{}, lang)
}

// LangFromContext returns the language stored in ctx or DefaultLang.
func LangFromContext(ctx context.Context) string {
	if lang, ok := ctx.Value(langKey{}).(string); ok && lang != "" {
		return lang
	}
	return DefaultLang
}
