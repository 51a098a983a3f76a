// Package pdf renders service orders as printable PDF documents.
package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/diewo77/oficina/i18n"
	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type ClientData struct {
	Name       string
	Phone      string
	Address    string
	Complement string
}

type EquipmentData struct {
	Type   string
	Brand  string
	Model  string
	Serial string
}

func (e EquipmentData) empty() bool {
	return e.Type == "" && e.Brand == "" && e.Model == "" && e.Serial == ""
}

// ServiceOrderData is everything printed on a service order document.
// Date is already formatted for display.
type ServiceOrderData struct {
	Number       string
	Date         string
	Status       string
	Client       ClientData
	Equipment    EquipmentData
	Services     string
	Subtotal     float64
	Discount     float64
	Total        float64
	Notes        string
	WarrantyDays int
	Lang         string
	GeneratedAt  time.Time
}

var (
	accent = &props.Color{Red: 59, Green: 130, Blue: 246}
	muted  = &props.Color{Red: 107, Green: 114, Blue: 128}
	red    = &props.Color{Red: 239, Green: 68, Blue: 68}
	green  = &props.Color{Red: 6, Green: 95, Blue: 70}

	brl = message.NewPrinter(language.BrazilianPortuguese)
)

// FormatDate turns an ISO date (YYYY-MM-DD) into DD/MM/YYYY. Values that
// do not parse are returned unchanged.
func FormatDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02/01/2006")
}

// FormatCurrency formats an amount in reais, e.g. "R$ 1.234,56".
func FormatCurrency(v float64) string {
	return "R$ " + brl.Sprintf("%.2f", v)
}

// ServiceOrderPDF renders d as an A4 document and returns the PDF bytes.
func ServiceOrderPDF(d ServiceOrderData) ([]byte, error) {
	lang := d.Lang
	if lang == "" {
		lang = i18n.DefaultLang
	}
	t := func(code string) string { return i18n.T(lang, code) }

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()
	m := maroto.New(cfg)

	// header
	m.AddRow(10,
		text.NewCol(8, t("doc.title"), props.Text{Size: 18, Style: fontstyle.Bold, Color: accent}),
		text.NewCol(4, "OS #"+d.Number, props.Text{Size: 12, Style: fontstyle.Bold, Align: align.Right, Color: muted, Top: 2}),
	)
	m.AddRow(6,
		text.NewCol(8, t("doc.status")+": "+d.Status, props.Text{Size: 10, Color: muted}),
		text.NewCol(4, d.Date, props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Color: muted}),
	)
	m.AddRows(line.NewRow(4, props.Line{Color: accent, Thickness: 0.8}))

	// client
	m.AddRows(section(t("doc.client")))
	m.AddRows(infoRow(t("doc.name"), d.Client.Name))
	m.AddRows(infoRow(t("doc.phone"), orDefault(d.Client.Phone, t("doc.not_informed"))))
	m.AddRows(infoRow(t("doc.address"), orDefault(d.Client.Address, t("doc.no_address"))))
	if d.Client.Complement != "" {
		m.AddRow(5, col.New(3), text.NewCol(9, d.Client.Complement, props.Text{Size: 9, Color: muted}))
	}

	// equipment
	m.AddRows(section(t("doc.equipment")))
	if d.Equipment.empty() {
		m.AddRows(text.NewRow(6, t("doc.no_equipment"), props.Text{Size: 10, Style: fontstyle.Italic, Color: muted}))
	} else {
		for _, f := range []struct{ label, value string }{
			{t("doc.type"), d.Equipment.Type},
			{t("doc.brand"), d.Equipment.Brand},
			{t("doc.model"), d.Equipment.Model},
			{t("doc.serial"), d.Equipment.Serial},
		} {
			if f.value != "" {
				m.AddRows(infoRow(f.label, f.value))
			}
		}
	}

	// services and values
	m.AddRows(section(t("doc.services")))
	if d.Services != "" {
		m.AddRows(text.NewRow(6, t("doc.description"), props.Text{Size: 10, Style: fontstyle.Bold}))
		m.AddRows(text.NewRow(lineHeight(d.Services), d.Services, props.Text{Size: 10}))
	}
	m.AddRows(valueRow(t("doc.services_value"), FormatCurrency(d.Subtotal), nil))
	if d.Discount > 0 {
		m.AddRows(valueRow(t("doc.discount"), "- "+FormatCurrency(d.Discount), red))
	}
	m.AddRows(line.NewRow(3, props.Line{Color: muted, Thickness: 0.3}))
	m.AddRow(8,
		text.NewCol(8, t("doc.total"), props.Text{Size: 12, Style: fontstyle.Bold}),
		text.NewCol(4, FormatCurrency(d.Total), props.Text{Size: 13, Style: fontstyle.Bold, Align: align.Right, Color: accent}),
	)

	if d.Notes != "" {
		m.AddRows(section(t("doc.notes")))
		m.AddRows(text.NewRow(lineHeight(d.Notes), d.Notes, props.Text{Size: 10}))
	}
	if d.WarrantyDays > 0 {
		m.AddRows(text.NewRow(10, fmt.Sprintf(t("doc.warranty"), d.WarrantyDays),
			props.Text{Size: 10, Style: fontstyle.Bold, Color: green, Top: 4}))
	}

	generated := d.GeneratedAt
	if generated.IsZero() {
		generated = time.Now()
	}
	m.AddRows(line.NewRow(12, props.Line{Color: muted, Thickness: 0.2}))
	m.AddRows(text.NewRow(6, fmt.Sprintf(t("doc.generated_at"), generated.Format("02/01/2006 15:04")),
		props.Text{Size: 8, Align: align.Center, Color: muted}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate pdf: %w", err)
	}
	return doc.GetBytes(), nil
}

func section(title string) core.Row {
	return text.NewRow(11, title, props.Text{Size: 12, Style: fontstyle.Bold, Top: 5})
}

func infoRow(label, value string) core.Row {
	return row.New(6).Add(
		text.NewCol(3, label, props.Text{Size: 10, Style: fontstyle.Bold, Color: muted}),
		text.NewCol(9, value, props.Text{Size: 10}),
	)
}

func valueRow(label, value string, color *props.Color) core.Row {
	return row.New(6).Add(
		text.NewCol(8, label, props.Text{Size: 10, Color: color}),
		text.NewCol(4, value, props.Text{Size: 10, Align: align.Right, Color: color}),
	)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}

// lineHeight sizes a free text row by its line count.
func lineHeight(s string) float64 {
	return float64(5 * (strings.Count(s, "\n") + 1))
}
