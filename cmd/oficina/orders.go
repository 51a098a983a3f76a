package main

import (
	"fmt"
	"os"
	"time"

	"github.com/diewo77/oficina/i18n"
	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/diewo77/oficina/internal/services"
	"github.com/diewo77/oficina/pdf"
	"github.com/diewo77/oficina/validation"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func orderFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "data", Usage: "service date, YYYY-MM-DD (default today)"},
		&cli.StringFlag{Name: "tipo", Usage: "equipment type"},
		&cli.StringFlag{Name: "marca", Usage: "equipment brand"},
		&cli.StringFlag{Name: "modelo", Usage: "equipment model"},
		&cli.StringFlag{Name: "serie", Usage: "equipment serial number"},
		&cli.StringFlag{Name: "servicos", Usage: "services performed"},
		&cli.Float64Flag{Name: "valor", Usage: "services amount"},
		&cli.Float64Flag{Name: "desconto", Usage: "discount"},
		&cli.StringFlag{Name: "obs", Usage: "notes"},
		&cli.IntFlag{Name: "garantia", Usage: "warranty in days"},
	}
}

func (a *app) orderCommands() *cli.Command {
	return &cli.Command{
		Name:  "orders",
		Usage: "manage service orders",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list service orders, newest first",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "status", Usage: "filter by status (substring)"},
				},
				Action: a.listOrders,
			},
			{
				Name:  "add",
				Usage: "open a service order for a client",
				Flags: append([]cli.Flag{
					&cli.UintFlag{Name: "client", Required: true},
					&cli.StringFlag{Name: "numero", Usage: "order number (default next YYMM-NNNN)"},
				}, orderFlags()...),
				Action: a.addOrder,
			},
			{
				Name:      "show",
				ArgsUsage: "ID",
				Action:    a.showOrder,
			},
			{
				Name:      "edit",
				Usage:     "change the given fields of a service order",
				ArgsUsage: "[flags] ID",
				Flags:     orderFlags(),
				Action:    a.editOrder,
			},
			{
				Name:      "status",
				Usage:     "set the status: pendente, em_andamento, concluido or cancelado",
				ArgsUsage: "ID STATUS",
				Action:    a.setOrderStatus,
			},
			{
				Name:      "rm",
				ArgsUsage: "ID",
				Action:    a.removeOrder,
			},
			{
				Name:      "pdf",
				Usage:     "export a service order as PDF",
				ArgsUsage: "[--out FILE] ID",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output file (default OS-<numero>.pdf)"},
				},
				Action: a.exportOrder,
			},
			{
				Name:      "whatsapp",
				Usage:     "print WhatsApp links for the order's client",
				ArgsUsage: "ID",
				Action:    a.whatsappOrder,
			},
		},
	}
}

func (a *app) listOrders(c *cli.Context) error {
	var (
		list []models.ServiceOrderWithClient
		err  error
	)
	status := c.String("status")
	if c.IsSet("status") {
		list, err = a.orders.SearchByStatus(c.Context, status)
	} else {
		list, err = a.orders.GetAll(c.Context)
	}
	if err != nil {
		return err
	}
	lang := i18n.LangFromContext(c.Context)
	if len(list) == 0 {
		code := "orders.none"
		if status != "" {
			code = "orders.none_found"
		}
		fmt.Fprintln(a.out, i18n.T(lang, code))
		return nil
	}
	w := newTable(a.out)
	fmt.Fprintln(w, "ID\tOS\t"+header(lang, "doc.client", "doc.phone", "doc.status", "doc.total", "doc.date"))
	for _, o := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", o.ID, o.NumeroOS, o.ClientNome, o.ClientTelefone,
			o.Status.Label(lang), pdf.FormatCurrency(o.ValorTotal), pdf.FormatDate(o.DataServico))
	}
	return w.Flush()
}

func (a *app) addOrder(c *cli.Context) error {
	data := c.String("data")
	if data == "" {
		data = time.Now().Format(validation.ISODateLayout)
	}
	numero := c.String("numero")
	if numero == "" {
		// an unparsable date is reported by Create
		when, err := time.Parse(validation.ISODateLayout, data)
		if err != nil {
			when = time.Now()
		}
		if numero, err = a.svc.NextNumber(c.Context, when); err != nil {
			return err
		}
	}
	in := models.NewServiceOrder{
		ClientID:           c.Uint("client"),
		NumeroOS:           numero,
		DataServico:        data,
		EquipamentoTipo:    c.String("tipo"),
		EquipamentoMarca:   c.String("marca"),
		EquipamentoModelo:  c.String("modelo"),
		EquipamentoSerie:   c.String("serie"),
		ServicosRealizados: c.String("servicos"),
		ValorServicos:      c.Float64("valor"),
		Desconto:           c.Float64("desconto"),
		Observacoes:        c.String("obs"),
		GarantiaDias:       c.Int("garantia"),
	}
	in.ValorTotal = services.ComputeTotal(in.ValorServicos, in.Desconto)
	id, err := a.orders.Create(c.Context, in)
	if err != nil {
		return err
	}
	a.log.Info("service order created", zap.Uint("id", id), zap.String("numero_os", numero))
	fmt.Fprintf(a.out, "%d\t%s\n", id, numero)
	return nil
}

func (a *app) loadOrder(c *cli.Context) (*models.ServiceOrderWithClient, error) {
	id, err := argID(c)
	if err != nil {
		return nil, err
	}
	o, err := a.orders.GetByID(c.Context, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("service order %d: %w", id, repository.ErrNotFound)
	}
	return o, nil
}

func (a *app) showOrder(c *cli.Context) error {
	o, err := a.loadOrder(c)
	if err != nil {
		return err
	}
	lang := i18n.LangFromContext(c.Context)
	d := services.DocumentData(o, lang, time.Now())
	t := func(code string) string { return i18n.T(lang, code) }

	w := newTable(a.out)
	fmt.Fprintf(w, "OS\t%s\t%s\n", d.Number, d.Date)
	fmt.Fprintf(w, "%s\t%s\n", t("doc.status"), d.Status)
	fmt.Fprintf(w, "%s\t%s\n", t("doc.client"), d.Client.Name)
	fmt.Fprintf(w, "%s\t%s\n", t("doc.phone"), orDash(d.Client.Phone))
	fmt.Fprintf(w, "%s\t%s\n", t("doc.address"), orDash(d.Client.Address))
	for _, f := range []struct{ code, value string }{
		{"doc.type", d.Equipment.Type},
		{"doc.brand", d.Equipment.Brand},
		{"doc.model", d.Equipment.Model},
		{"doc.serial", d.Equipment.Serial},
		{"doc.services", d.Services},
		{"doc.notes", d.Notes},
	} {
		if f.value != "" {
			fmt.Fprintf(w, "%s\t%s\n", t(f.code), f.value)
		}
	}
	fmt.Fprintf(w, "%s\t%s\n", t("doc.services_value"), pdf.FormatCurrency(d.Subtotal))
	if d.Discount > 0 {
		fmt.Fprintf(w, "%s\t- %s\n", t("doc.discount"), pdf.FormatCurrency(d.Discount))
	}
	fmt.Fprintf(w, "%s\t%s\n", t("doc.total"), pdf.FormatCurrency(d.Total))
	if d.WarrantyDays > 0 {
		fmt.Fprintf(w, "\t%s\n", fmt.Sprintf(t("doc.warranty"), d.WarrantyDays))
	}
	return w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (a *app) editOrder(c *cli.Context) error {
	o, err := a.loadOrder(c)
	if err != nil {
		return err
	}
	u := models.UpdateFrom(o.ServiceOrder)
	for name, field := range map[string]*string{
		"data":     &u.DataServico,
		"tipo":     &u.EquipamentoTipo,
		"marca":    &u.EquipamentoMarca,
		"modelo":   &u.EquipamentoModelo,
		"serie":    &u.EquipamentoSerie,
		"servicos": &u.ServicosRealizados,
		"obs":      &u.Observacoes,
	} {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}
	if c.IsSet("valor") {
		u.ValorServicos = c.Float64("valor")
	}
	if c.IsSet("desconto") {
		u.Desconto = c.Float64("desconto")
	}
	if c.IsSet("garantia") {
		u.GarantiaDias = c.Int("garantia")
	}
	u.ValorTotal = services.ComputeTotal(u.ValorServicos, u.Desconto)
	if err := a.orders.Update(c.Context, u); err != nil {
		return err
	}
	a.log.Info("service order updated", zap.Uint("id", u.ID))
	return nil
}

func (a *app) setOrderStatus(c *cli.Context) error {
	id, err := argID(c)
	if err != nil {
		return err
	}
	status := models.Status(c.Args().Get(1))
	if err := a.orders.UpdateStatus(c.Context, id, status); err != nil {
		return err
	}
	a.log.Info("service order status changed", zap.Uint("id", id), zap.String("status", string(status)))
	return nil
}

func (a *app) removeOrder(c *cli.Context) error {
	id, err := argID(c)
	if err != nil {
		return err
	}
	if err := a.orders.Remove(c.Context, id); err != nil {
		return err
	}
	a.log.Info("service order removed", zap.Uint("id", id))
	return nil
}

func (a *app) exportOrder(c *cli.Context) error {
	o, err := a.loadOrder(c)
	if err != nil {
		return err
	}
	out, err := a.svc.ExportPDF(c.Context, o.ID, i18n.LangFromContext(c.Context))
	if err != nil {
		return err
	}
	path := c.String("out")
	if path == "" {
		path = "OS-" + o.NumeroOS + ".pdf"
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	a.log.Info("service order exported", zap.Uint("id", o.ID), zap.String("file", path), zap.Int("bytes", len(out)))
	fmt.Fprintln(a.out, path)
	return nil
}

func (a *app) whatsappOrder(c *cli.Context) error {
	id, err := argID(c)
	if err != nil {
		return err
	}
	links, err := a.svc.WhatsAppLink(c.Context, id, i18n.LangFromContext(c.Context))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, links.App)
	fmt.Fprintln(a.out, links.Web)
	return nil
}
