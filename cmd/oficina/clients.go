package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/diewo77/oficina/i18n"
	"github.com/diewo77/oficina/internal/models"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func newTable(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func header(lang string, codes ...string) string {
	cols := make([]string, 0, len(codes))
	for _, c := range codes {
		cols = append(cols, strings.ToUpper(i18n.T(lang, c)))
	}
	return strings.Join(cols, "\t")
}

func clientFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "nome"},
		&cli.StringFlag{Name: "telefone"},
		&cli.StringFlag{Name: "rua"},
		&cli.StringFlag{Name: "numero"},
		&cli.StringFlag{Name: "bairro"},
		&cli.StringFlag{Name: "complemento"},
	}
}

func (a *app) clientCommands() *cli.Command {
	return &cli.Command{
		Name:  "clients",
		Usage: "manage clients",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list clients, optionally filtered by name",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "search", Aliases: []string{"q"}},
				},
				Action: a.listClients,
			},
			{
				Name:   "add",
				Usage:  "register a client",
				Flags:  clientFlags(),
				Action: a.addClient,
			},
			{
				Name:      "show",
				ArgsUsage: "ID",
				Action:    a.showClient,
			},
			{
				Name:      "edit",
				Usage:     "change the given fields of a client",
				ArgsUsage: "[flags] ID",
				Flags:     clientFlags(),
				Action:    a.editClient,
			},
			{
				Name:      "rm",
				Usage:     "delete a client and all of its service orders",
				ArgsUsage: "ID",
				Action:    a.removeClient,
			},
		},
	}
}

func (a *app) listClients(c *cli.Context) error {
	query := c.String("search")
	list, err := a.clients.SearchByName(c.Context, query)
	if err != nil {
		return err
	}
	lang := i18n.LangFromContext(c.Context)
	if len(list) == 0 {
		code := "clients.none"
		if query != "" {
			code = "clients.none_found"
		}
		fmt.Fprintln(a.out, i18n.T(lang, code))
		return nil
	}
	w := newTable(a.out)
	fmt.Fprintln(w, "ID\t"+header(lang, "doc.name", "doc.phone", "doc.address"))
	for _, cl := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", cl.ID, cl.Nome, cl.Telefone, cl.FullAddress())
	}
	return w.Flush()
}

func (a *app) addClient(c *cli.Context) error {
	id, err := a.clients.Create(c.Context, models.NewClient{
		Nome:        c.String("nome"),
		Telefone:    c.String("telefone"),
		Rua:         c.String("rua"),
		Numero:      c.String("numero"),
		Bairro:      c.String("bairro"),
		Complemento: c.String("complemento"),
	})
	if err != nil {
		return err
	}
	a.log.Info("client created", zap.Uint("id", id))
	fmt.Fprintln(a.out, id)
	return nil
}

func (a *app) loadClient(c *cli.Context) (*models.Client, error) {
	id, err := argID(c)
	if err != nil {
		return nil, err
	}
	cl, err := a.clients.GetByID(c.Context, id)
	if err != nil {
		return nil, err
	}
	if cl == nil {
		return nil, fmt.Errorf("client %d: %w", id, repository.ErrNotFound)
	}
	return cl, nil
}

func (a *app) showClient(c *cli.Context) error {
	cl, err := a.loadClient(c)
	if err != nil {
		return err
	}
	lang := i18n.LangFromContext(c.Context)
	w := newTable(a.out)
	fmt.Fprintf(w, "ID\t%d\n", cl.ID)
	fmt.Fprintf(w, "%s\t%s\n", i18n.T(lang, "doc.name"), cl.Nome)
	fmt.Fprintf(w, "%s\t%s\n", i18n.T(lang, "doc.phone"), cl.Telefone)
	fmt.Fprintf(w, "%s\t%s\n", i18n.T(lang, "doc.address"), cl.FullAddress())
	if cl.Complemento != "" {
		fmt.Fprintf(w, "\t%s\n", cl.Complemento)
	}
	return w.Flush()
}

func (a *app) editClient(c *cli.Context) error {
	cl, err := a.loadClient(c)
	if err != nil {
		return err
	}
	for name, field := range map[string]*string{
		"nome":        &cl.Nome,
		"telefone":    &cl.Telefone,
		"rua":         &cl.Rua,
		"numero":      &cl.Numero,
		"bairro":      &cl.Bairro,
		"complemento": &cl.Complemento,
	} {
		if c.IsSet(name) {
			*field = c.String(name)
		}
	}
	if err := a.clients.Update(c.Context, *cl); err != nil {
		return err
	}
	a.log.Info("client updated", zap.Uint("id", cl.ID))
	return nil
}

func (a *app) removeClient(c *cli.Context) error {
	id, err := argID(c)
	if err != nil {
		return err
	}
	if err := a.clients.Remove(c.Context, id); err != nil {
		return err
	}
	a.log.Info("client removed", zap.Uint("id", id))
	return nil
}
