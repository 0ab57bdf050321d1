package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jhoicas/menu-api/internal/client/admin"
)

// loadAdmin inicializa el panel con la sesión guardada.
func (e *env) loadAdmin(cmd *cobra.Command) (*admin.Controller, error) {
	if err := e.requireSession(); err != nil {
		return nil, err
	}
	ctrl := admin.NewController(e.client, true, e.log)
	if err := ctrl.Init(cmd.Context()); err != nil {
		return nil, e.adminErr(err)
	}
	return ctrl, nil
}

func newStatsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Estadísticas del menú (admin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := e.loadAdmin(cmd)
			if err != nil {
				return err
			}
			return ctrl.RenderStats(cmd.OutOrStdout())
		},
	}
}

func newItemsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Gestionar ítems del menú (admin)",
	}
	cmd.AddCommand(newItemsListCmd(e), newItemsAddCmd(e), newItemsEditCmd(e), newItemsDeleteCmd(e))
	return cmd
}

func newItemsListCmd(e *env) *cobra.Command {
	var category int64
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Listar todos los ítems, incluidos los no disponibles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := e.loadAdmin(cmd)
			if err != nil {
				return err
			}
			return ctrl.RenderItems(cmd.OutOrStdout(), e.formatter, category)
		},
	}
	cmd.Flags().Int64Var(&category, "category", 0, "Filtrar por id de categoría")
	return cmd
}

// itemFlags flags del formulario compartidos por add y edit.
type itemFlags struct {
	name        string
	description string
	price       string
	category    int64
	image       string
	available   bool
}

func (f *itemFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.name, "name", "", "Nombre del ítem")
	fs.StringVar(&f.description, "description", "", "Descripción")
	fs.StringVar(&f.price, "price", "", "Precio, ej: 15.50")
	fs.Int64Var(&f.category, "category", 0, "Id de categoría")
	fs.StringVar(&f.image, "image", "", "Nombre o ruta de la imagen (se usa el nombre base)")
	fs.BoolVar(&f.available, "available", true, "Disponible para clientes")
}

// apply copia al formulario solo los flags indicados en la línea de comandos.
func (f *itemFlags) apply(fs *pflag.FlagSet, form *admin.Form) error {
	if fs.Changed("name") {
		form.Name = f.name
	}
	if fs.Changed("description") {
		form.Description = f.description
	}
	if fs.Changed("price") {
		p, err := decimal.NewFromString(strings.TrimSpace(f.price))
		if err != nil {
			return fmt.Errorf("precio inválido %q: %w", f.price, err)
		}
		form.Price = p
	}
	if fs.Changed("category") {
		form.CategoryID = f.category
	}
	if fs.Changed("image") {
		form.Image = f.image
	}
	if fs.Changed("available") {
		form.IsAvailable = f.available
	}
	return nil
}

func newItemsAddCmd(e *env) *cobra.Command {
	flags := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Crear un ítem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl, err := e.loadAdmin(cmd)
			if err != nil {
				return err
			}
			form := ctrl.OpenCreate()
			if err := flags.apply(cmd.Flags(), &form); err != nil {
				return err
			}
			msg, err := ctrl.Save(cmd.Context(), form)
			if err != nil {
				return e.adminErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	flags.register(cmd.Flags())
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newItemsEditCmd(e *env) *cobra.Command {
	flags := &itemFlags{}
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Sobrescribir un ítem; los campos no indicados conservan su valor actual",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctrl, err := e.loadAdmin(cmd)
			if err != nil {
				return err
			}
			form, err := ctrl.OpenEdit(id)
			if err != nil {
				return err
			}
			if err := flags.apply(cmd.Flags(), &form); err != nil {
				return err
			}
			msg, err := ctrl.Save(cmd.Context(), form)
			if err != nil {
				return e.adminErr(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}
	flags.register(cmd.Flags())
	return cmd
}

func newItemsDeleteCmd(e *env) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Borrar un ítem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctrl, err := e.loadAdmin(cmd)
			if err != nil {
				return err
			}
			confirm := func(name string) bool {
				if yes {
					return true
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Delete %q? [y/N]: ", name)
				answer, err := readLine(cmd.InOrStdin())
				if err != nil {
					return false
				}
				return strings.EqualFold(strings.TrimSpace(answer), "y") || strings.EqualFold(strings.TrimSpace(answer), "yes")
			}
			deleted, err := ctrl.Delete(cmd.Context(), id, confirm)
			if err != nil {
				return e.adminErr(err)
			}
			if !deleted {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Menu item deleted")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "No pedir confirmación")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", s)
	}
	return id, nil
}
