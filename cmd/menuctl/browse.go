package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jhoicas/menu-api/internal/client/customer"
)

func newCategoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "Listar categorías",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := e.client.Categories(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, c := range list {
				fmt.Fprintf(tw, "%d\t%s\n", c.ID, c.Name)
			}
			return tw.Flush()
		},
	}
}

func newBrowseCmd(e *env) *cobra.Command {
	var category int64
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Ver la carta (solo ítems disponibles)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl := customer.NewController(e.client, e.formatter, e.log)
			if err := ctrl.Load(cmd.Context()); err != nil {
				// el detalle queda en el log; la carta muestra el mensaje genérico
				return ctrl.Render(cmd.OutOrStdout())
			}
			ctrl.Filter(category)
			if err := ctrl.RenderFilters(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return ctrl.Render(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int64Var(&category, "category", customer.AllCategories, "Filtrar por id de categoría (0 = todas)")
	return cmd
}
