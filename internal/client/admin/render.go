package admin

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/lo"

	"github.com/jhoicas/menu-api/internal/application/dto"
	"github.com/jhoicas/menu-api/pkg/money"
)

// RenderStats escribe los contadores del panel.
func (c *Controller) RenderStats(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Total items: %d\nAvailable: %d\nCategories: %d\n",
		c.stats.TotalItems, c.stats.AvailableItems, c.stats.Categories)
	return err
}

// RenderItems escribe los ítems (incluye no disponibles) como tabla. categoryID 0 = todos.
func (c *Controller) RenderItems(w io.Writer, formatter *money.Formatter, categoryID int64) error {
	items := c.items
	if categoryID != 0 {
		items = lo.Filter(items, func(it dto.MenuItemResponse, _ int) bool { return it.CategoryID == categoryID })
	}
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, "No menu items yet.")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tSTATUS")
	for _, it := range items {
		status := "available"
		if !it.IsAvailable {
			status = "unavailable"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", it.ID, it.Name, it.CategoryName, formatter.Format(it.Price), status)
	}
	return tw.Flush()
}
