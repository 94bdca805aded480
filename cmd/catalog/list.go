package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/Modeva-Ecommerce/sepia-storefront/utils"
	"github.com/spf13/cobra"
)

func newListCmd(opts *cliOptions) *cobra.Command {
	var (
		categories []string
		discounts  []string
		maxPrice   float64
		page       int
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of filtered products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.service()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = cfg.Catalog.PageSize
			}

			q := services.CatalogQuery{
				Query:      opts.query,
				Categories: categories,
				Discounts:  discounts,
				Page:       page,
				Limit:      limit,
			}
			if cmd.Flags().Changed("max-price") {
				q.MaxPrice = &maxPrice
			}

			ctx, cancel := config.WithTimeout()
			defer cancel()

			res, err := svc.Catalog(ctx, q)
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			return writeProducts(cmd.OutOrStdout(), res)
		},
	}

	flags := cmd.Flags()
	flags.StringArrayVarP(&categories, "category", "c", nil, "category label (repeatable)")
	flags.StringArrayVarP(&discounts, "discount", "d", nil, "discount token: sale or full (repeatable)")
	flags.Float64Var(&maxPrice, "max-price", 0, "inclusive price ceiling")
	flags.IntVarP(&page, "page", "p", 1, "page number")
	flags.IntVarP(&limit, "limit", "l", 0, "products per page (default: CATALOG_PAGE_SIZE)")
	return cmd
}

func writeProducts(w io.Writer, res *services.CatalogResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tCATEGORY\tPRICE\tWAS")
	for _, p := range res.Products {
		price, _ := p.EffectivePrice()
		was := ""
		if p.HasSale() {
			was = utils.FormatPrice(p.OriginalPrice)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, p.Title, p.Category, utils.FormatPrice(&price), was)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\npage %d of %d, %d matching products\n", res.Page, res.TotalPages, res.Total)
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
