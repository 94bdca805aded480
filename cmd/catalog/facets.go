package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/Modeva-Ecommerce/sepia-storefront/config"
	"github.com/Modeva-Ecommerce/sepia-storefront/services"
	"github.com/Modeva-Ecommerce/sepia-storefront/utils"
	"github.com/spf13/cobra"
)

func newFacetsCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "facets",
		Short: "Print the category counts and price range of a listing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.service()
			if err != nil {
				return err
			}

			ctx, cancel := config.WithTimeout()
			defer cancel()

			res, err := svc.Catalog(ctx, services.CatalogQuery{Query: opts.query})
			if err != nil {
				return err
			}
			if opts.asJSON {
				return writeJSON(cmd.OutOrStdout(), res.Facets)
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "CATEGORY\tPRODUCTS")
			for _, c := range res.Facets.Categories {
				fmt.Fprintf(tw, "%s\t%d\n", c.Label, c.Count)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			bounds := res.Facets.PriceRange
			_, err = fmt.Fprintf(out, "\nprice range %s to %s\n", utils.FormatPrice(&bounds.Min), utils.FormatPrice(&bounds.Max))
			return err
		},
	}
}
