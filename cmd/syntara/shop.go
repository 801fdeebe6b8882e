package main

import (
	"fmt"
	"strings"

	"github.com/MichalMitros/syntara-client/internal/platform/models"
	"github.com/MichalMitros/syntara-client/internal/search"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// queryFlags binds search query flags to cmd.
func queryFlags(cmd *cobra.Command, query *search.Query) {
	cmd.Flags().Float64VarP(&query.Quantity, "quantity", "q", 1, "searched quantity")
	cmd.Flags().StringVarP(&query.Unit, "unit", "u", "unidades", "unit of quantity, e.g. kilogramos, litros")
}

func newSearchCmd(a *app) *cobra.Command {
	var (
		query   search.Query
		compare bool
	)

	cmd := &cobra.Command{
		Use:   "search <product>",
		Short: "Search retail offers of product",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Product = strings.Join(args, " ")
			out := cmd.OutOrStdout()

			if compare {
				comparison, err := a.search.Compare(cmd.Context(), query)
				if err != nil {
					return err
				}
				printResults(out, "Minorista:", comparison.Retail)
				printResults(out, "Mayorista:", comparison.Wholesale)
				return nil
			}

			results, err := a.search.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			printResults(out, fmt.Sprintf("Resultados para %q:", query.Product), results)
			return nil
		},
	}

	queryFlags(cmd, &query)
	cmd.Flags().BoolVar(&compare, "compare", false, "compare retail with wholesale offers")

	return cmd
}

func newWholesaleCmd(a *app) *cobra.Command {
	var query search.Query

	cmd := &cobra.Command{
		Use:   "wholesale <product>",
		Short: "Search wholesale offers of product",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query.Product = strings.Join(args, " ")

			results, err := a.search.Wholesale(cmd.Context(), query)
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), fmt.Sprintf("Mayoristas para %q:", query.Product), results)
			return nil
		},
	}

	queryFlags(cmd, &query)

	return cmd
}

func newHistoryCmd(a *app) *cobra.Command {
	list := func(cmd *cobra.Command, _ []string) error {
		history, err := a.search.History(cmd.Context())
		if err != nil {
			return err
		}
		printHistory(cmd.OutOrStdout(), history)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage search history",
		Args:  cobra.NoArgs,
		RunE:  list,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List search history, newest first",
			Args:  cobra.NoArgs,
			RunE:  list,
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Delete whole search history",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.client.ClearSearchHistory(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Historial eliminado.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete single history entry",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.DeleteHistoryItem(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Búsqueda eliminada del historial.")
				return nil
			},
		},
	)

	return cmd
}

func newCartCmd(a *app) *cobra.Command {
	show := func(cmd *cobra.Command, _ []string) error {
		cart, err := a.client.Cart(cmd.Context())
		if err != nil {
			return err
		}
		printCart(cmd.OutOrStdout(), cart)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Manage shopping cart",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show cart items and totals",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		newCartAddCmd(a),
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove item from cart",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if err := a.client.RemoveFromCart(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Producto eliminado del carrito.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all items from cart",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.client.ClearCart(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Carrito vacío.")
				return nil
			},
		},
	)

	return cmd
}

func newCartAddCmd(a *app) *cobra.Command {
	var (
		result   models.SearchResult
		url      string
		quantity float64
		unit     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add search result to cart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url != "" {
				result.URL = lo.ToPtr(url)
			}

			item, err := a.search.AddToCart(cmd.Context(), result, quantity, unit)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s (%g %s) agregado al carrito.\n", item.Product, item.Quantity, item.Unit)
			return nil
		},
	}

	cmd.Flags().StringVar(&result.ID, "id", "", "search result ID")
	cmd.Flags().StringVar(&result.Product, "product", "", "product name")
	cmd.Flags().StringVar(&result.Store, "store", "", "store name")
	cmd.Flags().Float64Var(&result.Price, "price", 0, "offer price")
	cmd.Flags().StringVar(&url, "url", "", "offer URL")
	cmd.Flags().Float64Var(&quantity, "quantity", 1, "quantity")
	cmd.Flags().StringVar(&unit, "unit", search.DefaultUnit, "unit")
	_ = cmd.MarkFlagRequired("product")
	_ = cmd.MarkFlagRequired("store")

	return cmd
}

func newPlanCmd(a *app) *cobra.Command {
	show := func(cmd *cobra.Command, _ []string) error {
		plan, err := a.client.MyPlan(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Plan: %s\n", plan.Type)
		return nil
	}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show or change subscription plan",
		Args:  cobra.NoArgs,
		RunE:  show,
	}

	var company string
	enterprise := &cobra.Command{
		Use:   "enterprise",
		Short: "Subscribe to Enterprise plan as company",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.search.UpgradeEnterprise(cmd.Context(), company); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Plan %s activado para %s.\n", models.PlanEnterprise, strings.TrimSpace(company))
			return nil
		},
	}
	enterprise.Flags().StringVar(&company, "company", "", "company name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show current plan",
			Args:  cobra.NoArgs,
			RunE:  show,
		},
		&cobra.Command{
			Use:   "pro",
			Short: "Subscribe to Pro plan",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := a.search.UpgradePro(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Plan %s activado.\n", models.PlanPro)
				return nil
			},
		},
		enterprise,
	)

	return cmd
}
