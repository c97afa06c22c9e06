package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"

	"kontrola/internal/app"
	"kontrola/internal/registry/models"
	id "kontrola/pkg/domain"
)

type appFactory func() (*app.App, error)

func newRootCmd(out io.Writer, newApp appFactory) *cobra.Command {
	root := &cobra.Command{
		Use:   "kontrola",
		Short: "Counterparty due-diligence reports from the command line",
		Long: `kontrola fetches a company's financial statements and public registry
records by tax id and prints the derived report as JSON.

Provider keys are read from FINANCES_API_KEY and REGISTRY_API_KEY
(or a .env file in the working directory).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(financesCmd(newApp))
	root.AddCommand(registryCmd(newApp))
	root.AddCommand(reportCmd(newApp))
	return root
}

func financesCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "finances <inn>",
		Short: "Print the financial report of a company",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inn, a, err := prepare(newApp, args[0])
			if err != nil {
				return err
			}
			report, err := a.Finance.Report(cmd.Context(), inn)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), report)
		},
	}
}

func reportCmd(newApp appFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "report <inn>",
		Short: "Print the combined finance and registry report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inn, a, err := prepare(newApp, args[0])
			if err != nil {
				return err
			}
			combined, err := a.Report.Build(cmd.Context(), inn)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), combined)
		},
	}
}

func registryCmd(newApp appFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registry",
		Short: "Query public registry records",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "summary <inn>",
		Short: "Print counts and latest dates of every record family",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inn, a, err := prepare(newApp, args[0])
			if err != nil {
				return err
			}
			summary, err := a.Registry.Summary(cmd.Context(), inn)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), summary)
		},
	})
	cmd.AddCommand(registryListCmd(newApp))
	return cmd
}

type listFlags struct {
	page, limit int
	sort        string
	law, role   string

	partyRole, actual, active string
	dateFrom, dateTo          string
}

func registryListCmd(newApp appFactory) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list <family> <inn>",
		Short: "Print one page of a record family",
		Long: `Print one page of litigation, enforcement, inspections or contracts.

Contracts accept --law (44, 94, 223) and --role (customer, supplier);
without them every combination is merged. Litigation accepts the
--party-role, --actual, --active, --date-from and --date-to filters.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			family, err := models.ParseFamily(args[0])
			if err != nil {
				return err
			}
			inn, a, err := prepare(newApp, args[1])
			if err != nil {
				return err
			}
			q, err := f.query(family, inn)
			if err != nil {
				return err
			}
			page, err := a.Registry.Page(cmd.Context(), q)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	cmd.Flags().IntVar(&f.page, "page", 1, "page number, starting at 1")
	cmd.Flags().IntVar(&f.limit, "limit", 0, "records per page (0 uses the configured default)")
	cmd.Flags().StringVar(&f.sort, "sort", models.DefaultSort, "provider sort order")
	cmd.Flags().StringVar(&f.law, "law", "", "contracts: procurement law (44, 94, 223)")
	cmd.Flags().StringVar(&f.role, "role", "", "contracts: customer or supplier")
	cmd.Flags().StringVar(&f.partyRole, "party-role", "", "litigation: party role filter")
	cmd.Flags().StringVar(&f.actual, "actual", "", "litigation: actual cases filter")
	cmd.Flags().StringVar(&f.active, "active", "", "litigation: active cases filter")
	cmd.Flags().StringVar(&f.dateFrom, "date-from", "", "litigation: lower date bound")
	cmd.Flags().StringVar(&f.dateTo, "date-to", "", "litigation: upper date bound")
	return cmd
}

func (f listFlags) query(family models.Family, inn id.TaxID) (models.Query, error) {
	q := models.Query{
		INN:    inn,
		Family: family,
		Page:   f.page,
		Limit:  f.limit,
		Sort:   f.sort,
	}
	switch family {
	case models.FamilyContracts:
		if f.law != "" {
			law, err := models.ParseLawType(f.law)
			if err != nil {
				return models.Query{}, err
			}
			q.Law = &law
		}
		if f.role != "" {
			role, err := models.ParseContractRole(f.role)
			if err != nil {
				return models.Query{}, err
			}
			q.Role = role
		}
	case models.FamilyLitigation:
		q.PartyRole = f.partyRole
		q.Actual = f.actual
		q.Active = f.active
		q.DateFrom = f.dateFrom
		q.DateTo = f.dateTo
	}
	return q, nil
}

func prepare(newApp appFactory, rawINN string) (id.TaxID, *app.App, error) {
	inn, err := id.ParseTaxID(rawINN)
	if err != nil {
		return "", nil, err
	}
	a, err := newApp()
	if err != nil {
		return "", nil, err
	}
	return inn, a, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
