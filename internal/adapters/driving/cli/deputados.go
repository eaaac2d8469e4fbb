package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/brado-project/brado-cli/internal/core/domain"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
)

var deputadosCmd = &cobra.Command{
	Use:   "deputados",
	Short: "Browse legislator profiles and expenses",
	Long: `Browse legislator profiles from the Câmara open-data mirror.

Listings are fetched from the civic API and can be filtered, sorted,
and paginated locally.`,
}

var deputadosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List legislators",
	RunE:  runDeputadosList,
}

var deputadosShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one legislator profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeputadosShow,
}

var deputadosExpensesCmd = &cobra.Command{
	Use:   "expenses [id]",
	Short: "List reimbursements for one legislator",
	Args:  cobra.ExactArgs(1),
	RunE:  runDeputadosExpenses,
}

var deputadosResumoCmd = &cobra.Command{
	Use:   "resumo",
	Short: "Show aggregated expense summaries",
	RunE:  runDeputadosResumo,
}

// Flags.
var (
	depNome       string
	depUF         string
	depPartido    string
	depSearch     string
	depSort       string
	depDescending bool
	depLimit      int
	depOffset     int
	depJSON       bool

	expAno   int
	expMes   int
	expLimit int
	expPage  int

	resumoLimit int
)

func init() {
	deputadosListCmd.Flags().StringVar(&depNome, "nome", "", "filter by (partial) name, server-side")
	deputadosListCmd.Flags().StringVar(&depUF, "uf", "", "filter by state abbreviation")
	deputadosListCmd.Flags().StringVar(&depPartido, "partido", "", "filter by party abbreviation")
	deputadosListCmd.Flags().StringVar(&depSearch, "search", "", "filter by name or party, client-side")
	deputadosListCmd.Flags().StringVar(&depSort, "sort", "name", "sort key (name, party, uf)")
	deputadosListCmd.Flags().BoolVar(&depDescending, "desc", false, "reverse the ordering")
	deputadosListCmd.Flags().IntVarP(&depLimit, "limit", "n", 0, "page size (0 = everything)")
	deputadosListCmd.Flags().IntVar(&depOffset, "offset", 0, "pagination offset")
	deputadosListCmd.Flags().BoolVar(&depJSON, "json", false, "output as JSON")

	deputadosExpensesCmd.Flags().IntVar(&expAno, "ano", 0, "filter by year")
	deputadosExpensesCmd.Flags().IntVar(&expMes, "mes", 0, "filter by month")
	deputadosExpensesCmd.Flags().IntVarP(&expLimit, "limit", "n", 0, "maximum number of lines")
	deputadosExpensesCmd.Flags().IntVar(&expPage, "page", 0, "result page")

	deputadosResumoCmd.Flags().IntVarP(&resumoLimit, "limit", "n", 0, "maximum number of rows")

	deputadosCmd.AddCommand(deputadosListCmd)
	deputadosCmd.AddCommand(deputadosShowCmd)
	deputadosCmd.AddCommand(deputadosExpensesCmd)
	deputadosCmd.AddCommand(deputadosResumoCmd)
	rootCmd.AddCommand(deputadosCmd)
}

func runDeputadosList(cmd *cobra.Command, _ []string) error {
	if deputadosService == nil {
		return errors.New("deputados service not configured")
	}

	query := domain.DeputadoQuery{
		Nome:    depNome,
		UF:      depUF,
		Partido: depPartido,
	}
	filter := driving.DeputadoFilter{
		Search:     depSearch,
		Sort:       driving.DeputadoSort(depSort),
		Descending: depDescending,
		Offset:     depOffset,
		Limit:      depLimit,
	}

	deputados, err := deputadosService.List(context.Background(), query, filter)
	if err != nil {
		return fmt.Errorf("listing deputados: %w", err)
	}

	if depJSON {
		data, err := json.MarshalIndent(deputados, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(deputados) == 0 {
		cmd.Println("No legislators found.")
		return nil
	}

	for i := range deputados {
		d := &deputados[i]
		cmd.Printf("  %d  %s (%s/%s)\n", d.ID, d.DisplayName(), d.StatusSiglaPartido, d.StatusSiglaUF)
	}
	cmd.Printf("\n%d legislators\n", len(deputados))
	return nil
}

func runDeputadosShow(cmd *cobra.Command, args []string) error {
	if deputadosService == nil {
		return errors.New("deputados service not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid legislator id: %s", args[0])
	}

	d, err := deputadosService.Get(context.Background(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			cmd.Printf("No legislator with id %d.\n", id)
			return nil
		}
		return fmt.Errorf("fetching legislator: %w", err)
	}

	cmd.Printf("%s\n", d.DisplayName())
	if d.NomeCivil != "" && d.NomeCivil != d.DisplayName() {
		cmd.Printf("  Civil name: %s\n", d.NomeCivil)
	}
	cmd.Printf("  Party: %s  State: %s\n", d.StatusSiglaPartido, d.StatusSiglaUF)
	if d.StatusSituacao != "" {
		cmd.Printf("  Status: %s (%s)\n", d.StatusSituacao, d.StatusCondicaoEleitoral)
	}
	if d.Escolaridade != "" {
		cmd.Printf("  Education: %s\n", d.Escolaridade)
	}
	if d.StatusEmail != "" {
		cmd.Printf("  Email: %s\n", d.StatusEmail)
	}
	if d.GabineteNome != "" {
		cmd.Printf("  Office: %s", d.GabineteNome)
		if d.GabineteTelefone != "" {
			cmd.Printf(" (%s)", d.GabineteTelefone)
		}
		cmd.Println()
	}
	return nil
}

func runDeputadosExpenses(cmd *cobra.Command, args []string) error {
	if deputadosService == nil {
		return errors.New("deputados service not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid legislator id: %s", args[0])
	}

	query := domain.ExpenseQuery{
		Ano:   expAno,
		Mes:   expMes,
		Limit: expLimit,
		Page:  expPage,
	}
	items, err := deputadosService.Expenses(context.Background(), id, query)
	if err != nil {
		return fmt.Errorf("listing expenses: %w", err)
	}

	if len(items) == 0 {
		cmd.Println("No expenses found.")
		return nil
	}

	var total float64
	for i := range items {
		e := &items[i]
		cmd.Printf("  %04d-%02d  R$ %10.2f  %s", e.Ano, e.Mes, e.ValorLiquido, e.TipoDespesa)
		if e.NomeFornecedor != "" {
			cmd.Printf("  (%s)", e.NomeFornecedor)
		}
		cmd.Println()
		total += e.ValorLiquido
	}
	cmd.Printf("\nTotal: R$ %.2f across %d lines\n", total, len(items))
	return nil
}

func runDeputadosResumo(cmd *cobra.Command, _ []string) error {
	if deputadosService == nil {
		return errors.New("deputados service not configured")
	}

	summaries, err := deputadosService.ExpenseSummary(context.Background(), resumoLimit)
	if err != nil {
		return fmt.Errorf("fetching summaries: %w", err)
	}

	if len(summaries) == 0 {
		cmd.Println("No summaries available.")
		return nil
	}

	for _, s := range summaries {
		cmd.Printf("  %d  %04d-%02d  R$ %10.2f (3-month avg R$ %.2f)\n",
			s.ID, s.LatestYear, s.LatestMonth, s.LatestTotalLiquido, s.AvgLast3MonthsLiquido)
	}
	return nil
}
