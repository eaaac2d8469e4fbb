// Package cli implements the cobra command tree. Commands talk to the
// core services through the driving ports; production wiring happens in
// bootstrap, tests inject fakes into the package-level service vars.
package cli

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/brado-project/brado-cli/internal/adapters/driven/brado"
	"github.com/brado-project/brado-cli/internal/adapters/driven/civic"
	configfile "github.com/brado-project/brado-cli/internal/adapters/driven/config/file"
	"github.com/brado-project/brado-cli/internal/adapters/driven/storage/memory"
	"github.com/brado-project/brado-cli/internal/adapters/driven/storage/sqlite"
	"github.com/brado-project/brado-cli/internal/core/ports/driven"
	"github.com/brado-project/brado-cli/internal/core/ports/driving"
	"github.com/brado-project/brado-cli/internal/core/services"
	"github.com/brado-project/brado-cli/internal/logger"
)

var version = "dev"

// Persistent flags.
var (
	verboseFlag bool
	configDir   string
)

// Services the commands run against. Production values are created by
// bootstrap; tests assign fakes directly.
var (
	bradoAPI           driven.BradoAPI
	interviewService   driving.InterviewService
	deputadosService   driving.DeputadosService
	budgetService      driving.BudgetService
	legislativeService driving.LegislativeService
)

// bootstrapFn builds the production service graph. Execute registers
// it; tests leave it nil so rootCmd.Execute never touches the network
// or the home directory.
var bootstrapFn func() error

var rootCmd = &cobra.Command{
	Use:   "brado",
	Short: "Civic data and political interview client",
	Long: `brado is a client for the Brado civic platform.

It runs the Likert political interview, simulates budget allocations,
and browses legislator profiles and expenses from the Câmara open-data
mirror. Authentication is automatic: the client acquires and refreshes
its own bearer token.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verboseFlag)
		if bootstrapFn != nil && interviewService == nil {
			return bootstrapFn()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.brado)")
}

// Execute runs the CLI with production wiring.
func Execute(v string) error {
	version = v
	bootstrapFn = bootstrap
	return rootCmd.Execute()
}

// bootstrap builds the production service graph from the config file.
// Runs after flag parsing so --config and --verbose are in effect.
func bootstrap() error {
	configStore, err := configfile.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	settings := configfile.ResolveSettings(configStore)

	if settings.Verbose {
		logger.SetVerbose(true)
	}
	logger.Debug("config loaded from %s", configStore.Path())

	store, err := sqlite.NewStore(settings.DataDir)
	if err != nil {
		return fmt.Errorf("opening data store: %w", err)
	}
	sessions := store.SessionStore()

	httpClient := &http.Client{Timeout: brado.DefaultTimeout}
	if settings.Timeout > 0 {
		httpClient.Timeout = settings.Timeout
	}

	// Tokens live in memory only; every process start acquires a fresh
	// one through the persisted client ID.
	creds := memory.NewCredentialStore()
	bradoAPI = brado.NewClientWithHTTPClient(settings.APIBaseURL, creds, sessions, httpClient)
	civicAPI := civic.NewClient(settings.CivicBaseURL)

	interviewService = services.NewInterviewService(bradoAPI, sessions)
	deputadosService = services.NewDeputadosService(civicAPI)
	budgetService = services.NewBudgetService(bradoAPI)
	legislativeService = services.NewLegislativeService(bradoAPI)

	return nil
}
