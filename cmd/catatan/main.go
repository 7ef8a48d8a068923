// Command catatan is the CLI for the Catatanku notes service.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	catatanku "github.com/muhzarfan/catatanku"
	"github.com/muhzarfan/catatanku/internal/config"
	"github.com/muhzarfan/catatanku/session"
)

var (
	apiURL string
	debug  bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catatan",
		Short:         "Catatanku CLI for managing your notes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()

			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})

			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("CATATANKU_DEBUG", "true")
				log.Debug().Msg("debug logging enabled")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Base URL of the Catatanku backend (overrides CATATANKU_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")

	rootCmd.AddCommand(newRegisterCmd())
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newWhoamiCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newCreateCmd())
	rootCmd.AddCommand(newEditCmd())
	rootCmd.AddCommand(newDeleteCmd())

	return rootCmd
}

// app bundles the wired SDK pieces a subcommand needs.
type app struct {
	client  *catatanku.Client
	manager *catatanku.Manager
}

// newApp builds the client from env config and flags and restores any
// persisted session.
func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if apiURL != "" {
		cfg.APIURL = apiURL
	}

	store := session.NewStore(session.NewFileStorage(cfg.SessionFile))
	client := catatanku.New(cfg.APIURL, store,
		catatanku.WithHTTPTimeout(cfg.HTTPTimeout),
		catatanku.WithDebugLogging(cfg.Debug),
	)
	client.Restore()

	return &app{client: client, manager: catatanku.NewManager(client)}, nil
}
