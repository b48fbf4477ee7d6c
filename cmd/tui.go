package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/plumharbor/daylens/internal/config"
	"github.com/plumharbor/daylens/internal/stats"
	"github.com/plumharbor/daylens/internal/telemetry"
	"github.com/plumharbor/daylens/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui <logfile>",
	Short: "Interactive dashboard with category reassignment",
	Long: "Opens the dashboard in an interactive terminal UI. Entries can be moved\n" +
		"between categories; every move recomputes all statistics.",
	Args: cobra.ExactArgs(1),
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
	tuiCmd.Flags().Bool("local", false, "skip the remote classifier and use keyword rules only")
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	localOnly, _ := cmd.Flags().GetBool("local")

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	var em *telemetry.Emitter
	if cfg.TelemetryPath != "" {
		em, err = telemetry.NewEmitter(cfg.TelemetryPath)
		if err != nil {
			return err
		}
		defer em.Close()
	}

	model := tui.New(args[0], newClient(cfg, localOnly), lex,
		stats.Options{EnergyChangeThreshold: cfg.EnergyChangeThreshold}, em)

	_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}
