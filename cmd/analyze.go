package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/plumharbor/daylens/internal/classify"
	"github.com/plumharbor/daylens/internal/config"
	"github.com/plumharbor/daylens/internal/journal"
	"github.com/plumharbor/daylens/internal/keystore"
	"github.com/plumharbor/daylens/internal/stats"
	"github.com/plumharbor/daylens/internal/telemetry"
	"github.com/plumharbor/daylens/internal/ui"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [logfile]",
	Short: "Parse a daily log and render the immersion dashboard",
	Long: "Reads a daily activity log from a file (or stdin when no file is given),\n" +
		"classifies every time block, and prints the derived statistics.",
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Bool("local", false, "skip the remote classifier and use keyword rules only")
	analyzeCmd.Flags().Bool("advice", false, "generate coaching advice alongside the dashboard")
	analyzeCmd.Flags().Bool("json", false, "emit the report as JSON for external consumers")
	analyzeCmd.Flags().Bool("watch", false, "re-run the analysis whenever the log file changes")
}

// jsonReport is the --json output shape handed to external rendering and
// export collaborators.
type jsonReport struct {
	Entries     []*journal.Entry `json:"entries"`
	Thoughts    []string         `json:"thoughts,omitempty"`
	Actions     []string         `json:"actions,omitempty"`
	Fallback    bool             `json:"fallback"`
	Report      *stats.Report    `json:"report"`
	Advice      string           `json:"advice,omitempty"`
	AdviceError string           `json:"advice_error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	localOnly, _ := cmd.Flags().GetBool("local")
	wantAdvice, _ := cmd.Flags().GetBool("advice")
	asJSON, _ := cmd.Flags().GetBool("json")
	watch, _ := cmd.Flags().GetBool("watch")

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

	client := newClient(cfg, localOnly)

	if watch {
		if len(args) == 0 {
			return errors.New("--watch requires a log file argument")
		}
		return watchLoop(args[0], client, lex, cfg, em, wantAdvice, asJSON)
	}

	raw, err := readLog(args)
	if err != nil {
		return err
	}
	return analyzeOnce(os.Stdout, raw, client, lex, cfg, em, wantAdvice, asJSON)
}

// analyzeOnce runs the full pipeline over one log snapshot: parse and
// validate, classify (remote with local fallback), derive statistics,
// render. Advice generation runs concurrently and is printed when it
// resolves; its failure never invalidates the dashboard.
func analyzeOnce(out io.Writer, raw string, client *classify.Client, lex *journal.Lexicon, cfg config.Config, em *telemetry.Emitter, wantAdvice, asJSON bool) error {
	session := journal.NewSession()
	if err := session.Load(raw); err != nil {
		if errors.Is(err, journal.ErrNoEntries) {
			return fmt.Errorf("no time entries found — lines must look like \"- 09:00 ~ 10:00 reading ❚❚❚\"")
		}
		return err
	}
	em.Emit(telemetry.KindParseDone, session.Seq(), map[string]int{"entries": len(session.Entries)})

	ctx := context.Background()
	res := classify.Categorize(ctx, client, lex, session.UserEntries(), session.Seq(), em)
	session.Fallback = res.Fallback
	if cfg.Verbose {
		switch {
		case res.RemoteErr != nil:
			fmt.Fprintf(os.Stderr, "remote classification failed, used keyword rules: %v\n", res.RemoteErr)
		case res.Fallback:
			fmt.Fprintln(os.Stderr, "classified with local keyword rules")
		default:
			fmt.Fprintln(os.Stderr, "classified with remote model")
		}
	}

	// Advice runs concurrently with rendering; classification has already
	// completed, so the categories it reads are final.
	var adviceCh chan classify.Advice
	if wantAdvice && client != nil {
		adviceCh = make(chan classify.Advice, 1)
		seq := session.Seq()
		go func() {
			text, err := client.Advise(ctx, session.Entries)
			if err != nil {
				adviceCh <- classify.Advice{State: classify.AdviceFailed, Err: err, Seq: seq}
				return
			}
			adviceCh <- classify.Advice{State: classify.AdviceReady, Text: text, Seq: seq}
		}()
	}

	report := stats.BuildReport(session.Entries, stats.Options{EnergyChangeThreshold: cfg.EnergyChangeThreshold})
	em.Emit(telemetry.KindAnalysisDone, session.Seq(), map[string]bool{"fallback": res.Fallback})

	if asJSON {
		body := jsonReport{
			Entries:  session.Entries,
			Thoughts: session.Thoughts,
			Actions:  session.Actions,
			Fallback: session.Fallback,
			Report:   report,
		}
		if adviceCh != nil {
			adv := <-adviceCh
			if adv.State == classify.AdviceFailed {
				em.Emit(telemetry.KindAdviceFailed, adv.Seq, map[string]string{"error": adv.Err.Error()})
				body.AdviceError = adv.Err.Error()
			} else {
				body.Advice = adv.Text
			}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(body)
	}

	renderer := ui.New(lex)
	fmt.Fprintln(out, renderer.Dashboard(session, report))

	if adviceCh != nil {
		adv := <-adviceCh
		if adv.State == classify.AdviceFailed {
			em.Emit(telemetry.KindAdviceFailed, adv.Seq, map[string]string{"error": adv.Err.Error()})
		}
		fmt.Fprintln(out, renderer.AdvicePanel(adv))
	}
	return nil
}

// watchLoop analyzes the file once, then re-runs on every debounced change.
func watchLoop(path string, client *classify.Client, lex *journal.Lexicon, cfg config.Config, em *telemetry.Emitter, wantAdvice, asJSON bool) error {
	run := func() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "daylens: %v\n", err)
			return
		}
		if err := analyzeOnce(os.Stdout, string(data), client, lex, cfg, em, wantAdvice, asJSON); err != nil {
			fmt.Fprintf(os.Stderr, "daylens: %v\n", err)
		}
	}
	run()

	w, err := journal.NewWatcher(path)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintf(os.Stderr, "watching %s — ctrl+c to stop\n", path)
	for range w.Changes {
		fmt.Fprintf(os.Stderr, "\n%s changed, re-analyzing\n", path)
		run()
	}
	return nil
}

// readLog reads the log text from the file argument or stdin.
func readLog(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// loadLexicon returns the built-in lexicon, with the user overlay applied
// when one is configured.
func loadLexicon(cfg config.Config) (*journal.Lexicon, error) {
	if cfg.LexiconPath == "" {
		return journal.DefaultLexicon(), nil
	}
	return journal.LoadLexicon(cfg.LexiconPath)
}

// newClient builds the remote classification client, or nil when the user
// asked for local-only mode or no API key is available. A nil client makes
// the pipeline fall straight through to the keyword classifier.
func newClient(cfg config.Config, localOnly bool) *classify.Client {
	if localOnly {
		return nil
	}
	key := os.Getenv("DAYLENS_API_KEY")
	if key == "" {
		key, _ = keystore.New().Load()
	}
	if key == "" {
		return nil
	}
	return classify.NewClient(cfg.APIBaseURL, key, cfg.Model,
		time.Duration(cfg.RequestTimeoutSeconds)*time.Second)
}
