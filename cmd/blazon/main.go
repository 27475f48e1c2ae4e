// blazon is the annotation scanner and registration-code generator.
//
// Go has no decorators, so blazon declarations live in doc comments:
//
//	// TabPanel groups tabs and renders the selected pane.
//	//
//	// @component selector=tab-panel events="select:tabSelect"
//	// @view templateUrl=tab_panel.html
//	type TabPanel struct {
//		// @query type=Tab descendants=true
//		Tabs []*Tab
//	}
//
// "blazon gen ./..." scans the module and writes one registration file per
// annotated package, containing the equivalent blazon.For declaration
// chains in source order. Host bindings and listeners are declared on
// members with @hostBinding and @hostListener.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/blazon-ui/blazon/config"
)

// Settings is the env-configurable half of the generator, under the BLAZON_
// prefix (BLAZON_OUTPUT, BLAZON_DRY_RUN, BLAZON_VERBOSE).
type Settings struct {
	Output  string `mapstructure:"output"`
	DryRun  bool   `mapstructure:"dry_run"`
	Verbose bool   `mapstructure:"verbose"`
}

func main() {
	root := &cobra.Command{
		Use:           "blazon",
		Short:         "Declarative metadata tooling for blazon",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(genCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func genCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen [packages]",
		Short: "Scan for annotations and generate registration files",
		Long: "Scans the given package patterns (default ./...) for blazon annotations\n" +
			"and writes one registration file per annotated package.",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.Load[Settings](
				config.WithEnvPrefix("BLAZON"),
				config.WithDefault("output", "blazon_gen.go"),
			)
			if err != nil {
				return fmt.Errorf("failed to load settings:\n\t%w", err)
			}
			if cmd.Flags().Changed("output") {
				settings.Output, _ = cmd.Flags().GetString("output")
			}
			if cmd.Flags().Changed("dry-run") {
				settings.DryRun, _ = cmd.Flags().GetBool("dry-run")
			}
			if cmd.Flags().Changed("verbose") {
				settings.Verbose, _ = cmd.Flags().GetBool("verbose")
			}

			patterns := args
			if len(patterns) == 0 {
				patterns = []string{"./..."}
			}
			return runGen(settings, patterns)
		},
	}
	cmd.Flags().StringP("output", "o", "blazon_gen.go", "name of the generated file in each package")
	cmd.Flags().Bool("dry-run", false, "print generated files instead of writing them")
	cmd.Flags().BoolP("verbose", "v", false, "debug logging")
	return cmd
}

func runGen(settings *Settings, patterns []string) error {
	level := zerolog.InfoLevel
	if settings.Verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(level).
		With().
		Timestamp().
		Logger()

	startScan := time.Now()
	byDir, err := scan(&logger, patterns...)
	if err != nil {
		return err
	}
	logger.Info().
		Int("packages", len(byDir)).
		Dur("took", time.Since(startScan)).
		Msg("Scan done")

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	for _, dir := range dirs {
		defs := byDir[dir]
		source, err := generate(&logger, defs[0].PkgName, defs)
		if err != nil {
			return err
		}

		target := filepath.Join(dir, settings.Output)
		if settings.DryRun {
			fmt.Printf("--- %s ---\n%s", target, source)
			continue
		}
		if err := os.WriteFile(target, source, 0o644); err != nil {
			return fmt.Errorf("failed to write %s:\n\t%w", target, err)
		}
		logger.Info().Str("file", target).Int("classes", len(defs)).Msg("Registration file written")
	}

	return nil
}
