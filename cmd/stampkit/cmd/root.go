package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/stampkit/core/config"
	"github.com/msto63/stampkit/core/log"
)

var (
	cfgFile string
	verbose bool

	cfg    *config.Config
	logger = log.New().WithName("stampkit").WithFormat(log.FormatConsole)
)

var rootCmd = &cobra.Command{
	Use:   "stampkit",
	Short: "stampkit - Zeitstempel und Dauern parsen und formatieren",
	Long: `stampkit parst menschenlesbare Zeit-Ausdrücke und formatiert
Zeitstempel im ISO-8601-Stil.

Befehle:
  parse     - "Wann"-Ausdruck in einen Zeitstempel parsen
  duration  - Dauer-Ausdruck in Mikrosekunden parsen
  format    - Epochen-Zeit in ISO-8601-Varianten formatieren
  short     - Kompakte relative Darstellung

Beispiele:
  stampkit parse "2012-09-22 16:34:22"
  stampkit parse yesterday
  stampkit parse "5 days ago"
  stampkit duration "1h 30min"
  stampkit format 1348331662 123456`,
	PersistentPreRunE: initRuntime,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./stampkit.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// initRuntime loads the optional config file and applies the log settings
// before any subcommand runs.
func initRuntime(cmd *cobra.Command, args []string) error {
	defaults := map[string]interface{}{
		"log": map[string]interface{}{
			"level":  "info",
			"format": "console",
		},
		"output": map[string]interface{}{
			"utc": false,
		},
	}

	path := cfgFile
	if path == "" {
		if _, err := os.Stat("stampkit.toml"); err == nil {
			path = "stampkit.toml"
		}
	}

	if path != "" {
		loaded, err := config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: "STAMPKIT",
			Defaults:  defaults,
		})
		if err != nil {
			printError("Config konnte nicht geladen werden", err)
			return err
		}
		cfg = loaded
	} else {
		loaded, err := config.LoadFromString("", config.FormatTOML)
		if err != nil {
			return err
		}
		for k, v := range defaults {
			loaded.Set(k, v)
		}
		cfg = loaded
	}

	level, err := log.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		level = log.DefaultLevel()
	}
	if verbose {
		level = log.LevelDebug
	}

	format, err := log.ParseFormat(cfg.GetString("log.format", "console"))
	if err != nil {
		format = log.FormatConsole
	}

	logger = logger.WithLevel(level).WithFormat(format)
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
