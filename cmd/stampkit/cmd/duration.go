package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/stampkit/core/log"
	"github.com/msto63/stampkit/utils/stampx"
)

var durationCmd = &cobra.Command{
	Use:   "duration <ausdruck>",
	Short: "Dauer-Ausdruck in Mikrosekunden parsen",
	Long: `Parst einen Dauer-Ausdruck und gibt die Dauer in Mikrosekunden
und Sekunden aus.

Einheiten: usec/us, msec/ms, s/sec/seconds, m/min/minutes, h/hr/hours,
d/days, w/weeks, months, y/years. Ohne Einheit gelten Sekunden.
Mehrere Terme werden addiert.

Beispiele:
  stampkit duration 90
  stampkit duration "1h 30min"
  stampkit duration 1.5h`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDuration,
}

func init() {
	rootCmd.AddCommand(durationCmd)
}

func runDuration(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	logger.Debug("parsing duration expression", log.String("input", expr))

	d, err := stampx.ParseDuration(expr)
	if err != nil {
		logger.LogError(err)
		printError("Dauer konnte nicht geparst werden", err)
		return err
	}

	fmt.Printf("Mikrosekunden: %d\n", uint64(d))
	fmt.Printf("Sekunden:      %d.%06d\n", d.Seconds(), uint64(d.SubSecond()))
	return nil
}
