package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/stampkit/core/log"
	"github.com/msto63/stampkit/utils/stampx"
)

var shortHHMM bool

var shortCmd = &cobra.Command{
	Use:   "short <ausdruck>",
	Short: "Kompakte relative Darstellung",
	Long: `Parst einen Zeit-Ausdruck und gibt ihn kompakt relativ zur
aktuellen Zeit aus: heutige Zeitstempel als "HH:MM", Zeitstempel aus
diesem Jahr als "MonTT", ältere als "JJJJ-MonTT".

Beispiele:
  stampkit short "2 hours ago"
  stampkit short --hhmm "2012-09-22"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShort,
}

func init() {
	rootCmd.AddCommand(shortCmd)

	shortCmd.Flags().BoolVar(&shortHHMM, "hhmm", false, "Uhrzeit auch bei Zeitstempeln aus diesem Jahr anzeigen")
}

func runShort(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	logger.Debug("parsing timestamp expression", log.String("input", expr))

	ts, err := stampx.ParseTimestamp(expr)
	if err != nil {
		logger.LogError(err)
		printError("Ausdruck konnte nicht geparst werden", err)
		return err
	}

	var flags stampx.ShortFlags
	if shortHHMM {
		flags |= stampx.ShortThisYearHHMM
	}

	out, err := stampx.ShortString(ts, 0, flags)
	if err != nil {
		logger.LogError(err)
		return err
	}

	fmt.Println(out)
	return nil
}
