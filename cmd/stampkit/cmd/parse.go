package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/stampkit/core/log"
	"github.com/msto63/stampkit/utils/stampx"
)

var (
	parseUTC   bool
	parseEpoch bool
	parseUsec  string
	parseTSep  bool
)

var parseCmd = &cobra.Command{
	Use:   "parse <ausdruck>",
	Short: "\"Wann\"-Ausdruck in einen Zeitstempel parsen",
	Long: `Parst einen Zeit-Ausdruck und gibt den Zeitstempel im
ISO-8601-Stil aus.

Unterstützte Ausdrücke:
  2012-09-22 16:34:22   absolutes Datum mit Uhrzeit
  2012-09-22            Datum (00:00:00)
  16:34                 Uhrzeit (heute)
  now, today, yesterday, tomorrow
  +5min, -3days, "5 days ago"
  Saturday 2012-09-22   mit Wochentag-Prüfung

Beispiele:
  stampkit parse yesterday
  stampkit parse "+1.5h"
  stampkit parse --utc --epoch "2012-09-22 16:34:22"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseUTC, "utc", "u", false, "Ausgabe in UTC statt lokaler Zeit")
	parseCmd.Flags().BoolVar(&parseEpoch, "epoch", false, "Zusätzlich Mikrosekunden seit der Epoche ausgeben")
	parseCmd.Flags().StringVar(&parseUsec, "usec", "none", "Subsekunden-Darstellung (dot, comma, none)")
	parseCmd.Flags().BoolVar(&parseTSep, "t-separator", false, "'T' statt Leerzeichen als Trenner")
}

func runParse(cmd *cobra.Command, args []string) error {
	expr := strings.Join(args, " ")
	logger.Debug("parsing timestamp expression", log.String("input", expr))

	ts, err := stampx.ParseTimestamp(expr)
	if err != nil {
		logger.LogError(err)
		printError("Ausdruck konnte nicht geparst werden", err)
		return err
	}

	flags := stampx.ISODate | stampx.ISOTime | stampx.ISOTimezone
	if !parseTSep {
		flags |= stampx.ISOSpace
	}
	if parseUTC || cfg.GetBool("output.utc") {
		flags |= stampx.ISOGMTime
	}
	switch strings.ToLower(parseUsec) {
	case "dot":
		flags |= stampx.ISODotUsec
	case "comma":
		flags |= stampx.ISOCommaUsec
	}

	out, err := stampx.TimestampISO(ts, flags)
	if err != nil {
		logger.LogError(err)
		return err
	}

	fmt.Println(out)
	if parseEpoch {
		fmt.Printf("Epoche: %d µs\n", uint64(ts))
	}
	return nil
}
