package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	skerror "github.com/msto63/stampkit/core/error"
	"github.com/msto63/stampkit/utils/stampx"
)

var formatCmd = &cobra.Command{
	Use:   "format <sekunden> [mikrosekunden]",
	Short: "Epochen-Zeit in ISO-8601-Varianten formatieren",
	Long: `Formatiert eine Epochen-Zeit (Sekunden plus optionale
Mikrosekunden) in den gebräuchlichen ISO-8601-Varianten.

Beispiele:
  stampkit format 1348331662
  stampkit format 1348331662 123456`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFormat,
}

func init() {
	rootCmd.AddCommand(formatCmd)
}

func runFormat(cmd *cobra.Command, args []string) error {
	sec, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || sec < 0 {
		parseErr := skerror.New("Sekunden müssen eine nicht-negative Ganzzahl sein").
			WithCode(skerror.CodeInvalidInput).
			WithOperation("cmd.runFormat").
			WithDetail("input", args[0])
		printError("Ungültige Eingabe", parseErr)
		return parseErr
	}

	ts := stampx.FromUnix(sec)
	if len(args) == 2 {
		usec, err := strconv.ParseUint(args[1], 10, 64)
		if err != nil || usec >= uint64(stampx.UsecPerSec) {
			parseErr := skerror.New("Mikrosekunden müssen zwischen 0 und 999999 liegen").
				WithCode(skerror.CodeInvalidInput).
				WithOperation("cmd.runFormat").
				WithDetail("input", args[1])
			printError("Ungültige Eingabe", parseErr)
			return parseErr
		}
		ts += stampx.Usec(usec)
	}

	variants := []struct {
		label string
		flags stampx.ISOFlags
	}{
		{"Date", stampx.ISODate},
		{"Time", stampx.ISOTime},
		{"Full", stampx.ISODate | stampx.ISOTime | stampx.ISOCommaUsec},
		{"Zone", stampx.ISODate | stampx.ISOTime | stampx.ISODotUsec |
			stampx.ISOTimezone | stampx.ISOSpace},
	}

	buf := make([]byte, stampx.ISOBufSize)
	for _, v := range variants {
		n, err := stampx.FormatTimevalISO(ts, v.flags, buf)
		if err != nil {
			logger.LogError(err)
			return err
		}
		fmt.Printf("%s: '%s'\n", v.label, buf[:n])
	}
	return nil
}
