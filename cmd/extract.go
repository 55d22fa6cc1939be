package cmd

import (
	"github.com/spf13/cobra"

	"github.com/RyanBlaney/waveform-catalog/pkg/logging"
	"github.com/RyanBlaney/waveform-catalog/pkg/waveform/analysis"
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <csv-file>",
	Short: "Extract the periodic pattern from a captured trace",
	Long: `Read a time/value CSV trace, detect the repeating pattern via
autocorrelation and print the descriptor of the recovered periodic waveform.

Fails when the trace holds fewer than two complete cycles or no periodic
pattern stands out.

Examples:
  waveform-catalog sample sine-1k > capture.csv
  waveform-catalog extract capture.csv -o json`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	trace, err := readTraceCSV(args[0])
	if err != nil {
		return err
	}

	application.Logger().Debug("trace loaded", logging.Fields{
		"file":     args[0],
		"samples":  trace.Len(),
		"interval": trace.Interval(),
	})

	w, err := analysis.ExtractPeriodic(trace)
	if err != nil {
		return err
	}

	d := w.Describe()
	rows := [][2]string{
		{"kind", string(d.Kind)},
		{"period", formatSeconds(d.Period)},
		{"frequency", formatHertz(d.Frequency)},
	}
	return render(outputFormat, d, rows)
}

func formatSeconds(v float64) string { return formatUnit(v, "s") }

func formatHertz(v float64) string { return formatUnit(v, "Hz") }
