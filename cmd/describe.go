package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// describeCmd represents the describe command
var describeCmd = &cobra.Command{
	Use:   "describe <name>",
	Short: "Show the full descriptor of a catalog entry",
	Long: `Show the descriptor of one catalog entry: kind, periodicity and all
parameters, including the derived period.

Examples:
  waveform-catalog describe sine-1k
  waveform-catalog describe cardiac-60bpm -o yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	w, err := application.Catalog().Get(args[0])
	if err != nil {
		return err
	}
	d := w.Describe()

	rows := [][2]string{
		{"name", args[0]},
		{"kind", string(d.Kind)},
		{"periodic", fmt.Sprintf("%t", d.Periodic)},
		{"amplitude", fmt.Sprintf("%g", d.Amplitude)},
		{"offset", fmt.Sprintf("%g", d.Offset)},
	}
	if d.Frequency > 0 {
		rows = append(rows,
			[2]string{"frequency", fmt.Sprintf("%g Hz", d.Frequency)},
			[2]string{"period", fmt.Sprintf("%g s", d.Period)},
			[2]string{"phase", fmt.Sprintf("%g rad", d.Phase)},
		)
	}
	if d.HeartRate > 0 {
		rows = append(rows, [2]string{"heart_rate", fmt.Sprintf("%g bpm", d.HeartRate)})
	}
	if d.Domain != nil {
		rows = append(rows, [2]string{"domain",
			fmt.Sprintf("[%g, %g] s", d.Domain.Start, d.Domain.End)})
	}

	type namedDescriptor struct {
		Name       string              `json:"name" yaml:"name"`
		Descriptor waveform.Descriptor `json:"descriptor" yaml:"descriptor"`
	}
	return render(outputFormat, namedDescriptor{Name: args[0], Descriptor: d}, rows)
}
