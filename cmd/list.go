package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/waveform-catalog/pkg/waveform"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all waveforms in the catalog",
	Long: `List every waveform registered in the catalog with its kind and
key parameters.

Examples:
  # Table of all catalog entries
  waveform-catalog list

  # Machine-readable listing
  waveform-catalog list -o json`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

type listEntry struct {
	Name       string              `json:"name" yaml:"name"`
	Descriptor waveform.Descriptor `json:"descriptor" yaml:"descriptor"`
}

func runList(cmd *cobra.Command, args []string) error {
	application, err := newApp()
	if err != nil {
		return err
	}

	cat := application.Catalog()
	entries := make([]listEntry, 0, cat.Len())
	rows := make([][2]string, 0, cat.Len())
	for _, name := range cat.Names() {
		w, err := cat.Get(name)
		if err != nil {
			return err
		}
		d := w.Describe()
		entries = append(entries, listEntry{Name: name, Descriptor: d})
		rows = append(rows, [2]string{name, summarize(d)})
	}

	return render(outputFormat, entries, rows)
}

func summarize(d waveform.Descriptor) string {
	switch {
	case d.Kind == waveform.KindDC:
		return fmt.Sprintf("%s offset=%g", d.Kind, d.Offset)
	case d.Kind == waveform.KindCardiac:
		return fmt.Sprintf("%s heart_rate=%g amplitude=%g", d.Kind, d.HeartRate, d.Amplitude)
	case d.Domain != nil:
		return fmt.Sprintf("%s domain=[%g, %g]", d.Kind, d.Domain.Start, d.Domain.End)
	default:
		return fmt.Sprintf("%s amplitude=%g frequency=%gHz phase=%g offset=%g",
			d.Kind, d.Amplitude, d.Frequency, d.Phase, d.Offset)
	}
}
