package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/RyanBlaney/waveform-catalog/internal/app"
)

var titleCaser = cases.Title(language.English)

func formatUnit(v float64, unit string) string {
	return fmt.Sprintf("%.6g %s", v, unit)
}

// newApp builds the application context from the persistent flags
func newApp() (*app.App, error) {
	return app.NewApp(&app.Context{
		ConfigFile:   configFile,
		OutputFormat: outputFormat,
		Verbose:      verbose,
		Quiet:        quiet,
	})
}

// render writes v to stdout in the selected output format. Table output uses
// rows of label/value pairs with title-cased labels.
func render(format string, v any, tableRows [][2]string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(os.Stdout)
		defer enc.Close()
		return enc.Encode(v)
	case "table", "":
		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, row := range tableRows {
			label := titleCaser.String(strings.ReplaceAll(row[0], "_", " "))
			fmt.Fprintf(tw, "%s\t%s\n", label, row[1])
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
