package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/RyanBlaney/waveform-catalog/configs"
)

// configTestCmd represents the config test command
var configTestCmd = &cobra.Command{
	Use:   "config-test",
	Short: "Test and display all configuration values",
	Long: `Test configuration loading and display all values to verify proper parsing.

This command loads the configuration and displays all values in a structured format
to help verify that your YAML configuration is being parsed correctly.

Examples:
  # Test with default config file
  waveform-catalog config-test

  # Test with specific config file
  waveform-catalog --config /path/to/config.yaml config-test`,
	RunE: runConfigTest,
}

func init() {
	rootCmd.AddCommand(configTestCmd)
}

func runConfigTest(cmd *cobra.Command, args []string) error {
	fmt.Println("WAVEFORM CATALOG CONFIGURATION TEST")
	fmt.Println(strings.Repeat("=", 80))

	// Load configuration
	config, err := configs.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	printSection("APPLICATION SETTINGS")
	printKeyValue("Verbose", fmt.Sprintf("%t", config.Verbose))
	printKeyValue("Log Level", config.LogLevel)
	printKeyValue("Output Format", config.OutputFormat)

	printSection("SAMPLING DEFAULTS")
	printKeyValue("Interval", fmt.Sprintf("%g s", config.Sampling.Interval))
	printKeyValue("Duration", fmt.Sprintf("%g s", config.Sampling.Duration))

	printSection("COMPARISON DEFAULTS")
	printKeyValue("Max RMSE", fmt.Sprintf("%g", config.Compare.MaxRMSE))
	printKeyValue("Points Per Period", fmt.Sprintf("%d", config.Compare.PointsPerPeriod))

	printSection("CATALOG")
	for _, def := range config.Catalog {
		printSubsection(def.Name)
		printKeyValue("  Kind", def.Kind)
		printKeyValue("  Amplitude", fmt.Sprintf("%g", def.Amplitude))
		if def.Frequency > 0 {
			printKeyValue("  Frequency", fmt.Sprintf("%g Hz", def.Frequency))
		}
		if def.Phase != 0 {
			printKeyValue("  Phase", fmt.Sprintf("%g rad", def.Phase))
		}
		printKeyValue("  Offset", fmt.Sprintf("%g", def.Offset))
		if def.HeartRate > 0 {
			printKeyValue("  Heart Rate", fmt.Sprintf("%g bpm", def.HeartRate))
		}
	}

	if err := configs.ValidateConfig(config); err != nil {
		printSection("VALIDATION")
		printKeyValue("Result", fmt.Sprintf("FAILED: %v", err))
		return err
	}

	printSection("VALIDATION")
	printKeyValue("Result", "OK")
	return nil
}

func printSection(title string) {
	fmt.Printf("\n%s\n", title)
	fmt.Println(strings.Repeat("-", len(title)))
}

func printSubsection(title string) {
	fmt.Printf("\n  %s\n", title)
}

func printKeyValue(key, value string) {
	if value == "" {
		fmt.Printf("%-35s\n", key)
	} else {
		fmt.Printf("%-35s %s\n", key+":", value)
	}
}
