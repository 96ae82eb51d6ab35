package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the search order and global flags are
applied, as YAML. The first line names where it was loaded from.

Search order:
  --config <path>
  ~/.snake/config.yaml
  ./configs/snake.yaml
  embedded defaults

Examples:
  snake config
  snake config --difficulty hard
  snake config --defaults > ~/.snake/config.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	s := mustLoadSettings()
	cfg := s.cfg
	config.ApplyPreset(&cfg, s.preset)

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("# source: %s\n", s.source)
	fmt.Printf("# difficulty: %s\n", s.preset)
	os.Stdout.Write(data)
}
