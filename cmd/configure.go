package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/rostr/internal/cli"
	"github.com/inovacc/rostr/internal/config"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	showConfig  bool
	resetConfig bool
)

var configureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Configure rostr settings",
	Long:  `Interactively configure rostr settings such as the roster file, the export file and the log level.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showConfig {
			return printConfig()
		}

		if resetConfig {
			defaults := config.DefaultConfig()
			if err := defaults.Save(); err != nil {
				return err
			}

			*cfg = *defaults

			fmt.Println("Configuration reset to defaults.")

			return nil
		}

		if err := printConfig(); err != nil {
			fmt.Println("No configuration found, using defaults.")
		}

		fmt.Println("\nStarting interactive configuration...")

		m := cli.NewConfigureModel(cfg)

		p := tea.NewProgram(&m)

		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		configModel := finalModel.(*cli.ConfigureModel)
		if configModel.Err != nil {
			return configModel.Err
		}

		return nil
	},
}

func printConfig() error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("Configuration file: %s\n\n", config.Path())
	fmt.Print(string(data))

	return nil
}

func init() {
	rootCmd.AddCommand(configureCmd)
	configureCmd.Flags().BoolVarP(&showConfig, "show", "s", false, "Show current configuration")
	configureCmd.Flags().BoolVarP(&resetConfig, "reset", "r", false, "Reset configuration to defaults")
}
