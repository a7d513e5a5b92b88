package commands

import (
	"fmt"

	"github.com/simonhull/firebird-suite/conflict/input"
	"github.com/simonhull/firebird-suite/conflict/internal/config"
	"github.com/simonhull/firebird-suite/conflict/output"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// configFs is where 'config init' writes. Replaced in tests.
var configFs = afero.NewOsFs()

// ConfigCmd creates the 'config' command group.
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage .conflict.yml",
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [dest]",
		Short: "Write a .conflict.yml with default settings",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.Default()
			if len(args) > 0 {
				cfg.Dest = args[0]
			} else {
				cfg.Dest = input.Prompt("Destination", ".")
			}

			exists, err := afero.Exists(configFs, config.FileName)
			if err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}
			if exists && !force && !input.Confirm(fmt.Sprintf("Overwrite %s?", config.FileName), false) {
				output.Info("Kept existing " + config.FileName)
				return
			}

			if err := config.Save(configFs, config.FileName, &cfg); err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}
			output.Success("Wrote " + config.FileName)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config without asking")

	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective settings",
		Long: `Print the settings 'apply' would use, after merging .conflict.yml,
CONFLICT_* environment variables and flags.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig(cmd)
			if err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}

			data, err := cfg.Marshal()
			if err != nil {
				output.Error(err.Error())
				exit(1)
				return
			}
			fmt.Fprint(cmd.OutOrStdout(), string(data))
		},
	}

	addRunFlags(cmd)

	return cmd
}
