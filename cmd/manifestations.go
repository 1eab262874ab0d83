package cmd

import (
	"fmt"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/data"

	"github.com/spf13/cobra"
)

var manifestationsCmd = &cobra.Command{
	Use:     "manifestations",
	Aliases: []string{"shadows"},
	Short:   "List the shadow manifestations that can be fought",
	Long: `Lists the built-in manifestation catalog merged with any
manifestations/*.yaml files found in the configured data directories.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		factory, err := data.NewLoader(cfg.DataDirs).LoadFactory()
		if err != nil {
			return fmt.Errorf("failed to load manifestations: %w", err)
		}
		verbose, _ := cmd.Flags().GetBool("verbose")

		out := cmd.OutOrStdout()
		for _, m := range factory.Templates() {
			fmt.Fprintf(out, "- %s: %s (%s, %d HP)\n", m.ID, m.Name, m.Category, m.MaxHP)
			if !verbose {
				continue
			}
			if m.Description != "" {
				fmt.Fprintf(out, "    %s\n", m.Description)
			}
			for _, a := range m.Abilities {
				sig := ""
				if a.ID == m.SignatureAbility {
					sig = ", signature"
				}
				fmt.Fprintf(out, "    * %s [%s, cooldown %d%s]\n", a.Name, a.Effect.Kind, a.Cooldown, sig)
			}
			r := m.VictoryReward
			fmt.Fprintf(out, "    reward: +%d LP, +%d SP, %q\n", r.LP, r.SP, r.Title)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manifestationsCmd)
	manifestationsCmd.Flags().BoolP("verbose", "v", false, "Show descriptions, abilities and rewards")
}
