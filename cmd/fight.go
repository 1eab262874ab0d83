/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/config"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/data"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/persistence"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/rules"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/session"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fightCmd = &cobra.Command{
	Use:   "fight [manifestation_id]",
	Short: "Start an interactive encounter against a shadow manifestation",
	Long: `Starts the read-eval-print loop for a single encounter.
Without an argument the first manifestation of the catalog is chosen.
Usage:
	> illuminate
	> help embrace`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("seed") {
			cfg.Combat.Seed, _ = cmd.Flags().GetInt64("seed")
		}
		noJournal, _ := cmd.Flags().GetBool("no-journal")

		log, err := newLogger(cfg, true)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		enc, err := startEncounter(cmd.Context(), cfg, args, !noJournal, log)
		if err != nil {
			return err
		}
		defer enc.Close()

		if err := RunTUI(cmd.Context(), enc); err != nil {
			return fmt.Errorf("fatal TUI error: %w", err)
		}

		if enc.Ended() {
			fmt.Println(enc.Result().Reason)
		}
		if !noJournal {
			fmt.Printf("Journal: %s\n", persistence.NewJournalManager(cfg.JournalDir).Path(enc.ID()))
		}
		return nil
	},
}

// startEncounter wires the catalog, random source, vulnerability policy and
// journal into a new encounter.
func startEncounter(ctx context.Context, cfg *config.Config, args []string, journaled bool, log *zap.Logger) (*session.Encounter, error) {
	factory, err := data.NewLoader(cfg.DataDirs).LoadFactory()
	if err != nil {
		return nil, fmt.Errorf("failed to load manifestations: %w", err)
	}

	manifestationID := ""
	if len(args) > 0 {
		manifestationID = args[0]
	} else if templates := factory.Templates(); len(templates) > 0 {
		manifestationID = templates[0].ID
	}

	seed := cfg.Combat.Seed
	if seed == 0 {
		if seed, err = engine.NewCryptoSeed(); err != nil {
			return nil, err
		}
	}

	opts := session.Options{
		ID:         uuid.NewString(),
		Player:     cfg.EnginePlayer(),
		EndureCost: cfg.Combat.EndureCost,
		Rand:       engine.NewSeededRand(seed),
		Seed:       seed,
		Logger:     log,
	}

	if expr := cfg.Combat.VulnerableWhen; expr != "" {
		reg, err := rules.NewRegistry()
		if err != nil {
			return nil, err
		}
		pred, err := reg.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("combat.vulnerable_when: %w", err)
		}
		opts.Policy.Vulnerable = pred.VulnerabilityFunc(func(err error) {
			log.Warn("vulnerability rule failed, using default thresholds", zap.String("rule", pred.String()), zap.Error(err))
		})
	}

	if journaled {
		store, err := persistence.NewJournalManager(cfg.JournalDir).Create(opts.ID)
		if err != nil {
			return nil, err
		}
		opts.Store = store
	}

	enc, err := session.New(ctx, factory, manifestationID, opts)
	if err != nil {
		if opts.Store != nil {
			_ = opts.Store.Close()
			_ = os.Remove(persistence.NewJournalManager(cfg.JournalDir).Path(opts.ID))
		}
		return nil, err
	}
	return enc, nil
}

func init() {
	rootCmd.AddCommand(fightCmd)
	fightCmd.Flags().Int64("seed", 0, "Seed for the random source (0 draws one from the system)")
	fightCmd.Flags().Bool("no-journal", false, "Do not write an encounter journal")
}
