/*
Copyright © 2026 Paulo Suderio
*/
package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/engine"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/persistence"
	"github.com/moshehbenavraham/luminaris-quest-sub000/internal/session"

	"github.com/spf13/cobra"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay [encounter_id | journal.jsonl]",
	Short: "Load an encounter journal and print its summary",
	Long: `Reads the JSONL journal of an encounter and folds its combat log
into a summary via the Projector. Without an argument the journals in
journal_dir are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		jm := persistence.NewJournalManager(cfg.JournalDir)
		out := cmd.OutOrStdout()

		if len(args) == 0 {
			ids, err := jm.List()
			if err != nil {
				return err
			}
			if len(ids) == 0 {
				fmt.Fprintf(out, "No journals in %s\n", jm.Dir)
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		}

		store, err := jm.Open(args[0])
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.Load()
		if err != nil {
			return fmt.Errorf("error reading journal: %w", err)
		}
		showLog, _ := cmd.Flags().GetBool("log")
		printReplay(out, records, showLog)
		return nil
	},
}

func printReplay(out io.Writer, records []persistence.Record, showLog bool) {
	entries := persistence.Entries(records)
	for _, r := range records {
		if start, ok := r.(*persistence.EncounterStartedRecord); ok {
			fmt.Fprintf(out, "Encounter %s against %s (%s), seed %d\n",
				start.EncounterID, start.Name, start.ManifestationID, start.Seed)
		}
	}
	fmt.Fprintf(out, "Processed %d records, %d log entries.\n", len(records), len(entries))

	if showLog {
		for _, e := range entries {
			fmt.Fprintln(out, session.FormatEntry(e))
		}
	}

	sum := engine.NewProjector().Build(entries)
	fmt.Fprintf(out, "Turns: %d\n", sum.Turns)
	fmt.Fprintf(out, "Damage dealt: %d  Damage taken: %d  Healing: %d\n", sum.DamageDealt, sum.DamageTaken, sum.Healing)
	fmt.Fprintf(out, "Actions: %s\n", counts(sum.PlayerActions))
	fmt.Fprintf(out, "Shadow abilities: %s\n", counts(sum.AbilitiesUsed))
	if sum.SkippedTurns > 0 {
		fmt.Fprintf(out, "Skipped turns: %d\n", sum.SkippedTurns)
	}

	var end *persistence.EncounterEndedRecord
	if n := len(records); n > 0 {
		end, _ = records[n-1].(*persistence.EncounterEndedRecord)
	}
	if end == nil {
		fmt.Fprintln(out, "The encounter was left unfinished.")
		return
	}
	fmt.Fprintln(out, end.Reason)
	if end.Reward != nil {
		fmt.Fprintf(out, "Reward: +%d LP, +%d SP, %q\n", end.Reward.LP, end.Reward.SP, end.Reward.Title)
	}
}

func counts(m map[string]int) string {
	if len(m) == 0 {
		return "none"
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s x%d", k, m[k]))
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().BoolP("log", "l", false, "Print every combat log entry")
}
