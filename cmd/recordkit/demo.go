package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ddemon26/recordkit/internal/domain/achievement"
	"github.com/Ddemon26/recordkit/internal/domain/aiprofile"
	"github.com/Ddemon26/recordkit/internal/domain/collection"
	"github.com/Ddemon26/recordkit/internal/domain/event"
	"github.com/Ddemon26/recordkit/internal/domain/inventory"
	"github.com/Ddemon26/recordkit/internal/domain/quest"
	"github.com/Ddemon26/recordkit/internal/domain/record"
	"github.com/Ddemon26/recordkit/internal/domain/stats"
	"github.com/Ddemon26/recordkit/internal/domain/trade"
	"github.com/Ddemon26/recordkit/internal/domain/values"
	"github.com/Ddemon26/recordkit/internal/harness"
)

var demoParallel bool

// demoCmd runs the example scenarios through the one-shot harness.
var demoCmd = &cobra.Command{
	Use:   "demo [scenario]",
	Short: "Run the record-model demo scenarios",
	Long: `Runs one or all demo scenarios. Each scenario is started exactly once,
the way a host engine would call a script's initialization hook.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		runner := newDemoRunner()

		if len(args) == 1 {
			return runner.RunOne(cmd.Context(), args[0])
		}
		if demoParallel {
			return runner.RunParallel(cmd.Context())
		}
		return runner.Run(cmd.Context())
	},
}

func init() {
	demoCmd.Flags().BoolVar(&demoParallel, "parallel", false, "start scenarios concurrently")
	rootCmd.AddCommand(demoCmd)
}

func newDemoRunner() *harness.Runner {
	runner := harness.NewRunner()
	scenarios := []harness.Scenario{
		harness.NewScenario("stats", statsScenario),
		harness.NewScenario("inventory", inventoryScenario),
		harness.NewScenario("quests", questScenario),
		harness.NewScenario("trade", tradeScenario),
		harness.NewScenario("aiprofile", aiProfileScenario),
		harness.NewScenario("achievements", achievementScenario),
		harness.NewScenario("events", eventScenario),
	}
	for _, s := range scenarios {
		// Names are unique string literals above; Register cannot fail.
		if err := runner.Register(s); err != nil {
			panic(err)
		}
	}
	return runner
}

// statsScenario walks through both copy disciplines and a derive.
func statsScenario(context.Context) error {
	original := stats.New(100, 50)

	// Value discipline: the copy is storage-independent.
	independent := original.Record().Copy()
	boosted := original.WithHealth(120)
	slog.Info("derived stats", "original", original, "boosted", boosted)

	// Reference discipline: two handles, one storage.
	a := record.Share(original.Record())
	b := a
	slog.Info("shared handles",
		"same_storage", a.SameStorage(b),
		"equal", a.Equals(b))

	b, err := b.Derive(record.Changes{"Health": record.Int(1)})
	if err != nil {
		return err
	}
	slog.Info("after rebinding one handle",
		"a", a, "b", b, "same_storage", a.SameStorage(b))

	return printRecords(original.Record(), independent, boosted.Record())
}

// inventoryScenario contrasts the overwrite and reject duplicate policies.
func inventoryScenario(context.Context) error {
	bag := inventory.NewBag()
	slot := values.MustNewItemID("slot-1")

	if err := bag.Add(slot, inventory.NewItem("Dagger", inventory.RarityCommon, 4, 0.5)); err != nil {
		return err
	}
	// Dictionary semantics: this silently replaces the dagger.
	if err := bag.Add(slot, inventory.NewItem("Axe", inventory.RarityUncommon, 9, 4)); err != nil {
		return err
	}

	strict := inventory.NewStrictBag()
	if err := strict.Add(slot, inventory.NewItem("Dagger", inventory.RarityCommon, 4, 0.5)); err != nil {
		return err
	}
	err := strict.Add(slot, inventory.NewItem("Axe", inventory.RarityUncommon, 9, 4))
	var dup *collection.DuplicateKeyError
	if !errors.As(err, &dup) {
		return fmt.Errorf("expected duplicate rejection, got %v", err)
	}
	slog.Info("strict bag rejected duplicate", "key", dup.Key)

	var recs []record.Record
	for id, item := range bag.All() {
		slog.Info("carrying", "id", id, "item", item)
		recs = append(recs, item.Record())
	}
	return printRecords(recs...)
}

// questScenario advances a quest through its stages by derivation.
func questScenario(context.Context) error {
	q := quest.New("Slay the Dragon", 500)

	active, err := q.Advance()
	if err != nil {
		return err
	}
	done, err := active.Advance()
	if err != nil {
		return err
	}
	slog.Info("quest lifecycle", "initial", q, "final", done)

	return printRecords(q.Record(), active.Record(), done.Record())
}

// tradeScenario records transactions in the append-only ledger.
func tradeScenario(context.Context) error {
	ledger := trade.NewLedger()
	now := time.Now()

	ledger.Record(trade.NewTransaction("Iron Sword", 120, now))
	ledger.Record(trade.NewTransaction("Oak Shield", 80, now.Add(time.Minute)))
	ledger.Record(trade.NewTransaction("Health Potion", 10, now.Add(2*time.Minute)))

	var recs []record.Record
	for i, tx := range ledger.All() {
		slog.Info("ledger entry", "index", i, "item", tx.Item(), "price", tx.Price())
		recs = append(recs, tx.Record())
	}
	slog.Info("trade volume", "gold", ledger.Volume())

	return printRecords(recs...)
}

// aiProfileScenario tunes an NPC profile without touching the original.
func aiProfileScenario(context.Context) error {
	base := aiprofile.Balanced()
	hostile := base.WithAggression(0.9).WithTemperament(aiprofile.TemperamentHostile)

	slog.Info("tuned profile", "base", base, "hostile", hostile)
	return printRecords(base.Record(), hostile.Record())
}

// achievementScenario unlocks achievements, each at most once.
func achievementScenario(context.Context) error {
	board := achievement.NewBoard()
	now := time.Now()

	if err := board.Unlock(achievement.New("First Blood", 10, now)); err != nil {
		return err
	}
	if err := board.Unlock(achievement.New("Explorer", 5, now)); err != nil {
		return err
	}

	err := board.Unlock(achievement.New("First Blood", 10, now))
	var dup *collection.DuplicateKeyError
	if !errors.As(err, &dup) {
		return fmt.Errorf("expected duplicate rejection, got %v", err)
	}
	slog.Info("achievement already unlocked", "name", dup.Key, "total_points", board.TotalPoints())

	var recs []record.Record
	for _, a := range board.All() {
		recs = append(recs, a.Record())
	}
	return printRecords(recs...)
}

// eventScenario publishes derived records to bus subscribers.
func eventScenario(context.Context) error {
	bus := event.NewBus()

	if err := bus.Subscribe("ui", func(r record.Record) {
		slog.Info("ui subscriber", "record", r)
	}); err != nil {
		return err
	}
	if err := bus.Subscribe("audit", func(r record.Record) {
		slog.Info("audit subscriber", "hash", r.Hash())
	}); err != nil {
		return err
	}

	hero := stats.New(100, 50)
	bus.Publish(hero.Record())
	bus.Publish(hero.WithHealth(120).Record())
	return nil
}
