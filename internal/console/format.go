package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/forge"
)

func fmtGeneric(err error) string {
	return fmt.Sprintf(MsgGenericError, err)
}

func formatEntity(e domain.Entity) string {
	return fmt.Sprintf("%s [HP: %d/%d]", e.Name, e.Stats.Health, e.Stats.MaxHealth)
}

// itemTarget labels who an item affects.
func itemTarget(item domain.Item) string {
	if item.Effect.TargetsSelf() {
		return "(Self)"
	}
	return "(Enemy)"
}

func writeInventory(w io.Writer, items []domain.Item) {
	fmt.Fprintln(w, "\nInventory:")
	for i, item := range items {
		fmt.Fprintf(w, "%d. %s %s - %s\n", i+1, item.Name, itemTarget(item), item.Description)
	}
}

func writeEnemies(w io.Writer, enemies []*domain.Enemy) {
	fmt.Fprintln(w, "\nEnemies:")
	for i, e := range enemies {
		fmt.Fprintf(w, "%d. %s\n", i+1, formatEntity(e.Entity))
	}
}

func exitNames(room *domain.Room) []string {
	var names []string
	for _, dir := range domain.Directions {
		if _, ok := room.Exits[dir]; ok {
			names = append(names, string(dir))
		}
	}
	return names
}

func writeSummary(w io.Writer, summary *domain.RunSummary, player *domain.Player) {
	fmt.Fprintln(w, "\n=== RUN SUMMARY ===")
	if summary.Reason == domain.RunEndDeath {
		fmt.Fprintln(w, "\nYour journey into the Shardlands has ended...")
	} else {
		fmt.Fprintln(w, "\nYou return from the Shardlands.")
	}
	fmt.Fprintf(w, "You explored %d rooms and defeated %d enemies\n", summary.RoomsExplored, summary.EnemiesDefeated)

	fmt.Fprintln(w, "\nFinal Stats:")
	fmt.Fprintf(w, "Health: %d/%d\n", player.Stats.Health, player.Stats.MaxHealth)
	fmt.Fprintf(w, "Attack: %d\n", player.Stats.Attack)
	fmt.Fprintf(w, "Defense: %d\n", player.Stats.Defense)

	fmt.Fprintln(w, "\nMemory Shards Earned:")
	fmt.Fprintf(w, "Collected: %d\n", summary.ShardsCollected)
	if bonus := summary.ShardsAwarded - summary.ShardsCollected; bonus > 0 {
		fmt.Fprintf(w, "Exploration: +%d\n", bonus)
	}
	fmt.Fprintf(w, "\nTotal Shards Earned: %d\n", summary.ShardsAwarded)
}

// writeForge renders the forge and returns the keys of purchasable upgrades
// in the order they were numbered.
func writeForge(w io.Writer, listing []forge.TierListing, shards int) []string {
	fmt.Fprintln(w, "\n=== MEMORY FORGE ===")
	fmt.Fprintf(w, "\nMemory Shards: %d\n", shards)

	var available []string
	for _, tier := range listing {
		fmt.Fprintf(w, "\nTier %d Upgrades:\n", tier.Tier)
		for _, e := range tier.Entries {
			u := e.Upgrade
			if e.Unlocked {
				available = append(available, u.Key)
				fmt.Fprintf(w, "%d. %s (%s) - Cost: %d [%d/%d]\n",
					len(available), u.Name, u.Description, u.Cost, e.Purchased, u.MaxPurchases)
				continue
			}
			reqs := make([]string, len(e.Missing))
			for i, r := range e.Missing {
				reqs[i] = fmt.Sprintf("%s (%d/%d)", r.Name, r.Current, r.Needed)
			}
			fmt.Fprintf(w, "? %s - Requires: %s\n", u.Name, strings.Join(reqs, ", "))
		}
	}
	return available
}
