// traycfg runs the reagent tray optimizer from the command line.
//
// Examples:
//
//	traycfg --ids 1,7
//	traycfg --ids 16,17,19,30,29 --json
//	traycfg --candidates "1,7;9,10,11" --workers 8
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	flag "github.com/spf13/pflag"

	"github.com/ketos-lab/traylims/pkg/batch"
	"github.com/ketos-lab/traylims/pkg/optimizer"
	"github.com/ketos-lab/traylims/pkg/version"
)

func main() {
	ids := flag.String("ids", "", "comma-separated experiment ids to pack onto one tray")
	candidates := flag.String("candidates", "", "semicolon-separated candidate id lists to score and compare")
	asJSON := flag.Bool("json", false, "emit JSON instead of tables")
	workers := flag.Int("workers", 4, "worker count for candidate scoring")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.Full())
		return
	}

	switch {
	case *ids != "" && *candidates != "":
		fatal("use either --ids or --candidates, not both")
	case *ids != "":
		runSingle(*ids, *asJSON)
	case *candidates != "":
		runBatch(*candidates, *workers, *asJSON)
	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runSingle(rawIDs string, asJSON bool) {
	requested, err := parseIDs(rawIDs)
	if err != nil {
		fatal(err.Error())
	}

	cfg, err := optimizer.Optimize(requested)
	if err != nil {
		fatal(err.Error())
	}

	if asJSON {
		printJSON(cfg)
		return
	}
	printConfiguration(cfg)
}

func runBatch(rawCandidates string, workers int, asJSON bool) {
	var candidateIDs [][]int
	for _, part := range strings.Split(rawCandidates, ";") {
		requested, err := parseIDs(part)
		if err != nil {
			fatal(err.Error())
		}
		candidateIDs = append(candidateIDs, requested)
	}

	pool := batch.NewPool(workers)
	results := pool.Evaluate(context.Background(), candidateIDs)
	best, ok := batch.Best(results)

	if asJSON {
		printJSON(map[string]any{"results": results, "best_index": best})
		return
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Candidate", "Experiment IDs", "Tray Life", "Placements", "Error")
	for _, res := range results {
		row := []string{strconv.Itoa(res.Index), joinIDs(res.IDs), "", "", ""}
		if res.Err != nil {
			row[4] = res.Err.Error()
		} else {
			row[2] = strconv.Itoa(res.Config.TrayLife())
			row[3] = strconv.Itoa(res.Config.PlacementCount())
		}
		table.Append(row)
	}
	table.Render()

	if ok {
		fmt.Printf("\nBest candidate: %d (%s)\n", best, joinIDs(results[best].IDs))
	} else {
		fmt.Println("\nNo candidate produced a valid packing")
	}
}

func printConfiguration(cfg *optimizer.Configuration) {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("Slot", "Capacity (mL)", "Reagent", "Experiment", "Tests")
	for slot, placement := range cfg.Slots {
		if placement == nil {
			table.Append([]string{strconv.Itoa(slot), "", "(empty)", "", ""})
			continue
		}
		table.Append([]string{
			strconv.Itoa(slot),
			strconv.Itoa(placement.CapacityML),
			placement.ReagentCode,
			cfg.Results[placement.ExperimentID].Name,
			strconv.Itoa(placement.TestsPossible),
		})
	}
	table.Render()

	resultIDs := make([]int, 0, len(cfg.Results))
	for id := range cfg.Results {
		resultIDs = append(resultIDs, id)
	}
	sort.Ints(resultIDs)

	fmt.Println()
	for _, id := range resultIDs {
		res := cfg.Results[id]
		fmt.Printf("%s (id %d): %d sets, %d tests\n", res.Name, id, len(res.Sets), res.TotalTests)
	}
	fmt.Printf("\nTray life: %d tests\n", cfg.TrayLife())
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fatal(err.Error())
	}
}

func parseIDs(raw string) ([]int, error) {
	var out []int
	for _, field := range strings.Split(raw, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("invalid experiment id %q", field)
		}
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no experiment ids in %q", raw)
	}
	return out, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

func fatal(msg string) {
	fmt.Fprintln(os.Stderr, "traycfg: "+msg)
	os.Exit(1)
}
