package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
)

// CSVHeader is the first row written by WriteCSV.
var CSVHeader = []string{
	"run_id", "seed", "elevators", "stairs", "algorithm",
	"success", "expanded", "path_length", "path_cost", "optimal_cost",
	"stores_visited", "skipped", "replans", "elapsed_us", "ends_at", "error",
}

// WriteCSV writes one row per trial under CSVHeader.
func WriteCSV(w io.Writer, trials []Trial) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, t := range trials {
		ends := ""
		if t.Ended {
			ends = t.End.String()
		}
		row := []string{
			t.RunID.String(),
			strconv.FormatInt(t.Seed, 10),
			strconv.Itoa(t.Layout.Elevators),
			strconv.Itoa(t.Layout.Stairs),
			t.Algorithm,
			strconv.FormatBool(t.Found),
			strconv.Itoa(t.Expansions),
			strconv.Itoa(t.Length),
			strconv.FormatFloat(t.Cost, 'f', 2, 64),
			strconv.FormatFloat(t.Optimal, 'f', 2, 64),
			strconv.Itoa(t.Visited),
			strconv.Itoa(t.Skipped),
			strconv.Itoa(t.Replans),
			strconv.FormatInt(t.Elapsed.Microseconds(), 10),
			ends,
			t.Err,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteTrials prints the per-trial table.
func WriteTrials(w io.Writer, trials []Trial) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Alg\tE\tS\tSeed\tLen\tCost\tExp\tEnd (r,c,f)\t")
	for _, t := range trials {
		ends := "<none>"
		if t.Ended {
			ends = t.End.String()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%d\t%s\t\n",
			t.Algorithm, t.Layout.Elevators, t.Layout.Stairs, t.Seed,
			t.Length, t.Cost, t.Expansions, ends)
	}
	return tw.Flush()
}

// WriteSummary prints the per-(algorithm, layout) averages.
func WriteSummary(w io.Writer, sums []Summary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Alg\tE\tS\tN\tFound\tAvgLen\tAvgCost\tAvgExp\tDetour\tAvgTime\t")
	for _, s := range sums {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.0f%%\t%.2f\t%.2f\t%.2f\t%.3f\t%s\t\n",
			s.Algorithm, s.Layout.Elevators, s.Layout.Stairs, s.Trials,
			100*s.SuccessRate, s.MeanLength, s.MeanCost, s.MeanExpansions,
			s.MeanDetour, s.MeanElapsed)
	}
	return tw.Flush()
}
