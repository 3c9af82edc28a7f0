// Package main is the entry point for the murphy health-tracking CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/SantiagoB07/murphy-go/internal/cgm"
	"github.com/SantiagoB07/murphy-go/internal/glucose"
	"github.com/SantiagoB07/murphy-go/internal/score"
	"github.com/SantiagoB07/murphy-go/internal/stats"
	"github.com/SantiagoB07/murphy-go/internal/storage"
	"github.com/SantiagoB07/murphy-go/internal/storage/sqlite"
	"github.com/SantiagoB07/murphy-go/internal/wellness"
)

func main() {
	if len(os.Args) < 2 {
		showUsage()
		return
	}

	store := openStore()
	defer store.Close()

	switch os.Args[1] {
	case "log":
		if len(os.Args) < 3 {
			fmt.Println("Error: glucose value required")
			fmt.Println("Usage: murphy log <mg/dL> [slot]")
			os.Exit(1)
		}
		logGlucose(store, os.Args[2:])
	case "wellness":
		if len(os.Args) < 4 {
			fmt.Println("Error: kind and value required")
			fmt.Println("Usage: murphy wellness <sleep|stress> <value>")
			os.Exit(1)
		}
		logWellness(store, os.Args[2], os.Args[3])
	case "today":
		showToday(store)
	case "stats":
		days := 7
		if len(os.Args) > 2 {
			parsed, err := strconv.Atoi(os.Args[2])
			if err != nil || parsed < 1 {
				fmt.Printf("Error: invalid day count %q\n", os.Args[2])
				os.Exit(1)
			}
			days = parsed
		}
		showStats(store, days)
	case "xp":
		showXP(store)
	case "close":
		closeDay(store)
	case "import":
		importCGM(store)
	default:
		showUsage()
	}
}

func showUsage() {
	fmt.Println("Usage:")
	fmt.Println("  murphy log <mg/dL> [slot]        - Record a glucose reading")
	fmt.Println("  murphy wellness <kind> <value>   - Log sleep hours or stress level")
	fmt.Println("  murphy today                     - Show today's per-slot readings")
	fmt.Println("  murphy stats [days]              - Show period statistics (default 7 days)")
	fmt.Println("  murphy xp                        - Show today's XP breakdown")
	fmt.Println("  murphy close                     - Close out yesterday and update the streak")
	fmt.Println("  murphy import                    - Import readings from the CGM share service")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  MURPHY_DB       - Database path (default murphy.db)")
	fmt.Println("  CGM_USERNAME    - CGM share username (for import)")
	fmt.Println("  CGM_PASSWORD    - CGM share password (for import)")
}

func openStore() *sqlite.Store {
	path := os.Getenv("MURPHY_DB")
	if path == "" {
		path = "murphy.db"
	}
	store, err := sqlite.NewFileStore(path)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	return store
}

func logGlucose(store *sqlite.Store, args []string) {
	value, err := strconv.Atoi(args[0])
	if err != nil || value <= 0 {
		fmt.Printf("Error: invalid glucose value %q\n", args[0])
		os.Exit(1)
	}

	now := time.Now()
	slot := glucose.SlotForTime(now)
	if len(args) > 1 {
		slot = glucose.Slot(args[1])
		if _, ok := glucose.SlotLabels[slot]; !ok {
			fmt.Printf("Error: unknown slot %q\n", args[1])
			fmt.Println("Slots:")
			for _, s := range glucose.Slots {
				fmt.Printf("  %s\n", s)
			}
			os.Exit(1)
		}
	}

	record := storage.NewGlucoseRecord(value, now, slot, "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.SaveGlucoseRecord(ctx, record); err != nil {
		fmt.Printf("Error saving record: %v\n", err)
		os.Exit(1)
	}

	status := glucose.Classify(value)
	fmt.Printf("Logged %d mg/dL (%s) for %s\n", value, status.Label(), slot.Label())
}

func logWellness(store *sqlite.Store, kindArg, valueArg string) {
	kind := wellness.Kind(kindArg)
	if kind != wellness.KindSleep && kind != wellness.KindStress {
		fmt.Printf("Error: unknown wellness kind %q (want sleep or stress)\n", kindArg)
		os.Exit(1)
	}

	value, err := strconv.ParseFloat(valueArg, 64)
	if err != nil {
		fmt.Printf("Error: invalid value %q\n", valueArg)
		os.Exit(1)
	}

	log := storage.NewWellnessLog(kind, value, time.Now(), "")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.SaveWellnessLog(ctx, log); err != nil {
		fmt.Printf("Error saving log: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Logged %s: %g\n", kind, value)
}

func showToday(store *sqlite.Store) {
	now := time.Now()
	records := queryDay(store, now)
	merged := glucose.MergeByDate(records, now)

	fmt.Printf("Readings for %s (%d/%d slots)\n", now.Format("Mon Jan 2"), merged.Completed(), glucose.TotalSlots)
	fmt.Println()
	for _, slot := range glucose.Slots {
		r, ok := merged[slot]
		if !ok {
			fmt.Printf("  %-18s -\n", slot.Label())
			continue
		}
		status := glucose.Classify(r.Value)
		fmt.Printf("  %-18s %3d mg/dL (%s) at %s\n",
			slot.Label(), r.Value, status.Label(), r.RecordedAt.Format("15:04"))
	}
}

func showStats(store *sqlite.Store, days int) {
	end := time.Now()
	start := end.AddDate(0, 0, -(days - 1))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := store.QueryGlucoseRecords(ctx, glucose.StartOfDay(start), glucose.EndOfDay(end))
	if err != nil {
		fmt.Printf("Error querying records: %v\n", err)
		os.Exit(1)
	}

	result := stats.Compute(records, start, end)
	if result == nil {
		fmt.Printf("No readings in the last %d day(s).\n", days)
		return
	}

	fmt.Printf("Last %d day(s): %d readings\n", days, result.Count)
	fmt.Println()
	fmt.Printf("  Average        %d mg/dL (std dev %d)\n", result.Avg, result.StdDev)
	fmt.Printf("  Range          %d - %d mg/dL\n", result.Min, result.Max)
	fmt.Printf("  Time in range  %d%% (%d of %d)\n", result.InRangePercent, result.InRangeCount, result.Count)
	fmt.Printf("  Days covered   %d of %d (%d%%)\n", result.DaysWithRecords, result.TotalDays, result.DaysWithRecordsPercent)
	fmt.Printf("  Readings/day   %.1f\n", result.AvgTakesPerDay)
}

func showXP(store *sqlite.Store) {
	now := time.Now()
	result := computeXP(store, now)

	fmt.Printf("XP for %s\n", now.Format("Mon Jan 2"))
	fmt.Println()
	fmt.Printf("  Slots      %d XP (%d/%d completed, minimum %d)\n",
		result.Breakdown.SlotsXP, result.SlotsCompleted, result.TotalSlots, result.MinRequiredSlots)
	fmt.Printf("  In range   %d XP (%d%%)\n", result.Breakdown.InRangeXP, result.InRangePercent)
	fmt.Printf("  Wellness   %d XP (sleep: %v, stress: %v)\n",
		result.Breakdown.WellnessXP, result.HasSleepLogged, result.HasStressLogged)
	fmt.Printf("  Base       %d XP (cap %d)\n", result.BaseXP, result.MaxDailyXP)
	fmt.Printf("  Streak     %d day(s), x%.2f\n", result.StreakDays, result.StreakMultiplier)
	fmt.Printf("  Final      %d XP\n", result.FinalXP)
}

func closeDay(store *sqlite.Store) {
	yesterday := time.Now().AddDate(0, 0, -1)
	result := computeXP(store, yesterday)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	state, err := store.GetScoreState(ctx)
	if err != nil {
		fmt.Printf("Error loading score state: %v\n", err)
		os.Exit(1)
	}

	next := score.Advance(*state, yesterday, result.SlotsCompleted, result.FinalXP)
	if next == *state {
		fmt.Printf("%s already closed.\n", yesterday.Format("Mon Jan 2"))
		return
	}

	if err := store.SaveScoreState(ctx, &next); err != nil {
		fmt.Printf("Error saving score state: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Closed %s: +%d XP, streak %d day(s), total %d XP\n",
		yesterday.Format("Mon Jan 2"), result.FinalXP, next.StreakDays, next.TotalXP)
}

func computeXP(store *sqlite.Store, day time.Time) score.Result {
	records := queryDay(store, day)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logs, err := store.ListWellnessLogs(ctx, glucose.StartOfDay(day), glucose.EndOfDay(day))
	if err != nil {
		fmt.Printf("Error querying wellness logs: %v\n", err)
		os.Exit(1)
	}

	state, err := store.GetScoreState(ctx)
	if err != nil {
		fmt.Printf("Error loading score state: %v\n", err)
		os.Exit(1)
	}

	return score.Compute(score.Input{
		TodayGlucoseRecords: records,
		HasSleepLogged:      wellness.LoggedOn(logs, wellness.KindSleep, day),
		HasStressLogged:     wellness.LoggedOn(logs, wellness.KindStress, day),
		StreakDays:          state.StreakDays,
		TotalAccumulatedXP:  state.TotalXP,
	})
}

func queryDay(store *sqlite.Store, day time.Time) []glucose.Record {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	records, err := store.QueryGlucoseRecords(ctx, glucose.StartOfDay(day), glucose.EndOfDay(day))
	if err != nil {
		fmt.Printf("Error querying records: %v\n", err)
		os.Exit(1)
	}
	return records
}

func importCGM(store *sqlite.Store) {
	username := os.Getenv("CGM_USERNAME")
	password := os.Getenv("CGM_PASSWORD")
	if username == "" || password == "" {
		fmt.Println("Error: CGM_USERNAME and CGM_PASSWORD must be set")
		os.Exit(1)
	}

	client := cgm.NewClient(username, password)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Last 24 hours at ~5 minute intervals.
	readings, err := client.FetchReadings(ctx, 288, 1440)
	if err != nil {
		fmt.Printf("Error fetching readings: %v\n", err)
		os.Exit(1)
	}

	saved := 0
	for _, reading := range readings {
		record := reading.ToRecord()
		if err := store.SaveGlucoseRecord(ctx, &record); err != nil {
			fmt.Printf("Error saving reading: %v\n", err)
			os.Exit(1)
		}
		saved++
	}

	fmt.Printf("Imported %d reading(s).\n", saved)
}
