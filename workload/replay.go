package workload

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim"
)

// LoadTrace reads a job trace CSV with rows of the form
//
//	id,arrival,runtime,priority
//
// An optional first row carrying those column names is skipped; any other
// non-numeric field is an error. Jobs are returned sorted by arrival time so
// the simulator can schedule them directly.
func LoadTrace(path string) ([]sim.JobSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logrus.Warnf("closing trace %s: %v", path, closeErr)
		}
	}()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = 4
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse trace %s: %w", path, err)
	}

	specs := make([]sim.JobSpec, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeaderRow(row) {
			continue
		}
		spec, err := parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("trace %s line %d: %w", path, i+1, err)
		}
		specs = append(specs, spec)
	}

	sort.SliceStable(specs, func(a, b int) bool {
		return specs[a].ArrivalTime < specs[b].ArrivalTime
	})
	return specs, nil
}

// isHeaderRow matches the documented column names only. A first row that is
// merely non-numeric is corrupt data and must be reported, not dropped.
func isHeaderRow(row []string) bool {
	header := []string{"id", "arrival", "runtime", "priority"}
	for i, name := range header {
		if !strings.EqualFold(strings.TrimSpace(row[i]), name) {
			return false
		}
	}
	return true
}

func parseRow(row []string) (sim.JobSpec, error) {
	id, err := strconv.Atoi(row[0])
	if err != nil {
		return sim.JobSpec{}, fmt.Errorf("bad job id %q: %w", row[0], err)
	}
	arrival, err := strconv.ParseInt(row[1], 10, 64)
	if err != nil {
		return sim.JobSpec{}, fmt.Errorf("bad arrival %q: %w", row[1], err)
	}
	runTime, err := strconv.ParseInt(row[2], 10, 64)
	if err != nil {
		return sim.JobSpec{}, fmt.Errorf("bad runtime %q: %w", row[2], err)
	}
	if runTime < 1 {
		return sim.JobSpec{}, fmt.Errorf("runtime must be >= 1, got %d", runTime)
	}
	priority, err := strconv.Atoi(row[3])
	if err != nil {
		return sim.JobSpec{}, fmt.Errorf("bad priority %q: %w", row[3], err)
	}
	return sim.JobSpec{ID: id, ArrivalTime: arrival, RunTime: runTime, Priority: priority}, nil
}
