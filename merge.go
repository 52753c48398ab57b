package gridsearch

import (
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/maseology/mmio"
)

// Merge combines every partial results_<n>.csv under resultsDir, in
// ascending n, into a single file at finalPath sharing the same header.
// Rows are re-normalized defensively so malformed lines still come out with
// the full column set. The returned count is the raw number of rows written,
// unfiltered by any accuracy threshold.
func Merge(resultsDir, finalPath string) (int, error) {
	fps := partialFiles(resultsDir)

	tw, err := mmio.NewTXTwriter(finalPath)
	if err != nil {
		return 0, fmt.Errorf("Merge: %v", err)
	}
	defer tw.Close()
	tw.WriteLine(ResultHeader)

	nrows := 0
	for _, fp := range fps {
		lns, err := mmio.ReadTextLines(fp)
		if err != nil {
			return nrows, fmt.Errorf("Merge: read %s: %v", fp, err)
		}
		for _, ln := range lns {
			ln = strings.TrimSpace(ln)
			if ln == "" || ln == ResultHeader {
				continue
			}
			tw.WriteLine(strings.Join(NormalizeRow(strings.Split(ln, ";")), ";"))
			nrows++
		}
	}
	return nrows, nil
}

// partialFiles lists resultsDir's results_<n>.csv paths ordered by the
// integer embedded in the name.
func partialFiles(resultsDir string) []string {
	type pf struct {
		n  int
		fp string
	}
	var fps []pf
	lst, _ := mmio.FileListExt(resultsDir, ".csv")
	for _, fp := range lst {
		name := filepath.Base(fp)
		if !strings.HasPrefix(name, "results_") {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, "results_"), ".csv"))
		if err != nil {
			continue
		}
		fps = append(fps, pf{n, fp})
	}
	sort.Slice(fps, func(i, j int) bool { return fps[i].n < fps[j].n })
	out := make([]string, len(fps))
	for i, f := range fps {
		out[i] = f.fp
	}
	return out
}
