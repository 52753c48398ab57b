package forcing

import (
	"fmt"
	"log"
	"strings"

	"github.com/KmiroK/GridSearch"
	"github.com/maseology/mmio"
)

// LoadWind reads the wind file: timestamp;speed;degrees per line, no header.
// Compass degrees are bucketed into the 8 cardinal sectors on load.
func LoadWind(fp string) (gridsearch.WindSeries, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.LoadWind: %v", err)
	}
	var w gridsearch.WindSeries
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		cols := strings.Split(ln, ";")
		if len(cols) < 3 {
			log.Printf(" forcing: %s line %d: expected 3 columns, skipped", fp, i+1)
			continue
		}
		t, err := parseTime(cols[0])
		if err != nil {
			log.Printf(" forcing: %s line %d: %v, skipped", fp, i+1, err)
			continue
		}
		spd, err := parseFloat(cols[1])
		if err != nil {
			log.Printf(" forcing: %s line %d: %v, skipped", fp, i+1, err)
			continue
		}
		deg, err := parseFloat(cols[2])
		if err != nil {
			log.Printf(" forcing: %s line %d: %v, skipped", fp, i+1, err)
			continue
		}
		w = append(w, gridsearch.WindPoint{T: t, Speed: spd, Dir: gridsearch.SectorFromDegrees(deg)})
	}
	return w, nil
}
