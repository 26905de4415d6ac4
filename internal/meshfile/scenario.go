package meshfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

// Scenario is one line of a scenario file: a mesh to load, a label for the
// output file name, and a start/end pair.
type Scenario struct {
	MapPath string
	Label   string
	Start   sphere.Point
	End     sphere.Point
}

// LoadScenarios reads a scenario file from path, per spec.md §6.
func LoadScenarios(path string) ([]Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.MalformedInput("scenario: open %s: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)

	line, ok := nextLine(sc)
	if !ok || !strings.HasPrefix(strings.ToLower(line), "version 2") {
		return nil, xerrors.MalformedInput("scenario: %s: expected header \"version 2\"", path)
	}

	var out []Scenario
	lineNo := 1
	for {
		line, ok := nextLine(sc)
		if !ok {
			break
		}
		lineNo++
		s, err := parseScenarioLine(line)
		if err != nil {
			return nil, xerrors.MalformedInput("scenario: %s: line %d: %v", path, lineNo, err)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, xerrors.MalformedInput("scenario: %s: %v", path, err)
	}
	return out, nil
}

func parseScenarioLine(line string) (Scenario, error) {
	f := strings.Fields(line)
	if len(f) != 6 {
		return Scenario{}, fmt.Errorf("expected 6 fields, got %d", len(f))
	}
	startLat, err := strconv.ParseFloat(f[2], 64)
	if err != nil || startLat < -90 || startLat > 90 {
		return Scenario{}, fmt.Errorf("startLat %q out of range", f[2])
	}
	startLon, err := strconv.ParseFloat(f[3], 64)
	if err != nil || startLon < -180 || startLon > 180 {
		return Scenario{}, fmt.Errorf("startLon %q out of range", f[3])
	}
	endLat, err := strconv.ParseFloat(f[4], 64)
	if err != nil || endLat < -90 || endLat > 90 {
		return Scenario{}, fmt.Errorf("endLat %q out of range", f[4])
	}
	endLon, err := strconv.ParseFloat(f[5], 64)
	if err != nil || endLon < -180 || endLon > 180 {
		return Scenario{}, fmt.Errorf("endLon %q out of range", f[5])
	}

	return Scenario{
		MapPath: f[0],
		Label:   f[1],
		Start:   sphere.NewPoint(startLat, startLon),
		End:     sphere.NewPoint(endLat, endLon),
	}, nil
}
