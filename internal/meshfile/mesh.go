// Package meshfile parses the .sph mesh format and the scenario file format
// from spec.md §6, as streaming bufio.Scanner readers over an os.File closed
// via defer on every exit path (spec.md §9's iterator design note). Every
// rejected input is wrapped with xerrors.MalformedInput; parsing never
// panics.
package meshfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/benedrone/sphmesh/internal/mesh"
	"github.com/benedrone/sphmesh/internal/sphere"
	"github.com/benedrone/sphmesh/internal/xerrors"
)

// LoadMesh reads a .sph file from path and builds a *mesh.Mesh.
func LoadMesh(path string) (*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.MalformedInput("meshfile: open %s: %v", path, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	line, ok := nextLine(sc)
	if !ok || !strings.EqualFold(line, "sph") {
		return nil, xerrors.MalformedInput("meshfile: %s: expected header token \"sph\"", path)
	}

	line, ok = nextLine(sc)
	if !ok {
		return nil, xerrors.MalformedInput("meshfile: %s: missing vertex/polygon counts", path)
	}
	nv, np, err := parseTwoInts(line)
	if err != nil {
		return nil, xerrors.MalformedInput("meshfile: %s: %v", path, err)
	}

	vertices := make([]mesh.Vertex, nv)
	for i := 0; i < nv; i++ {
		line, ok = nextLine(sc)
		if !ok {
			return nil, xerrors.MalformedInput("meshfile: %s: expected %d vertex lines, got %d", path, nv, i)
		}
		v, err := parseVertexLine(i, line)
		if err != nil {
			return nil, xerrors.MalformedInput("meshfile: %s: vertex %d: %v", path, i, err)
		}
		vertices[i] = v
	}

	polygons := make([]mesh.Polygon, np)
	for i := 0; i < np; i++ {
		line, ok = nextLine(sc)
		if !ok {
			return nil, xerrors.MalformedInput("meshfile: %s: expected %d polygon lines, got %d", path, np, i)
		}
		p, err := parsePolygonLine(i, line)
		if err != nil {
			return nil, xerrors.MalformedInput("meshfile: %s: polygon %d: %v", path, i, err)
		}
		polygons[i] = p
	}

	if err := sc.Err(); err != nil {
		return nil, xerrors.MalformedInput("meshfile: %s: %v", path, err)
	}

	m, err := mesh.NewMesh(vertices, polygons)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func nextLine(sc *bufio.Scanner) (string, bool) {
	for sc.Scan() {
		t := strings.TrimSpace(sc.Text())
		if t == "" {
			continue
		}
		return t, true
	}
	return "", false
}

func parseTwoInts(line string) (int, int, error) {
	f := strings.Fields(line)
	if len(f) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(f))
	}
	a, err := strconv.Atoi(f[0])
	if err != nil {
		return 0, 0, fmt.Errorf("field 1: %v", err)
	}
	b, err := strconv.Atoi(f[1])
	if err != nil {
		return 0, 0, fmt.Errorf("field 2: %v", err)
	}
	return a, b, nil
}

func parseVertexLine(id int, line string) (mesh.Vertex, error) {
	f := strings.Fields(line)
	if len(f) < 3 {
		return mesh.Vertex{}, fmt.Errorf("expected at least 3 fields, got %d", len(f))
	}
	lat, err := strconv.ParseFloat(f[0], 64)
	if err != nil || lat < -90 || lat > 90 {
		return mesh.Vertex{}, fmt.Errorf("latitude %q out of range", f[0])
	}
	lon, err := strconv.ParseFloat(f[1], 64)
	if err != nil || lon < -180 || lon > 180 {
		return mesh.Vertex{}, fmt.Errorf("longitude %q out of range", f[1])
	}
	n, err := strconv.Atoi(f[2])
	if err != nil || n < 0 {
		return mesh.Vertex{}, fmt.Errorf("incident count %q invalid", f[2])
	}
	if len(f) != 3+n {
		return mesh.Vertex{}, fmt.Errorf("expected %d incident ids, got %d", n, len(f)-3)
	}

	incident := make([]mesh.PolygonRef, n)
	for i := 0; i < n; i++ {
		pid, err := strconv.Atoi(f[3+i])
		if err != nil {
			return mesh.Vertex{}, fmt.Errorf("incident id %q invalid", f[3+i])
		}
		if pid < 0 {
			incident[i] = mesh.Obstacle
		} else {
			incident[i] = mesh.Traversable(pid)
		}
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if n > 0 && incident[i].IsObstacle() && incident[j].IsObstacle() {
			return mesh.Vertex{}, fmt.Errorf("two adjacent incident sectors are both obstacles")
		}
	}

	return mesh.Vertex{ID: id, Point: sphere.NewPoint(lat, lon), Incident: incident}, nil
}

func parsePolygonLine(id int, line string) (mesh.Polygon, error) {
	f := strings.Fields(line)
	if len(f) < 1 {
		return mesh.Polygon{}, fmt.Errorf("missing vertex count")
	}
	n, err := strconv.Atoi(f[0])
	if err != nil || n < 3 {
		return mesh.Polygon{}, fmt.Errorf("vertex count %q must be >= 3", f[0])
	}
	if len(f) != 1+2*n {
		return mesh.Polygon{}, fmt.Errorf("expected %d vertex ids and %d neighbour ids, got %d fields", n, n, len(f)-1)
	}

	v := make([]int, n)
	for i := 0; i < n; i++ {
		id, err := strconv.Atoi(f[1+i])
		if err != nil {
			return mesh.Polygon{}, fmt.Errorf("vertex id %q invalid", f[1+i])
		}
		v[i] = id
	}
	nb := make([]mesh.PolygonRef, n)
	for i := 0; i < n; i++ {
		pid, err := strconv.Atoi(f[1+n+i])
		if err != nil {
			return mesh.Polygon{}, fmt.Errorf("neighbour id %q invalid", f[1+n+i])
		}
		if pid < 0 {
			nb[i] = mesh.Obstacle
		} else {
			nb[i] = mesh.Traversable(pid)
		}
	}

	return mesh.Polygon{ID: id, V: v, N: nb}, nil
}
