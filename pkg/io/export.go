package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/curricula/pkg/catalog"
	"github.com/matzehuels/curricula/pkg/dag"
)

// Edge kinds in the graph format.
const (
	EdgePrerequisite = "prerequisite"
	EdgeCorequisite  = "corequisite"
)

// WriteCatalog encodes s as JSON and writes it to w. Courses keep their
// insertion order. The output can be re-imported with [ReadCatalog].
func WriteCatalog(s *catalog.School, w io.Writer) error {
	out := school{
		Name:    s.Name,
		Degrees: s.Degrees,
		Plans:   s.Plans,
		Courses: make([]course, 0, s.CourseCount()),
	}
	for _, key := range s.CourseKeys() {
		c, _ := s.Course(key)
		out.Courses = append(out.Courses, course{Key: key, Course: *c})
	}
	return encode(w, out)
}

// ExportCatalog writes s to a JSON file at path.
func ExportCatalog(s *catalog.School, path string) error {
	return writeFile(path, func(w io.Writer) error { return WriteCatalog(s, w) })
}

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID string `json:"id"`
}

type edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// WriteGraph encodes the requisite graph g as JSON. Nodes follow course
// insertion order; each course's prerequisite edges come before its
// corequisite edges.
func WriteGraph(g *dag.DAG, w io.Writer) error {
	out := graph{Nodes: []node{}, Edges: []edge{}}
	for _, id := range g.Courses() {
		out.Nodes = append(out.Nodes, node{ID: id})
	}
	for _, id := range g.Courses() {
		prereqs, _ := g.Prerequisites(id)
		for _, p := range prereqs {
			out.Edges = append(out.Edges, edge{From: p, To: id, Kind: EdgePrerequisite})
		}
		coreqs, _ := g.Corequisites(id)
		for _, c := range coreqs {
			out.Edges = append(out.Edges, edge{From: c, To: id, Kind: EdgeCorequisite})
		}
	}
	return encode(w, out)
}

func encode(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
