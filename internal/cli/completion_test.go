package cli

import (
	"io"
	"slices"
	"testing"

	"github.com/spf13/cobra"
)

func TestCompleteCatalog(t *testing.T) {
	got, directive := completeCatalog(nil, nil, "")
	if !slices.Equal(got, []string{"csv", "json"}) || directive != cobra.ShellCompDirectiveFilterFileExt {
		t.Errorf("completeCatalog() = %v, %v; want catalog extensions", got, directive)
	}

	got, directive = completeCatalog(nil, []string{"cs.csv"}, "")
	if len(got) != 0 || directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("completeCatalog() after the catalog = %v, %v", got, directive)
	}
}

func TestCompletePlans(t *testing.T) {
	e := newTestEnv(t)
	csv := e.write(t, "cs.csv", sampleCSV)

	got, _ := completePlans(nil, []string{csv}, "Comp")
	if !slices.Equal(got, []string{"Computer Science"}) {
		t.Errorf("completePlans() = %v, want [Computer Science]", got)
	}
	if got, _ := completePlans(nil, []string{csv}, "Math"); len(got) != 0 {
		t.Errorf("completePlans() with no match = %v", got)
	}
	if got, _ := completePlans(nil, []string{e.dir + "/missing.csv"}, ""); len(got) != 0 {
		t.Errorf("completePlans() for a missing catalog = %v", got)
	}
	if got, _ := completePlans(nil, nil, ""); len(got) != 0 {
		t.Errorf("completePlans() without a catalog = %v", got)
	}
}

func TestCompletionsRegistered(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	for _, name := range []string{"metrics", "schedule", "report", "graph", "export"} {
		cmd, _, err := root.Find([]string{name})
		if err != nil {
			t.Fatal(err)
		}
		if cmd.ValidArgsFunction == nil {
			t.Errorf("%s has no catalog completion", name)
		}
		if _, ok := cmd.GetFlagCompletionFunc("plan"); !ok {
			t.Errorf("%s --plan has no completion", name)
		}
	}

	report, _, _ := root.Find([]string{"report"})
	complete, ok := report.GetFlagCompletionFunc("format")
	if !ok {
		t.Fatal("report --format has no completion")
	}
	got, _ := complete(report, nil, "")
	if !slices.Equal(got, []string{"markdown", "html", "pdf", "json", "csv"}) {
		t.Errorf("report --format completions = %v", got)
	}

	graph, _, _ := root.Find([]string{"graph"})
	complete, ok = graph.GetFlagCompletionFunc("format")
	if !ok {
		t.Fatal("graph --format has no completion")
	}
	got, _ = complete(graph, nil, "")
	if !slices.Equal(got, []string{"dot", "svg", "pdf", "png"}) {
		t.Errorf("graph --format completions = %v", got)
	}
}
