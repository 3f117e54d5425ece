package dag

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	g := New()
	if g.CourseCount() != 0 {
		t.Errorf("CourseCount() = %d, want 0", g.CourseCount())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() on empty graph = %v, want nil", err)
	}
}

func TestAddCourse(t *testing.T) {
	g := New()
	if err := g.AddCourse("CS1800"); err != nil {
		t.Fatalf("AddCourse() error = %v", err)
	}
	if err := g.AddCourse("CS1800"); err != nil {
		t.Fatalf("AddCourse() duplicate error = %v", err)
	}
	if g.CourseCount() != 1 {
		t.Errorf("CourseCount() = %d, want 1", g.CourseCount())
	}
	if !g.Contains("CS1800") {
		t.Error("Contains(CS1800) = false, want true")
	}
	if err := g.AddCourse(""); !errors.Is(err, ErrInvalidCourseID) {
		t.Errorf("AddCourse(\"\") error = %v, want ErrInvalidCourseID", err)
	}

	// A fresh course has empty entries in all four maps.
	lookups := map[string]func(string) ([]string, bool){
		"Prerequisites":         g.Prerequisites,
		"Dependents":            g.Dependents,
		"Corequisites":          g.Corequisites,
		"CorequisiteDependents": g.CorequisiteDependents,
	}
	for name, fn := range lookups {
		got, ok := fn("CS1800")
		if !ok || got == nil || len(got) != 0 {
			t.Errorf("%s(CS1800) = %v, %v; want [], true", name, got, ok)
		}
		got, ok = fn("MISSING")
		if ok || got != nil {
			t.Errorf("%s(MISSING) = %v, %v; want nil, false", name, got, ok)
		}
	}
}

func TestAddPrerequisite(t *testing.T) {
	g := New()
	if err := g.AddPrerequisite("CS220", "CS165"); err != nil {
		t.Fatalf("AddPrerequisite() error = %v", err)
	}

	if g.CourseCount() != 2 {
		t.Errorf("CourseCount() = %d, want 2", g.CourseCount())
	}
	if got, _ := g.Prerequisites("CS220"); !slices.Equal(got, []string{"CS165"}) {
		t.Errorf("Prerequisites(CS220) = %v, want [CS165]", got)
	}
	if got, _ := g.Dependents("CS165"); !slices.Equal(got, []string{"CS220"}) {
		t.Errorf("Dependents(CS165) = %v, want [CS220]", got)
	}
	if got, _ := g.Corequisites("CS220"); len(got) != 0 {
		t.Errorf("Corequisites(CS220) = %v, want []", got)
	}
}

func TestAddPrerequisiteDeduplicates(t *testing.T) {
	g := New()
	_ = g.AddPrerequisite("CS220", "CS165")
	_ = g.AddPrerequisite("CS220", "CS165")

	if got, _ := g.Prerequisites("CS220"); len(got) != 1 {
		t.Errorf("Prerequisites(CS220) = %v, want one entry", got)
	}
	if got, _ := g.Dependents("CS165"); len(got) != 1 {
		t.Errorf("Dependents(CS165) = %v, want one entry", got)
	}
	if p, c := g.EdgeCount(); p != 1 || c != 0 {
		t.Errorf("EdgeCount() = %d, %d; want 1, 0", p, c)
	}
}

func TestAddPrerequisiteRejectsSelfEdge(t *testing.T) {
	g := New()
	if err := g.AddPrerequisite("CS220", "CS220"); !errors.Is(err, ErrSelfRequisite) {
		t.Errorf("AddPrerequisite(self) error = %v, want ErrSelfRequisite", err)
	}
	if err := g.AddCorequisite("", "CS220"); !errors.Is(err, ErrInvalidCourseID) {
		t.Errorf("AddCorequisite(empty) error = %v, want ErrInvalidCourseID", err)
	}
}

func TestAddCorequisite(t *testing.T) {
	g := New()
	_ = g.AddCorequisite("PHYS1151", "PHYS1152")

	if got, _ := g.Corequisites("PHYS1151"); !slices.Equal(got, []string{"PHYS1152"}) {
		t.Errorf("Corequisites(PHYS1151) = %v, want [PHYS1152]", got)
	}
	if got, _ := g.CorequisiteDependents("PHYS1152"); !slices.Equal(got, []string{"PHYS1151"}) {
		t.Errorf("CorequisiteDependents(PHYS1152) = %v, want [PHYS1151]", got)
	}
	if got, _ := g.Prerequisites("PHYS1151"); len(got) != 0 {
		t.Errorf("Prerequisites(PHYS1151) = %v, want []", got)
	}
}

func TestIncomingOutgoing(t *testing.T) {
	g := New()
	_ = g.AddPrerequisite("C", "B")
	_ = g.AddCorequisite("C", "A")
	_ = g.AddCorequisite("C", "B")

	if got := g.Incoming("C"); !slices.Equal(got, []string{"A", "B"}) {
		t.Errorf("Incoming(C) = %v, want [A B]", got)
	}
	if got := g.Outgoing("B"); !slices.Equal(got, []string{"C"}) {
		t.Errorf("Outgoing(B) = %v, want [C]", got)
	}
	if got := g.Outgoing("C"); len(got) != 0 {
		t.Errorf("Outgoing(C) = %v, want []", got)
	}
}

func TestCoursesInsertionOrder(t *testing.T) {
	g := New()
	_ = g.AddCourse("Z")
	_ = g.AddPrerequisite("A", "M")

	want := []string{"Z", "A", "M"}
	got := g.Courses()
	if !slices.Equal(got, want) {
		t.Errorf("Courses() = %v, want %v", got, want)
	}

	got[0] = "mutated"
	if g.Courses()[0] != "Z" {
		t.Error("Courses() must return a copy")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		build   func(*DAG)
		wantErr bool
	}{
		{
			name: "chain",
			build: func(g *DAG) {
				_ = g.AddPrerequisite("B", "A")
				_ = g.AddPrerequisite("C", "B")
			},
		},
		{
			name: "diamond",
			build: func(g *DAG) {
				_ = g.AddPrerequisite("B", "A")
				_ = g.AddPrerequisite("C", "A")
				_ = g.AddPrerequisite("D", "B")
				_ = g.AddPrerequisite("D", "C")
			},
		},
		{
			name: "prerequisite cycle",
			build: func(g *DAG) {
				_ = g.AddPrerequisite("B", "A")
				_ = g.AddPrerequisite("C", "B")
				_ = g.AddPrerequisite("A", "C")
			},
			wantErr: true,
		},
		{
			name: "corequisite pair",
			build: func(g *DAG) {
				_ = g.AddCorequisite("A", "B")
				_ = g.AddCorequisite("B", "A")
			},
			wantErr: true,
		},
		{
			name: "mixed cycle",
			build: func(g *DAG) {
				_ = g.AddPrerequisite("B", "A")
				_ = g.AddCorequisite("A", "B")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			tt.build(g)
			err := g.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrGraphHasCycle) {
				t.Errorf("Validate() error = %v, want ErrGraphHasCycle", err)
			}
		})
	}
}

func TestString(t *testing.T) {
	g := New()
	_ = g.AddPrerequisite("CS220", "CS165")
	_ = g.AddPrerequisite("CS220", "MATH156")
	_ = g.AddCourse("CS1800")

	s := g.String()
	for _, want := range []string{"Prerequisite DAG (4 courses)", "CS220 → CS165, MATH156", "CS1800 → (no prerequisites)"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
