package catalog

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

const sampleCSV = "\ufeffCurriculum,Computer Science\n" +
	"Insitution,Northeastern University\n" +
	"Degree Type,\"BS\"\n" +
	"System Type,semester\n" +
	"CIP,\"11.0701\"\n" +
	"Courses\n" +
	"Course ID,Course Name,Prefix,Number,Prerequisites,Corequisites,Strict-Corequisites,Credit Hours,Canonical Name\n" +
	"1,Discrete Structures,CS,1800,,2,,4,Discrete Math\n" +
	"2,Discrete Structures Seminar,CS,1802,,,,1,\n" +
	"3,Fundamentals of CS 1,CS,2500,1;CS 1500 (or coreq),99,4,4,\n" +
	"4,Fundamentals of CS 1 Lab,CS,2501,,,,1,\n" +
	"\n" +
	"5,Object-Oriented Design,CS,3500,3,,,4,\n" +
	"6,Missing Number,CS,,,,,4,\n"

func parseSample(t *testing.T) *School {
	t.Helper()
	s, err := ParseCSV(strings.NewReader(sampleCSV))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	return s
}

func TestParseCSVMetadata(t *testing.T) {
	s := parseSample(t)

	if s.Name != "Northeastern University" {
		t.Errorf("Name = %q, want Northeastern University", s.Name)
	}
	if len(s.Degrees) != 1 {
		t.Fatalf("len(Degrees) = %d, want 1", len(s.Degrees))
	}
	d := s.Degrees[0]
	want := Degree{Name: "Computer Science", DegreeType: "BS", CIPCode: "11.0701", SystemType: "semester"}
	if d != want {
		t.Errorf("Degree = %+v, want %+v", d, want)
	}
	if d.ID() != "BS Computer Science" {
		t.Errorf("ID() = %q, want BS Computer Science", d.ID())
	}
}

func TestParseCSVCourses(t *testing.T) {
	s := parseSample(t)

	wantKeys := []string{"CS1800", "CS1802", "CS2500", "CS2501", "CS3500"}
	if got := s.CourseKeys(); !slices.Equal(got, wantKeys) {
		t.Errorf("CourseKeys() = %v, want %v", got, wantKeys)
	}

	c, ok := s.Course("CS2500")
	if !ok {
		t.Fatal("Course(CS2500) not found")
	}
	if !slices.Equal(c.Prerequisites, []string{"CS1800", "CS1500"}) {
		t.Errorf("Prerequisites = %v, want [CS1800 CS1500]", c.Prerequisites)
	}
	if len(c.Corequisites) != 0 {
		t.Errorf("Corequisites = %v, want unmapped ID dropped", c.Corequisites)
	}
	if !slices.Equal(c.StrictCorequisites, []string{"CS2501"}) {
		t.Errorf("StrictCorequisites = %v, want [CS2501]", c.StrictCorequisites)
	}
	if c.CreditHours != 4 || c.CSVID != "3" {
		t.Errorf("CreditHours, CSVID = %v, %q; want 4, 3", c.CreditHours, c.CSVID)
	}

	c, _ = s.Course("CS1800")
	if c.CanonicalName != "Discrete Math" || !slices.Equal(c.Corequisites, []string{"CS1802"}) {
		t.Errorf("CS1800 = %+v", c)
	}
}

func TestParseCSVDefaultPlan(t *testing.T) {
	s := parseSample(t)

	if len(s.Plans) != 1 {
		t.Fatalf("len(Plans) = %d, want 1", len(s.Plans))
	}
	p := s.Plans[0]
	if p.Name != "Computer Science" || p.DegreeID != "BS Computer Science" || p.Institution != "Northeastern University" {
		t.Errorf("Plan = %+v", p)
	}
	if !slices.Equal(p.Courses, s.CourseKeys()) {
		t.Errorf("Plan.Courses = %v, want %v", p.Courses, s.CourseKeys())
	}
	if got, _ := s.Plan("Computer Science"); got == nil {
		t.Error("Plan(Computer Science) not found")
	}
	if got := s.PlansForDegree("BS Computer Science"); len(got) != 1 {
		t.Errorf("PlansForDegree() = %d plans, want 1", len(got))
	}
}

func TestParseCSVDuplicateNaturalKeys(t *testing.T) {
	in := "Curriculum,Math\nInstitution,State\nCourses\n" +
		"Course ID,Course Name,Prefix,Number,Prerequisites,Credit Hours\n" +
		"10,Calculus I,MATH,1341,,4\n" +
		"11,Calculus I (honors),MATH,1341,,4\n" +
		"12,Calculus II,MATH,1342,11,4\n"

	s, err := ParseCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseCSV() error = %v", err)
	}
	want := []string{"MATH1341_10", "MATH1341_11", "MATH1342"}
	if got := s.CourseKeys(); !slices.Equal(got, want) {
		t.Errorf("CourseKeys() = %v, want %v", got, want)
	}
	c, _ := s.Course("MATH1342")
	if !slices.Equal(c.Prerequisites, []string{"MATH1341_11"}) {
		t.Errorf("Prerequisites = %v, want [MATH1341_11]", c.Prerequisites)
	}
	key, _, ok := s.CourseByNaturalKey("MATH1341")
	if !ok || key != "MATH1341_10" {
		t.Errorf("CourseByNaturalKey() = %q, %v; want MATH1341_10, true", key, ok)
	}
}

func TestParseCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code cerrors.Code
	}{
		{"missing curriculum", "Institution,State\nCourses\nCourse ID\n", cerrors.ErrCodeInvalidCatalog},
		{"missing institution", "Curriculum,Math\nCourses\nCourse ID\n", cerrors.ErrCodeInvalidCatalog},
		{"missing courses section", "Curriculum,Math\nInstitution,State\n", cerrors.ErrCodeInvalidCatalog},
		{"missing header", "Curriculum,Math\nInstitution,State\nCourses\n", cerrors.ErrCodeInvalidCatalog},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCSV(strings.NewReader(tt.in))
			if !cerrors.Is(err, tt.code) {
				t.Errorf("ParseCSV() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cs.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if s.CourseCount() != 5 {
		t.Errorf("CourseCount() = %d, want 5", s.CourseCount())
	}

	_, err = LoadCSV(filepath.Join(t.TempDir(), "missing.csv"))
	if !cerrors.Is(err, cerrors.ErrCodeFileNotFound) {
		t.Errorf("LoadCSV(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestBuildDAG(t *testing.T) {
	g := parseSample(t).BuildDAG()

	if g.CourseCount() != 5 {
		t.Errorf("CourseCount() = %d, want 5", g.CourseCount())
	}
	if got, _ := g.Prerequisites("CS2500"); !slices.Equal(got, []string{"CS1800"}) {
		t.Errorf("Prerequisites(CS2500) = %v, want unknown CS1500 dropped", got)
	}
	if got, _ := g.Corequisites("CS2500"); !slices.Equal(got, []string{"CS2501"}) {
		t.Errorf("Corequisites(CS2500) = %v, want strict corequisite as edge", got)
	}
	if got, _ := g.Corequisites("CS1800"); !slices.Equal(got, []string{"CS1802"}) {
		t.Errorf("Corequisites(CS1800) = %v, want [CS1802]", got)
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	s := parseSample(t)

	err := s.ValidateCourseDependencies()
	if err == nil || !strings.Contains(err.Error(), `prerequisite "CS1500" not found`) {
		t.Errorf("ValidateCourseDependencies() = %v, want CS1500 reported", err)
	}
	if err := s.ValidatePlans(); err != nil {
		t.Errorf("ValidatePlans() = %v, want nil", err)
	}

	s.Plans[0].AddCourse("GHOST101")
	if err := s.ValidatePlans(); err == nil || !strings.Contains(err.Error(), "GHOST101") {
		t.Errorf("ValidatePlans() = %v, want GHOST101 reported", err)
	}
}

func TestSchoolCourses(t *testing.T) {
	s := NewSchool("Test University")
	if !s.AddCourse(Course{Name: "Discrete Structures", Prefix: "CS", Number: "1800", CreditHours: 4}) {
		t.Error("AddCourse() = false, want true")
	}
	if s.AddCourse(Course{Name: "Other", Prefix: "CS", Number: "1800"}) {
		t.Error("AddCourse(duplicate) = true, want false")
	}
	if cr, ok := s.CreditHours("CS1800"); !ok || cr != 4 {
		t.Errorf("CreditHours(CS1800) = %v, %v; want 4, true", cr, ok)
	}
	if _, ok := s.CreditHours("CS9999"); ok {
		t.Error("CreditHours(CS9999) ok = true, want false")
	}

	p := s.DefaultPlan()
	if p.Name != DefaultPlanName || !slices.Equal(p.Courses, []string{"CS1800"}) {
		t.Errorf("DefaultPlan() = %+v", p)
	}
}

func TestCourseRequisites(t *testing.T) {
	c := Course{Prefix: "CS", Number: "2510"}
	c.AddPrerequisite("CS2500")
	c.AddPrerequisite("CS2500")
	c.AddCorequisite("CS2511")
	c.AddCorequisite("CS2511")
	c.AddStrictCorequisite("CS2511")

	if c.Key() != "CS2510" {
		t.Errorf("Key() = %q, want CS2510", c.Key())
	}
	if len(c.Prerequisites) != 1 || len(c.Corequisites) != 1 || len(c.StrictCorequisites) != 1 {
		t.Errorf("requisites not de-duplicated: %+v", c)
	}
}

func TestDegreeSystem(t *testing.T) {
	tests := []struct {
		system  string
		quarter bool
		scale   float64
	}{
		{"semester", false, 1},
		{"Quarter", true, 2.0 / 3.0},
		{"quarter system", true, 2.0 / 3.0},
		{"", false, 1},
	}
	for _, tt := range tests {
		d := Degree{SystemType: tt.system}
		if d.IsQuarterSystem() != tt.quarter {
			t.Errorf("IsQuarterSystem(%q) = %v, want %v", tt.system, d.IsQuarterSystem(), tt.quarter)
		}
		if d.ComplexityScaleFactor() != tt.scale {
			t.Errorf("ComplexityScaleFactor(%q) = %v, want %v", tt.system, d.ComplexityScaleFactor(), tt.scale)
		}
	}
}

func TestPlanCourses(t *testing.T) {
	p := Plan{Name: "Test"}
	p.AddCourse("CS1800")
	p.AddCourse("CS1800")
	p.AddCourse("CS2500")
	if !slices.Equal(p.Courses, []string{"CS1800", "CS2500"}) {
		t.Errorf("Courses = %v", p.Courses)
	}
	if !p.RemoveCourse("CS1800") || p.RemoveCourse("CS1800") {
		t.Error("RemoveCourse() should succeed once")
	}
}

func TestNormalizeCourseKey(t *testing.T) {
	tests := map[string]string{
		"CS 1800":            "CS1800",
		"CS1800":             "CS1800",
		"MATH 1342":          "MATH1342",
		"CS 1800 (or coreq)": "CS1800",
		"  PHYS  1151  ":     "PHYS1151",
		"(elective)":         "",
	}
	for in, want := range tests {
		if got := NormalizeCourseKey(in); got != want {
			t.Errorf("NormalizeCourseKey(%q) = %q, want %q", in, got, want)
		}
	}
}
