package catalog

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

const metadataLines = 10

// Column names of the course section, compared case-insensitively.
const (
	ColCourseID           = "Course ID"
	ColCourseName         = "Course Name"
	ColPrefix             = "Prefix"
	ColNumber             = "Number"
	ColPrerequisites      = "Prerequisites"
	ColCorequisites       = "Corequisites"
	ColStrictCorequisites = "Strict-Corequisites"
	ColCreditHours        = "Credit Hours"
	ColCanonicalName      = "Canonical Name"
)

// LoadCSV reads a curriculum CSV file.
func LoadCSV(path string) (*School, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "catalog %s", path)
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ParseCSV(f)
}

// ParseCSV reads a curriculum in CSV format from r. It returns an
// INVALID_CATALOG error when the curriculum name, institution, course
// section or column header is missing.
func ParseCSV(r io.Reader) (*School, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "read csv")
	}
	for _, rec := range records {
		for i := range rec {
			rec[i] = cleanField(rec[i])
		}
	}

	meta, err := parseMetadata(records)
	if err != nil {
		return nil, err
	}

	start := -1
	for i, rec := range records {
		if strings.EqualFold(rec[0], "courses") {
			start = i
			break
		}
	}
	if start < 0 {
		return nil, cerrors.New(cerrors.ErrCodeInvalidCatalog, "no Courses section found")
	}
	if start+1 >= len(records) {
		return nil, cerrors.New(cerrors.ErrCodeInvalidCatalog, "no course header found")
	}

	cols := newColumns(records[start+1])
	rows := parseRows(records[start+2:], cols)

	school := NewSchool(meta.institution)
	degree := Degree{
		Name:       meta.name,
		DegreeType: meta.degreeType,
		CIPCode:    meta.cip,
		SystemType: meta.systemType,
	}
	school.AddDegree(degree)

	idToKey := storageKeys(rows)
	plan := Plan{Name: meta.name, DegreeID: degree.ID(), Institution: meta.institution}
	for _, row := range rows {
		c := row.course
		for _, tok := range splitList(row.prereqs) {
			if key, ok := idToKey[tok]; ok {
				c.AddPrerequisite(key)
			} else if key := NormalizeCourseKey(tok); key != "" {
				c.AddPrerequisite(key)
			}
		}
		for _, tok := range splitList(row.coreqs) {
			if key, ok := idToKey[tok]; ok {
				c.AddCorequisite(key)
			}
		}
		for _, tok := range splitList(row.strict) {
			if key, ok := idToKey[tok]; ok {
				c.AddStrictCorequisite(key)
			}
		}
		key := idToKey[c.CSVID]
		school.AddCourseWithKey(key, c)
		plan.AddCourse(key)
	}
	school.AddPlan(plan)
	return school, nil
}

type metadata struct {
	name, institution, degreeType, systemType, cip string
}

func parseMetadata(records [][]string) (metadata, error) {
	var m metadata
	for i, rec := range records {
		if i >= metadataLines {
			break
		}
		if len(rec) < 2 {
			continue
		}
		switch strings.ToLower(rec[0]) {
		case "curriculum":
			m.name = rec[1]
		case "institution", "insitution":
			m.institution = rec[1]
		case "degree type":
			m.degreeType = rec[1]
		case "system type":
			m.systemType = rec[1]
		case "cip":
			m.cip = rec[1]
		}
	}
	if m.name == "" {
		return m, cerrors.New(cerrors.ErrCodeInvalidCatalog, "missing curriculum name")
	}
	if m.institution == "" {
		return m, cerrors.New(cerrors.ErrCodeInvalidCatalog, "missing institution")
	}
	return m, nil
}

type columns map[string]int

func newColumns(header []string) columns {
	cols := make(columns, len(header))
	for i, h := range header {
		cols[strings.ToLower(h)] = i
	}
	return cols
}

func (c columns) get(rec []string, name string) string {
	i, ok := c[strings.ToLower(name)]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}

type row struct {
	course  Course
	prereqs string
	coreqs  string
	strict  string
}

// parseRows reads course rows, skipping blank rows and rows without a
// course ID, prefix or number.
func parseRows(records [][]string, cols columns) []row {
	var rows []row
	for _, rec := range records {
		c := Course{
			CSVID:         cols.get(rec, ColCourseID),
			Name:          cols.get(rec, ColCourseName),
			Prefix:        cols.get(rec, ColPrefix),
			Number:        cols.get(rec, ColNumber),
			CanonicalName: cols.get(rec, ColCanonicalName),
		}
		if c.CSVID == "" || c.Prefix == "" || c.Number == "" {
			continue
		}
		c.CreditHours, _ = strconv.ParseFloat(cols.get(rec, ColCreditHours), 64)
		rows = append(rows, row{
			course:  c,
			prereqs: cols.get(rec, ColPrerequisites),
			coreqs:  cols.get(rec, ColCorequisites),
			strict:  cols.get(rec, ColStrictCorequisites),
		})
	}
	return rows
}

// storageKeys maps each course ID to its storage key. Natural keys shared by
// several rows get the course ID appended.
func storageKeys(rows []row) map[string]string {
	count := make(map[string]int, len(rows))
	for _, r := range rows {
		count[r.course.Key()]++
	}
	out := make(map[string]string, len(rows))
	for _, r := range rows {
		key := r.course.Key()
		if count[key] > 1 {
			key += "_" + r.course.CSVID
		}
		out[r.course.CSVID] = key
	}
	return out
}

func splitList(cell string) []string {
	var out []string
	for _, tok := range strings.Split(cell, ";") {
		if tok = strings.TrimSpace(tok); tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// NormalizeCourseKey turns a free-form course reference into a natural key.
// Anything from the first "(" on is dropped and the first two words are
// joined: "CS 1800 (or coreq)" becomes "CS1800".
func NormalizeCourseKey(s string) string {
	if i := strings.IndexByte(s, '('); i >= 0 {
		s = s[:i]
	}
	parts := strings.Fields(s)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + parts[1]
	}
}

// cleanField strips whitespace, quotes, byte order marks and zero-width
// spaces from both ends of a cell.
func cleanField(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || r == '\ufeff' || r == '\u200b'
	})
}
