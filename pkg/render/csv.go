package render

import (
	"cmp"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"
)

var metricsCSVHeader = []string{
	"Course ID", "Course Name", "Prefix", "Number", "Prerequisites", "Corequisites",
	"Strict-Corequisites", "Credit Hours", "Institution", "Canonical Name",
	"Complexity", "Blocking", "Delay", "Centrality",
}

// WriteMetricsCSV writes the plan's metrics in the curriculum analytics
// layout: eight summary rows, a "Courses" marker, a header, then one row per
// course ordered by numeric course ID. Complexity is scaled to the semester
// scale; the total sums per-course values rounded to one decimal.
func WriteMetricsCSV(c *Context, w io.Writer) error {
	cw := csv.NewWriter(w)

	longest := []string{"Longest Delay", strconv.Itoa(c.Summary.LongestDelay)}
	if len(c.Summary.LongestDelayPath) > 0 {
		longest = append(longest, strings.Join(c.Summary.LongestDelayPath, "->"))
	}
	rows := [][]string{
		{"Curriculum", c.Plan.Name},
		{"Institution", c.Institution()},
		{"Degree Type", c.DegreeType()},
		{"System Type", c.SystemType()},
		{"CIP", c.CIPCode()},
		{"Total Structural Complexity", strconv.FormatFloat(c.ScaledComplexity(), 'f', 1, 64)},
		longest,
		{"Highest Centrality Course", c.Summary.HighestCentralityCourse, strconv.Itoa(c.Summary.HighestCentrality)},
		{"Courses"},
		metricsCSVHeader,
	}

	scale := c.ScaleFactor()
	for _, key := range c.coursesByCSVID() {
		course, _ := c.School.Course(key)
		m := c.Metrics[key]
		rows = append(rows, []string{
			csvID(course.CSVID),
			course.Name,
			course.Prefix,
			course.Number,
			c.csvIDs(course.Prerequisites),
			c.csvIDs(course.Corequisites),
			c.csvIDs(course.StrictCorequisites),
			strconv.FormatFloat(course.CreditHours, 'f', -1, 64),
			c.Institution(),
			course.CanonicalName,
			strconv.FormatFloat(float64(m.Complexity)*scale, 'f', 1, 64),
			strconv.Itoa(m.Blocking),
			strconv.Itoa(m.Delay),
			strconv.Itoa(m.Centrality),
		})
	}

	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("write metrics csv: %w", err)
	}
	return nil
}

// ExportMetricsCSV writes the metrics CSV to a file at path.
func ExportMetricsCSV(c *Context, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteMetricsCSV(c, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// coursesByCSVID returns the plan's known courses ordered by numeric CSV
// ID. IDs that are not numbers sort as 0; ties keep plan order.
func (c *Context) coursesByCSVID() []string {
	var keys []string
	for _, key := range c.Plan.Courses {
		if _, ok := c.School.Course(key); ok {
			keys = append(keys, key)
		}
	}
	num := func(key string) int {
		course, _ := c.School.Course(key)
		n, _ := strconv.Atoi(course.CSVID)
		return n
	}
	slices.SortStableFunc(keys, func(a, b string) int { return cmp.Compare(num(a), num(b)) })
	return keys
}

// csvIDs maps storage keys back to CSV IDs, keeping keys without one.
func (c *Context) csvIDs(keys []string) string {
	ids := make([]string, len(keys))
	for i, key := range keys {
		ids[i] = key
		if course, ok := c.School.Course(key); ok && course.CSVID != "" {
			ids[i] = course.CSVID
		}
	}
	return strings.Join(ids, ";")
}

func csvID(id string) string {
	if id == "" {
		return "0"
	}
	return id
}
