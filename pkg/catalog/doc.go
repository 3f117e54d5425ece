// Package catalog models a school's course catalog and reads it from the
// curriculum CSV format.
//
// A [School] holds courses keyed by storage key, the degrees they belong to,
// and plans (ordered course lists). [School.BuildDAG] turns the catalog into
// the prerequisite graph analyzed by pkg/metrics and pkg/schedule.
//
// # Storage keys
//
// A course's natural key is its prefix and number run together ("CS1800").
// When two rows of a file share a natural key, each is stored as
// "<natural key>_<course ID>" instead ("CS1800_12") so both survive.
//
// # CSV format
//
// The first ten lines may carry metadata as "key,value" rows:
//
//	Curriculum,Computer Science
//	Institution,Northeastern University
//	Degree Type,BS
//	System Type,semester
//	CIP,11.0701
//	Courses
//	Course ID,Course Name,Prefix,Number,Prerequisites,Corequisites,Strict-Corequisites,Credit Hours,Canonical Name
//	1,Discrete Structures,CS,1800,,2,,4,
//	2,Discrete Structures Seminar,CS,1802,,,,1,
//
// A line reading "Courses" opens the course section; the next line names the
// columns, matched case-insensitively. Requisite cells list course IDs
// separated by ";". Prerequisites that match no course ID are kept as
// normalized natural keys ("CS 1800 (or coreq)" becomes "CS1800");
// unmatched corequisites are dropped. Parsing also creates a default plan
// holding every course in file order.
package catalog
