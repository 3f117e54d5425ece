// Package io provides JSON import and export for course catalogs, their
// requisite graphs, and analysis reports.
//
// # Catalog format
//
// A catalog is a JSON object holding the school name, its degrees, plans and
// courses. Courses are an ordered array; each entry carries its storage key
// next to the catalog fields:
//
//	{
//	  "name": "Northeastern University",
//	  "degrees": [{"name": "Computer Science", "degree_type": "BS", "cip_code": "11.0701", "system_type": "semester"}],
//	  "plans": [{"name": "Computer Science", "degree_id": "BS Computer Science", "courses": ["CS1800", "CS2500"]}],
//	  "courses": [
//	    {"key": "CS1800", "name": "Discrete Structures", "prefix": "CS", "number": "1800", "credit_hours": 4},
//	    {"key": "CS2500", "name": "Fundamentals of CS 1", "prefix": "CS", "number": "2500", "credit_hours": 4,
//	     "prerequisites": ["CS1800"]}
//	  ]
//	}
//
// Use [ImportCatalog] to read a file path, or [ReadCatalog] to read from any
// io.Reader. [LoadCatalog] picks the JSON or CSV reader by file extension.
// [ExportCatalog] and [WriteCatalog] write the same format back, so a CSV
// catalog can be converted once and re-imported identically.
//
// # Graph format
//
// [WriteGraph] exports the requisite graph as nodes and typed edges. Edges
// point from the requisite to the course that needs it:
//
//	{
//	  "nodes": [{"id": "CS1800"}, {"id": "CS2500"}],
//	  "edges": [{"from": "CS1800", "to": "CS2500", "kind": "prerequisite"}]
//	}
//
// # Reports
//
// [NewReport] collects everything one analysis produced (metrics, summary,
// schedule) into a [Report], and [WriteReport] encodes it. The server
// answers with the same structure.
package io
