package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/curricula/pkg/catalog"
	cerrors "github.com/matzehuels/curricula/pkg/errors"
)

type school struct {
	Name    string           `json:"name"`
	Degrees []catalog.Degree `json:"degrees"`
	Plans   []catalog.Plan   `json:"plans"`
	Courses []course         `json:"courses"`
}

type course struct {
	Key string `json:"key"`
	catalog.Course
}

// ReadCatalog decodes a JSON catalog from r.
//
// Every course needs a valid, unique key. Requisites are not checked against
// the catalog; use [catalog.School.ValidateCourseDependencies] for that.
// ReadCatalog does not close r.
func ReadCatalog(r io.Reader) (*catalog.School, error) {
	var data school
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidFormat, err, "decode catalog")
	}

	s := catalog.NewSchool(data.Name)
	for _, c := range data.Courses {
		if err := cerrors.ValidateCourseID(c.Key); err != nil {
			return nil, err
		}
		if _, dup := s.Course(c.Key); dup {
			return nil, cerrors.New(cerrors.ErrCodeInvalidCatalog, "duplicate course key %q", c.Key)
		}
		s.AddCourseWithKey(c.Key, c.Course)
	}
	for _, d := range data.Degrees {
		s.AddDegree(d)
	}
	for _, p := range data.Plans {
		s.AddPlan(p)
	}
	return s, nil
}

// ImportCatalog reads a JSON catalog file at path.
func ImportCatalog(path string) (*catalog.School, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, cerrors.Wrap(cerrors.ErrCodeFileNotFound, err, "catalog %s", path)
		}
		return nil, cerrors.Wrap(cerrors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadCatalog(f)
}

// LoadCatalog reads a catalog file, choosing the format by extension:
// ".json" for the JSON format and ".csv" for the curriculum CSV format.
func LoadCatalog(path string) (*catalog.School, error) {
	if err := cerrors.ValidateCatalogFilename(filepath.Base(path)); err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return ImportCatalog(path)
	}
	return catalog.LoadCSV(path)
}
