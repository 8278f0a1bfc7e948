package fieldspec_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/fieldspec"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

type FieldSpecTestSuite struct {
	suite.Suite
	spec domain.FieldSpecification
}

func (s *FieldSpecTestSuite) SetupTest() {
	spec, err := fieldspec.New(
		domain.FieldSpec{FullName: "name", AbbrName: "nm", Type: domain.String},
		domain.FieldSpec{FullName: "caught", AbbrName: "cg", Type: domain.DateTime},
		domain.FieldSpec{FullName: "height", AbbrName: "hg", Type: domain.Number},
		domain.FieldSpec{FullName: "legs", AbbrName: "lg", Type: domain.Number},
		domain.FieldSpec{FullName: "flys", AbbrName: "fy", Type: domain.Boolean},
		domain.FieldSpec{FullName: "tags", AbbrName: "tg", Type: domain.List, Path: "meta.tags"},
	)
	s.Require().NoError(err)
	s.spec = spec
}

func (s *FieldSpecTestSuite) TestMatchFullAbbrAndCase() {
	for _, name := range []string{"name", "NM", "Name", "nm"} {
		spec, err := s.spec.Match(name)
		s.NoError(err)
		s.Equal("name", spec.FullName)
	}
}

func (s *FieldSpecTestSuite) TestMatchUnknown() {
	_, err := s.spec.Match("eggs")
	var unknown domain.ErrUnknownField
	s.ErrorAs(err, &unknown)
	s.Equal("eggs", unknown.Field)
}

func (s *FieldSpecTestSuite) TestPathDefaultsToName() {
	spec, err := s.spec.Match("legs")
	s.NoError(err)
	s.Equal("legs", spec.Path)
	spec, err = s.spec.Match("tags")
	s.NoError(err)
	s.Equal("meta.tags", spec.Path)
}

func (s *FieldSpecTestSuite) TestDuplicateName() {
	_, err := fieldspec.New(
		domain.FieldSpec{FullName: "name", AbbrName: "nm", Type: domain.String},
		domain.FieldSpec{FullName: "Number", AbbrName: "NM", Type: domain.Number},
	)
	var dup domain.ErrDuplicateField
	s.ErrorAs(err, &dup)
	s.Equal("nm", dup.Name)
}

func (s *FieldSpecTestSuite) TestConvertNumber() {
	spec, _ := s.spec.Match("height")
	v, err := s.spec.Convert(spec, "1.4", domain.Number, domain.DateTime)
	s.NoError(err)
	s.Equal(domain.NumberValue(1.4), v)
}

func (s *FieldSpecTestSuite) TestConvertDateTime() {
	spec, _ := s.spec.Match("caught")
	v, err := s.spec.Convert(spec, "2010-03-15", domain.Number, domain.DateTime)
	s.NoError(err)
	want := time.Date(2010, 3, 15, 0, 0, 0, 0, time.UTC)
	s.Equal(domain.TimeValue(want), v)
}

func (s *FieldSpecTestSuite) TestConvertBadDate() {
	spec, _ := s.spec.Match("caught")
	_, err := s.spec.Convert(spec, "2020-14-99", domain.Number, domain.DateTime)
	var conv domain.ErrTermConversion
	s.ErrorAs(err, &conv)
	s.Equal("2020-14-99", conv.Term)
}

func (s *FieldSpecTestSuite) TestConvertBadNumber() {
	spec, _ := s.spec.Match("legs")
	_, err := s.spec.Convert(spec, "many", domain.Number, domain.DateTime)
	var conv domain.ErrTermConversion
	s.ErrorAs(err, &conv)
	s.Equal("legs", conv.Field)
}

func (s *FieldSpecTestSuite) TestConvertTypeMismatch() {
	spec, _ := s.spec.Match("name")
	_, err := s.spec.Convert(spec, "5", domain.Number, domain.DateTime)
	var mismatch domain.ErrTypeMismatch
	s.ErrorAs(err, &mismatch)
	s.Equal("name", mismatch.Field)
}

func (s *FieldSpecTestSuite) TestConvertBoolean() {
	spec, _ := s.spec.Match("flys")
	for term, want := range map[string]bool{
		"t": true, "T": true, "true": true, "TRUE": true,
		"f": false, "false": false, "yes": false, "1": false,
	} {
		v, err := s.spec.Convert(spec, term, domain.String, domain.Boolean)
		s.NoError(err)
		s.Equal(domain.BoolValue(want), v, "term %q", term)
	}
}

func (s *FieldSpecTestSuite) TestConvertList() {
	spec, _ := s.spec.Match("tags")
	v, err := s.spec.Convert(spec, "swims,flys", domain.List)
	s.NoError(err)
	s.Equal(domain.ListValue{"swims", "flys"}, v)
}

func (s *FieldSpecTestSuite) TestSpecsOrder() {
	var names []string
	for spec := range s.spec.Specs() {
		names = append(names, spec.FullName)
	}
	s.Equal([]string{"name", "caught", "height", "legs", "flys", "tags"}, names)
}

func (s *FieldSpecTestSuite) TestFromYAML() {
	doc := `
fields:
  - name: name
    abbr: nm
    type: string
  - name: caught
    abbr: cg
    type: date
  - name: tags
    abbr: tg
    type: list
    path: meta.tags
`
	spec, err := fieldspec.FromYAML(strings.NewReader(doc))
	s.Require().NoError(err)
	got, err := spec.Match("cg")
	s.NoError(err)
	s.Equal(domain.DateTime, got.Type)
	got, err = spec.Match("tags")
	s.NoError(err)
	s.Equal("meta.tags", got.Path)
}

func (s *FieldSpecTestSuite) TestFromYAMLUnknownType() {
	doc := "fields:\n  - name: x\n    type: blob\n"
	_, err := fieldspec.FromYAML(strings.NewReader(doc))
	s.Error(err)
}

func TestFieldSpecTestSuite(t *testing.T) {
	suite.Run(t, new(FieldSpecTestSuite))
}
