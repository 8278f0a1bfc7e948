package fieldnavigator_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/fieldnavigator"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

type animal struct {
	Name    string  `boolq:"name"`
	Legs    int     `boolq:"legs"`
	Height  float64 `boolq:"height"`
	Habitat habitat `boolq:"habitat"`
	secret  string
}

type habitat struct {
	Biome string `boolq:"biome"`
}

type FieldNavigatorTestSuite struct {
	suite.Suite
	navigator domain.FieldNavigator
}

func (s *FieldNavigatorTestSuite) SetupTest() {
	s.navigator = fieldnavigator.NewFieldNavigator()
}

func (s *FieldNavigatorTestSuite) TestMapLookup() {
	record := map[string]any{"name": "zebra", "legs": 4}
	v, ok := s.navigator.GetValue(record, "name")
	s.True(ok)
	s.Equal("zebra", v)
}

func (s *FieldNavigatorTestSuite) TestNestedMapPath() {
	record := map[string]any{"habitat": map[string]any{"biome": "savanna"}}
	v, ok := s.navigator.GetValue(record, "habitat.biome")
	s.True(ok)
	s.Equal("savanna", v)
}

func (s *FieldNavigatorTestSuite) TestMissingSegment() {
	record := map[string]any{"name": "zebra"}
	_, ok := s.navigator.GetValue(record, "habitat.biome")
	s.False(ok)
}

func (s *FieldNavigatorTestSuite) TestStructByTag() {
	record := animal{Name: "spider", Legs: 8}
	v, ok := s.navigator.GetValue(record, "legs")
	s.True(ok)
	s.Equal(8, v)
}

func (s *FieldNavigatorTestSuite) TestStructPointer() {
	record := &animal{Name: "spider", Height: 0.005}
	v, ok := s.navigator.GetValue(record, "height")
	s.True(ok)
	s.Equal(0.005, v)
}

func (s *FieldNavigatorTestSuite) TestNestedStructPath() {
	record := animal{Habitat: habitat{Biome: "web"}}
	v, ok := s.navigator.GetValue(record, "habitat.biome")
	s.True(ok)
	s.Equal("web", v)
}

func (s *FieldNavigatorTestSuite) TestStructByNameCaseInsensitive() {
	record := struct{ Wings int }{Wings: 2}
	v, ok := s.navigator.GetValue(record, "wings")
	s.True(ok)
	s.Equal(2, v)
}

func (s *FieldNavigatorTestSuite) TestUnexportedFieldNotMatched() {
	record := animal{secret: "hidden"}
	_, ok := s.navigator.GetValue(record, "secret")
	s.False(ok)
}

func (s *FieldNavigatorTestSuite) TestScalarDeadEnd() {
	record := map[string]any{"name": "zebra"}
	_, ok := s.navigator.GetValue(record, "name.length")
	s.False(ok)
}

func TestFieldNavigatorTestSuite(t *testing.T) {
	suite.Run(t, new(FieldNavigatorTestSuite))
}
