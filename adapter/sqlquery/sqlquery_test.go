package sqlquery_test

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/fieldspec"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/sqlquery"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

type SQLQueryTestSuite struct {
	suite.Suite
	backend *sqlquery.SQLQuery
}

func (s *SQLQueryTestSuite) SetupTest() {
	spec, err := fieldspec.New(
		domain.FieldSpec{FullName: "name", AbbrName: "nm", Type: domain.String},
		domain.FieldSpec{FullName: "caught", AbbrName: "cg", Type: domain.DateTime},
		domain.FieldSpec{FullName: "legs", AbbrName: "lg", Type: domain.Number},
		domain.FieldSpec{FullName: "flys", AbbrName: "fy", Type: domain.Boolean},
		domain.FieldSpec{FullName: "eats", AbbrName: "et", Type: domain.List},
	)
	s.Require().NoError(err)
	s.backend = sqlquery.New(spec)
}

// Where compiles a query the suite expects to be valid.
func (s *SQLQueryTestSuite) Where(query string) string {
	clause, err := s.backend.Where(query)
	s.Require().NoError(err, "query %q", query)
	return clause
}

func (s *SQLQueryTestSuite) TestStringLeaf() {
	s.Equal(`"name" LIKE 'whale'`, s.Where("whale[name]"))
	s.Equal(`"name" LIKE '%er'`, s.Where("*er[name]"))
	s.Equal(`"name" LIKE 'o''brien'`, s.Where(`"o'brien"[name]`))
}

func (s *SQLQueryTestSuite) TestBooleanLeaf() {
	s.Equal(`"flys" = 1`, s.Where("t[flys]"))
	s.Equal(`"flys" = 0`, s.Where("false[flys]"))
}

func (s *SQLQueryTestSuite) TestNumberLeaf() {
	s.Equal(`"legs" > 2`, s.Where(">2[legs]"))
	s.Equal(`"legs" < 1.5`, s.Where("<1.5[legs]"))
	s.Equal(`"legs" = 1000`, s.Where("=1000[lg]"))
}

func (s *SQLQueryTestSuite) TestDateTimeLeaf() {
	s.Equal(
		`CAST(strftime('%s', "caught") AS INT) > 631152000`,
		s.Where(">1990-01-01[caught]"),
	)
}

func (s *SQLQueryTestSuite) TestListLeaf() {
	s.Equal(`"eats" IN ('grass', 'leaves')`, s.Where("!grass,leaves[eats]"))
	s.Equal(`"eats" IN ('insects')`, s.Where("?insects[eats]"))
}

func (s *SQLQueryTestSuite) TestCompound() {
	s.Equal(
		`("legs" > 2 AND ("name" LIKE '%er' OR CAST(strftime('%s', "caught") AS INT) > 631152000))`,
		s.Where(">2[legs] and (*er[name] or >1990-01-01[caught])"),
	)
}

func (s *SQLQueryTestSuite) TestNot() {
	s.Equal(`NOT ("flys" = 1)`, s.Where("not t[flys]"))
}

func (s *SQLQueryTestSuite) TestEmptyQuery() {
	s.Equal("1 = 1", s.Where(""))
	s.Equal("1 = 1", s.Where("  "))
}

func (s *SQLQueryTestSuite) TestSelectStatement() {
	stmt, err := s.backend.SelectStatement("animals", ">2[legs]")
	s.NoError(err)
	s.Equal(`SELECT * FROM "animals" WHERE "legs" > 2`, stmt)
}

func (s *SQLQueryTestSuite) TestErrors() {
	_, err := s.backend.Where(">5[name]")
	var mismatch domain.ErrTypeMismatch
	s.ErrorAs(err, &mismatch)

	_, err = s.backend.Where("x[eggs]")
	var syntax domain.ErrQuerySyntax
	s.Require().ErrorAs(err, &syntax)
	s.Equal([]string{"eggs"}, syntax.Unknown)
}

func TestSQLQueryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLQueryTestSuite))
}
