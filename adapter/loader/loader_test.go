package loader_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/boolq/adapter/loader"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

type LoaderTestSuite struct {
	suite.Suite
	loader domain.Loader
	ctx    context.Context
}

func (s *LoaderTestSuite) SetupTest() {
	s.loader = loader.NewLoader()
	s.ctx = context.Background()
}

func (s *LoaderTestSuite) TestLoad() {
	stream := strings.NewReader(`{"name":"zebra","legs":4}

{"name":"duck","legs":2,"flys":true}
`)
	records, err := s.loader.Load(s.ctx, stream)
	s.NoError(err)
	s.Len(records, 2)
	s.Equal(map[string]any{"name": "zebra", "legs": float64(4)}, records[0])
}

func (s *LoaderTestSuite) TestLoadEmptyStream() {
	records, err := s.loader.Load(s.ctx, strings.NewReader(""))
	s.NoError(err)
	s.Empty(records)
}

func (s *LoaderTestSuite) TestLoadCorruptLine() {
	stream := strings.NewReader("{\"name\":\"zebra\"}\n{broken\n")
	_, err := s.loader.Load(s.ctx, stream)
	s.ErrorContains(err, "line 2")
}

func (s *LoaderTestSuite) TestLoadCancelledContext() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()
	_, err := s.loader.Load(ctx, strings.NewReader("{}"))
	s.ErrorIs(err, context.Canceled)
}

func TestLoaderTestSuite(t *testing.T) {
	suite.Run(t, new(LoaderTestSuite))
}
