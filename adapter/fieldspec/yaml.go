package fieldspec

import (
	"fmt"
	"io"

	"github.com/vinicius-lino-figueiredo/boolq/domain"
	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Fields []yamlField `yaml:"fields"`
}

type yamlField struct {
	Name string `yaml:"name"`
	Abbr string `yaml:"abbr"`
	Type string `yaml:"type"`
	Path string `yaml:"path"`
}

// FromYAML reads field specs from a YAML document and returns a
// specification built from them. The document is a map with a single
// "fields" key holding a list of {name, abbr, type, path} entries; path
// is optional and defaults to the field name.
func FromYAML(r io.Reader) (domain.FieldSpecification, error) {
	var file yamlFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("could not decode field specs: %w", err)
	}
	specs := make([]domain.FieldSpec, 0, len(file.Fields))
	for _, f := range file.Fields {
		t, err := parseType(f.Type)
		if err != nil {
			return nil, err
		}
		specs = append(specs, domain.FieldSpec{
			FullName: f.Name,
			AbbrName: f.Abbr,
			Type:     t,
			Path:     f.Path,
		})
	}
	return New(specs...)
}

func parseType(name string) (domain.TypeTag, error) {
	switch name {
	case "string":
		return domain.String, nil
	case "boolean", "bool":
		return domain.Boolean, nil
	case "number":
		return domain.Number, nil
	case "datetime", "date":
		return domain.DateTime, nil
	case "list":
		return domain.List, nil
	}
	return 0, fmt.Errorf("unknown field type %q", name)
}
