// Package idgenerator contains the default [domain.IDGenerator]
// implementation.
package idgenerator

import (
	"github.com/google/uuid"
	"github.com/vinicius-lino-figueiredo/boolq/domain"
)

// IDGenerator implements domain.IDGenerator using random UUIDs.
type IDGenerator struct{}

// NewIDGenerator returns a new implementation of domain.IDGenerator.
func NewIDGenerator() domain.IDGenerator {
	return &IDGenerator{}
}

// GenerateID implements domain.IDGenerator.
func (g *IDGenerator) GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
