package mocks

import (
	"context"

	"bom-checker/feature/distributor"

	"github.com/stretchr/testify/mock"
)

// Provider is a mock implementation of lookup.Provider
type Provider struct {
	mock.Mock
}

func (m *Provider) Lookup(ctx context.Context, partNumber string) (*distributor.Record, error) {
	args := m.Called(ctx, partNumber)
	if rec, ok := args.Get(0).(*distributor.Record); ok {
		return rec, args.Error(1)
	}
	return nil, args.Error(1)
}
