package catalogmock

import (
	"context"

	"github.com/solarquote/solarquote/pkg/catalog"
	"github.com/solarquote/solarquote/pkg/types"
	"github.com/stretchr/testify/mock"
)

type MockProvider struct {
	mock.Mock
}

var _ catalog.Provider = (*MockProvider)(nil)

func (m *MockProvider) GetTariffTable(ctx context.Context, category types.Category) ([]types.TariffRow, error) {
	args := m.Called(ctx, category)
	if len(args) > 0 {
		return args.Get(0).([]types.TariffRow), args.Error(1)
	}
	return nil, nil
}

func (m *MockProvider) GetPackages(ctx context.Context, category types.Category) ([]types.PackageOption, error) {
	args := m.Called(ctx, category)
	if len(args) > 0 {
		return args.Get(0).([]types.PackageOption), args.Error(1)
	}
	return nil, nil
}

func (m *MockProvider) Close() error {
	args := m.Called()
	return args.Error(0)
}
