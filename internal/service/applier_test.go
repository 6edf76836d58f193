package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/agrofield/go-field-sync/internal/logger"
	"github.com/agrofield/go-field-sync/internal/mock"
	"github.com/agrofield/go-field-sync/internal/store"
	"github.com/agrofield/go-field-sync/models"
)

func TestFarmApplier_Apply(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(7)

	tests := []struct {
		name         string
		payload      json.RawMessage
		prepareMocks func(farms *mock.MockFarmRepository)
		wantID       int64
		wantErr      error
	}{
		{
			name:    "creates farm and returns server id",
			payload: json.RawMessage(`{"name":"North Field","area_ha":12.5}`),
			prepareMocks: func(farms *mock.MockFarmRepository) {
				farms.EXPECT().
					Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, farm models.Farm) (models.Farm, error) {
						assert.Equal(t, ownerID, farm.OwnerID)
						assert.Equal(t, "North Field", farm.Name)
						require.NotNil(t, farm.AreaHa)
						assert.InDelta(t, 12.5, *farm.AreaHa, 1e-9)
						farm.ID = 42
						return farm, nil
					})
			},
			wantID: 42,
		},
		{
			name:    "extra payload fields are ignored",
			payload: json.RawMessage(`{"name":"South Field","boundary":{"type":"Polygon"}}`),
			prepareMocks: func(farms *mock.MockFarmRepository) {
				farms.EXPECT().
					Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, farm models.Farm) (models.Farm, error) {
						farm.ID = 43
						return farm, nil
					})
			},
			wantID: 43,
		},
		{
			name:    "malformed payload",
			payload: json.RawMessage(`{"name":`),
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "missing name",
			payload: json.RawMessage(`{"area_ha":3.0}`),
			wantErr: ErrFarmNameMissing,
		},
		{
			name:    "repository failure",
			payload: json.RawMessage(`{"name":"North Field"}`),
			prepareMocks: func(farms *mock.MockFarmRepository) {
				farms.EXPECT().
					Create(ctx, gomock.Any()).
					Return(models.Farm{}, store.ErrExecutingStatement)
			},
			wantErr: store.ErrExecutingStatement,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			farms := mock.NewMockFarmRepository(ctrl)
			if tt.prepareMocks != nil {
				tt.prepareMocks(farms)
			}

			applier := NewFarmApplier(farms, logger.Nop())

			id, err := applier.Apply(ctx, ownerID, tt.payload)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestSoilSampleApplier_Apply(t *testing.T) {
	ctx := context.Background()
	ownerID := int64(7)

	tests := []struct {
		name         string
		payload      json.RawMessage
		prepareMocks func(farms *mock.MockFarmRepository, samples *mock.MockSoilSampleRepository)
		wantID       int64
		wantErr      error
	}{
		{
			name:    "creates sample for owned farm",
			payload: json.RawMessage(`{"farm_id":42,"ph":6.8,"n":11.2,"extra":{"lab":"agro-x"}}`),
			prepareMocks: func(farms *mock.MockFarmRepository, samples *mock.MockSoilSampleRepository) {
				farms.EXPECT().Exists(ctx, ownerID, int64(42)).Return(true, nil)
				samples.EXPECT().
					Create(ctx, gomock.Any()).
					DoAndReturn(func(_ context.Context, sample models.SoilSample) (models.SoilSample, error) {
						assert.Equal(t, int64(42), sample.FarmID)
						require.NotNil(t, sample.PH)
						assert.InDelta(t, 6.8, *sample.PH, 1e-9)
						assert.JSONEq(t, `{"lab":"agro-x"}`, string(sample.Extra))
						sample.ID = 9
						return sample, nil
					})
			},
			wantID: 9,
		},
		{
			name:    "malformed payload",
			payload: json.RawMessage(`not json`),
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "missing farm_id",
			payload: json.RawMessage(`{"ph":6.8}`),
			wantErr: ErrSoilSampleFarmNotSet,
		},
		{
			name:    "farm belongs to another owner",
			payload: json.RawMessage(`{"farm_id":42,"ph":6.8}`),
			prepareMocks: func(farms *mock.MockFarmRepository, _ *mock.MockSoilSampleRepository) {
				farms.EXPECT().Exists(ctx, ownerID, int64(42)).Return(false, nil)
			},
			wantErr: store.ErrFarmNotFound,
		},
		{
			name:    "farm lookup failure",
			payload: json.RawMessage(`{"farm_id":42}`),
			prepareMocks: func(farms *mock.MockFarmRepository, _ *mock.MockSoilSampleRepository) {
				farms.EXPECT().Exists(ctx, ownerID, int64(42)).Return(false, errors.New("connection reset"))
			},
			wantErr: errors.New("connection reset"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			farms := mock.NewMockFarmRepository(ctrl)
			samples := mock.NewMockSoilSampleRepository(ctrl)
			if tt.prepareMocks != nil {
				tt.prepareMocks(farms, samples)
			}

			applier := NewSoilSampleApplier(farms, samples, logger.Nop())

			id, err := applier.Apply(ctx, ownerID, tt.payload)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestApplierRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	applier := mock.NewMockRecordApplier(ctrl)

	registry := NewApplierRegistry()
	registry.Register("farm", applier)

	got, ok := registry.Lookup("farm")
	require.True(t, ok)
	assert.Same(t, applier, got)

	_, ok = registry.Lookup("gps_track")
	assert.False(t, ok)
}
