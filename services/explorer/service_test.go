package explorer_test

import (
	"context"
	"errors"
	"testing"

	"graphsense-dashboard/pkg/logger"
	"graphsense-dashboard/pkg/storage"
	mock_storage "graphsense-dashboard/pkg/storage/mocks"
	"graphsense-dashboard/services/explorer"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const satoshiAddress = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"

func TestNewService(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	tests := []struct {
		name    string
		client  storage.Client
		wantErr string
	}{
		{name: "should return service", client: mock_storage.NewMockClient(controller)},
		{name: "should return invalid storage client", client: nil, wantErr: "[explorer_service] invalid storage client"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, err := explorer.NewService(tc.client, logger.Nop())
			if tc.wantErr != "" {
				assert.EqualError(t, err, tc.wantErr)
				assert.Nil(t, svc)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestAddressPage(t *testing.T) {
	ctx := context.Background()
	currency := storage.Currency("btc")
	remote := &storage.RemoteError{URL: "http://storage", Status: 500}

	tests := []struct {
		name    string
		prepare func(m *mock_storage.MockClient)
		expect  func(*testing.T, *storage.Address, error)
	}{
		{
			name: "address without tags has empty tag lists",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Address(gomock.Any(), currency, satoshiAddress).Return(&storage.Address{Address: satoshiAddress}, nil)
				m.EXPECT().ExplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{}, nil)
				m.EXPECT().ImplicitTags(gomock.Any(), currency, satoshiAddress).Return(nil, nil)
				m.EXPECT().AddressCluster(gomock.Any(), currency, satoshiAddress).Return(&storage.Cluster{Cluster: "7"}, nil)
			},
			expect: func(t *testing.T, a *storage.Address, err error) {
				require.NoError(t, err)
				assert.Equal(t, satoshiAddress, a.Address)
				assert.Equal(t, []storage.Tag{}, a.Tags.Explicit)
				assert.Equal(t, []storage.Tag{}, a.Tags.Implicit)
				assert.Equal(t, "7", a.Cluster.Cluster.String())
			},
		},
		{
			name: "tags keep their provenance lists apart",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Address(gomock.Any(), currency, satoshiAddress).Return(&storage.Address{Address: satoshiAddress}, nil)
				m.EXPECT().ExplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{{Tag: "genesis"}}, nil)
				m.EXPECT().ImplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{{Tag: "a"}, {Tag: "b"}}, nil)
				m.EXPECT().AddressCluster(gomock.Any(), currency, satoshiAddress).Return(nil, storage.ErrNotFound)
			},
			expect: func(t *testing.T, a *storage.Address, err error) {
				require.NoError(t, err)
				assert.Len(t, a.Tags.Explicit, 1)
				assert.Len(t, a.Tags.Implicit, 2)
				assert.Nil(t, a.Cluster)
			},
		},
		{
			name: "unknown address is not found",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Address(gomock.Any(), currency, satoshiAddress).Return(nil, storage.ErrNotFound)
				m.EXPECT().ExplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{}, nil).AnyTimes()
				m.EXPECT().ImplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{}, nil).AnyTimes()
				m.EXPECT().AddressCluster(gomock.Any(), currency, satoshiAddress).Return(nil, storage.ErrNotFound).AnyTimes()
			},
			expect: func(t *testing.T, a *storage.Address, err error) {
				assert.ErrorIs(t, err, storage.ErrNotFound)
				assert.Nil(t, a)
			},
		},
		{
			name: "remote failure of any call fails the page",
			prepare: func(m *mock_storage.MockClient) {
				m.EXPECT().Address(gomock.Any(), currency, satoshiAddress).Return(&storage.Address{Address: satoshiAddress}, nil).AnyTimes()
				m.EXPECT().ExplicitTags(gomock.Any(), currency, satoshiAddress).Return(nil, remote)
				m.EXPECT().ImplicitTags(gomock.Any(), currency, satoshiAddress).Return([]storage.Tag{}, nil).AnyTimes()
				m.EXPECT().AddressCluster(gomock.Any(), currency, satoshiAddress).Return(nil, storage.ErrNotFound).AnyTimes()
			},
			expect: func(t *testing.T, a *storage.Address, err error) {
				var re *storage.RemoteError
				assert.True(t, errors.As(err, &re))
				assert.Nil(t, a)
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			m := mock_storage.NewMockClient(controller)
			tc.prepare(m)

			svc, err := explorer.NewService(m, logger.Nop())
			require.NoError(t, err)

			got, err := svc.AddressPage(ctx, currency, satoshiAddress)
			tc.expect(t, got, err)
		})
	}
}

func TestClusterPage(t *testing.T) {
	controller := gomock.NewController(t)
	defer controller.Finish()

	m := mock_storage.NewMockClient(controller)
	m.EXPECT().Cluster(gomock.Any(), storage.Currency("btc"), "42").Return(&storage.Cluster{Cluster: "42", NoAddresses: 3}, nil)
	m.EXPECT().ClusterTags(gomock.Any(), storage.Currency("btc"), "42").Return(nil, nil)

	svc, err := explorer.NewService(m, logger.Nop())
	require.NoError(t, err)

	page, err := svc.ClusterPage(context.Background(), "btc", "42")
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Cluster.NoAddresses)
	assert.Equal(t, []storage.Tag{}, page.Tags)
}
