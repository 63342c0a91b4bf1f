package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	goredis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/grimoire-api/internal/errors"
)

func TestConnect(t *testing.T) {
	tests := []struct {
		name       string
		addrs      []string
		masterName string
		wantErr    string
		wantType   interface{}
	}{
		{name: "no addresses", wantErr: "at least one address is required"},
		{name: "blank addresses", addrs: []string{" ", ""}, wantErr: "at least one address is required"},
		{name: "single", addrs: []string{"localhost:6379"}, wantType: &goredis.Client{}},
		{name: "cluster", addrs: []string{"localhost:7000", "localhost:7001"}, wantType: &goredis.ClusterClient{}},
		{name: "sentinel", addrs: []string{"localhost:26379"}, masterName: "mymaster", wantType: &goredis.Client{}},
		{name: "sentinel without addresses", masterName: "mymaster", wantErr: "sentinel address is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := Connect(tt.addrs, tt.masterName, nil)
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.True(t, errors.IsInvalidArgument(err))
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.wantType, client)
			_ = client.Close()
		})
	}
}

func TestConnectRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := Connect([]string{mr.Addr()}, "", &Options{PoolSize: 2})
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	ctx := context.Background()
	require.NoError(t, client.Set(ctx, "k", "v", 0).Err())

	got, err := client.Get(ctx, "k").Result()
	require.NoError(t, err)
	assert.Equal(t, "v", got)

	_, err = client.Get(ctx, "missing").Result()
	assert.ErrorIs(t, err, Nil)
}
