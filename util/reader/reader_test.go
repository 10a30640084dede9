package reader_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trankha/ethscout/util/reader"
	"github.com/trankha/ethscout/util/reader/readertest"
	"github.com/trankha/ethscout/util/retry"
)

func TestErrorsCarryOperationAndEndpoint(t *testing.T) {
	node := &readertest.FakeNode{
		GetBalanceFn: func(ctx context.Context, address string) (*big.Int, error) {
			return nil, errors.New("execution reverted")
		},
	}
	r := reader.NewEthReader(node, retry.NewExecutor(0, time.Millisecond))

	_, err := r.GetBalance(context.Background(), "0x1111111111111111111111111111111111111111")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get balance of 0x1111111111111111111111111111111111111111")
	assert.Contains(t, err.Error(), "via fake://node")
	assert.Contains(t, err.Error(), "execution reverted")
}

func TestTransientErrorsAreRetried(t *testing.T) {
	attempts := 0
	node := &readertest.FakeNode{
		CurrentBlockFn: func(ctx context.Context) (uint64, error) {
			attempts++
			if attempts < 3 {
				return 0, errors.New("429 too many requests")
			}
			return 12345, nil
		},
	}
	r := reader.NewEthReader(node, retry.NewExecutor(5, time.Millisecond))

	block, err := r.CurrentBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), block)
	assert.Equal(t, 3, attempts)
}

func TestPermanentErrorsAreNotRetried(t *testing.T) {
	attempts := 0
	fake := &readertest.FakeNode{
		GetCodeFn: func(ctx context.Context, address string) ([]byte, error) {
			attempts++
			return nil, errors.New("not found")
		},
	}
	r := reader.NewEthReader(fake, retry.NewExecutor(5, time.Millisecond))

	_, err := r.GetCode(context.Background(), "0x01")
	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}
