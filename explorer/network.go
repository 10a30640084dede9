package explorer

import (
	"context"
	"fmt"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/util/logger"
)

const feeHistoryBlocks = 5

var feeHistoryPercentiles = []float64{25, 50, 75}

// GetNetworkSnapshot reads the current chain head, the suggested gas price
// and, best effort, the node's client version and recent fee history.
func (e *Explorer) GetNetworkSnapshot(ctx context.Context) (*scoutcommon.NetworkSnapshot, error) {
	latest, err := e.reader.CurrentBlock(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch network status: %w", err)
	}
	gasPrice, err := e.reader.SuggestedGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch network status: %w", err)
	}

	snapshot := &scoutcommon.NetworkSnapshot{
		LatestBlock:   latest,
		GasPrice:      gasPrice,
		ClientVersion: "Unknown",
	}
	if version, err := e.reader.ClientVersion(ctx); err == nil {
		snapshot.ClientVersion = version
	} else {
		logger.L().Debugw("client version unavailable", "err", err)
	}

	history, err := e.reader.FeeHistory(ctx, feeHistoryBlocks, feeHistoryPercentiles)
	if err != nil {
		logger.L().Debugw("fee history unavailable", "err", err)
		return snapshot, nil
	}
	snapshot.BaseFeeTrend = history.BaseFee
	if len(history.Reward) > 0 {
		snapshot.PriorityFeePercentiles = history.Reward[len(history.Reward)-1]
	}
	return snapshot, nil
}
