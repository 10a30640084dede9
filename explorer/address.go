package explorer

import (
	"context"
	"fmt"

	scoutcommon "github.com/trankha/ethscout/common"
	"github.com/trankha/ethscout/util/logger"
)

// GetAddress probes an address and merges whatever succeeded. Balance, nonce
// and code are required; the contract probes and the name lookup each fail on
// their own without touching the rest of the record.
func (e *Explorer) GetAddress(ctx context.Context, address string) (*scoutcommon.AddressInfo, error) {
	balance, err := e.reader.GetBalance(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch address %s: %w", address, err)
	}
	nonce, err := e.reader.GetMinedNonce(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch address %s: %w", address, err)
	}
	code, err := e.reader.GetCode(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch address %s: %w", address, err)
	}

	info := &scoutcommon.AddressInfo{
		Address:    address,
		Balance:    balance,
		Nonce:      nonce,
		IsContract: len(code) > 0,
		CodeSize:   len(code),
	}

	if info.IsContract {
		if impl, err := e.inspector.Implementation(ctx, address); err == nil {
			info.ProxyImpl = impl.Hex()
		} else {
			logger.L().Debugw("proxy probe failed", "address", address, "err", err)
		}
		if token, err := e.inspector.DetectToken(ctx, address); err == nil {
			info.Token = token
		} else {
			logger.L().Debugw("token probe failed", "address", address, "err", err)
		}
		if owner, err := e.inspector.Owner(ctx, address); err == nil {
			info.Owner = owner.Hex()
		} else {
			logger.L().Debugw("owner probe failed", "address", address, "err", err)
		}
		info.TokenBalances = e.scanner.TokenBalances(ctx, address)
	}

	info.Name = e.resolver.Name(ctx, scoutcommon.HexToAddress(address))
	return info, nil
}
