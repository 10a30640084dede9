package reader

import (
	"context"
	"encoding/json"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	scoutcommon "github.com/trankha/ethscout/common"
)

// per call budget on top of whatever deadline the caller carries
const TIMEOUT time.Duration = 4 * time.Second

// OneNodeReader binds the EthereumNode surface to a single RPC endpoint. The
// connection is dialed lazily on first use and then shared; there is no write
// path so sharing is safe.
type OneNodeReader struct {
	nodeName  string
	nodeURL   string
	client    *rpc.Client
	ethClient *ethclient.Client
	mu        sync.Mutex
}

func NewOneNodeReader(name, url string) *OneNodeReader {
	return &OneNodeReader{
		nodeName: name,
		nodeURL:  url,
	}
}

func (onr *OneNodeReader) NodeName() string {
	return onr.nodeName
}

func (onr *OneNodeReader) NodeURL() string {
	return onr.nodeURL
}

func (onr *OneNodeReader) initConnection() error {
	onr.mu.Lock()
	defer onr.mu.Unlock()
	if onr.client != nil {
		return nil
	}
	client, err := rpc.Dial(onr.nodeURL)
	if err != nil {
		return fmt.Errorf("couldn't connect to %s: %w", onr.nodeName, err)
	}
	onr.client = client
	onr.ethClient = ethclient.NewClient(client)
	return nil
}

func (onr *OneNodeReader) Client() (*rpc.Client, error) {
	if onr.client != nil {
		return onr.client, nil
	}
	err := onr.initConnection()
	return onr.client, err
}

func (onr *OneNodeReader) EthClient() (*ethclient.Client, error) {
	if onr.ethClient != nil {
		return onr.ethClient, nil
	}
	err := onr.initConnection()
	return onr.ethClient, err
}

func timeoutCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, TIMEOUT)
}

// rpcBlockBody carries the parts of eth_getBlockByNumber the typed header
// doesn't cover.
type rpcBlockBody struct {
	Size         hexutil.Uint64             `json:"size"`
	Transactions []*scoutcommon.Transaction `json:"transactions"`
	Uncles       []common.Hash              `json:"uncles"`
	Withdrawals  types.Withdrawals          `json:"withdrawals"`
}

func (onr *OneNodeReader) BlockByNumber(ctx context.Context, number uint64) (*scoutcommon.Block, error) {
	cli, err := onr.Client()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()

	var raw json.RawMessage
	err = cli.CallContext(timeout, &raw, "eth_getBlockByNumber", hexutil.EncodeUint64(number), true)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 || string(raw) == "null" {
		return nil, ethereum.NotFound
	}

	var header types.Header
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("couldn't decode block header: %w", err)
	}
	var body rpcBlockBody
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("couldn't decode block body: %w", err)
	}

	return &scoutcommon.Block{
		Header:       &header,
		Transactions: body.Transactions,
		Uncles:       body.Uncles,
		Withdrawals:  body.Withdrawals,
		Size:         uint64(body.Size),
	}, nil
}

// BlockHeaderByNumber returns the header only. Negative number means latest.
func (onr *OneNodeReader) BlockHeaderByNumber(ctx context.Context, number int64) (*types.Header, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	var numberBig *big.Int
	if number > -1 {
		numberBig = big.NewInt(number)
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.HeaderByNumber(timeout, numberBig)
}

func (onr *OneNodeReader) BlockReceipts(ctx context.Context, number uint64) ([]*types.Receipt, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.BlockReceipts(timeout, rpc.BlockNumberOrHashWithNumber(rpc.BlockNumber(number)))
}

func (onr *OneNodeReader) TransactionByHash(ctx context.Context, txHash string) (*scoutcommon.Transaction, bool, error) {
	cli, err := onr.Client()
	if err != nil {
		return nil, false, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()

	var tx *scoutcommon.Transaction
	err = cli.CallContext(timeout, &tx, "eth_getTransactionByHash", common.HexToHash(txHash))
	if err != nil {
		return nil, false, err
	} else if tx == nil {
		return nil, false, ethereum.NotFound
	}
	return tx, tx.IsPending(), nil
}

func (onr *OneNodeReader) TransactionReceipt(ctx context.Context, txHash string) (*types.Receipt, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.TransactionReceipt(timeout, common.HexToHash(txHash))
}

func (onr *OneNodeReader) GetBalance(ctx context.Context, address string) (*big.Int, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.BalanceAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) GetMinedNonce(ctx context.Context, address string) (uint64, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.NonceAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) GetCode(ctx context.Context, address string) ([]byte, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.CodeAt(timeout, common.HexToAddress(address), nil)
}

func (onr *OneNodeReader) StorageAt(ctx context.Context, address string, slot string) ([]byte, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.StorageAt(timeout, common.HexToAddress(address), common.HexToHash(slot), nil)
}

func (onr *OneNodeReader) EthCall(ctx context.Context, to string, data []byte) ([]byte, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	contract := common.HexToAddress(to)
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.CallContract(timeout, ethereum.CallMsg{
		To:   &contract,
		Data: data,
	}, nil)
}

func (onr *OneNodeReader) SuggestedGasPrice(ctx context.Context) (*big.Int, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.SuggestGasPrice(timeout)
}

func (onr *OneNodeReader) FeeHistory(ctx context.Context, blockCount uint64, rewardPercentiles []float64) (*ethereum.FeeHistory, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return nil, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	return ethcli.FeeHistory(timeout, blockCount, nil, rewardPercentiles)
}

func (onr *OneNodeReader) CurrentBlock(ctx context.Context) (uint64, error) {
	ethcli, err := onr.EthClient()
	if err != nil {
		return 0, err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()
	header, err := ethcli.HeaderByNumber(timeout, nil)
	if err != nil {
		return 0, err
	}
	return header.Number.Uint64(), nil
}

func (onr *OneNodeReader) ClientVersion(ctx context.Context) (string, error) {
	cli, err := onr.Client()
	if err != nil {
		return "", err
	}
	timeout, cancel := timeoutCtx(ctx)
	defer cancel()

	var version string
	err = cli.CallContext(timeout, &version, "web3_clientVersion")
	return version, err
}
