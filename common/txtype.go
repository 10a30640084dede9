package common

import "fmt"

// TxType is the raw transaction envelope type byte. Classification is total:
// any byte outside the known set renders as unknown but is preserved.
type TxType byte

const (
	TxTypeLegacy     TxType = 0
	TxTypeAccessList TxType = 1
	TxTypeDynamicFee TxType = 2
	TxTypeBlob       TxType = 3
)

func (t TxType) String() string {
	switch t {
	case TxTypeLegacy:
		return "Legacy (Type 0)"
	case TxTypeAccessList:
		return "Access List (Type 1)"
	case TxTypeDynamicFee:
		return "EIP-1559 (Type 2)"
	case TxTypeBlob:
		return "Blob (Type 3)"
	default:
		return fmt.Sprintf("Unknown (Type %d)", byte(t))
	}
}
