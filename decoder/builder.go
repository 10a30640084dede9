package decoder

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"
)

// builderMarkers are substrings block builders put in extra-data, checked in
// order against the lowercased decoded bytes.
var builderMarkers = []struct {
	marker string
	tag    string
}{
	{"flashbots", "Flashbots"},
	{"bloxroute", "bloXroute"},
	{"blxr", "bloXroute"},
	{"builder0x69", "builder0x69"},
	{"titan", "Titan"},
	{"rsync", "rsync"},
	{"beaver", "Beaver"},
	{"buildai", "BuildAI"},
	{"penguinbuild", "Penguin"},
	{"ethbuilder", "EthBuilder"},
	{"blocknative", "Blocknative"},
}

// knownBuilderAddresses tags fee recipients of builders that leave extra-data
// empty.
var knownBuilderAddresses = map[common.Address]string{
	common.HexToAddress("0x95222290dd7278aa3ddd389cc1e1d165cc4bafe5"): "Flashbots",
	common.HexToAddress("0x690b9a9e9aa1c9db991c7721a92d351db4fac990"): "builder0x69",
	common.HexToAddress("0x1f9090aae28b8a3dceadf281b0f12828e676c326"): "rsync",
	common.HexToAddress("0xdafea492d9c6733ae3d56b7ed1adb60692c98bc5"): "Beacon Depositor",
}

// BuilderTag guesses which builder produced a block from its extra-data bytes
// and fee recipient. Returns "" when nothing matches.
func BuilderTag(extraData []byte, miner common.Address) string {
	if utf8.Valid(extraData) {
		s := string(extraData)
		lower := strings.ToLower(s)
		for _, b := range builderMarkers {
			if strings.Contains(lower, b.marker) {
				return b.tag
			}
		}
		// a short plain label is most likely a builder name itself
		if len(s) > 0 && len(s) < 32 && isPlainLabel(s) {
			return s
		}
	}

	if tag, ok := knownBuilderAddresses[miner]; ok {
		return tag
	}
	return ""
}

func isPlainLabel(s string) bool {
	for _, c := range s {
		if !unicode.IsLetter(c) && !unicode.IsDigit(c) && c != ' ' && c != '-' && c != '_' {
			return false
		}
	}
	return true
}

// DecodeExtraData renders extra-data as text when it is printable ASCII,
// which is how clients and builders use it in practice.
func DecodeExtraData(extraData []byte) string {
	if len(extraData) == 0 || !utf8.Valid(extraData) {
		return ""
	}
	s := string(extraData)
	for _, c := range s {
		if (c < 0x20 || c > 0x7e) && c != ' ' {
			return ""
		}
	}
	return s
}
