// Package constants contains the well-known networks, their human readable address parts and chain aliases.
package constants

import "strconv"

const (
	// MainnetID is the ID of the main network.
	MainnetID uint32 = 1

	// CascadeID is the ID of the cascade test network.
	CascadeID uint32 = 2

	// DenaliID is the ID of the denali test network.
	DenaliID uint32 = 3

	// EverestID is the ID of the everest test network.
	EverestID uint32 = 4

	// FujiID is the ID of the fuji test network.
	FujiID uint32 = 5

	// UnitTestID is the ID that is used by unit tests.
	UnitTestID uint32 = 10

	// LocalID is the ID of a local development network.
	LocalID uint32 = 12345

	// DefaultNetworkID is the network that is used if nothing else is configured.
	DefaultNetworkID = MainnetID
)

const (
	// FallbackHRP is the human readable part of addresses on networks without a well-known one.
	FallbackHRP = "custom"

	// XChainAlias is the alias of the asset exchange chain.
	XChainAlias = "X"

	// PChainAlias is the alias of the platform chain.
	PChainAlias = "P"

	// CChainAlias is the alias of the contract chain.
	CChainAlias = "C"
)

var networkNames = map[uint32]string{
	MainnetID:  "mainnet",
	CascadeID:  "cascade",
	DenaliID:   "denali",
	EverestID:  "everest",
	FujiID:     "fuji",
	UnitTestID: "testing",
	LocalID:    "local",
}

var hrps = map[uint32]string{
	MainnetID:  "avax",
	CascadeID:  "cascade",
	DenaliID:   "denali",
	EverestID:  "everest",
	FujiID:     "fuji",
	UnitTestID: "testing",
	LocalID:    "local",
}

// HRP returns the human readable part of the addresses of the network.
func HRP(networkID uint32) string {
	if hrp, exists := hrps[networkID]; exists {
		return hrp
	}

	return FallbackHRP
}

// NetworkName returns the name of the network or "network-<id>" for unknown networks.
func NetworkName(networkID uint32) string {
	if name, exists := networkNames[networkID]; exists {
		return name
	}

	return "network-" + strconv.FormatUint(uint64(networkID), 10)
}

// NetworkIDFromHRP returns the network that uses the human readable part.
func NetworkIDFromHRP(hrp string) (networkID uint32, exists bool) {
	for networkID, knownHRP := range hrps {
		if knownHRP == hrp {
			return networkID, true
		}
	}

	return 0, false
}
