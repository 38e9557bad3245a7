//go:build !librgb

package rgbc

// No-cgo stub, compiled when the librgb build tag is NOT set. Every call
// fails fast with ErrNotBuilt instead of mocking native behavior.

var built = false

func Connect(datadir, network, stashRPC, contractEndpoints, electrum string, verbosity uint8) (Handle, error) {
	return Handle{}, ErrNotBuilt
}

func Run(datadir, network, electrum string, verbosity uint8) (Handle, error) {
	return Handle{}, ErrNotBuilt
}

func FungibleIssue(h Handle, network, ticker, name, description string, precision uint8, allocations, inflation, renomination, epoch string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleListAssets(h Handle) (string, error) {
	return "", ErrNotBuilt
}

func FungibleAssetAllocations(h Handle, contractID string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleOutpointAssets(h Handle, outpoint string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleExportAsset(h Handle, assetID string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleImportAsset(h Handle, assetGenesis string) error {
	return ErrNotBuilt
}

func Invoice(assetID string, amount float64, outpoint string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleTransfer(h Handle, contractID, inputs, payment, change, witness string) (string, error) {
	return "", ErrNotBuilt
}

func FungibleValidate(h Handle, consignmentFile string) error {
	return ErrNotBuilt
}

func FungibleAccept(h Handle, consignmentFile, revealOutpoints string) error {
	return ErrNotBuilt
}
