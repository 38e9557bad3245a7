package rgbsdk

import "fmt"

// NodeConfig describes the RGB node a Runtime attaches to.
type NodeConfig struct {
	// DataDir is the node's data directory.
	DataDir string
	// Network is the chain identifier ("bitcoin", "testnet", "signet", ...).
	Network string
	// Electrum is the electrum server address used for chain access.
	Electrum string
	// Verbosity sets the native library's log level (0 quietest).
	Verbosity uint8
}

// OutPoint references a bitcoin transaction output.
type OutPoint struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

// String renders the canonical txid:vout form.
func (o OutPoint) String() string { return fmt.Sprintf("%s:%d", o.TxID, o.Vout) }

// OutpointCoins assigns an amount of an asset to a bitcoin outpoint.
type OutpointCoins struct {
	Coins    uint64   `json:"coins"`
	Outpoint OutPoint `json:"outpoint"`
}

// IssueRequest carries the parameters for issuing a fungible (RGB20) asset.
type IssueRequest struct {
	// Ticker is the short asset symbol.
	Ticker string
	// Name is the human-readable asset name.
	Name string
	// Description is optional; empty means none.
	Description string
	// Precision is the number of decimal subdivisions.
	Precision uint8
	// Allocations assigns the initial supply to outpoints.
	Allocations []OutpointCoins
	// Inflation optionally grants future inflation rights to outpoints.
	Inflation []OutpointCoins
	// Renomination optionally seals the right to renominate the asset.
	Renomination *OutPoint
	// Epoch optionally seals the right to open a burn epoch.
	Epoch *OutPoint
}

// Payment directs an amount of an asset to a blinded recipient outpoint.
type Payment struct {
	// SealHash is the recipient's blinded outpoint from their invoice.
	SealHash string
	// Amount is the asset amount in atomic units.
	Amount uint64
}

func (p Payment) encode() string { return fmt.Sprintf("%s@%d", p.SealHash, p.Amount) }

// Change returns remaining asset units to an outpoint owned by the sender.
type Change struct {
	Amount   uint64
	Outpoint OutPoint
}

func (c Change) encode() string { return fmt.Sprintf("%d@%s", c.Amount, c.Outpoint) }

// TransferRequest carries the parameters of an asset transfer.
type TransferRequest struct {
	// ContractID identifies the asset being moved.
	ContractID string
	// Inputs are the outpoints the transfer spends from.
	Inputs []OutPoint
	// Payments direct amounts to blinded recipient outpoints.
	Payments []Payment
	// Change returns the remainder to sender-owned outpoints.
	Change []Change
	// Witness is the consensus-serialized PSBT anchoring the transfer.
	Witness []byte
}

// TransferResult is the node's response to a completed transfer.
type TransferResult struct {
	// Consignment is the bech32 consignment to deliver to the recipient.
	Consignment string `json:"consignment"`
	// Witness is the updated witness transaction.
	Witness string `json:"witness"`
}

// InvoiceResult is a generated RGB20 invoice plus the blinding secret the
// recipient must keep to later reveal the outpoint.
type InvoiceResult struct {
	Invoice string `json:"invoice"`
	Secret  uint64 `json:"secret"`
}

// RevealedOutpoint discloses the blinding of a previously blinded outpoint
// when accepting a consignment.
type RevealedOutpoint struct {
	Blinding uint64 `json:"blinding"`
	TxID     string `json:"txid"`
	Vout     uint32 `json:"vout"`
}
