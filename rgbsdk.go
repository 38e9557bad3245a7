// Package rgbsdk exposes the operations of the native librgb library as a
// typed Go API: issuing, transferring and accepting RGB20 assets through an
// embedded or remote RGB node. The native library must be provisioned into
// lib/<platform>/ and include/ first (see cmd/rgbbuild), and binaries must
// be compiled with the librgb build tag; without it every call returns
// ErrNotBuilt.
package rgbsdk

import (
	"encoding/json"
	"fmt"

	"rgbsdk/internal/rgbc"
)

// ErrNotBuilt is returned by every operation when the binary was compiled
// without the librgb build tag.
var ErrNotBuilt = rgbc.ErrNotBuilt

// Built reports whether the native bindings are compiled into this binary.
func Built() bool { return rgbc.Built() }

// Runtime is a handle to an RGB node. It is created by Connect or
// RunEmbedded and owned by the native library; there is no close call in
// the C interface, the runtime lives until the process exits.
type Runtime struct {
	h       rgbc.Handle
	network string
}

// Connect attaches to an already running RGB node over its RPC endpoints.
// contractEndpoints maps contract names ("Fungible") to their RPC URLs.
func Connect(cfg NodeConfig, stashRPC string, contractEndpoints map[string]string) (*Runtime, error) {
	if contractEndpoints == nil {
		contractEndpoints = map[string]string{}
	}
	eps, err := json.Marshal(contractEndpoints)
	if err != nil {
		return nil, fmt.Errorf("encode contract endpoints: %w", err)
	}
	h, err := rgbc.Connect(cfg.DataDir, cfg.Network, stashRPC, string(eps), cfg.Electrum, cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	return &Runtime{h: h, network: cfg.Network}, nil
}

// RunEmbedded starts an embedded RGB node inside this process and returns
// its runtime.
func RunEmbedded(cfg NodeConfig) (*Runtime, error) {
	h, err := rgbc.Run(cfg.DataDir, cfg.Network, cfg.Electrum, cfg.Verbosity)
	if err != nil {
		return nil, err
	}
	return &Runtime{h: h, network: cfg.Network}, nil
}

// IssueFungible issues a new RGB20 asset on the runtime's network and
// returns the node's JSON description of the created asset.
func (r *Runtime) IssueFungible(req IssueRequest) (json.RawMessage, error) {
	allocations, err := marshalOutpointCoins(req.Allocations)
	if err != nil {
		return nil, fmt.Errorf("encode allocations: %w", err)
	}
	inflation, err := marshalOutpointCoins(req.Inflation)
	if err != nil {
		return nil, fmt.Errorf("encode inflation: %w", err)
	}
	renomination, err := json.Marshal(req.Renomination)
	if err != nil {
		return nil, fmt.Errorf("encode renomination: %w", err)
	}
	epoch, err := json.Marshal(req.Epoch)
	if err != nil {
		return nil, fmt.Errorf("encode epoch: %w", err)
	}
	out, err := rgbc.FungibleIssue(r.h, r.network, req.Ticker, req.Name, req.Description,
		req.Precision, allocations, inflation, string(renomination), string(epoch))
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// ListAssets returns the node's JSON list of known fungible assets.
func (r *Runtime) ListAssets() (json.RawMessage, error) {
	out, err := rgbc.FungibleListAssets(r.h)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// AssetAllocations returns the JSON allocation map of one asset.
func (r *Runtime) AssetAllocations(contractID string) (json.RawMessage, error) {
	out, err := rgbc.FungibleAssetAllocations(r.h, contractID)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// OutpointAssets returns the JSON list of assets allocated to an outpoint.
func (r *Runtime) OutpointAssets(outpoint OutPoint) (json.RawMessage, error) {
	out, err := rgbc.FungibleOutpointAssets(r.h, outpoint.String())
	if err != nil {
		return nil, err
	}
	return json.RawMessage(out), nil
}

// ExportAsset returns the bech32 genesis of an asset for out-of-band
// distribution.
func (r *Runtime) ExportAsset(assetID string) (string, error) {
	return rgbc.FungibleExportAsset(r.h, assetID)
}

// ImportAsset registers an asset from its bech32 genesis.
func (r *Runtime) ImportAsset(genesis string) error {
	return rgbc.FungibleImportAsset(r.h, genesis)
}

// Transfer moves asset amounts to blinded recipients and returns the
// consignment to deliver plus the updated witness transaction.
func (r *Runtime) Transfer(req TransferRequest) (*TransferResult, error) {
	inputs := req.Inputs
	if inputs == nil {
		inputs = []OutPoint{}
	}
	inputsJSON, err := json.Marshal(inputs)
	if err != nil {
		return nil, fmt.Errorf("encode inputs: %w", err)
	}
	payments, err := json.Marshal(encodePayments(req.Payments))
	if err != nil {
		return nil, fmt.Errorf("encode payments: %w", err)
	}
	change, err := json.Marshal(encodeChange(req.Change))
	if err != nil {
		return nil, fmt.Errorf("encode change: %w", err)
	}
	out, err := rgbc.FungibleTransfer(r.h, req.ContractID,
		string(inputsJSON), string(payments), string(change), string(req.Witness))
	if err != nil {
		return nil, err
	}
	var res TransferResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		return nil, fmt.Errorf("decode transfer response: %w", err)
	}
	return &res, nil
}

// Validate checks a consignment file against the node's state without
// accepting it.
func (r *Runtime) Validate(consignmentFile string) error {
	return rgbc.FungibleValidate(r.h, consignmentFile)
}

// Accept merges a validated consignment into the node's stash, revealing
// the listed blinded outpoints as owned.
func (r *Runtime) Accept(consignmentFile string, reveal []RevealedOutpoint) error {
	if reveal == nil {
		reveal = []RevealedOutpoint{}
	}
	revealJSON, err := json.Marshal(reveal)
	if err != nil {
		return fmt.Errorf("encode revealed outpoints: %w", err)
	}
	return rgbc.FungibleAccept(r.h, consignmentFile, string(revealJSON))
}

// Invoice creates an RGB20 invoice for amount of an asset payable to
// outpoint. The outpoint is blinded; the returned secret reveals it when
// accepting the payment. Invoicing is pure and needs no runtime.
func Invoice(assetID string, amount float64, outpoint OutPoint) (*InvoiceResult, error) {
	out, err := rgbc.Invoice(assetID, amount, outpoint.String())
	if err != nil {
		return nil, err
	}
	var res InvoiceResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		return nil, fmt.Errorf("decode invoice response: %w", err)
	}
	return &res, nil
}

func marshalOutpointCoins(items []OutpointCoins) (string, error) {
	if items == nil {
		items = []OutpointCoins{}
	}
	b, err := json.Marshal(items)
	return string(b), err
}

func encodePayments(ps []Payment) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.encode())
	}
	return out
}

func encodeChange(cs []Change) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.encode())
	}
	return out
}
