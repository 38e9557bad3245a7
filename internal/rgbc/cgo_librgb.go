//go:build librgb

package rgbc

// cgo link directives for the staged librgb artifacts.
// - Headers come from the provisioned include/ root.
// - Link and runtime search paths point at lib/<platform>/ for the building
//   OS, so binaries run in place without loader environment overrides.
/*
#cgo CFLAGS: -I${SRCDIR}/../../include
#cgo darwin LDFLAGS: -L${SRCDIR}/../../lib/mac -lrgb -Wl,-rpath,${SRCDIR}/../../lib/mac
#cgo linux LDFLAGS: -L${SRCDIR}/../../lib/linux -lrgb -Wl,-rpath=${SRCDIR}/../../lib/linux
#include <stdlib.h>
#include "rgb_node.h"
*/
import "C"

import (
	"errors"
	"unsafe"
)

var built = true

func freeAll(ptrs ...*C.char) {
	for _, p := range ptrs {
		C.free(unsafe.Pointer(p))
	}
}

// goHandle converts a CResult into a Handle. On Err the inner pointer
// carries the message.
func goHandle(res C.CResult) (Handle, error) {
	if res.result != C.Ok {
		return Handle{}, errors.New(C.GoString((*C.char)(res.inner.ptr)))
	}
	return Handle{ptr: res.inner.ptr, ty: uint64(res.inner.ty)}, nil
}

// goString converts a CResultString into a Go string. librgb exposes no
// free for returned strings, so the C allocation is left to the library.
func goString(res C.CResultString) (string, error) {
	if res.result != C.Ok {
		return "", errors.New(C.GoString(res.inner))
	}
	return C.GoString(res.inner), nil
}

func (h Handle) c() C.COpaqueStruct {
	var op C.COpaqueStruct
	op.ptr = h.ptr
	op.ty = C.uint64_t(h.ty)
	return op
}

// Connect attaches to an already running RGB node.
func Connect(datadir, network, stashRPC, contractEndpoints, electrum string, verbosity uint8) (Handle, error) {
	cDatadir := C.CString(datadir)
	cNetwork := C.CString(network)
	cStash := C.CString(stashRPC)
	cContracts := C.CString(contractEndpoints)
	cElectrum := C.CString(electrum)
	defer freeAll(cDatadir, cNetwork, cStash, cContracts, cElectrum)
	return goHandle(C.rgb_node_connect(cDatadir, cNetwork, cStash, cContracts, cElectrum, C.uchar(verbosity)))
}

// Run starts an embedded RGB node inside this process.
func Run(datadir, network, electrum string, verbosity uint8) (Handle, error) {
	cDatadir := C.CString(datadir)
	cNetwork := C.CString(network)
	cElectrum := C.CString(electrum)
	defer freeAll(cDatadir, cNetwork, cElectrum)
	return goHandle(C.rgb_node_run(cDatadir, cNetwork, cElectrum, C.uchar(verbosity)))
}

func FungibleIssue(h Handle, network, ticker, name, description string, precision uint8, allocations, inflation, renomination, epoch string) (string, error) {
	cNetwork := C.CString(network)
	cTicker := C.CString(ticker)
	cName := C.CString(name)
	cDescription := C.CString(description)
	cAllocations := C.CString(allocations)
	cInflation := C.CString(inflation)
	cRenomination := C.CString(renomination)
	cEpoch := C.CString(epoch)
	defer freeAll(cNetwork, cTicker, cName, cDescription, cAllocations, cInflation, cRenomination, cEpoch)
	op := h.c()
	return goString(C.rgb_node_fungible_issue(&op, cNetwork, cTicker, cName, cDescription,
		C.uchar(precision), cAllocations, cInflation, cRenomination, cEpoch))
}

func FungibleListAssets(h Handle) (string, error) {
	op := h.c()
	return goString(C.rgb_node_fungible_list_assets(&op))
}

func FungibleAssetAllocations(h Handle, contractID string) (string, error) {
	cContract := C.CString(contractID)
	defer freeAll(cContract)
	op := h.c()
	return goString(C.rgb_node_fungible_asset_allocations(&op, cContract))
}

func FungibleOutpointAssets(h Handle, outpoint string) (string, error) {
	cOutpoint := C.CString(outpoint)
	defer freeAll(cOutpoint)
	op := h.c()
	return goString(C.rgb_node_fungible_outpoint_assets(&op, cOutpoint))
}

func FungibleExportAsset(h Handle, assetID string) (string, error) {
	cAsset := C.CString(assetID)
	defer freeAll(cAsset)
	op := h.c()
	return goString(C.rgb_node_fungible_export_asset(&op, cAsset))
}

func FungibleImportAsset(h Handle, assetGenesis string) error {
	cGenesis := C.CString(assetGenesis)
	defer freeAll(cGenesis)
	op := h.c()
	_, err := goHandle(C.rgb_node_fungible_import_asset(&op, cGenesis))
	return err
}

func Invoice(assetID string, amount float64, outpoint string) (string, error) {
	cAsset := C.CString(assetID)
	cOutpoint := C.CString(outpoint)
	defer freeAll(cAsset, cOutpoint)
	return goString(C.rgb20_invoice(cAsset, C.double(amount), cOutpoint))
}

func FungibleTransfer(h Handle, contractID, inputs, payment, change, witness string) (string, error) {
	cContract := C.CString(contractID)
	cInputs := C.CString(inputs)
	cPayment := C.CString(payment)
	cChange := C.CString(change)
	cWitness := C.CString(witness)
	defer freeAll(cContract, cInputs, cPayment, cChange, cWitness)
	op := h.c()
	return goString(C.rgb_node_fungible_transfer(&op, cContract, cInputs, cPayment, cChange, cWitness))
}

func FungibleValidate(h Handle, consignmentFile string) error {
	cFile := C.CString(consignmentFile)
	defer freeAll(cFile)
	op := h.c()
	_, err := goHandle(C.rgb_node_fungible_validate(&op, cFile))
	return err
}

func FungibleAccept(h Handle, consignmentFile, revealOutpoints string) error {
	cFile := C.CString(consignmentFile)
	cReveal := C.CString(revealOutpoints)
	defer freeAll(cFile, cReveal)
	op := h.c()
	_, err := goHandle(C.rgb_node_fungible_accept(&op, cFile, cReveal))
	return err
}
