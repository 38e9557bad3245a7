//go:build !librgb

package rgbsdk

import (
	"errors"
	"testing"
)

func TestOperationsWithoutBindings(t *testing.T) {
	if Built() {
		t.Fatal("Built() = true in a build without the librgb tag")
	}

	cfg := NodeConfig{DataDir: "/tmp/rgb", Network: "testnet", Electrum: "tcp://e:50001"}
	if _, err := RunEmbedded(cfg); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("RunEmbedded err = %v, want ErrNotBuilt", err)
	}
	if _, err := Connect(cfg, "inproc://stash-rpc", nil); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Connect err = %v, want ErrNotBuilt", err)
	}
	if _, err := Invoice("rgb1asset", 2.5, OutPoint{TxID: "0f3a", Vout: 0}); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Invoice err = %v, want ErrNotBuilt", err)
	}

	r := &Runtime{network: "testnet"}
	if _, err := r.IssueFungible(IssueRequest{Ticker: "TCK", Name: "Token"}); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("IssueFungible err = %v, want ErrNotBuilt", err)
	}
	if _, err := r.ListAssets(); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("ListAssets err = %v, want ErrNotBuilt", err)
	}
	if _, err := r.Transfer(TransferRequest{ContractID: "rgb1c"}); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Transfer err = %v, want ErrNotBuilt", err)
	}
	if err := r.Validate("consignment.rgb"); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Validate err = %v, want ErrNotBuilt", err)
	}
	if err := r.Accept("consignment.rgb", nil); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("Accept err = %v, want ErrNotBuilt", err)
	}
}
