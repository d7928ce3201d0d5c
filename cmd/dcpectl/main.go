// Command dcpectl is an operator tool for exercising DCPE vector, text, and
// deterministic encryption from the shell. Key material comes from the
// environment: DCPE_MASTER_SECRET (base64url) builds a client via dcpe.New;
// --tenant-id and --derivation-path select the tenant/path mixed into
// derivation.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/Ayesha-Imr/dcpe-go"
	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

type cli struct {
	TenantID       string  `help:"Tenant id mixed into key derivation." default:""`
	DerivationPath string  `help:"Derivation path mixed into key derivation." default:"default"`
	Approximation  float64 `help:"Approximation factor for vector encryption." default:"1.0"`

	EncryptVector        encryptVectorCmd        `cmd:"" name:"encrypt-vector" help:"Encrypt a vector of floats."`
	DecryptVector        decryptVectorCmd        `cmd:"" name:"decrypt-vector" help:"Decrypt a vector produced by encrypt-vector."`
	EncryptText          encryptTextCmd          `cmd:"" name:"encrypt-text" help:"Encrypt an arbitrary byte string."`
	DecryptText          decryptTextCmd          `cmd:"" name:"decrypt-text" help:"Decrypt a string produced by encrypt-text."`
	EncryptDeterministic encryptDeterministicCmd `cmd:"" name:"encrypt-deterministic" help:"Deterministically encrypt a string for equality filtering."`
	DecryptDeterministic decryptDeterministicCmd `cmd:"" name:"decrypt-deterministic" help:"Decrypt a string produced by encrypt-deterministic."`
}

// activeClient is set by main before ctx.Run, so each subcommand's Run
// method can reach the derived keys without kong needing to know about
// *dcpe.Client.
var activeClient *dcpe.Client

func main() {
	var c cli
	ctx := kong.Parse(&c)

	client, err := clientFromEnv(&c)
	ctx.FatalIfErrorf(err)
	defer client.Close()

	activeClient = client

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

func clientFromEnv(c *cli) (*dcpe.Client, error) {
	secretB64 := os.Getenv("DCPE_MASTER_SECRET")
	if secretB64 == "" {
		return nil, fmt.Errorf("DCPE_MASTER_SECRET is not set")
	}

	secret, err := crypto.FromBase64URL(secretB64)
	if err != nil {
		return nil, fmt.Errorf("DCPE_MASTER_SECRET is not valid base64url: %w", err)
	}

	return dcpe.New(secret,
		dcpe.WithTenantID(c.TenantID),
		dcpe.WithDerivationPath(c.DerivationPath),
		dcpe.WithApproximationFactor(dcpe.ApproximationFactor(c.Approximation)),
	)
}
