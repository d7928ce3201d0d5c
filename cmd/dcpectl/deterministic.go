package main

import (
	"fmt"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

type encryptDeterministicCmd struct {
	Plaintext string `arg:"" help:"Plaintext to encrypt deterministically."`
}

func (cmd *encryptDeterministicCmd) Run() error {
	blob, err := activeClient.EncryptDeterministic(cmd.Plaintext)
	if err != nil {
		return err
	}
	fmt.Println(crypto.ToBase64URL(blob))
	return nil
}

type decryptDeterministicCmd struct {
	Blob string `arg:"" help:"Base64url blob produced by encrypt-deterministic."`
}

func (cmd *decryptDeterministicCmd) Run() error {
	blob, err := crypto.FromBase64URL(cmd.Blob)
	if err != nil {
		return fmt.Errorf("invalid blob: %w", err)
	}

	pt, err := activeClient.DecryptDeterministic(blob)
	if err != nil {
		return err
	}
	fmt.Println(pt)
	return nil
}
