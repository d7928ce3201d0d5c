package main

import (
	"encoding/json"
	"fmt"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

// textEnvelope is the JSON shape encrypt-text prints on stdout and
// decrypt-text takes as its argument; base64url throughout so it round-trips safely on a shell
// command line.
type textEnvelope struct {
	Ciphertext string `json:"ciphertext"`
	IV         string `json:"iv"`
	Tag        string `json:"tag"`
}

type encryptTextCmd struct {
	Plaintext string `arg:"" help:"Plaintext to encrypt."`
}

func (cmd *encryptTextCmd) Run() error {
	ct, err := activeClient.EncryptText([]byte(cmd.Plaintext))
	if err != nil {
		return err
	}

	out, err := json.Marshal(textEnvelope{
		Ciphertext: crypto.ToBase64URL(ct.Ciphertext),
		IV:         crypto.ToBase64URL(ct.IV[:]),
		Tag:        crypto.ToBase64URL(ct.Tag[:]),
	})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type decryptTextCmd struct {
	Envelope string `arg:"" help:"JSON envelope produced by encrypt-text."`
}

func (cmd *decryptTextCmd) Run() error {
	var env textEnvelope
	if err := json.Unmarshal([]byte(cmd.Envelope), &env); err != nil {
		return fmt.Errorf("invalid envelope: %w", err)
	}

	ciphertext, err := crypto.FromBase64URL(env.Ciphertext)
	if err != nil {
		return fmt.Errorf("invalid ciphertext: %w", err)
	}
	ivBytes, err := crypto.FromBase64URL(env.IV)
	if err != nil {
		return fmt.Errorf("invalid iv: %w", err)
	}
	tagBytes, err := crypto.FromBase64URL(env.Tag)
	if err != nil {
		return fmt.Errorf("invalid tag: %w", err)
	}
	if len(ivBytes) != crypto.AESNonceSize || len(tagBytes) != crypto.AESTagSize {
		return fmt.Errorf("iv/tag have unexpected length")
	}

	var iv [crypto.AESNonceSize]byte
	copy(iv[:], ivBytes)
	var tag [crypto.AESTagSize]byte
	copy(tag[:], tagBytes)

	pt, err := activeClient.DecryptText(&crypto.TextCiphertext{Ciphertext: ciphertext, IV: iv, Tag: tag})
	if err != nil {
		return err
	}
	fmt.Println(string(pt))
	return nil
}
