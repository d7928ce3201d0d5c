package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Ayesha-Imr/dcpe-go/internal/crypto"
)

// vectorEnvelope is the JSON shape encrypt-vector prints on stdout and
// decrypt-vector takes as its argument. It lives outside the core library: the wire format the
// library itself defines is just ciphertext floats plus a metadata blob.
type vectorEnvelope struct {
	Ciphertext []float64 `json:"ciphertext"`
	Metadata   string    `json:"metadata"`
}

type encryptVectorCmd struct {
	Values string `arg:"" help:"Comma-separated plaintext vector, e.g. 1.0,2.5,-3.0."`
}

func (cmd *encryptVectorCmd) Run() error {
	v, err := parseFloats(cmd.Values)
	if err != nil {
		return err
	}

	ct, meta, err := activeClient.EncryptVector(v)
	if err != nil {
		return err
	}

	out, err := json.Marshal(vectorEnvelope{Ciphertext: ct, Metadata: crypto.ToBase64URL(meta)})
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

type decryptVectorCmd struct {
	Envelope string `arg:"" help:"JSON envelope produced by encrypt-vector."`
}

func (cmd *decryptVectorCmd) Run() error {
	var env vectorEnvelope
	if err := json.Unmarshal([]byte(cmd.Envelope), &env); err != nil {
		return fmt.Errorf("invalid envelope: %w", err)
	}

	meta, err := crypto.FromBase64URL(env.Metadata)
	if err != nil {
		return fmt.Errorf("invalid metadata: %w", err)
	}

	v, keyID, err := activeClient.DecryptVector(env.Ciphertext, meta)
	if err != nil {
		return err
	}

	fmt.Printf("key_id=%d vector=%s\n", keyID, formatFloats(v))
	return nil
}

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		out[i] = f
	}
	return out, nil
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}
