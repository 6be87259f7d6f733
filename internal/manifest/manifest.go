// Package manifest loads batch files that list trilobyte requests.
//
// A manifest is a JSON object, comments and trailing commas allowed:
//
//	{
//	  // keys to generate
//	  "generate": [{"size": 32, "name": "secret.txt"}],
//	  "encrypt":  ["report.txt", "notes.md"],
//	  "seal":     [["data.bin", "pad.cef"]],
//	  "decrypt":  [["report.txt.csd", "report.cef"]],
//	}
//
// Pairs in "seal" and "decrypt" may list their two paths in either order.
package manifest

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tidwall/jsonc"

	"github.com/idelchi/trilobyte/internal/otp"
)

// Entry is a key generation request.
type Entry struct {
	Size int    `json:"size"`
	Name string `json:"name"`
}

// Manifest is the raw content of a manifest file.
type Manifest struct {
	Generate []Entry     `json:"generate"`
	Encrypt  []string    `json:"encrypt"`
	Seal     [][2]string `json:"seal"`
	Decrypt  [][2]string `json:"decrypt"`
}

// Load reads and parses the manifest at path.
func Load(fsys afero.Fs, path string) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %q: %w", path, err)
	}

	clean := jsonc.ToJSONInPlace(data)

	var m Manifest
	if err := json.Unmarshal(clean, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %q: %w", path, err)
	}

	return &m, nil
}

// Batch converts the manifest into engine requests.
// Unnamed key requests and pairs whose paths cannot be told apart are rejected.
func (m *Manifest) Batch() otp.Batch {
	var batch otp.Batch

	for _, entry := range m.Generate {
		req := otp.GenerateRequest(entry)

		if err := req.Validate(); err != nil {
			batch.Reject(entry.Name, err)

			continue
		}

		batch.Generate = append(batch.Generate, req)
	}

	batch.Encrypt = append(batch.Encrypt, m.Encrypt...)

	for _, pair := range m.Seal {
		req, err := otp.PairSeal(pair[0], pair[1])
		if err != nil {
			batch.Reject(pair[0], err)

			continue
		}

		batch.Seal = append(batch.Seal, req)
	}

	for _, pair := range m.Decrypt {
		req, err := otp.PairDecrypt(pair[0], pair[1])
		if err != nil {
			batch.Reject(pair[0], err)

			continue
		}

		batch.Decrypt = append(batch.Decrypt, req)
	}

	return batch
}
