package otp

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/idelchi/trilobyte/internal/config"
	"github.com/idelchi/trilobyte/internal/fileutil"
)

// Engine runs key generation, encryption and decryption batches.
type Engine struct {
	// cfg contains runtime configuration options
	cfg *config.Config

	// fs is where every file is read from and written to
	fs afero.Fs

	// keys produces fresh key material
	keys KeySource

	// log receives one entry per failed request
	log logrus.FieldLogger
}

// NewEngine creates an Engine working on fsys with the key source named in cfg.
// A nil logger falls back to the logrus standard logger.
func NewEngine(cfg *config.Config, fsys afero.Fs, logger logrus.FieldLogger) (*Engine, error) {
	keys, err := NewKeySource(cfg.KeySource)
	if err != nil {
		return nil, fmt.Errorf("creating key source: %w", err)
	}

	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Engine{
		cfg:  cfg,
		fs:   fsys,
		keys: keys,
		log:  logger,
	}, nil
}

// WithKeySource replaces the key source and returns e.
func (e *Engine) WithKeySource(keys KeySource) *Engine {
	e.keys = keys

	return e
}

// GenerateKeys writes a fresh key of the requested size to {dir}/{stem}.cef for every request.
func (e *Engine) GenerateKeys(requests []GenerateRequest) Report {
	return e.run(len(requests), func(i int) Result {
		return e.generateKey(requests[i])
	})
}

// EncryptFresh encrypts every file with a newly generated key of the same length,
// writing the key to {dir}/{stem}.cef and the ciphertext to {dir}/{stem}.{ext}.csd.
func (e *Engine) EncryptFresh(paths []string) Report {
	return e.run(len(paths), func(i int) Result {
		return e.encryptFresh(paths[i])
	})
}

// EncryptWithKey encrypts every data file with the paired key file,
// writing the ciphertext to {dir}/{stem}.{ext}.csd. Key files are left untouched.
func (e *Engine) EncryptWithKey(requests []PairRequest) Report {
	return e.run(len(requests), func(i int) Result {
		return e.encryptWithKey(requests[i])
	})
}

// Decrypt recovers the plaintext of every ciphertext/key pair and removes both inputs.
func (e *Engine) Decrypt(requests []PairRequest) Report {
	return e.run(len(requests), func(i int) Result {
		return e.decrypt(requests[i])
	})
}

// Run processes a whole batch: encryptions first, then decryptions,
// key generation and finally encryptions with supplied keys.
// Rejected requests are reported and kept in the returned report.
func (e *Engine) Run(batch Batch) Report {
	var report Report

	for _, res := range batch.Rejected {
		LogError(e.log, res.Error)
	}

	report.Results = append(report.Results, batch.Rejected...)

	report.Merge(e.EncryptFresh(batch.Encrypt))
	report.Merge(e.Decrypt(batch.Decrypt))
	report.Merge(e.GenerateKeys(batch.Generate))
	report.Merge(e.EncryptWithKey(batch.Seal))

	return report
}

// run processes n independent requests with at most cfg.Parallel at a time.
// Failures are reported and never stop the other requests.
func (e *Engine) run(n int, process func(i int) Result) Report {
	results := make([]Result, n)

	group := errgroup.Group{}
	group.SetLimit(max(1, e.cfg.Parallel))

	for i := range n {
		group.Go(func() error {
			results[i] = process(i)

			if results[i].Error != nil {
				LogError(e.log, results[i].Error)
			}

			return nil
		})
	}

	_ = group.Wait()

	return Report{Results: results}
}

func (e *Engine) generateKey(req GenerateRequest) Result {
	res := Result{Input: req.Name}

	if err := req.Validate(); err != nil {
		res.Error = err

		return res
	}

	keyPath := Split(req.Name).KeyPath()

	size, err := e.commit(keyPath, e.keys.Generate(req.Size), Generation, CodeCreateKey, CodeWriteKey)
	if err != nil {
		res.Error = err

		return res
	}

	e.log.WithField("path", keyPath).Debugf("generated %d byte key", req.Size)

	res.Outputs = []string{keyPath}
	res.OutputSize = size

	return res
}

func (e *Engine) encryptFresh(path string) Result {
	res := Result{Input: path}

	if err := e.exists(path, Encryption, CodeMissingInput); err != nil {
		res.Error = err

		return res
	}

	split := Split(path)

	cipherPath, err := split.CipherPath()
	if err != nil {
		res.Error = newError(Encryption, CodeNoExtension, path, err)

		return res
	}

	plain, err := e.read(path, Encryption, CodeOpenInput, CodeReadInput)
	if err != nil {
		res.Error = err

		return res
	}

	key := e.keys.Generate(len(plain))

	ciphertext, err := Xor(plain, key)
	if err != nil {
		res.Error = newError(Encryption, CodeKeyTooShort, path, err)

		return res
	}

	keyPath := split.KeyPath()

	keySize, err := e.commit(keyPath, key, Encryption, CodeCreateKey, CodeWriteKey)
	if err != nil {
		res.Error = err

		return res
	}

	res.Outputs = append(res.Outputs, keyPath)
	res.OutputSize += keySize

	cipherSize, err := e.commit(cipherPath, ciphertext, Encryption, CodeCreateOutput, CodeWriteOutput)
	if err != nil {
		res.Error = err

		return res
	}

	res.Outputs = append(res.Outputs, cipherPath)
	res.OutputSize += cipherSize

	return res
}

func (e *Engine) encryptWithKey(req PairRequest) Result {
	res := Result{Input: req.Data}

	if err := e.exists(req.Data, Encryption, CodeMissingInput); err != nil {
		res.Error = err

		return res
	}

	cipherPath, err := Split(req.Data).CipherPath()
	if err != nil {
		res.Error = newError(Encryption, CodeNoExtension, req.Data, err)

		return res
	}

	if err := e.exists(req.Key, Encryption, CodeMissingKey); err != nil {
		res.Error = err

		return res
	}

	plain, err := e.read(req.Data, Encryption, CodeOpenInput, CodeReadInput)
	if err != nil {
		res.Error = err

		return res
	}

	key, err := e.read(req.Key, Encryption, CodeOpenKey, CodeReadKey)
	if err != nil {
		res.Error = err

		return res
	}

	ciphertext, err := Xor(plain, key)
	if err != nil {
		res.Error = newError(Encryption, CodeKeyTooShort, req.Key, err)

		return res
	}

	size, err := e.commit(cipherPath, ciphertext, Encryption, CodeCreateOutput, CodeWriteOutput)
	if err != nil {
		res.Error = err

		return res
	}

	res.Outputs = []string{cipherPath}
	res.OutputSize = size

	return res
}

// decrypt stages the plaintext in a temp file, removes the ciphertext and then the key,
// and only then renames the temp file to its final name.
//
//nolint:funlen
func (e *Engine) decrypt(req PairRequest) Result {
	res := Result{Input: req.Data}

	if err := e.exists(req.Data, Decryption, CodeMissingInput); err != nil {
		res.Error = err

		return res
	}

	if err := e.exists(req.Key, Decryption, CodeMissingKey); err != nil {
		res.Error = err

		return res
	}

	ciphertext, err := e.read(req.Data, Decryption, CodeOpenInput, CodeReadInput)
	if err != nil {
		res.Error = err

		return res
	}

	key, err := e.read(req.Key, Decryption, CodeOpenKey, CodeReadKey)
	if err != nil {
		res.Error = err

		return res
	}

	plain, err := Xor(ciphertext, key)
	if err != nil {
		res.Error = newError(Decryption, CodeKeyTooShort, req.Key, err)

		return res
	}

	outPath := PlainPath(req.Data, e.cfg.RestoreExt)

	tc, err := fileutil.NewTempContext(e.fs, outPath)
	if err != nil {
		res.Error = newError(Decryption, CodeCreateOutput, outPath, err)

		return res
	}

	if err := tc.Write(plain); err != nil {
		tc.Discard()

		res.Error = newError(Decryption, CodeWriteOutput, outPath, err)

		return res
	}

	if err := e.fs.Remove(req.Data); err != nil {
		tc.Discard()

		res.Error = newError(Decryption, CodeRemoveInput, req.Data, err)

		return res
	}

	// The ciphertext is gone, so from here on the staged plaintext is always kept.
	keyErr := e.fs.Remove(req.Key)

	size, err := tc.Commit()
	if err != nil {
		res.Error = newError(Decryption, CodeWriteOutput, outPath,
			fmt.Errorf("%w (plaintext kept at %q)", err, tc.TmpName))

		return res
	}

	res.Outputs = []string{outPath}
	res.OutputSize = size

	if keyErr != nil {
		res.Error = newError(Decryption, CodeRemoveKey, req.Key,
			fmt.Errorf("%w (plaintext written to %q)", keyErr, outPath))
	}

	return res
}

func (e *Engine) exists(path string, family Family, code Code) error {
	_, err := e.fs.Stat(path)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return newError(family, code, path, ErrMissingInput)
	default:
		return newError(family, code, path, err)
	}
}

func (e *Engine) read(path string, family Family, openCode, readCode Code) (data []byte, err error) {
	file, err := e.fs.Open(filepath.Clean(path))
	if err != nil {
		return nil, newError(family, openCode, path, err)
	}

	defer file.Close()

	data, err = ReadAll(file, e.cfg.ChunkSize)
	if err != nil {
		return nil, newError(family, readCode, path, err)
	}

	return data, nil
}

// commit atomically writes data to path.
func (e *Engine) commit(path string, data []byte, family Family, createCode, writeCode Code) (size int64, err error) {
	tc, err := fileutil.NewTempContext(e.fs, path)
	if err != nil {
		return 0, newError(family, createCode, path, err)
	}

	defer tc.CleanupOnError(&err)

	if err = tc.Write(data); err != nil {
		return 0, newError(family, writeCode, path, err)
	}

	size, err = tc.Commit()
	if err != nil {
		return 0, newError(family, writeCode, path, err)
	}

	return size, nil
}
