package codec

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/aretw0/compose/pkg/executable"
)

// ExecCodec runs an external program on the document path and decodes
// its standard output with an inner codec. It is meant for documents
// that need a helper to be read, such as encrypted or generated files.
//
// The program runs in the document's directory with Args followed by the
// document path.
type ExecCodec struct {
	Program *executable.Executable
	Args    []string
	Output  Codec
	Timeout time.Duration
}

// Exec creates an ExecCodec. A nil output codec defaults to JSON.
func Exec(program *executable.Executable, output Codec, args ...string) *ExecCodec {
	if output == nil {
		output = JSON()
	}
	return &ExecCodec{Program: program, Args: args, Output: output}
}

func (c *ExecCodec) Decode(doc Document, v any) error {
	ctx := context.Background()
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	path, err := filepath.Abs(doc.Path)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	args := append(append([]string{}, c.Args...), path)
	out, err := c.Program.Run(ctx, filepath.Dir(path), args...)
	if err != nil {
		return fmt.Errorf("exec: %w", err)
	}
	return c.Output.Decode(Document{Path: doc.Path, Data: out, Options: doc.Options}, v)
}

func (c *ExecCodec) Encode(v any) ([]byte, error) {
	return nil, ErrEncodeUnsupported
}
