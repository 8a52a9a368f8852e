package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/aretw0/compose"
	"github.com/aretw0/compose/pkg/codec"
	"github.com/aretw0/compose/pkg/core"
	"github.com/aretw0/compose/pkg/executable"
)

// buildOptions turns the persistent flags into load options. Besides
// the built-in JSON and YAML codecs the CLI understands JSONC, CBOR and
// Markdown front matter, plus any --exec programs.
func buildOptions() ([]compose.Option, error) {
	f := core.Format(strings.ToLower(format))
	if f != core.FormatJSON && f != core.FormatYAML {
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	cbor, err := codec.CBOR()
	if err != nil {
		return nil, err
	}

	opts := []compose.Option{
		compose.WithObjectName(objectName),
		compose.WithOutputFormat(f),
		compose.WithLogger(slog.Default()),
		compose.WithIgnore(ignore...),
		compose.WithCodec(".jsonc", codec.JSONC()),
		compose.WithCodec(".cbor", cbor),
		compose.WithCodec(".md", codec.Markdown()),
	}

	for _, spec := range execCodecs {
		ext, program, ok := strings.Cut(spec, "=")
		if !ok || ext == "" || program == "" {
			return nil, fmt.Errorf("invalid --exec %q, want ext=program", spec)
		}
		exe, err := executable.Find(program, slog.Default())
		if err != nil {
			return nil, err
		}
		opts = append(opts, compose.WithCodec(ext, codec.Exec(exe, nil)))
	}
	return opts, nil
}
