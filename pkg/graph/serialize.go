package graph

import (
	"fmt"

	"github.com/aretw0/compose/pkg/core"
)

// Serialize flattens v into one document in opts.OutputFormat.
//
// This is the save direction only. It never produces the folder layout
// Build reads: externally stored properties are written inline or not
// at all, depending on the value's own encoding tags.
func Serialize(v any, opts Options) (string, error) {
	opts = opts.withDefaults()

	c, ok := opts.Registry().Encoder(opts.OutputFormat)
	if !ok {
		return "", core.NewError(core.ErrUnsupportedFormat, "", fmt.Sprintf("%T", v),
			fmt.Errorf("output format %q", opts.OutputFormat))
	}

	data, err := c.Encode(v)
	if err != nil {
		return "", fmt.Errorf("serializing %T as %s: %w", v, opts.OutputFormat, err)
	}
	return string(data), nil
}
