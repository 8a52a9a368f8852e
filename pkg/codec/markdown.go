package codec

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// BodySetter is implemented by values that want the Markdown body that
// follows the front matter.
type BodySetter interface {
	SetBody(body string)
}

// Bodied is implemented by values that carry a Markdown body to encode.
type Bodied interface {
	Body() string
}

// MarkdownCodec reads Markdown files with YAML front matter. The front
// matter decodes into the value; the remaining text is handed to
// BodySetter when the value implements it.
type MarkdownCodec struct{}

// Markdown creates a Markdown codec, usually registered under ".md".
func Markdown() *MarkdownCodec {
	return &MarkdownCodec{}
}

func (c *MarkdownCodec) Decode(doc Document, v any) error {
	if isBlank(doc.Data) {
		return ErrEmptyDocument
	}

	data := doc.Data
	var body string

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		body = string(data)
	} else {
		rest := data[3:]
		parts := bytes.SplitN(rest, []byte("\n---"), 2)
		if len(parts) == 1 {
			return errors.New("frontmatter started but no closing delimiter found")
		}

		if !isBlank(parts[0]) {
			if err := yaml.Unmarshal(parts[0], v); err != nil {
				return fmt.Errorf("failed to parse frontmatter: %w", err)
			}
		}

		body = string(parts[1])
		body = strings.TrimPrefix(body, "\r")
		body = strings.TrimPrefix(body, "\n")
	}

	if setter, ok := v.(BodySetter); ok {
		setter.SetBody(body)
	}
	return nil
}

func (c *MarkdownCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("---\n")
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	buf.WriteString("---\n")
	if b, ok := v.(Bodied); ok {
		buf.WriteString(b.Body())
	}
	return buf.Bytes(), nil
}
