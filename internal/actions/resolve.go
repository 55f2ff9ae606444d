package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/act3-ai/gitconnect/internal/logutil"
	"github.com/act3-ai/gitconnect/pkg/transport"
)

// Resolve shows how a repository locator would be reached.
type Resolve struct {
	out io.Writer
}

// NewResolve creates a Resolve writing to out.
func NewResolve(out io.Writer) *Resolve {
	return &Resolve{out: out}
}

// Run prints the resolved target of each locator as a YAML document.
func (action *Resolve) Run(ctx context.Context, locators ...string) error {
	enc := yaml.NewEncoder(action.out)
	enc.SetIndent(2)

	for _, locator := range locators {
		t, err := transport.Resolve(locator)
		if err != nil {
			return fmt.Errorf("resolving %s: %w", logutil.RedactLocator(locator), err)
		}
		slog.DebugContext(ctx, "resolved locator", slog.String("locator", logutil.RedactLocator(locator)), slog.String("kind", t.Kind.String()))

		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("encoding target: %w", err)
		}
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("flushing output: %w", err)
	}
	return nil
}
