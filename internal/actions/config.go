// Package actions holds the actions run by the gitconnect and
// git-remote-connect commands.
package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"k8s.io/apimachinery/pkg/runtime"

	"github.com/act3-ai/gitconnect/internal/logutil"
	"github.com/act3-ai/gitconnect/pkg/apis"
	"github.com/act3-ai/gitconnect/pkg/apis/gitconnect.act3-ai.io/v1alpha1"
	"github.com/act3-ai/gitconnect/pkg/transport"
	"github.com/act3-ai/go-common/pkg/config"
)

// proxyCommandEnv overrides the configured proxy command.
const proxyCommandEnv = "GIT_PROXY_COMMAND"

// Base holds what every action needs to load its configuration.
type Base struct {
	apiScheme *runtime.Scheme
	// ConfigFiles contains a list of potential configuration file locations.
	ConfigFiles []string
}

// NewBase creates a Base searching cfgFiles for configuration.
func NewBase(cfgFiles []string) Base {
	return Base{
		apiScheme:   apis.NewScheme(),
		ConfigFiles: cfgFiles,
	}
}

// GetScheme returns the runtime scheme used for configuration file loading.
func (b *Base) GetScheme() *runtime.Scheme {
	return b.apiScheme
}

// GetConfig loads the Configuration from the first existing configuration file.
func (b *Base) GetConfig(ctx context.Context) (*v1alpha1.Configuration, error) {
	c := &v1alpha1.Configuration{}

	slog.DebugContext(ctx, "searching for configuration files", slog.Any("cfgFiles", b.ConfigFiles))

	if err := config.Load(slog.Default(), b.GetScheme(), c, b.ConfigFiles); err != nil {
		return c, fmt.Errorf("loading configuration: %w", err)
	}
	b.GetScheme().Default(c)

	slog.DebugContext(ctx, "using config", slog.Any("configuration", c))

	return c, nil
}

// transportOptions builds the options for connecting to locator. stderr
// receives the diagnostics of spawned remote shells and proxies.
func transportOptions(ctx context.Context, cfg *v1alpha1.Configuration, locator string, stderr io.Writer) transport.Options {
	proxyCommand := cfg.Proxy.Command
	if cmd, ok := os.LookupEnv(proxyCommandEnv); ok {
		proxyCommand = cmd
	}

	opts := transport.Options{
		SSHCommand: cfg.SSH.Command,
		Proxy: transport.ProxyChain{
			&transport.CommandProxy{
				Command: proxyCommand,
				NoProxy: cfg.Proxy.NoProxy,
				Stderr:  stderr,
			},
			transport.NewEnvProxy(),
		},
		DefaultPort: cfg.Network.DefaultPort,
		Stderr:      stderr,
		Wrap: func(rw io.ReadWriter) io.ReadWriter {
			return logutil.NewTraceReadWriter(ctx, rw, logutil.RedactLocator(locator))
		},
	}
	if cfg.Network.DialTimeout != nil {
		opts.DialTimeout = cfg.Network.DialTimeout.Duration
	}

	return opts
}
