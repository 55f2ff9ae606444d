package actions

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/muesli/termenv"
	"github.com/sourcegraph/conc/pool"

	"github.com/act3-ai/gitconnect/internal/logutil"
	"github.com/act3-ai/gitconnect/pkg/protocol/handshake"
	"github.com/act3-ai/gitconnect/pkg/transport"
)

// DefaultUploadPack is the service queried by ls-remote.
const DefaultUploadPack = "git-upload-pack"

// LsRemote lists the references advertised by remote repositories.
type LsRemote struct {
	Base

	// Heads limits the output to refs/heads.
	Heads bool
	// Tags limits the output to refs/tags.
	Tags bool
	// Refs omits pseudo-refs such as HEAD.
	Refs bool
	// Symref shows the target of symbolic references.
	Symref bool
	// Capabilities shows the capabilities advertised by each repository.
	Capabilities bool
	// UploadPack is the program run on the remote end.
	UploadPack string
	// ExitCode makes the action fail with status 2 when no reference matched.
	ExitCode bool
	// Verbose reports connection progress.
	Verbose bool

	out    io.Writer
	stderr io.Writer
}

// NewLsRemote creates an LsRemote writing listings to out and transport
// diagnostics to stderr.
func NewLsRemote(out, stderr io.Writer, cfgFiles []string) *LsRemote {
	return &LsRemote{
		Base:       NewBase(cfgFiles),
		UploadPack: DefaultUploadPack,
		out:        out,
		stderr:     stderr,
	}
}

// listing is the output of one repository.
type listing struct {
	buf  bytes.Buffer
	refs int
}

// Run queries every repository concurrently. Listings are written in the
// order the repositories are given.
func (action *LsRemote) Run(ctx context.Context, repos ...string) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	output := termenv.NewOutput(action.out)
	listings := make([]listing, len(repos))

	p := pool.New().WithContext(ctx)
	for i, repo := range repos {
		p.Go(func(ctx context.Context) error {
			opts := transportOptions(ctx, cfg, repo, action.stderr)
			opts.Verbose = action.Verbose
			if err := action.list(ctx, output, repo, opts, &listings[i]); err != nil {
				return fmt.Errorf("listing %s: %w", logutil.RedactLocator(repo), err)
			}
			return nil
		})
	}
	err = p.Wait()

	var matched int
	for i := range listings {
		if len(repos) > 1 && listings[i].buf.Len() > 0 {
			fmt.Fprintln(action.out, output.String("From "+logutil.RedactLocator(repos[i])).Bold())
		}
		if _, werr := listings[i].buf.WriteTo(action.out); werr != nil {
			return errors.Join(err, fmt.Errorf("writing listing: %w", werr))
		}
		matched += listings[i].refs
	}

	switch {
	case err != nil:
		return err
	case action.ExitCode && matched == 0:
		return &ExitError{Code: 2}
	default:
		return nil
	}
}

// filter returns the reference filter selected by the flags.
func (action *LsRemote) filter() handshake.RefFilter {
	var f handshake.RefFilter
	if action.Heads {
		f |= handshake.FilterHeads
	}
	if action.Tags {
		f |= handshake.FilterTags
	}
	if action.Refs {
		f |= handshake.FilterNormal
	}
	return f
}

// list writes the references of a single repository to l.
func (action *LsRemote) list(ctx context.Context, output *termenv.Output, repo string, opts transport.Options, l *listing) error {
	log := slog.With(slog.String("repository", logutil.RedactLocator(repo)))

	conn, err := transport.Connect(ctx, repo, action.UploadPack, opts)
	if err != nil {
		return fmt.Errorf("connecting: %w", err)
	}

	adv, err := conn.Handshake(ctx, handshake.ReadOptions{Filter: action.filter()})
	if err != nil {
		_, _ = conn.Finish()
		return err
	}
	log.DebugContext(ctx, "received advertisement", slog.Int("refs", len(adv.Refs)), slog.String("capabilities", adv.Capabilities.String()))

	code, err := conn.Disconnect(ctx)
	switch {
	case err != nil:
		return fmt.Errorf("disconnecting: %w", err)
	case code != 0:
		log.WarnContext(ctx, "remote service exited with non-zero status", slog.Int("status", code))
	}

	if action.Capabilities && adv.HasCapabilities {
		fmt.Fprintf(&l.buf, "%s %s\n", output.String("capabilities").Faint(), adv.Capabilities)
	}
	for _, ref := range adv.Refs {
		if action.Symref && ref.Symref != "" {
			fmt.Fprintf(&l.buf, "%s %s\t%s\n", output.String("ref:").Foreground(output.Color("6")), ref.Symref, ref.Name)
		}
		fmt.Fprintf(&l.buf, "%s\t%s\n", output.String(ref.Hash.String()).Foreground(output.Color("3")), ref.Name)
		l.refs++
	}

	return nil
}
