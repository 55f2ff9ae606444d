package actions

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/muesli/termenv"

	"github.com/act3-ai/gitconnect/internal/git"
	"github.com/act3-ai/gitconnect/internal/logutil"
	"github.com/act3-ai/gitconnect/internal/refcomp"
	"github.com/act3-ai/gitconnect/pkg/protocol/handshake"
	"github.com/act3-ai/gitconnect/pkg/transport"
)

// Compare shows how the branches and tags of a remote repository relate to
// those of a local repository.
type Compare struct {
	Base

	// GitDir is the local repository, or a directory inside its worktree.
	GitDir string
	// Tracking compares remote branches to the remote-tracking branches
	// refs/remotes/<Tracking>/* instead of local branches.
	Tracking string
	// UploadPack is the program run on the remote end.
	UploadPack string

	out    io.Writer
	stderr io.Writer
}

// NewCompare creates a Compare writing its report to out and transport
// diagnostics to stderr.
func NewCompare(out, stderr io.Writer, gitDir string, cfgFiles []string) *Compare {
	return &Compare{
		Base:       NewBase(cfgFiles),
		GitDir:     gitDir,
		UploadPack: DefaultUploadPack,
		out:        out,
		stderr:     stderr,
	}
}

// Run compares every branch and tag advertised by repo.
func (action *Compare) Run(ctx context.Context, repo string) error {
	cfg, err := action.GetConfig(ctx)
	if err != nil {
		return fmt.Errorf("getting configuration: %w", err)
	}

	local, err := git.Open(action.GitDir)
	if err != nil {
		return err
	}

	conn, err := transport.Connect(ctx, repo, action.UploadPack, transportOptions(ctx, cfg, repo, action.stderr))
	if err != nil {
		return fmt.Errorf("connecting to %s: %w", logutil.RedactLocator(repo), err)
	}
	adv, err := conn.Handshake(ctx, handshake.ReadOptions{Filter: handshake.FilterNormal | handshake.FilterHeads | handshake.FilterTags})
	if err != nil {
		_, _ = conn.Finish()
		return err
	}
	if code, err := conn.Disconnect(ctx); err != nil {
		return fmt.Errorf("disconnecting: %w", err)
	} else if code != 0 {
		slog.WarnContext(ctx, "remote service exited with non-zero status", slog.Int("status", code))
	}

	output := termenv.NewOutput(action.out)
	rc := refcomp.NewCachedRefComparer(local)
	for ref := range adv.References() {
		rp, err := rc.Compare(ctx, action.localName(ref.Name()), ref)
		if err != nil {
			return err
		}
		fmt.Fprintf(action.out, "%s\t%s\n", action.styled(output, rp.Status), ref.Name())
	}

	return nil
}

// localName maps a remote reference to the local one it is compared to.
func (action *Compare) localName(remote plumbing.ReferenceName) plumbing.ReferenceName {
	if action.Tracking == "" || !remote.IsBranch() {
		return remote
	}
	return plumbing.NewRemoteReferenceName(action.Tracking, strings.TrimPrefix(remote.String(), "refs/heads/"))
}

func (action *Compare) styled(output *termenv.Output, s refcomp.Status) termenv.Style {
	style := output.String(s.String())
	switch s {
	case refcomp.StatusUpToDate:
		return style.Foreground(output.Color("2"))
	case refcomp.StatusDiverged:
		return style.Foreground(output.Color("1"))
	default:
		return style.Foreground(output.Color("3"))
	}
}
