package handshake

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/format/pktline"
)

// ReadOptions configures [ReadAdvertisement].
type ReadOptions struct {
	// Filter selects the references kept in [Advertisement.Refs].
	Filter RefFilter
	// CollectHaves records ".have" lines in [Advertisement.ExtraHaves].
	CollectHaves bool
}

// Advertisement is the result of reading a server's reference advertisement.
// It is owned by the caller once returned.
type Advertisement struct {
	// Refs are the references that passed the filter, in advertisement order.
	Refs []Ref
	// ExtraHaves are objects advertised with ".have" lines, in arrival order.
	// Duplicates are kept.
	ExtraHaves []plumbing.Hash
	// Capabilities is the capability list of the first line that carried one.
	Capabilities Capabilities
	// HasCapabilities is false if the server sent no capability list at all.
	HasCapabilities bool
}

// References iterates over the advertised references as go-git references.
func (a *Advertisement) References() iter.Seq[*plumbing.Reference] {
	return func(yield func(*plumbing.Reference) bool) {
		for _, r := range a.Refs {
			if !yield(r.Reference()) {
				return
			}
		}
	}
}

// Ref returns the advertised reference with the given name.
func (a *Advertisement) Ref(name plumbing.ReferenceName) (Ref, bool) {
	for _, r := range a.Refs {
		if r.Name == name {
			return r, true
		}
	}
	return Ref{}, false
}

// ReadAdvertisement reads pkt-lines from r until a flush-pkt, decoding each
// into the returned [Advertisement]. No partial advertisement is returned on
// error.
func ReadAdvertisement(ctx context.Context, r io.Reader, opts ReadOptions) (*Advertisement, error) {
	scanner := pktline.NewScanner(r)
	adv := &Advertisement{}
	var gotRef bool

	for {
		if !scanner.Scan() {
			return nil, scanError(scanner.Err(), gotRef)
		}

		line, err := DecodeLine(scanner.Bytes())
		if err != nil {
			return nil, err
		}

		if line.Kind == LineFlush {
			break
		}

		if line.HasCapabilities && !adv.HasCapabilities {
			adv.Capabilities = line.Capabilities
			adv.HasCapabilities = true
			slog.DebugContext(ctx, "received server capabilities", slog.String("capabilities", string(line.Capabilities)))
		}

		switch {
		case line.Kind == LineExtraHave:
			if opts.CollectHaves {
				adv.ExtraHaves = append(adv.ExtraHaves, line.Hash)
			}
		case !CheckRefType(line.Name, opts.Filter):
			slog.DebugContext(ctx, "ignoring filtered reference", slog.String("ref", line.Name.String()))
		default:
			adv.Refs = append(adv.Refs, Ref{Name: line.Name, Hash: line.Hash})
			gotRef = true
		}
	}

	AnnotateSymrefs(adv.Refs, adv.Capabilities)

	return adv, nil
}

// scanError converts the reason a scan stopped before a flush-pkt into an
// error.
func scanError(err error, gotRef bool) error {
	var errLine *pktline.ErrorLine
	switch {
	case errors.As(err, &errLine) && errLine.Text == "":
		return fmt.Errorf("%w: expected sha/ref, got %q", ErrProtocol, "ERR ")
	case errors.As(err, &errLine):
		return &RemoteError{Message: errLine.Text}
	case errors.Is(err, pktline.ErrInvalidPktLen):
		return fmt.Errorf("%w: %w", ErrProtocol, err)
	case gotRef && err != nil:
		return fmt.Errorf("%w: %w", ErrHungUp, err)
	case gotRef:
		return ErrHungUp
	case err != nil:
		return fmt.Errorf("%w: %w", ErrInitialContact, err)
	default:
		return ErrInitialContact
	}
}
