package finder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/graphfinder/core"
)

// Sentinel errors surfaced through Network and Environment.
var (
	// ErrUnknownNode indicates the queried label is not present in the store.
	ErrUnknownNode = errors.New("finder: unknown node")

	// ErrNoSuchEdge indicates the source exists but has no outgoing edge to the target.
	ErrNoSuchEdge = errors.New("finder: no such edge")
)

// translate maps a store failure for node onto the finder error taxonomy.
// Missing or empty vertex IDs become ErrUnknownNode; anything else is wrapped
// so store sentinels never reach callers as the sole error kind.
func translate(err error, node string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, core.ErrVertexNotFound) || errors.Is(err, core.ErrEmptyVertexID) {
		return fmt.Errorf("%w: %q", ErrUnknownNode, node)
	}

	return fmt.Errorf("finder: store failure for %q: %w", node, err)
}

// isUnknown reports whether a translated error means the node is absent.
func isUnknown(err error) bool {
	return errors.Is(err, ErrUnknownNode)
}
