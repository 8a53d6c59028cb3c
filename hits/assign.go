package hits

import "fmt"

// Assign runs the solver on g and writes every node's scores through set,
// under the keys configured with WithAttributes (default "hub" and
// "authority"). It is a thin adapter over Run: the scores written are
// exactly Run's.
//
// Validation errors are those of Run. The first setter failure aborts the
// write-back and is returned wrapped; attributes already written stay.
func Assign[K comparable](g Graph[K], set AttributeSetter[K], opts ...Option) error {
	if set == nil {
		return fmt.Errorf("%w: attribute setter is nil", ErrInvalidArgument)
	}
	cfg, err := buildOptions(opts)
	if err != nil {
		return err
	}

	res, err := Run(g, opts...)
	if err != nil {
		return err
	}

	for k, h := range res.Hubs {
		if err = set.SetVertexAttr(k, cfg.HubAttr, h); err != nil {
			return fmt.Errorf("hits: set %q on %v: %w", cfg.HubAttr, k, err)
		}
		if err = set.SetVertexAttr(k, cfg.AuthorityAttr, res.Authorities[k]); err != nil {
			return fmt.Errorf("hits: set %q on %v: %w", cfg.AuthorityAttr, k, err)
		}
	}

	return nil
}

// AssignGraph is Assign for graphs that carry their own attribute store,
// such as *core.Graph.
func AssignGraph[K comparable](g MutableGraph[K], opts ...Option) error {
	if g == nil {
		return fmt.Errorf("%w: graph is nil", ErrInvalidArgument)
	}

	return Assign[K](g, g, opts...)
}
