package bip32

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PathElement is one derivation step. Index must be below HardenedKeyStart;
// hardening is expressed by the flag, never by the raw index.
type PathElement struct {
	Index    uint32
	Hardened bool
}

// ChildIndex returns the index passed to Child for this step.
func (e PathElement) ChildIndex() uint32 {
	if e.Hardened {
		return e.Index | HardenedKeyStart
	}
	return e.Index
}

func (e PathElement) String() string {
	s := strconv.FormatUint(uint64(e.Index), 10)
	if e.Hardened {
		s += "'"
	}
	return s
}

// Path is an ordered list of derivation steps starting at the root.
type Path []PathElement

// PathFromChildIndexes converts raw child indexes, where values at or above
// HardenedKeyStart mean hardened, into a Path.
func PathFromChildIndexes(indexes ...uint32) Path {
	p := make(Path, 0, len(indexes))
	for _, i := range indexes {
		p = append(p, PathElement{
			Index:    i &^ HardenedKeyStart,
			Hardened: i >= HardenedKeyStart,
		})
	}
	return p
}

// ChildIndexes is the inverse of PathFromChildIndexes.
func (p Path) ChildIndexes() []uint32 {
	out := make([]uint32, len(p))
	for i, el := range p {
		out[i] = el.ChildIndex()
	}
	return out
}

// String renders p as m/a/b'/c.
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteString("m")
	for _, el := range p {
		sb.WriteByte('/')
		sb.WriteString(el.String())
	}
	return sb.String()
}

// ParsePath parses textual notation such as m/0'/0/5/1'. The hardened marker
// may be ', h or H and the leading m (or M) is optional.
func ParsePath(s string) (Path, error) {
	p, _, err := ParsePathRoot(s)
	return p, err
}

// ParsePathRoot is ParsePath that also reports whether the path is rooted at
// M, which asks for the public key of the final node.
func ParsePathRoot(s string) (Path, bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false, errors.Wrap(ErrInvalidPath, "empty path")
	}

	parts := strings.Split(s, "/")
	public := false
	switch parts[0] {
	case "m":
		parts = parts[1:]
	case "M":
		public = true
		parts = parts[1:]
	}

	path := make(Path, 0, len(parts))
	for _, part := range parts {
		var hardened bool
		if n := len(part); n > 0 {
			switch part[n-1] {
			case '\'', 'h', 'H':
				hardened = true
				part = part[:n-1]
			}
		}

		id, err := strconv.ParseUint(part, 10, 31)
		if err != nil {
			return nil, false, errors.Wrapf(ErrInvalidPath, "segment %q", part)
		}
		path = append(path, PathElement{Index: uint32(id), Hardened: hardened})
	}
	return path, public, nil
}
