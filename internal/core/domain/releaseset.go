package domain

import "go.trai.ch/zerr"

// ReleaseSet is an ordered sequence of package refs with unique identities.
// Uniqueness is established by NewReleaseSet or ParseReleaseSet at the
// boundary; functions consuming a ReleaseSet rely on it without re-checking.
type ReleaseSet []PackageRef

// NewReleaseSet builds a ReleaseSet from the given refs, preserving input
// order. Returns ErrDuplicatePackage when two refs share an identity.
func NewReleaseSet(refs ...PackageRef) (ReleaseSet, error) {
	seen := make(map[string]struct{}, len(refs))
	set := make(ReleaseSet, 0, len(refs))
	for _, ref := range refs {
		id := ref.Identity()
		if _, ok := seen[id]; ok {
			return nil, zerr.With(zerr.Wrap(ErrDuplicatePackage, "release set"), "package", id)
		}
		seen[id] = struct{}{}
		set = append(set, ref)
	}
	return set, nil
}

// ParseReleaseSet parses the given package specs into a ReleaseSet,
// validating both the individual refs and the uniqueness invariant.
func ParseReleaseSet(specs []string) (ReleaseSet, error) {
	refs := make([]PackageRef, 0, len(specs))
	for _, spec := range specs {
		ref, err := ParsePackageRef(spec)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return NewReleaseSet(refs...)
}

// ContainsIdentity reports whether any ref in the set has the given identity.
func (s ReleaseSet) ContainsIdentity(id string) bool {
	for _, ref := range s {
		if ref.Identity() == id {
			return true
		}
	}
	return false
}

// Strings renders every ref in canonical form, preserving order.
func (s ReleaseSet) Strings() []string {
	out := make([]string, len(s))
	for i, ref := range s {
		out[i] = ref.String()
	}
	return out
}
