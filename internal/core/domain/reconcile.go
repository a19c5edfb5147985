package domain

// Reconcile merges the packages being released now with the packages of the
// previous release. Every entry of updated appears first, in input order,
// followed by every reference entry whose identity is not superseded by an
// updated entry, in input order. When an identity appears in both sets the
// updated version wins and the reference entry is dropped.
//
// Both inputs must satisfy the ReleaseSet uniqueness invariant. A duplicate
// identity inside updated is a caller error; the result is then malformed.
//
// Pure function: no I/O, no error conditions, safe from any calling context.
func Reconcile(updated, reference ReleaseSet) ReleaseSet {
	result := make(ReleaseSet, 0, len(updated)+len(reference))
	result = append(result, updated...)

	superseded := make(map[string]struct{}, len(updated))
	for _, ref := range updated {
		superseded[ref.Identity()] = struct{}{}
	}

	for _, ref := range reference {
		if _, ok := superseded[ref.Identity()]; ok {
			continue
		}
		result = append(result, ref)
	}

	return result
}
