package ports

// BundleHasher computes content hashes over generated bundle trees.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type BundleHasher interface {
	// TreeHash returns a deterministic hash over every file under root,
	// covering both paths and contents.
	TreeHash(root string) (string, error)
}
