package registry

// NewResolverWithPath exposes the internal constructor for tests.
var NewResolverWithPath = newResolverWithPath
