package halfvec

// Legacy fixed-name surface. Pre-existing callers link against the
// Halfvec* names with C argument order (dimension first, then the two
// element pointers); these forward unchanged to the public API. Half is
// an alias of uint16, so buffers of raw binary16 patterns pass through
// without widening or copying.

// HalfvecInit performs the one-time capability probe and dispatch
// binding. Idempotent; safe to call from multiple goroutines.
func HalfvecInit() {
	Init()
}

// HalfvecL2SquaredDistance is the fixed-name form of L2SquaredDistance.
func HalfvecL2SquaredDistance(dim int32, ax, bx []Half) (float32, error) {
	return L2SquaredDistance(dim, ax, bx)
}

// HalfvecInnerProduct is the fixed-name form of InnerProduct.
func HalfvecInnerProduct(dim int32, ax, bx []Half) (float32, error) {
	return InnerProduct(dim, ax, bx)
}

// HalfvecCosineSimilarity is the fixed-name form of CosineSimilarity.
func HalfvecCosineSimilarity(dim int32, ax, bx []Half) (float64, error) {
	return CosineSimilarity(dim, ax, bx)
}

// HalfvecL1Distance is the fixed-name form of L1Distance.
func HalfvecL1Distance(dim int32, ax, bx []Half) (float32, error) {
	return L1Distance(dim, ax, bx)
}
