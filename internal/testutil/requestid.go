package testutil

// ConstantRequestID generates the same request ID every time.
//
// Unlike engine.FixedGenerator, which returns IDs in sequence and panics
// when they run out, this generator never runs out. Golden snapshots of a
// scenario with several queries stay byte-identical across runs.
//
// Thread-safety: ConstantRequestID is stateless and safe for concurrent use.
type ConstantRequestID struct {
	id string
}

// NewConstantRequestID creates a generator for id. If id is empty,
// Generate returns "test-request".
func NewConstantRequestID(id string) *ConstantRequestID {
	if id == "" {
		id = "test-request"
	}
	return &ConstantRequestID{id: id}
}

// Generate returns the constant request ID.
//
// Implements engine.RequestIDGenerator.
func (g *ConstantRequestID) Generate() string {
	return g.id
}
