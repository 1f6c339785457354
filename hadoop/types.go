package hadoop

// KeyValue is a single key-value pair flowing through the engine, either an
// intermediate pair written during the map phase or a result pair written
// during the reduce phase.
type KeyValue struct {
	Key   any
	Value any
}

// Mapper transforms one input record into zero or more intermediate pairs by
// calling ctx.Write. One mapper value serves a whole map phase and is invoked
// once per record, in record order; it must not rely on state carried across
// calls.
type Mapper interface {
	Map(key, value any, ctx *Context) error
}

// Reducer aggregates all values sharing a key into zero or more result pairs
// by calling ctx.Write. One reducer value serves a whole reduce phase and is
// invoked once per group, in ascending key order. The values sequence supports
// a single forward pass only.
type Reducer interface {
	Reduce(key any, values *ValueIterator, ctx *Context) error
}

// SetupHook is optionally implemented by a Mapper or Reducer that needs to run
// code once before the first record or group of its phase.
type SetupHook interface {
	Setup(ctx *Context) error
}

// CleanupHook is optionally implemented by a Mapper or Reducer that needs to
// run code once after the last record or group of its phase.
type CleanupHook interface {
	Cleanup(ctx *Context) error
}
