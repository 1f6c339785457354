package hadoop

// Context is the write sink handed to user map and reduce code. It buffers
// every written pair in call order; it performs no I/O and no validation. A
// fresh Context backs each phase and is discarded when the phase ends.
type Context struct {
	config map[string]string
	pairs  []KeyValue
}

func newContext(config map[string]string) *Context {
	cfg := make(map[string]string, len(config))
	for k, v := range config {
		cfg[k] = v
	}
	return &Context{config: cfg}
}

// Write appends one pair to the phase buffer. Pairs are kept in call order;
// duplicates are kept as-is.
func (c *Context) Write(key, value any) {
	c.pairs = append(c.pairs, KeyValue{Key: key, Value: value})
}

// Configuration returns this phase's copy of the job configuration map.
// Mutations stay within the phase; they never reach the job or a later
// phase.
func (c *Context) Configuration() map[string]string {
	return c.config
}
