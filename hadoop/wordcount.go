package hadoop

import (
	"fmt"
	"strings"
)

// WordCountMapper splits each input line on whitespace and emits (word, 1)
// for every token.
type WordCountMapper struct{}

func (m *WordCountMapper) Map(_, value any, ctx *Context) error {
	line, ok := value.(string)
	if !ok {
		return fmt.Errorf("word count mapper expects string values, got %T", value)
	}
	for _, word := range strings.Fields(line) {
		ctx.Write(word, 1)
	}
	return nil
}

// WordCountReducer sums the counts emitted for one word and writes
// (word, total).
type WordCountReducer struct{}

func (r *WordCountReducer) Reduce(key any, values *ValueIterator, ctx *Context) error {
	total := 0
	for {
		v, ok := values.Next()
		if !ok {
			break
		}
		count, ok := v.(int)
		if !ok {
			return fmt.Errorf("word count reducer expects int values, got %T", v)
		}
		total += count
	}
	ctx.Write(key, total)
	return nil
}
