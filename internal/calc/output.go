package calc

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects how results are written.
type Format string

const (
	FormatText    Format = "text"
	FormatJSON    Format = "json"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat validates a --format value.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON, FormatMsgpack:
		return f, nil
	}
	return "", fmt.Errorf("invalid --format value %q (expected text|json|msgpack)", s)
}

// WriteResults writes results to w. Text output prints one value per line and
// "line N: error: ..." for failures; json and msgpack write a single array.
func WriteResults(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.UseCompactInts(true)
		return enc.Encode(results)
	}
	for _, r := range results {
		var err error
		if r.Err != nil {
			_, err = fmt.Fprintf(w, "line %d: error: %v\n", r.Line, r.Err)
		} else {
			_, err = fmt.Fprintln(w, r.Output)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
