package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Outputs collects pipeline results for the calling workflow. When the
// GITHUB_OUTPUT file is available the values are appended there in the
// Actions key=value format, with a heredoc for multiline values;
// otherwise they are logged.
type Outputs struct {
	keys   []string
	values map[string]string
}

// NewOutputs creates an empty output set
func NewOutputs() *Outputs {
	return &Outputs{
		values: map[string]string{},
	}
}

// Set records a key/value pair, preserving insertion order
func (o *Outputs) Set(key, value string) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = value
}

// Write emits the collected outputs
func (o *Outputs) Write(ctx context.Context) error {
	path := os.Getenv("GITHUB_OUTPUT")
	if path == "" {
		for _, k := range o.keys {
			ctxlog.From(ctx).Info("Pipeline output", "key", k, "value", o.values[k])
		}
		return nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to open output file", goerr.V("path", path))
	}
	defer f.Close()

	var sb strings.Builder
	for _, k := range o.keys {
		v := o.values[k]
		if strings.Contains(v, "\n") {
			delim := "HERALD_EOF_" + k
			for strings.Contains(v, delim) {
				delim += "_"
			}
			fmt.Fprintf(&sb, "%s<<%s\n%s\n%s\n", k, delim, v, delim)
		} else {
			fmt.Fprintf(&sb, "%s=%s\n", k, v)
		}
	}

	if _, err := f.WriteString(sb.String()); err != nil {
		return goerr.Wrap(err, "failed to write outputs", goerr.V("path", path))
	}
	return nil
}
