// Package flagx lets several flag sets share os.Args: each one parses only
// the flags it defines and ignores the rest.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// ParseKnown parses the flags of args that fs defines and skips everything
// else, including positional arguments. "-x v", "--x v", "-x=v" and
// "--x=v" are accepted. Boolean flags never consume the following token.
func ParseKnown(fs *flag.FlagSet, args []string) error {
	return fs.Parse(Known(fs, args))
}

// Known returns the subset of args that names flags defined on fs, with
// their values. The result is never nil.
func Known(fs *flag.FlagSet, args []string) []string {
	known := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		name, hasValue, ok := flagName(args[i])
		if !ok {
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}

		known = append(known, args[i])
		if hasValue || isBool(f) {
			continue
		}
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			known = append(known, args[i+1])
			i++
		}
	}

	return known
}

// ConfigFileFlag returns the path given with -c, -config or --config in
// args. The last occurrence wins; "" means no file was requested.
func ConfigFileFlag(args []string) string {
	var path string

	fs := flag.NewFlagSet("config-file", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file (JSON or YAML)")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = ParseKnown(fs, args)

	return path
}

func flagName(arg string) (name string, hasValue bool, ok bool) {
	if len(arg) < 2 || arg[0] != '-' || arg == "--" {
		return "", false, false
	}
	name = strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	name, _, hasValue = strings.Cut(name, "=")
	return name, hasValue, name != ""
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
