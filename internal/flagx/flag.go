// Package flagx separates the flags owned by one flag set from the rest of
// the command line, so several sets can share os.Args.
package flagx

import "strings"

// Split partitions args into the flags listed in names (with their values)
// and everything else, preserving order in both.
//
// Supported forms: "-name value" and "-name=value". A flag followed by
// another flag or by nothing is taken without a value.
func Split(args []string, names []string) (matched, rest []string) {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}

	matched = make([]string, 0, len(args))
	rest = make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				matched = append(matched, arg)
			} else {
				rest = append(rest, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			matched = append(matched, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				matched = append(matched, args[i+1])
				i++
			}
			continue
		}

		rest = append(rest, arg)
	}

	return matched, rest
}
