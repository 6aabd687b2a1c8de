package argparser

import (
	"bytes"
	"fmt"
	"reflect"
	"regexp"
	"strconv"

	"github.com/pborman/getopt/v2"
)

// ugly as sin due to lack of lookaheads :/
var indenter = regexp.MustCompile(`(?m)^([^\n])`)
var nonOptIndenter = regexp.MustCompile(`(?m)^\s{0,12}([^\s\n\-])`)
var dashStripper = regexp.MustCompile(`(?m)^(\s*)\-\-`)

// SubHelp renders a plugin description and its sub-options, indented for
// inclusion in the main --help-all output.
func SubHelp(description string, optSet *getopt.Set) (sh []string) {

	sh = append(
		sh,
		string(indenter.ReplaceAll(
			[]byte(description),
			[]byte(`  $1`),
		)),
	)

	if optSet == nil {
		return sh
	}

	b := bytes.NewBuffer(make([]byte, 0, 1024))
	optSet.PrintOptions(b)

	sh = append(sh, "  ------------\n   SubOptions")
	sh = append(sh,
		string(dashStripper.ReplaceAll(
			nonOptIndenter.ReplaceAll(
				b.Bytes(),
				[]byte(`              $1`),
			),
			[]byte(`$1  `),
		)),
	)

	return sh
}

// Parse runs getopt over args (args[0] being the program or plugin name)
// and then enforces every '[min:max]' range encoded in an option parameter
// name, e.g. '--suffix-length=[1:64]'. At most maxFreeArgs trailing
// free-form parameters are accepted.
func Parse(args []string, optSet *getopt.Set, maxFreeArgs int) (argErrs []string) {

	if err := optSet.Getopt(args, nil); err != nil {
		argErrs = append(argErrs, err.Error())
	}

	unexpectedArgs := optSet.Args()
	if len(unexpectedArgs) > maxFreeArgs {
		argErrs = append(argErrs, fmt.Sprintf(
			"unexpected free-form parameter(s): %s...",
			unexpectedArgs[maxFreeArgs],
		))
	}

	// going through the limits when we are already in error is too confusing
	if len(argErrs) > 0 {
		return
	}

	optSet.VisitAll(func(o getopt.Option) {
		if spec := []byte(reflect.ValueOf(o).Elem().FieldByName("name").String()); len(spec) > 0 {

			max := int((^uint(0)) >> 1)
			min := -max - 1

			if spec[0] == '[' && spec[len(spec)-1] == ']' {
				if _, err := fmt.Sscanf(string(spec), "[%d:]", &min); err != nil {
					if _, err := fmt.Sscanf(string(spec), "[%d:%d]", &min, &max); err != nil {
						argErrs = append(argErrs, fmt.Sprintf("Failed parsing '%s' as '[%%d:%%d]' - %s", spec, err))
						return
					}
				}
			} else {
				// not a spec we recognize
				return
			}

			// defaults are trusted, only check what the user supplied
			if !o.Seen() {
				return
			}

			actual, err := strconv.ParseInt(o.Value().String(), 10, 64)
			if err != nil {
				argErrs = append(argErrs, err.Error())
				return
			}

			if actual < int64(min) || actual > int64(max) {
				argErrs = append(argErrs, fmt.Sprintf(
					"value '%d' supplied for %s out of range [%d:%d]",
					actual,
					o.LongName(),
					min, max,
				))
			}
		}
	})

	return
}
