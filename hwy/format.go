package hwy

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// String renders the lanes in lane order separated by single spaces,
// e.g. "14 10 8 12". It is meant for diagnostics and is not parseable.
func (v Vector[T, R]) String() string {
	return joinLanes(v.reg.lanes(), func(x T) string {
		return fmt.Sprint(x)
	})
}

// Format implements fmt.Formatter. The verb and its flags apply to every
// lane, so "%3d" pads each lane and "%+d" signs each lane.
func (v Vector[T, R]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		verb = 'v'
	case 'd', 'x', 'X', 'o', 'b':
	default:
		fmt.Fprintf(f, "%%!%c(hwy.Vector=%s)", verb, v.String())
		return
	}
	format := fmt.FormatString(f, verb)
	_, _ = io.WriteString(f, joinLanes(v.reg.lanes(), func(x T) string {
		return fmt.Sprintf(format, x)
	}))
}

// Localized renders the lanes with the number formatting of tag, for
// example digit grouping "1,234,567" for language.English.
func (v Vector[T, R]) Localized(tag language.Tag) string {
	p := message.NewPrinter(tag)
	return joinLanes(v.reg.lanes(), func(x T) string {
		return p.Sprintf("%v", x)
	})
}

func joinLanes[T Lanes](lanes []T, render func(T) string) string {
	return strings.Join(lo.Map(lanes, func(x T, _ int) string {
		return render(x)
	}), " ")
}
