package hwy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"
)

// typeCheck loads one package under testdata/compile and returns its
// errors, from either the go command or the type checker.
func typeCheck(t *testing.T, dir string) []string {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:  "testdata/compile",
	}
	pkgs, err := packages.Load(cfg, "./"+dir)
	require.NoError(t, err)
	require.Len(t, pkgs, 1)

	var errs []string
	for _, e := range pkgs[0].Errors {
		errs = append(errs, e.Msg)
	}
	return errs
}

func TestCompileAcceptsSupportedPairs(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	assert.Empty(t, typeCheck(t, "accept"))
}

func TestCompileRejectsUnsupportedPairs(t *testing.T) {
	if testing.Short() {
		t.Skip("runs the go command")
	}
	tests := []struct {
		dir  string
		want string
	}{
		{"elemtype", "does not satisfy"},
		{"rawarray", "does not satisfy"},
		{"narrowarity", "not enough arguments in call"},
		{"widearity", "too many arguments in call"},
	}
	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			errs := typeCheck(t, tt.dir)
			require.NotEmpty(t, errs, "%s compiled but should not", tt.dir)
			assert.True(t, strings.Contains(strings.Join(errs, "\n"), tt.want),
				"errors %q do not mention %q", errs, tt.want)
		})
	}
}
