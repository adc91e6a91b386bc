package commands

import (
	"bytes"
	"errors"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(got *[]string, drawing *string) *Registry {
	r := NewRegistry("view")
	view := flag.NewFlagSet("view", flag.ContinueOnError)
	view.StringVar(drawing, "drawing", "", "")
	r.Register("view", "open the viewer", view, func(args []string) error {
		*got = append([]string{"view"}, args...)
		return nil
	})
	list := flag.NewFlagSet("list", flag.ContinueOnError)
	r.Register("list", "list drawings", list, func(args []string) error {
		*got = append([]string{"list"}, args...)
		return errors.New("boom")
	})
	return r
}

func TestExecuteDispatch(t *testing.T) {
	var got []string
	var drawing string
	r := newTestRegistry(&got, &drawing)

	require.NoError(t, r.Execute([]string{"view", "-drawing", "d-1", "extra"}))
	assert.Equal(t, []string{"view", "extra"}, got)
	assert.Equal(t, "d-1", drawing)

	assert.EqualError(t, r.Execute([]string{"list"}), "boom")
	assert.Equal(t, []string{"list"}, got)
}

func TestExecuteFallback(t *testing.T) {
	var got []string
	var drawing string
	r := newTestRegistry(&got, &drawing)

	require.NoError(t, r.Execute(nil))
	assert.Equal(t, []string{"view"}, got)

	require.NoError(t, r.Execute([]string{"-drawing", "d-2"}))
	assert.Equal(t, "d-2", drawing)
}

func TestExecuteUnknown(t *testing.T) {
	var got []string
	var drawing string
	r := newTestRegistry(&got, &drawing)
	err := r.Execute([]string{"frobnicate"})
	assert.True(t, errors.Is(err, ErrUnknown))

	var buf bytes.Buffer
	r.PrintUsage(&buf)
	assert.Equal(t, "  list       list drawings\n  view       open the viewer\n", buf.String())
}
