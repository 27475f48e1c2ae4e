package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annotatedSource = `package sample

// Badge renders a counter bubble.
//
// @directive selector=badge
type Badge struct {
	// @property named=count
	Count int
}

func NewBadge(
	role string, // @attribute name=role
) *Badge {
	return &Badge{}
}
`

const orphanSource = `package sample

// Plain carries member annotations but no class annotation.
type Plain struct {
	// @property named=count
	Count int
}
`

func TestScanFile(t *testing.T) {
	t.Run("it should collect class, member and constructor annotations", func(t *testing.T) {
		// GIVEN
		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, "sample.go", annotatedSource, parser.ParseComments)
		require.NoError(t, err)

		// WHEN
		defs := make(map[string]*ClassDef)
		var order []string
		scanFile(&testLogger, fset, file, defs, &order)

		// THEN
		require.Equal(t, []string{"Badge"}, order)
		def := defs["Badge"]
		require.Len(t, def.Annotations, 1)
		assert.Equal(t, "directive", def.Annotations[0].Tag)
		require.Len(t, def.Members, 1)
		assert.Equal(t, "Count", def.Members[0].Name)
		require.Len(t, def.Params, 1)
		assert.Equal(t, 0, def.Params[0].Index)
		assert.Equal(t, "attribute", def.Params[0].Annotations[0].Tag)
	})

	t.Run("it should warn when member annotations sit on an unannotated type", func(t *testing.T) {
		// GIVEN
		fset := token.NewFileSet()
		file, err := parser.ParseFile(fset, "sample.go", orphanSource, parser.ParseComments)
		require.NoError(t, err)
		var buf bytes.Buffer
		logger := zerolog.New(&buf)

		// WHEN
		defs := make(map[string]*ClassDef)
		var order []string
		scanFile(&logger, fset, file, defs, &order)

		// THEN nothing is collected and the author is told why
		assert.Empty(t, order)
		assert.Contains(t, buf.String(), "Plain")
		assert.Contains(t, buf.String(), "without a class annotation")
	})
}
