package render

import (
	"go/parser"
	"go/token"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The layout inspector and the geometry tests import render and rendertest; neither may
// pull in a window toolkit or device driver.
func TestRenderImportsNoDisplayToolkit(t *testing.T) {
	for _, dir := range []string{".", "rendertest"} {
		files, err := filepath.Glob(filepath.Join(dir, "*.go"))
		require.NoError(t, err)
		require.NotEmpty(t, files)
		for _, name := range files {
			if strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), name, nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				assert.NotContains(t, path, "ebiten", name)
				assert.NotContains(t, path, "framebuffer", name)
				assert.NotContains(t, path, "render/backend", name)
			}
		}
	}
}
