package typevec

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/hupe1980/typevec"

// sourceImporter type-checks packages of this module from their sources and
// defers everything else to the standard library source importer.
type sourceImporter struct {
	fset *token.FileSet
	std  types.Importer
	pkgs map[string]*types.Package
}

func newSourceImporter() *sourceImporter {
	fset := token.NewFileSet()
	return &sourceImporter{
		fset: fset,
		std:  importer.ForCompiler(fset, "source", nil),
		pkgs: make(map[string]*types.Package),
	}
}

func (im *sourceImporter) Import(path string) (*types.Package, error) {
	if pkg, ok := im.pkgs[path]; ok {
		return pkg, nil
	}
	if path != modulePath && !strings.HasPrefix(path, modulePath+"/") {
		return im.std.Import(path)
	}

	dir := filepath.FromSlash("." + strings.TrimPrefix(path, modulePath))
	names, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, err
	}

	var files []*ast.File
	for _, name := range names {
		if strings.HasSuffix(name, "_test.go") {
			continue
		}
		f, err := parser.ParseFile(im.fset, name, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	conf := types.Config{Importer: im}
	pkg, err := conf.Check(path, im.fset, files, nil)
	if err != nil {
		return nil, err
	}
	im.pkgs[path] = pkg
	return pkg, nil
}

var (
	checkerOnce sync.Once
	checker     *sourceImporter
	checkerErr  error
)

// typeCheck reports the first type error of a function body using typevec.
func typeCheck(t *testing.T, body string) error {
	t.Helper()

	checkerOnce.Do(func() {
		checker = newSourceImporter()
		_, checkerErr = checker.Import(modulePath)
	})
	require.NoError(t, checkerErr, "typevec itself must type-check")

	src := "package snippet\n\nimport \"" + modulePath + "\"\n\nfunc f() {\n" + body + "\n}\n"
	f, err := parser.ParseFile(checker.fset, "snippet.go", src, 0)
	require.NoError(t, err)

	conf := types.Config{Importer: checker}
	_, err = conf.Check("snippet", checker.fset, []*ast.File{f}, nil)
	return err
}

// Violations of a statically known bound must not build.
func TestBuildTimeRejection(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks the standard library from source")
	}

	const one = "v := typevec.Push(typevec.New[int](), 1)\n"

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"pop non-empty", one + "_, _ = typevec.Pop(v)", false},
		{"pop static empty", "_, _ = typevec.Pop(typevec.New[int]())", true},
		{"pop dyn with static pop", "_, _ = typevec.Pop(typevec.NewDyn[int]())", true},
		{"get in range", one + "_ = typevec.Get0(v)", false},
		{"get at length", one + "_ = typevec.Get1(v)", true},
		{"static get on dyn", "_ = typevec.Get0(typevec.NewDyn[int]())", true},
		{"insert at end", one + "var _ typevec.Vect[int, typevec.U2] = typevec.Insert1(v, 2)", false},
		{"insert past end", one + "_ = typevec.Insert2(v, 2)", true},
		{"remove in range", one + "var r typevec.Vect[int, typevec.U0]\nr, _ = typevec.Remove0(v)\n_ = r", false},
		{"remove at length", one + "_, _ = typevec.Remove1(v)", true},
		{"remove from static empty", "_, _ = typevec.Remove(typevec.New[int](), 0)", true},
		{"wrong length annotation", "var _ typevec.Vect[int, typevec.U2] = typevec.Push(typevec.New[int](), 1)", true},
		{"dyn push on static", "_ = typevec.PushDyn(typevec.New[int](), 1)", true},
		{"static push on dyn", "_ = typevec.Push(typevec.NewDyn[int](), 1)", true},
		{"into exact", "_, _ = typevec.IntoExact[typevec.U3](typevec.FromSlice([]int{1, 2, 3}))", false},
		{"into exact dyn target", "_, _ = typevec.IntoExact[typevec.Dyn](typevec.NewDyn[int]())", true},
		{"get at on dyn", "_, _ = typevec.GetAt[typevec.U4](typevec.NewDyn[int]())", false},
		{"insert at on dyn", "_ = typevec.InsertAt[typevec.U0](typevec.NewDyn[int](), 1)", false},
		{"remove at on static", one + "_, _ = typevec.RemoveAt[typevec.U0](v)", true},
		{"compare", one + "_ = typevec.Compare(v, v.Clone())", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := typeCheck(t, tt.body)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
