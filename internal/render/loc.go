package render

import (
	"go/token"
	"strconv"
	"strings"
)

// ParseLoc parses a serialized "path:line:col" source coordinate back into
// a position of fset. It is a best-effort bridge between evidence
// collection and reporting: the string crossed a serialization boundary
// and may name a file that is not part of the current view. Malformed or
// unresolvable input yields token.NoPos, never an error.
func ParseLoc(fset *token.FileSet, loc string) token.Pos {
	rest, colstr, ok := rcut(loc, ':')
	if !ok {
		return token.NoPos
	}
	name, linestr, ok := rcut(rest, ':')
	if !ok {
		return token.NoPos
	}

	line, err := strconv.Atoi(linestr)
	if err != nil || line < 1 {
		return token.NoPos
	}
	col, err := strconv.Atoi(colstr)
	if err != nil || col < 1 {
		return token.NoPos
	}

	var file *token.File
	fset.Iterate(func(f *token.File) bool {
		if f.Name() == name {
			file = f
			return false
		}
		return true
	})
	if file == nil {
		return token.NoPos
	}

	if line > file.LineCount() {
		return token.NoPos
	}

	pos := file.LineStart(line) + token.Pos(col-1)

	// The column must not run past the end of its line.
	end := file.Pos(file.Size())
	if line < file.LineCount() {
		end = file.LineStart(line + 1)
	}
	if pos > end {
		return token.NoPos
	}

	return pos
}

// rcut splits s around the last occurrence of sep.
func rcut(s string, sep byte) (before, after string, ok bool) {
	i := strings.LastIndexByte(s, sep)
	if i < 0 {
		return s, "", false
	}

	return s[:i], s[i+1:], true
}
