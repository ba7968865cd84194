// Package mangle renames local bindings to the shortest names that keep
// the program's behavior:
//  1. Build the scope tree: var hoisting, block scoping, parameters, catch
//     clauses, function expression names
//  2. Resolve every identifier reference to its binding
//  3. Assign short names scope by scope, skipping keywords and every name
//     the scope's subtree observes from outside it
//
// Exported module bindings keep their names. Direct eval and with make
// scopes unanalyzable, so either one disables the pass for the whole
// program.
package mangle

import (
	"sort"

	"whittle/internal/ast"
)

// Options selects how aggressive renaming is.
type Options struct {
	// TopLevel renames bindings of the module or script scope itself.
	TopLevel bool
	// Debug appends each binding's original name to its short name.
	Debug bool
}

// Default is the configuration used when mangling is enabled without
// detail settings.
func Default() Options {
	return Options{TopLevel: false, Debug: false}
}

// Mangle renames bindings in place.
func Mangle(prog *ast.Program, opts Options) {
	a := analyze(prog)
	if a.bail {
		return
	}
	a.resolve()
	if !opts.TopLevel {
		for _, b := range a.root.bindings {
			b.kept = true
		}
	}
	collectKept(a.root)
	assign(a.root, opts)
	apply(a.root)
}

// assign gives every renameable binding of the scope its new name, then
// recurses. Parents are named first so that child scopes can avoid the
// final names of outer bindings they reference.
func assign(s *scope, opts Options) {
	taken := make(map[string]struct{}, len(s.freeRefs)+len(s.keptBelow)+len(s.bindings))
	for name := range s.freeRefs {
		taken[name] = struct{}{}
	}
	for name := range s.keptBelow {
		taken[name] = struct{}{}
	}
	for b := range s.outerRefs {
		taken[b.finalName()] = struct{}{}
	}

	order := make([]*binding, 0, len(s.bindings))
	for _, b := range s.bindings {
		if !b.kept {
			order = append(order, b)
		}
	}
	// Most-referenced bindings get the shortest names.
	sort.SliceStable(order, func(i, j int) bool {
		if len(order[i].refs) != len(order[j].refs) {
			return len(order[i].refs) > len(order[j].refs)
		}
		return order[i].order < order[j].order
	})

	for _, b := range order {
		for i := 0; ; i++ {
			cand := shortName(i)
			if reserved[cand] {
				continue
			}
			if opts.Debug {
				cand += "_" + b.name
			}
			if _, used := taken[cand]; used {
				continue
			}
			b.newName = cand
			taken[cand] = struct{}{}
			break
		}
	}

	for _, c := range s.children {
		assign(c, opts)
	}
}

func apply(s *scope) {
	for _, b := range s.bindings {
		if b.newName == "" {
			continue
		}
		for _, id := range b.decls {
			id.Name = b.newName
		}
		for _, id := range b.refs {
			id.Name = b.newName
		}
	}
	for _, c := range s.children {
		apply(c)
	}
}

const nameHead = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$"
const nameTail = nameHead + "0123456789"

// shortName maps an index to a candidate identifier: 54 single characters,
// then two-character names, and so on.
func shortName(i int) string {
	buf := []byte{nameHead[i%len(nameHead)]}
	for i /= len(nameHead); i > 0; i /= len(nameTail) {
		i--
		buf = append(buf, nameTail[i%len(nameTail)])
	}
	return string(buf)
}

// reserved holds every name the generator must skip: keywords, reserved
// words in either mode, and the scope-sensitive identifiers the runtime
// binds implicitly.
var reserved = map[string]bool{
	"as": true, "do": true, "if": true, "in": true, "of": true,
	"for": true, "get": true, "let": true, "new": true, "set": true, "try": true, "var": true,
	"case": true, "else": true, "enum": true, "eval": true, "from": true, "null": true,
	"this": true, "true": true, "void": true, "with": true,
	"async": true, "await": true, "break": true, "catch": true, "class": true, "const": true,
	"false": true, "super": true, "throw": true, "while": true, "yield": true,
	"delete": true, "export": true, "import": true, "public": true, "return": true,
	"static": true, "switch": true, "typeof": true,
	"default": true, "extends": true, "finally": true, "package": true, "private": true,
	"continue": true, "debugger": true, "function": true,
	"arguments": true, "interface": true, "protected": true, "implements": true, "instanceof": true,
}
