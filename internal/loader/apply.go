package loader

import (
	"fmt"
	"strings"

	"girgen/internal/diag"
	"girgen/internal/library"
)

func (l *Loader) apply(path string, desc *descriptionFile) error {
	nsID := l.lib.GetNamespace(desc.Namespace.Name)

	for _, a := range desc.Aliases {
		target, err := l.resolveRef(nsID, a.Type)
		if err != nil {
			return fmt.Errorf("%s: alias %q: %w", path, a.Name, err)
		}
		l.defineType(nsID, a.Name, library.MakeAlias(a.Name, a.CIdentifier, target))
	}
	for _, e := range desc.Enumerations {
		fns, err := l.convertFunctions(nsID, e.Functions)
		if err != nil {
			return fmt.Errorf("%s: enumeration %q: %w", path, e.Name, err)
		}
		l.defineType(nsID, e.Name, library.MakeEnumeration(e.Name, convertMembers(e.Members), fns))
	}
	for _, b := range desc.Bitfields {
		fns, err := l.convertFunctions(nsID, b.Functions)
		if err != nil {
			return fmt.Errorf("%s: bitfield %q: %w", path, b.Name, err)
		}
		l.defineType(nsID, b.Name, library.MakeBitfield(b.Name, convertMembers(b.Members), fns))
	}
	for _, r := range desc.Records {
		fns, err := l.convertFunctions(nsID, r.Functions)
		if err != nil {
			return fmt.Errorf("%s: record %q: %w", path, r.Name, err)
		}
		l.defineType(nsID, r.Name, library.MakeRecord(r.Name, fns))
	}
	for _, u := range desc.Unions {
		fields := make([]library.Field, 0, len(u.Fields))
		for _, f := range u.Fields {
			tid, err := l.resolveRef(nsID, f.Type)
			if err != nil {
				return fmt.Errorf("%s: union %q field %q: %w", path, u.Name, f.Name, err)
			}
			fields = append(fields, library.Field{Name: f.Name, Type: tid})
		}
		fns, err := l.convertFunctions(nsID, u.Functions)
		if err != nil {
			return fmt.Errorf("%s: union %q: %w", path, u.Name, err)
		}
		l.defineType(nsID, u.Name, library.MakeUnion(u.Name, fields, fns))
	}
	for _, c := range desc.Callbacks {
		sig, err := l.convertFunction(nsID, c)
		if err != nil {
			return fmt.Errorf("%s: callback %q: %w", path, c.Name, err)
		}
		l.defineType(nsID, c.Name, library.MakeCallback(sig))
	}
	for _, i := range desc.Interfaces {
		fns, err := l.convertFunctions(nsID, i.Functions)
		if err != nil {
			return fmt.Errorf("%s: interface %q: %w", path, i.Name, err)
		}
		l.defineType(nsID, i.Name, library.MakeInterface(i.Name, fns))
	}
	for _, c := range desc.Classes {
		fns, err := l.convertFunctions(nsID, c.Functions)
		if err != nil {
			return fmt.Errorf("%s: class %q: %w", path, c.Name, err)
		}
		l.defineType(nsID, c.Name, library.MakeClass(c.Name, fns))
	}
	for _, c := range desc.Constants {
		tid, err := l.resolveRef(nsID, c.Type)
		if err != nil {
			return fmt.Errorf("%s: constant %q: %w", path, c.Name, err)
		}
		l.lib.Namespace(nsID).AddConstant(library.Constant{Name: c.Name, Type: tid, Value: c.Value})
	}
	for _, f := range desc.Functions {
		fn, err := l.convertFunction(nsID, f)
		if err != nil {
			return fmt.Errorf("%s: function %q: %w", path, f.Name, err)
		}
		l.lib.Namespace(nsID).AddFunction(fn)
	}
	return nil
}

// defineType records a redefinition warning before the model's silent
// overwrite. The model always overwrites; surfacing duplicates is the
// loader's policy.
func (l *Loader) defineType(nsID library.NamespaceID, name string, typ library.Type) {
	ns := l.lib.Namespace(nsID)
	if id, ok := ns.FindType(name); ok && ns.TypeByID(id) != nil {
		l.bag.Warning(diag.LoadWarnRedefined, ns.Name+"."+name, "previous definition overwritten")
	}
	l.lib.AddType(nsID, name, typ)
}

// resolveRef resolves one textual type reference. Beyond plain and
// namespace-qualified names it accepts container syntax with already-known
// element types, e.g. "array(utf8)" or "GLib.HashTable(utf8, Gdk.Pixbuf)".
func (l *Loader) resolveRef(nsID library.NamespaceID, ref string) (library.TypeID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return library.TypeID{}, fmt.Errorf("empty type reference")
	}
	if open := strings.IndexByte(ref, '('); open >= 0 && strings.HasSuffix(ref, ")") {
		outer := strings.TrimSpace(ref[:open])
		args := splitTopLevel(ref[open+1 : len(ref)-1])
		inner := make([]library.TypeID, 0, len(args))
		for _, arg := range args {
			tid, err := l.resolveRef(nsID, arg)
			if err != nil {
				return library.TypeID{}, err
			}
			inner = append(inner, tid)
		}
		tid, ok := l.lib.SynthesizeContainer(outer, inner)
		if !ok {
			return library.TypeID{}, fmt.Errorf("unsupported container %q with %d element type(s)", outer, len(inner))
		}
		return tid, nil
	}
	return l.lib.ResolveType(nsID, ref)
}

// splitTopLevel splits comma-separated arguments, ignoring commas nested
// inside inner container syntax.
func splitTopLevel(s string) []string {
	var (
		args  []string
		depth int
		start int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
		case ',':
			if depth == 0 {
				args = append(args, s[start:i])
				start = i + 1
			}
		}
	}
	args = append(args, s[start:])
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args
}

func convertMembers(decls []memberDecl) []library.Member {
	if len(decls) == 0 {
		return nil
	}
	members := make([]library.Member, 0, len(decls))
	for _, d := range decls {
		members = append(members, library.Member{
			Name:        d.Name,
			CIdentifier: d.CIdentifier,
			Value:       d.Value,
		})
	}
	return members
}

func (l *Loader) convertFunctions(nsID library.NamespaceID, decls []functionDecl) ([]library.Function, error) {
	if len(decls) == 0 {
		return nil, nil
	}
	fns := make([]library.Function, 0, len(decls))
	for _, d := range decls {
		fn, err := l.convertFunction(nsID, d)
		if err != nil {
			return nil, err
		}
		fns = append(fns, fn)
	}
	return fns, nil
}

func (l *Loader) convertFunction(nsID library.NamespaceID, d functionDecl) (library.Function, error) {
	fn := library.Function{
		Name:        d.Name,
		CIdentifier: d.CIdentifier,
	}
	for _, p := range d.Parameters {
		param, err := l.convertParameter(nsID, p)
		if err != nil {
			return library.Function{}, fmt.Errorf("parameter %q: %w", p.Name, err)
		}
		fn.Parameters = append(fn.Parameters, param)
	}
	ret := paramDecl{Type: "none"}
	if d.Return != nil {
		ret = *d.Return
	}
	retParam, err := l.convertParameter(nsID, ret)
	if err != nil {
		return library.Function{}, fmt.Errorf("return value: %w", err)
	}
	fn.Return = retParam
	return fn, nil
}

func (l *Loader) convertParameter(nsID library.NamespaceID, p paramDecl) (library.Parameter, error) {
	tid, err := l.resolveRef(nsID, p.Type)
	if err != nil {
		return library.Parameter{}, err
	}
	transfer := library.TransferNone
	if p.Transfer != "" {
		t, ok := library.TransferByName(p.Transfer)
		if !ok {
			return library.Parameter{}, fmt.Errorf("unknown transfer mode %q", p.Transfer)
		}
		transfer = t
	}
	return library.Parameter{Name: p.Name, Type: tid, Transfer: transfer}, nil
}
