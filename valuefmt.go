package rt

import (
	"fmt"
	"strings"

	"github.com/rivelang/corert/ascii"
)

// valuePrinter renders a Value tree for diagnostics, adapted from the
// compiler's own tree printer: an indent stack plus a strings.Builder,
// specialized here to the runtime's heap object graph instead of an
// AST.
type valuePrinter struct {
	padStr []string
	output strings.Builder
	color  bool
}

func newValuePrinter(color bool) *valuePrinter {
	return &valuePrinter{color: color}
}

func (p *valuePrinter) indent(s string)   { p.padStr = append(p.padStr, s) }
func (p *valuePrinter) unindent()         { p.padStr = p.padStr[:len(p.padStr)-1] }
func (p *valuePrinter) padding()          { p.output.WriteString(strings.Join(p.padStr, "")) }
func (p *valuePrinter) write(s string)    { p.output.WriteString(s) }
func (p *valuePrinter) writel(s string)   { p.write(s); p.output.WriteByte('\n') }
func (p *valuePrinter) pwrite(s string)   { p.padding(); p.write(s) }
func (p *valuePrinter) pwritel(s string)  { p.pwrite(s); p.output.WriteByte('\n') }

func (p *valuePrinter) paint(color, format string, args ...any) string {
	if !p.color {
		return fmt.Sprintf(format, args...)
	}
	return ascii.Color(color, format, args...)
}

// DumpValue renders v as an indented tree for debugging. Array
// elements, a ref-cell's value and union payloads are dumped
// recursively; maps, lambdas and class objects print a one-line
// summary without their contents. rt supplies the class registry used
// to name class objects; color enables ANSI styling using the ascii
// package's default theme.
func DumpValue(rt *Runtime, v Value, color bool) string {
	p := newValuePrinter(color)
	p.dump(rt, v)
	return p.output.String()
}

func (p *valuePrinter) dump(rt *Runtime, v Value) {
	theme := ascii.DefaultTheme
	switch v.Tag {
	case TagNull:
		p.pwritel(p.paint(theme.Literal, "null"))
	case TagBool:
		p.pwritel(p.paint(theme.Literal, "%t", v.AsBool()))
	case TagI32:
		p.pwritel(p.paint(theme.Literal, "%d", v.AsI32()))
	case TagF32:
		p.pwritel(p.paint(theme.Literal, "%g", v.AsF32()))
	case TagChar:
		p.pwritel(p.paint(theme.Literal, "%q", v.AsChar()))
	case TagSmallUnion:
		p.pwritel(p.paint(theme.Operand, "union#%d", v.I32))
	case TagString:
		s := v.Obj.(*String)
		mode := "narrow"
		if s.IsWide() {
			mode = "wide"
		}
		p.pwritel(p.paint(theme.Span, "string(%s, len=%d) %q", mode, s.Length(), AsUTF8(s)))
	case TagSymbol:
		s := v.Obj.(*String)
		p.pwritel(p.paint(theme.Label, "symbol %q", AsUTF8(s)))
	case TagBoxedI64:
		b := v.Obj.(*BoxedI64)
		p.pwritel(p.paint(theme.Literal, "i64(%d)", b.Value()))
	case TagArray:
		a := v.Obj.(*Array)
		p.pwritel(p.paint(theme.Operator, "array[%d]", a.Length()))
		p.indent("  ")
		for i := int32(0); i < a.Length(); i++ {
			p.dump(rt, ArrayGet(a, i))
		}
		p.unindent()
	case TagMap:
		m := v.Obj.(*Map)
		mode := "small"
		if m.IsLarge() {
			mode = "large"
		}
		p.pwritel(p.paint(theme.Operator, "map(%s, count=%d)", mode, m.Count()))
	case TagRefCell:
		c := v.Obj.(*RefCell)
		p.pwritel(p.paint(theme.Accent, "ref-cell"))
		p.indent("  ")
		p.dump(rt, c.Get())
		p.unindent()
	case TagLambda:
		l := v.Obj.(*Lambda)
		p.pwritel(p.paint(theme.Accent, "lambda(captures=%d)", len(l.captures)))
	case TagUnionObject:
		u := v.Obj.(*UnionObject)
		p.pwritel(p.paint(theme.Operand, "union#%d[%d]", u.Discriminant(), len(u.payload)))
		p.indent("  ")
		for _, payload := range u.payload {
			p.dump(rt, payload)
		}
		p.unindent()
	case TagClassObject:
		o := v.Obj.(*ClassObject)
		name := rt.classes.descriptor(o.ClassID).Name
		p.pwritel(p.paint(theme.Label, "%s#%d", name, o.ClassID))
	default:
		p.pwritel(p.paint(theme.Error, "<unknown tag %s>", v.Tag))
	}
}
