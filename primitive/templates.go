package primitive

// StepEnum is a single primitive-level operation a code generator has to
// emit for an argument or operand.
type StepEnum int

const (
	_ StepEnum = iota

	StepCast  // primitive widening or narrowing cast
	StepBox   // primitive -> wrapper
	StepUnbox // wrapper -> primitive
)

type templateKey struct {
	Step     StepEnum
	From, To KindEnum
}

var (
	templates map[templateKey]string
)

func init() {
	templates = map[templateKey]string{}

	// StepCast: widening casts are implicit in source but explicit for the
	// emitter, narrowing casts are always explicit
	for fromKind := KindEnum(1); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsNumeric() {
			continue
		}

		for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsNumeric() || fromKind == toKind {
				continue
			}

			templates[templateKey{StepCast, fromKind, toKind}] = "({{.dstType}}) {{.src}}"
		}
	}

	// StepBox / StepUnbox: exactly one template per boxing pair
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		templates[templateKey{StepBox, kind, kind}] = "{{.wrapper}}.valueOf({{.src}})"
		templates[templateKey{StepUnbox, kind, kind}] = "{{.src}}.{{.dstType}}Value()"
	}
}
