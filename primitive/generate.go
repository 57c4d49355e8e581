package primitive

import (
	"bytes"
	"fmt"
	"text/template"
)

// Generate renders the expression a code generator emits for one conversion
// step applied to src. Identity casts return src unchanged; steps without a
// template (boolean casts, cross-kind boxing) return false.
func Generate(step StepEnum, from, to KindEnum, src string) (string, bool) {
	if step == StepCast && from == to && from.IsValid() {
		return src, true
	}

	line, ok := templates[templateKey{step, from, to}]
	if !ok {
		return "", false
	}

	tmpl, err := template.New("step").Parse(line)
	if err != nil {
		panic(err)
	}

	wrapper, _ := Box(to)

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"src":     src,
		"srcType": from.Name(),
		"dstType": to.Name(),
		"wrapper": wrapper.String(),
	})
	if err != nil {
		panic(fmt.Errorf("step %d %s -> %s: %w", step, from.Name(), to.Name(), err))
	}

	return buf.String(), true
}
