package diagnostic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"overload-resolver/internal/types"
)

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.Equal(t, DiagnosticError, p.Severity(NoApplicableMethod))
	assert.Equal(t, DiagnosticIgnore, p.Severity(BoxingPerformed))
	assert.Equal(t, DiagnosticIgnore, Policy{}.Severity(UnboxingPerformed))
	assert.Equal(t, DiagnosticError, Policy{}.Severity(AmbiguousMethod))
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(map[string]string{"boxing": "warning", "unboxing": "Info"})
	require.NoError(t, err)
	assert.Equal(t, DiagnosticWarning, p.Severity(BoxingPerformed))
	assert.Equal(t, DiagnosticInfo, p.Severity(UnboxingPerformed))

	_, err = NewPolicy(map[string]string{"ambiguous_method": "warning"})
	require.Error(t, err)

	_, err = NewPolicy(map[string]string{"boxing": "loud"})
	require.Error(t, err)

	_, err = NewPolicy(map[string]string{"autoboxing": "warning"})
	require.Error(t, err)
}

func TestPolicy_Apply(t *testing.T) {
	p, err := NewPolicy(map[string]string{"boxing": "warning"})
	require.NoError(t, err)

	intT, integerT := types.MustParse("int"), types.MustParse("Integer")

	var d Diagnostics
	p.Apply(&d,
		Finding{Kind: BoxingPerformed, Site: "c1", From: intT, To: integerT},
		Finding{Kind: UnboxingPerformed, Site: "c1", From: integerT, To: intT},
	)

	require.Len(t, d.Warnings, 1)
	assert.Empty(t, d.Infos)
	assert.Equal(t, "c1: [boxing] The expression of type int is boxed into Integer", d.Warnings[0].String())
	assert.True(t, d.IsValid())
}

func TestPolicy_Report(t *testing.T) {
	p := DefaultPolicy()

	var d Diagnostics
	p.Report(&d, "c1", NewError(Finding{Kind: NoApplicableMethod, Name: "foo", Receiver: "Y", Suggestions: []string{"fooBar"}}))
	p.Report(&d, "c2", errors.New("boom"))
	p.Report(&d, "c3", nil)

	require.Len(t, d.Errors, 2)
	assert.Equal(t, "[no_applicable_method] The method foo() is undefined for the type Y (did you mean fooBar?)", d.Errors[0].String())
	assert.Equal(t, "c2: [resolve_failed] boom", d.Errors[1].String())
	assert.Equal(t, 2, d.Len())
	assert.Error(t, d.Error())
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []DiagnosticSeverity{DiagnosticIgnore, DiagnosticInfo, DiagnosticWarning, DiagnosticError} {
		got, err := ParseSeverity(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}
