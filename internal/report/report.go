package report

import (
	"fmt"
	"strings"

	"overload-resolver/internal/config"
	"overload-resolver/internal/convert"
	"overload-resolver/internal/diagnostic"
	"overload-resolver/internal/scenario"
)

// Report is the serializable result of running one scenario.
type Report struct {
	Scenario    string                 `yaml:"scenario"              msgpack:"scenario"`
	Source      string                 `yaml:"source"                msgpack:"source"`
	Results     []Result               `yaml:"results,omitempty"     msgpack:"results,omitempty"`
	Diagnostics diagnostic.Diagnostics `yaml:"diagnostics,omitempty" msgpack:"diagnostics,omitempty"`
}

// Result is one call or conditional.
type Result struct {
	Kind       string `yaml:"kind"                 msgpack:"kind"`
	Site       string `yaml:"site,omitempty"       msgpack:"site,omitempty"`
	Expression string `yaml:"expression,omitempty" msgpack:"expression,omitempty"`
	// Got is the selected signature, the result type, or an error code.
	Got    string `yaml:"got"              msgpack:"got"`
	Expect string `yaml:"expect,omitempty" msgpack:"expect,omitempty"`
	Met    bool   `yaml:"met"              msgpack:"met"`
	// Phase is set for resolved calls: strict, loose or varargs.
	Phase       string   `yaml:"phase,omitempty"       msgpack:"phase,omitempty"`
	Conversions []string `yaml:"conversions,omitempty" msgpack:"conversions,omitempty"`
	Emitted     []string `yaml:"emitted,omitempty"     msgpack:"emitted,omitempty"`
	Constant    string   `yaml:"constant,omitempty"    msgpack:"constant,omitempty"`
	Error       string   `yaml:"error,omitempty"       msgpack:"error,omitempty"`
}

// Build converts outcomes to a Report.
func Build(name string, cfg config.Config, outcomes []scenario.Outcome, diags diagnostic.Diagnostics) Report {
	r := Report{
		Scenario:    name,
		Source:      cfg.SourceLevel.String(),
		Results:     make([]Result, 0, len(outcomes)),
		Diagnostics: diags,
	}

	for _, o := range outcomes {
		r.Results = append(r.Results, buildResult(o))
	}

	return r
}

func buildResult(o scenario.Outcome) Result {
	res := Result{
		Kind:       string(o.Kind),
		Site:       o.Site,
		Expression: o.Expression,
		Got:        o.Got(),
		Expect:     o.Expect,
		Met:        o.Met(),
		Emitted:    o.Emitted,
	}

	if o.Err != nil {
		res.Error = o.Err.Error()
	}

	switch {
	case o.Resolution != nil:
		res.Phase = o.Resolution.Phase.String()
		res.Conversions = kindNames(o.Resolution.Conversions...)
	case o.Conditional != nil:
		res.Conversions = kindNames(o.Conditional.Left, o.Conditional.Right)
		if c := o.Conditional.Constant; c != nil {
			res.Constant = c.String()
		}
	}

	return res
}

func kindNames(kinds ...convert.ConversionKind) []string {
	if len(kinds) == 0 {
		return nil
	}

	res := make([]string, len(kinds))
	for i, k := range kinds {
		res[i] = k.String()
	}

	return res
}

// Failed counts results whose expectation was not met.
func (r Report) Failed() int {
	n := 0

	for _, res := range r.Results {
		if !res.Met {
			n++
		}
	}

	return n
}

// Format is an output format.
type Format string

const (
	FormatText    Format = "text"
	FormatYAML    Format = "yaml"
	FormatMsgpack Format = "msgpack"
)

// ParseFormat reads a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatYAML, FormatMsgpack:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (text|yaml|msgpack)", s)
	}
}
