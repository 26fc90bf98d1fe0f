package visatest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMatchExpression(t *testing.T) {
	tests := []struct {
		name    string
		expr    string
		input   string
		matches bool
	}{
		{name: "question matches one char", expr: "GPIB?::INSTR", input: "GPIB1::INSTR", matches: true},
		{name: "question needs a char", expr: "GPIB?::INSTR", input: "GPIB::INSTR", matches: false},
		{name: "question star matches any tail", expr: "?*INSTR", input: "GPIB0::2::INSTR", matches: true},
		{name: "anchored at end", expr: "?*INSTR", input: "GPIB0::2::INSTR::extra", matches: false},
		{name: "case insensitive", expr: "gpib?*", input: "GPIB0::5::INSTR", matches: true},
		{name: "set", expr: "GPIB[0-9]::INSTR", input: "GPIB7::INSTR", matches: true},
		{name: "set excludes", expr: "GPIB[0-9]::INSTR", input: "GPIBX::INSTR", matches: false},
		{name: "negated set", expr: "GPIB[^0]::INSTR", input: "GPIB1::INSTR", matches: true},
		{name: "negated set rejects", expr: "GPIB[^0]::INSTR", input: "GPIB0::INSTR", matches: false},
		{name: "alternation", expr: "GPIB?*|TCPIP?*", input: "TCPIP0::1.2.3.4::5025::SOCKET", matches: true},
		{name: "group with plus", expr: "(GPIB)+0::INSTR", input: "GPIB0::INSTR", matches: true},
		{name: "escaped question is literal", expr: "ASRL\\?", input: "ASRL?", matches: true},
		{name: "escaped question not wildcard", expr: "ASRL\\?", input: "ASRL1", matches: false},
		{name: "dot is literal", expr: "TCPIP0::10.0.0.1::5025::SOCKET", input: "TCPIP0::10x0y0z1::5025::SOCKET", matches: false},
		{name: "exact name", expr: "TCPIP0::10.0.0.1::5025::SOCKET", input: "TCPIP0::10.0.0.1::5025::SOCKET", matches: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := compileMatchExpression(tt.expr)
			require.NoError(t, err)
			assert.Equal(t, tt.matches, re.MatchString(tt.input))
		})
	}
}

func TestCompileMatchExpression_Invalid(t *testing.T) {
	tests := []struct {
		name string
		expr string
	}{
		{name: "trailing backslash", expr: "GPIB\\"},
		{name: "unterminated set", expr: "GPIB[0-9"},
		{name: "unbalanced group", expr: "(GPIB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compileMatchExpression(tt.expr)
			assert.Error(t, err)
		})
	}
}
