package rcscript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Assignment
		wantOK bool
	}{
		{
			name:   "basic",
			line:   "command=/usr/sbin/food",
			want:   Assignment{Form: FormBasic, Name: "command", Value: "/usr/sbin/food"},
			wantOK: true,
		},
		{
			name:   "basic quoted",
			line:   `desc="Foo daemon"`,
			want:   Assignment{Form: FormBasic, Name: "desc", Value: `"Foo daemon"`},
			wantOK: true,
		},
		{
			name:   "basic empty",
			line:   "foo_flags=",
			want:   Assignment{Form: FormBasic, Name: "foo_flags", Value: ""},
			wantOK: true,
		},
		{
			name:   "longhand colon",
			line:   "foo_enable=${foo_enable:-NO}",
			want:   Assignment{Form: FormLonghand, Name: "foo_enable", Source: "foo_enable", Value: "NO", Clobber: true},
			wantOK: true,
		},
		{
			name:   "longhand quoted",
			line:   `pidfile="${foo_pidfile-/var/run/foo.pid}"`,
			want:   Assignment{Form: FormLonghand, Name: "pidfile", Source: "foo_pidfile", Value: "/var/run/foo.pid"},
			wantOK: true,
		},
		{
			name:   "longhand nested expansion",
			line:   "foo_pidfile=${foo_pidfile:-${foo_rundir}/foo.pid}",
			want:   Assignment{Form: FormLonghand, Name: "foo_pidfile", Source: "foo_pidfile", Value: "${foo_rundir}/foo.pid", Clobber: true},
			wantOK: true,
		},
		{
			name:   "longhand with trailing text is basic",
			line:   "foo_args=${foo_flags:--d} -v",
			want:   Assignment{Form: FormBasic, Name: "foo_args", Value: "${foo_flags:--d} -v"},
			wantOK: true,
		},
		{
			name:   "shorthand colon",
			line:   ": ${foo_enable:=NO}",
			want:   Assignment{Form: FormShorthand, Name: "foo_enable", Value: "NO", Clobber: true},
			wantOK: true,
		},
		{
			name:   "shorthand plain",
			line:   ": ${foo_flags=-d}",
			want:   Assignment{Form: FormShorthand, Name: "foo_flags", Value: "-d"},
			wantOK: true,
		},
		{
			name:   "shorthand quoted brace",
			line:   `: ${foo_match:="}"}`,
			want:   Assignment{Form: FormShorthand, Name: "foo_match", Value: `"}"`, Clobber: true},
			wantOK: true,
		},
		{
			name:   "shorthand escaped quote",
			line:   `: ${foo_msg:="say \"}\""}`,
			want:   Assignment{Form: FormShorthand, Name: "foo_msg", Value: `"say \"}\""`, Clobber: true},
			wantOK: true,
		},
		{
			name:   "shorthand nested expansion",
			line:   ": ${foo_conf=${foo_dir}/foo.conf}",
			want:   Assignment{Form: FormShorthand, Name: "foo_conf", Value: "${foo_dir}/foo.conf"},
			wantOK: true,
		},
		{
			name:   "eval",
			line:   `eval "${name}_env=x"`,
			want:   Assignment{Form: FormEval, Name: `eval "${name}_env=x"`, Value: `eval "${name}_env=x"`},
			wantOK: true,
		},
		{name: "evaluate is not eval", line: "evaluate foo"},
		{name: "command", line: "mkdir -p /var/run/foo"},
		{name: "comment with equals", line: "# foo=bar"},
		{name: "unterminated shorthand", line: ": ${foo_enable:=NO"},
		{name: "statement", line: ". /etc/rc.subr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAssignment(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestQuoting(t *testing.T) {
	tests := []struct {
		value     string
		quoted    bool
		pointless bool
		empty     bool
	}{
		{value: `"foo"`, quoted: true, pointless: true},
		{value: `'foo'`, quoted: true, pointless: true},
		{value: `"$foo bar"`, quoted: true},
		{value: `"a;b"`, quoted: true},
		{value: `""`, quoted: true, empty: true},
		{value: `" "`, quoted: true, empty: true},
		{value: `"`, empty: false},
		{value: `"foo'`},
		{value: `foo`},
		{value: ``, empty: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.quoted, Quoted(tt.value), "Quoted")
			assert.Equal(t, tt.pointless, PointlessQuoted(tt.value), "PointlessQuoted")
			assert.Equal(t, tt.empty, Empty(tt.value), "Empty")
		})
	}
}
