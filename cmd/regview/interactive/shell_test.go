package interactive

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/regview/regview-go/pkg/inspect"
	"github.com/regview/regview-go/pkg/loader"
	"github.com/regview/regview-go/pkg/session"
)

const testDesign = `
schema: {name: register-description, version: 1}
root: {display_name: Shell Test, version: "1.0", children: [blk]}
elements:
  blk:
    id: blk
    name: blk
    type: blk
    doc: Control block
    offset: 0x40
    children: [blk.ctrl, blk.data]
  blk.ctrl:
    id: blk.ctrl
    name: ctrl
    type: reg
    offset: 0x0
    fields:
      - name: cmd
        lsb: 28
        nbits: 4
        access: rw
        reset: 0x5
        doc: Command to run
        enum:
          - {name: START, value: 0x5}
          - {name: STOP, value: 0xa}
      - {name: mode, lsb: 16, nbits: 12, access: rw, reset: {value: 0x0, names: [RS1]}}
      - {name: low, lsb: 0, nbits: 16, access: ro, reset: {value: 0xA, names: [RS1, RS2]}}
  blk.data:
    id: blk.data
    name: data
    type: reg
    offset: 0x4
    fields:
      - {name: hi, lsb: 16, nbits: 16, access: rw, reset: 0}
      - {name: lo, lsb: 0, nbits: 16, access: rw, reset: 0}
`

func newShell(t *testing.T) (*Shell, *bytes.Buffer) {
	t.Helper()
	d, err := loader.Load(context.Background(), []byte(testDesign), loader.Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	sess := session.New(d, session.DefaultConfig())
	return NewShell(sess, inspect.NewFormatter(), &out), &out
}

// run executes each line and returns the output of the last one.
func run(t *testing.T, sh *Shell, out *bytes.Buffer, lines ...string) string {
	t.Helper()
	for _, line := range lines {
		out.Reset()
		assert.False(t, sh.Execute(line), "line %q should not quit", line)
	}
	return out.String()
}

func TestShellCd(t *testing.T) {
	sh, out := newShell(t)

	run(t, sh, out, "cd /blk/ctrl")
	assert.Equal(t, "blk.ctrl", sh.Cwd())

	run(t, sh, out, "cd ..")
	assert.Equal(t, "blk", sh.Cwd())

	run(t, sh, out, "cd data")
	assert.Equal(t, "blk.data", sh.Cwd())

	assert.Equal(t, "/blk/data\n", run(t, sh, out, "pwd"))

	run(t, sh, out, "cd")
	assert.Equal(t, "", sh.Cwd())
	assert.False(t, sh.Failed())
}

func TestShellCdErrors(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "cd /nope")
	assert.Contains(t, got, "Error:")
	assert.Equal(t, "", sh.Cwd())
	assert.True(t, sh.Failed())

	got = run(t, sh, out, "cd blk.ctrl:cmd")
	assert.Contains(t, got, "cannot cd into field")
}

func TestShellList(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "ls /blk")
	assert.Contains(t, got, "ctrl [reg]")
	assert.Contains(t, got, "data [reg]")

	got = run(t, sh, out, "ls blk.ctrl")
	assert.Contains(t, got, ":cmd")
	assert.Contains(t, got, "[31:28]")
}

func TestShellSetRegister(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "cd blk.ctrl", "set 0x12345678")
	assert.Equal(t, "blk.ctrl = 0x12345678\n", got)

	got = run(t, sh, out, "field cmd STOP")
	assert.Equal(t, "blk.ctrl = 0xA2345678\n", got)

	got = run(t, sh, out, "field cmd")
	assert.Contains(t, got, "value: STOP (0xA)")
	assert.Contains(t, got, "START = 0x5")
	assert.False(t, sh.Failed())
}

func TestShellSetByPath(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "set /blk/data 0xCAFEF00D")
	assert.Equal(t, "blk.data = 0xCAFEF00D\n", got)

	got = run(t, sh, out, "set blk.data:lo 0x1234")
	assert.Equal(t, "blk.data = 0xCAFE1234\n", got)
}

func TestShellSetAtRoot(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "set 0x1")
	assert.Contains(t, got, "cd to a register first")
	assert.True(t, sh.Failed())
}

func TestShellSetRejectsBadValue(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "cd blk.ctrl", "set 0xZZ")
	assert.Contains(t, got, "Error:")

	got = run(t, sh, out, "show")
	assert.Contains(t, got, "value:  0x5???????")
}

func TestShellResets(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "cd blk.ctrl", "resets")
	assert.Equal(t, "* Default\n  RS1\n  RS2\n", got)

	got = run(t, sh, out, "reset RS1")
	assert.Equal(t, "blk.ctrl = 0x?000000A\n", got)

	got = run(t, sh, out, "resets")
	assert.Equal(t, "  Default\n* RS1\n  RS2\n", got)

	run(t, sh, out, "set 0xFFFFFFFF")
	got = run(t, sh, out, "reset")
	assert.Equal(t, "blk.ctrl = 0x?000000A\n", got)

	got = run(t, sh, out, "reset RS9")
	assert.Contains(t, got, "unknown reset state")
}

func TestShellBaseAndSwap(t *testing.T) {
	sh, out := newShell(t)

	assert.Equal(t, "base: hexadecimal\n", run(t, sh, out, "base"))
	assert.Equal(t, "base: decimal\n", run(t, sh, out, "base dec"))

	got := run(t, sh, out, "set blk.data 42")
	assert.Equal(t, "blk.data = 42\n", got)

	assert.Equal(t, "swap: byte\n", run(t, sh, out, "swap byte"))
	got = run(t, sh, out, "show blk.data")
	assert.Contains(t, got, "swap:   byte")

	got = run(t, sh, out, "base octal")
	assert.Contains(t, got, "Error:")
	got = run(t, sh, out, "swap dword")
	assert.Contains(t, got, "Error:")
}

func TestShellShow(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "show /blk/ctrl")
	assert.Contains(t, got, "blk.ctrl @ ")
	assert.Contains(t, got, "resets: Default, RS1, RS2")

	got = run(t, sh, out, "show blk")
	assert.Contains(t, got, "[blk]")
	assert.Contains(t, got, "Control block")
	assert.Contains(t, got, "ctrl [reg]")

	got = run(t, sh, out, "show /")
	assert.Contains(t, got, "Shell Test")
}

func TestShellFind(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "find ctrl")
	assert.Contains(t, got, "/blk/ctrl")

	got = run(t, sh, out, "find command")
	assert.Contains(t, got, "/blk/ctrl:cmd")

	got = run(t, sh, out, "find zzz")
	assert.Equal(t, "No matches.\n", got)
}

func TestShellUnknownAndQuit(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "frobnicate")
	assert.Equal(t, "Unknown command: frobnicate (type 'help' for commands)\n", got)

	assert.True(t, sh.Execute("quit"))
	assert.True(t, sh.Execute("exit"))
	assert.False(t, sh.Execute("   "))
}

func TestShellHelp(t *testing.T) {
	sh, out := newShell(t)

	got := run(t, sh, out, "help")
	assert.Contains(t, got, "Commands:")
	assert.Contains(t, got, "reset [name]")
}
