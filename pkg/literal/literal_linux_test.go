//go:build linux

package literal

import (
	"strings"
	"testing"
	"unsafe"

	"github.com/prometheus/procfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const greeting = "the quick brown fox jumps over the lazy dog"

func TestStaticConstant(t *testing.T) {
	assert.True(t, Static(unsafe.Pointer(unsafe.StringData(greeting))))

	built := strings.Repeat("ab", 20)
	assert.False(t, Static(unsafe.Pointer(unsafe.StringData(built))))
}

func mapping(lo, hi uintptr, perms string, path string) *procfs.ProcMap {
	return &procfs.ProcMap{
		StartAddr: lo,
		EndAddr:   hi,
		Perms: &procfs.ProcMapPermissions{
			Read:    perms[0] == 'r',
			Write:   perms[1] == 'w',
			Execute: perms[2] == 'x',
			Private: perms[3] == 'p',
		},
		Pathname: path,
	}
}

func TestSelectRegions(t *testing.T) {
	maps := []*procfs.ProcMap{
		mapping(0x651000, 0x652000, "r--p", "/usr/bin/demo"),
		mapping(0x400000, 0x452000, "r-xp", "/usr/bin/demo"),
		mapping(0x652000, 0x655000, "rw-p", "/usr/bin/demo"),
		mapping(0x700000, 0x701000, "---p", "/usr/bin/demo"),
		mapping(0xe03000, 0xe24000, "rw-p", "[heap]"),
		mapping(0x7f1a2c000000, 0x7f1a2c021000, "r--p", "/usr/lib/libc.so.6"),
		mapping(0x800000, 0x800000, "r--p", "/usr/bin/demo"),
		nil,
		{StartAddr: 0x900000, EndAddr: 0x901000, Pathname: "/usr/bin/demo"},
	}
	rs := selectRegions(maps, "/usr/bin/demo")
	require.Equal(t, []region{
		{lo: 0x400000, hi: 0x452000},
		{lo: 0x651000, hi: 0x652000},
	}, rs)
	assert.True(t, contains(rs, 0x651800))
	assert.False(t, contains(rs, 0xe03000))

	assert.Empty(t, selectRegions(maps, "/opt/other"))
}

func TestSelfMapsCoverExecutable(t *testing.T) {
	rs, err := loadRegions()
	require.NoError(t, err)
	assert.NotEmpty(t, rs)
	for i := 1; i < len(rs); i++ {
		assert.LessOrEqual(t, rs[i-1].lo, rs[i].lo)
	}
}
