//go:build linux

package literal

import (
	"os"
	"sort"

	"github.com/pkg/errors"
	"github.com/prometheus/procfs"
)

func loadRegions() ([]region, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, errors.Wrap(err, "literal: locating executable")
	}
	self, err := procfs.Self()
	if err != nil {
		return nil, errors.Wrap(err, "literal: opening /proc")
	}
	maps, err := self.ProcMaps()
	if err != nil {
		return nil, errors.Wrap(err, "literal: reading memory map")
	}
	return selectRegions(maps, exe), nil
}

// selectRegions keeps the readable, non-writable mappings backed by the file
// exe, sorted by address.
func selectRegions(maps []*procfs.ProcMap, exe string) []region {
	var rs []region
	for _, m := range maps {
		if m == nil || m.Perms == nil || m.Pathname != exe {
			continue
		}
		if !m.Perms.Read || m.Perms.Write || m.EndAddr <= m.StartAddr {
			continue
		}
		rs = append(rs, region{lo: m.StartAddr, hi: m.EndAddr})
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].lo < rs[j].lo })
	return rs
}
