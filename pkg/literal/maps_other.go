//go:build !linux

package literal

func loadRegions() ([]region, error) {
	return nil, ErrUnsupported
}
