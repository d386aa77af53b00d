//go:build !unix

package arena

import "errors"

var errNoMmap = errors.New("arena: anonymous mappings are not supported on this platform")

func mapRegion(int) ([]byte, func([]byte) error, error) {
	return nil, nil, errNoMmap
}
