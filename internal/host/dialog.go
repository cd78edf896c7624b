package host

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// selectConfigFile asks for a TOML config. A cancelled dialog returns "".
func selectConfigFile() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Particle Config"),
		zenity.FileFilters{{
			Name:     "TOML config",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", errors.Wrap(err, "select config")
	}
	return path, nil
}
