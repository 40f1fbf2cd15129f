// Package levels embeds the shipped level files.
package levels

import (
	"embed"

	"github.com/automoto/celestial-survivor/shared/leveldata"
)

//go:embed *.yaml *.tmx
var LevelsFS embed.FS

// Load returns the embedded level tables in play order.
func Load() ([]leveldata.Table, error) {
	return leveldata.LoadAll(LevelsFS, ".")
}
