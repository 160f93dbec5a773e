package knotconfigs

import (
	"slices"

	"github.com/reusee/knot/configs"
	"github.com/reusee/knot/tangles"
)

// Preludes runs prelude texts from the widest scope to the narrowest, so a
// local config overrides variables set by a system one.
func (Module) Preludes(
	loader configs.Loader,
) (ret tangles.Preludes) {
	for value, err := range loader.IterCueValues("prelude") {
		if err != nil {
			panic(err)
		}
		text, err := value.String()
		if err != nil {
			panic(err)
		}
		name := value.Pos().Filename()
		if name == "" {
			name = "prelude"
		}
		ret = append(ret, tangles.NewSource(name, text))
	}
	slices.Reverse(ret)
	return
}
