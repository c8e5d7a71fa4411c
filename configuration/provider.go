package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/spf13/pflag"

	"github.com/iotaledger/bstmap/ierrors"
)

// flagProvider is a koanf.Provider that reads a pflag.FlagSet with lower-cased keys.
//
// Flags that were not changed on the command line only contribute their default value if the key is not known to ko
// yet, so a config file loaded before the flags keeps precedence over flag defaults.
type flagProvider struct {
	delim   string
	flagSet *pflag.FlagSet
	ko      *koanf.Koanf
}

func lowerPosflagProvider(flagSet *pflag.FlagSet, delim string, ko *koanf.Koanf) *flagProvider {
	return &flagProvider{
		delim:   delim,
		flagSet: flagSet,
		ko:      ko,
	}
}

// Read returns the nested config map of all flags.
func (p *flagProvider) Read() (map[string]interface{}, error) {
	flat := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		flat[key] = posflag.FlagVal(p.flagSet, f)
	})

	return maps.Unflatten(flat, p.delim), nil
}

// ReadBytes is not supported.
func (p *flagProvider) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("flag provider does not support ReadBytes")
}

// Watch is not supported.
func (p *flagProvider) Watch(func(event interface{}, err error)) error {
	return ierrors.New("flag provider does not support Watch")
}
