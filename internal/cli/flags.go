package cli

import "utb/internal/config"

// Flags holds command-line flags.
type Flags struct {
	Verbose            bool
	NoColor            bool
	Interactive        bool
	NameFilter         string
	NoAggregate        bool
	NoFilterTracebacks bool
}

// ToConfigFlags converts CLI flags to config flags.
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		Verbose:            f.Verbose,
		NoColor:            f.NoColor,
		Interactive:        f.Interactive,
		NameFilter:         f.NameFilter,
		NoAggregate:        f.NoAggregate,
		NoFilterTracebacks: f.NoFilterTracebacks,
	}
}
