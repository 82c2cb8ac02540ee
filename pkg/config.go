package relcut

// Config is the immutable per-repository configuration, resolved once per
// invocation and passed into every component. There are no mutable globals.
type Config struct {
	// TrunkBranch is the name of the long-lived integration branch.
	TrunkBranch string
	// ReleasePrefix prefixes release branch names ("release/" yields
	// "release/2.7").
	ReleasePrefix string
	// TrunkPostfix decorates trunk-resident versions for display and hook
	// invocation, e.g. a pre-release marker.
	TrunkPostfix string
	// ReleasePostfix decorates release-branch-resident versions.
	ReleasePostfix string
	// RecordFile is the version record path, relative to the repository
	// root unless absolute.
	RecordFile string
	// HookPath is the optional executable invoked with (version, postfix)
	// after version computation. Empty disables the hook.
	HookPath string
	// InitialVersion seeds the record on first use.
	InitialVersion string
}

// DefaultConfig returns the hard-coded fallbacks.
func DefaultConfig() Config {
	return Config{
		TrunkBranch:    "main",
		ReleasePrefix:  "release/",
		TrunkPostfix:   "-dev",
		ReleasePostfix: "",
		RecordFile:     "version.properties",
		HookPath:       "",
		InitialVersion: "0.1.0",
	}
}

// Repository-scoped git config keys.
const (
	keyTrunk          = "relcut.trunk"
	keyReleasePrefix  = "relcut.releaseprefix"
	keyTrunkPostfix   = "relcut.trunkpostfix"
	keyReleasePostfix = "relcut.releasepostfix"
	keyRecordFile     = "relcut.recordfile"
	keyHook           = "relcut.hook"
	keyInitialVersion = "relcut.initialversion"
)

// LoadConfig resolves configuration for one repository: repository-scoped
// git config keys overlaid on DefaultConfig. Read failures fall back to the
// defaults for the affected key.
func LoadConfig(g Git) Config {
	cfg := DefaultConfig()
	set := func(key string, dst *string) {
		if v, err := g.ConfigGet(key); err == nil && v != "" {
			*dst = v
		}
	}
	set(keyTrunk, &cfg.TrunkBranch)
	set(keyReleasePrefix, &cfg.ReleasePrefix)
	set(keyTrunkPostfix, &cfg.TrunkPostfix)
	set(keyReleasePostfix, &cfg.ReleasePostfix)
	set(keyRecordFile, &cfg.RecordFile)
	set(keyHook, &cfg.HookPath)
	set(keyInitialVersion, &cfg.InitialVersion)
	return cfg
}
