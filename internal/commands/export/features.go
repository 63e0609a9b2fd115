package exportcmd

// FeatureGates controls whether individual export commands execute.
// A nil gate means the feature is enabled.
type FeatureGates struct {
	// Preview gates the preview command, which renders without writing
	// to disk or the ledger.
	Preview func() bool
	// Persistence gates commands that write to the output directory and
	// ledger (page export, batch export, manifest, sync).
	Persistence func() bool
}

func (g FeatureGates) previewEnabled() bool {
	if g.Preview == nil {
		return true
	}
	return g.Preview()
}

func (g FeatureGates) persistenceEnabled() bool {
	if g.Persistence == nil {
		return true
	}
	return g.Persistence()
}
