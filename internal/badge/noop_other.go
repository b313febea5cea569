//go:build !windows && !darwin

package badge

func newPlatformRenderer(opts Options) Renderer {
	opts.Logger.Debug().Msg("No badge support on this platform")
	return noopRenderer{}
}
