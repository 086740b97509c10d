// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride redirects config-directory resolution, letting tests
// point ConfigDir at a temp dir. Needed because os.UserHomeDir() does not
// reliably honor the HOME env var everywhere (macOS CI in particular).
var configDirOverride string

// SetConfigDirOverride redirects ConfigDir to dir until Reset is called.
// Intended for tests; pair with t.Cleanup(Reset).
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// Reset clears the config directory override.
func Reset() {
	configDirOverride = ""
}
