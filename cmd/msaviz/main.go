// Command msaviz predicts where light from open micro-shutters lands on the
// NIRSpec detectors and at which wavelengths.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
