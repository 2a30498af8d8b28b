// Command ragmerge merges the regions of a labelled image by mean colour.
//
//	ragmerge run --input in.yaml --threshold 30 > out.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
