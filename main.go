package main

import (
	"github.com/lehigh-university-libraries/citestyle/cmd"

	// Register citation styles
	_ "github.com/lehigh-university-libraries/citestyle/style/abnt"
	_ "github.com/lehigh-university-libraries/citestyle/style/mla"
)

func main() {
	cmd.Execute()
}
