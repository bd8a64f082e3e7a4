// Package buildinfo carries the program metadata shown by the version
// command and the startup banner. Name and Version can be overwritten at
// link time:
//
//	go build -ldflags "-X github.com/dherbrich/oandash/internal/buildinfo.Version=v0.2.0"
package buildinfo

import (
	"fmt"
	"io"
)

var (
	Name        = "oandash"
	Version     = "dev"
	Description = "An interactive shell for the OANDA REST API."
	License     = "GPL-3.0-or-later"
	Homepage    = "https://github.com/dherbrich/oandash"
	Maintainer  = "Dennis Herbrich"
	Email       = ""
	Copyright   = "Copyright (C) 2016 Dennis Herbrich"
)

const warranty = `This program comes with ABSOLUTELY NO WARRANTY, to the extent
permitted by law. This is free software, and you are welcome
to change and redistribute it under certain conditions.`

// PrintBuildData writes the one-line build header.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "%s %s %s\n", Name, Version, Copyright)
}

// PrintAbout writes the full version and licensing text.
func PrintAbout(w io.Writer) {
	PrintBuildData(w)
	fmt.Fprintf(w, "%s\n\nLicense %s\n\n%s\n\nHomepage: %s\nMaintainer: %s\n",
		Description, License, warranty, Homepage, maintainer())
}

func maintainer() string {
	if Email == "" {
		return Maintainer
	}
	return fmt.Sprintf("%s <%s>", Maintainer, Email)
}

// Intro is the banner printed when the shell starts, before the greeting.
func Intro() string {
	return fmt.Sprintf("%s %s %s\n\n%s", Name, Version, Copyright, warranty)
}
